package geo

import "strings"

// The tables key states by their loader display name; the India GeoJSON keys
// features by the ST_NM property. Names that differ are mapped here, with
// aliases for the older spellings found in earlier loads.
var dbToSTNM = map[string]string{
	"Andaman And Nicobar":                      "Andaman & Nicobar Islands",
	"Andaman And Nicobar Islands":              "Andaman & Nicobar Islands",
	"Dadra And Nagar Haveli And Daman Diu":     "Dadra and Nagar Haveli and Daman and Diu",
	"Dadra And Nagar Haveli And Daman And Diu": "Dadra and Nagar Haveli and Daman and Diu",
	"Nct Of Delhi":                             "Delhi",
	"Jammu And Kashmir":                        "Jammu & Kashmir",
	"Pondicherry":                              "Puducherry",
	"Orissa":                                   "Odisha",
}

var stNMToDB = map[string]string{
	"Andaman & Nicobar Islands":                "Andaman And Nicobar Islands",
	"Dadra and Nagar Haveli and Daman and Diu": "Dadra And Nagar Haveli And Daman And Diu",
	"Jammu & Kashmir":                          "Jammu And Kashmir",
}

// ToSTNM converts a table state name into the GeoJSON ST_NM property value.
func ToSTNM(name string) string {
	n := strings.TrimSpace(name)
	if v, ok := dbToSTNM[n]; ok {
		return v
	}
	return n
}

// FromSTNM converts an ST_NM value back into the canonical table state name,
// e.g. for a state clicked on the map.
func FromSTNM(stNM string) string {
	n := strings.TrimSpace(stNM)
	if v, ok := stNMToDB[n]; ok {
		return v
	}
	return n
}

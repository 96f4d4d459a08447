package ingest

import "strings"

// StateNameFromSlug converts a pulse directory slug into the display name the
// tables are keyed by: "andaman-&-nicobar-islands" -> "Andaman And Nicobar
// Islands".
func StateNameFromSlug(slug string) string {
	s := strings.ReplaceAll(slug, "-", " ")
	s = strings.ReplaceAll(s, "&", "and")
	return titleCase(s)
}

// DistrictName normalizes a hover-map district label: "puducherry district"
// -> "Puducherry".
func DistrictName(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, " district")
	return titleCase(s)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

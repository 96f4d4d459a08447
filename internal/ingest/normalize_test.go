package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateNameFromSlug(t *testing.T) {
	cases := map[string]string{
		"karnataka":                          "Karnataka",
		"tamil-nadu":                         "Tamil Nadu",
		"andaman-&-nicobar-islands":          "Andaman And Nicobar Islands",
		"dadra-&-nagar-haveli-&-daman-&-diu": "Dadra And Nagar Haveli And Daman And Diu",
		"jammu-&-kashmir":                    "Jammu And Kashmir",
		"west-bengal":                        "West Bengal",
	}
	for slug, want := range cases {
		assert.Equal(t, want, StateNameFromSlug(slug), "slug %q", slug)
	}
}

func TestDistrictName(t *testing.T) {
	cases := map[string]string{
		"bengaluru urban district":          "Bengaluru Urban",
		"mumbai district":                   "Mumbai",
		"nicobars":                          "Nicobars",
		"north and middle andaman district": "North And Middle Andaman",
	}
	for in, want := range cases {
		assert.Equal(t, want, DistrictName(in), "input %q", in)
	}
}

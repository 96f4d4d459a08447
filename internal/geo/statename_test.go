package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSTNM(t *testing.T) {
	cases := map[string]string{
		"Karnataka":                   "Karnataka",
		"Andaman And Nicobar Islands": "Andaman & Nicobar Islands",
		"Nct Of Delhi":                "Delhi",
		"Jammu And Kashmir":           "Jammu & Kashmir",
		"Pondicherry":                 "Puducherry",
		"Orissa":                      "Odisha",
		" Tamil Nadu ":                "Tamil Nadu",
	}
	for in, want := range cases {
		assert.Equal(t, want, ToSTNM(in), "input %q", in)
	}
}

func TestFromSTNM(t *testing.T) {
	cases := map[string]string{
		"Karnataka":                 "Karnataka",
		"Andaman & Nicobar Islands": "Andaman And Nicobar Islands",
		"Jammu & Kashmir":           "Jammu And Kashmir",
	}
	for in, want := range cases {
		assert.Equal(t, want, FromSTNM(in), "input %q", in)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"Karnataka", "Andaman And Nicobar Islands", "Jammu And Kashmir"} {
		assert.Equal(t, name, FromSTNM(ToSTNM(name)))
	}
}

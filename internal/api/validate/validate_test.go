package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/models"
)

func TestYear(t *testing.T) {
	y, ef := Year("2021")
	require.Nil(t, ef)
	assert.Equal(t, 2021, y)

	for _, bad := range []string{"", "abc", "2017", "99999"} {
		_, ef := Year(bad)
		require.NotNil(t, ef, "input %q", bad)
		assert.Equal(t, "year", ef.Field)
	}
}

func TestQuarter(t *testing.T) {
	for q := 1; q <= 4; q++ {
		got, ef := Quarter(string(rune('0' + q)))
		require.Nil(t, ef)
		assert.Equal(t, q, got)
	}
	for _, bad := range []string{"", "0", "5", "q1"} {
		_, ef := Quarter(bad)
		assert.NotNil(t, ef, "input %q", bad)
	}
}

func TestEntity(t *testing.T) {
	cases := map[string]models.EntityType{
		"state":     models.EntityState,
		"States":    models.EntityState,
		"district":  models.EntityDistrict,
		"districts": models.EntityDistrict,
		"PINCODE":   models.EntityPincode,
	}
	for in, want := range cases {
		got, ef := Entity(in)
		require.Nil(t, ef, "input %q", in)
		assert.Equal(t, want, got)
	}

	_, ef := Entity("country")
	assert.NotNil(t, ef)
}

func TestLimit(t *testing.T) {
	n, ef := Limit("", 10, 50)
	require.Nil(t, ef)
	assert.Equal(t, 10, n)

	n, ef = Limit("25", 10, 50)
	require.Nil(t, ef)
	assert.Equal(t, 25, n)

	for _, bad := range []string{"0", "-1", "51", "x"} {
		_, ef := Limit(bad, 10, 50)
		assert.NotNil(t, ef, "input %q", bad)
	}
}

func TestErrsError(t *testing.T) {
	errs := Errs{{Field: "year", Msg: "required"}, {Field: "quarter", Msg: "must be 1..4"}}
	assert.Equal(t, "year: required; quarter: must be 1..4", errs.Error())
}

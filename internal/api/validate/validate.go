package validate

import (
	"strconv"
	"strings"

	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/models"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Helpers
func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "required"}
	}
	return nil
}

// Year parses a dashboard year. Pulse data starts in 2018.
func Year(value string) (int, *ErrField) {
	y, err := strconv.Atoi(value)
	if err != nil || y < 2018 || y > 2100 {
		return 0, &ErrField{Field: "year", Msg: "must be a year from 2018 onwards"}
	}
	return y, nil
}

func Quarter(value string) (int, *ErrField) {
	q, err := strconv.Atoi(value)
	if err != nil || q < 1 || q > 4 {
		return 0, &ErrField{Field: "quarter", Msg: "must be 1..4"}
	}
	return q, nil
}

// Entity maps the "level" query parameter onto a top-leaderboard entity type.
func Entity(value string) (models.EntityType, *ErrField) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "state", "states":
		return models.EntityState, nil
	case "district", "districts":
		return models.EntityDistrict, nil
	case "pincode", "pincodes":
		return models.EntityPincode, nil
	default:
		return "", &ErrField{Field: "level", Msg: "must be one of state, district, pincode"}
	}
}

func Limit(value string, def, max int) (int, *ErrField) {
	if strings.TrimSpace(value) == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 || n > max {
		return 0, &ErrField{Field: "limit", Msg: "must be 1.." + strconv.Itoa(max)}
	}
	return n, nil
}

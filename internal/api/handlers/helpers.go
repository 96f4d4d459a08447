package handlers

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"

	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/api/httpx"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/api/validate"
)

// Loaded slices change only when the loader runs, so responses can sit in
// caches for a while.
const cacheControl = "public, max-age=3600"

const maxLimit = 50

// period parses the year and quarter query parameters shared by almost every
// endpoint. A nil Errs means both parsed.
func period(r *http.Request) (year, quarter int, errs validate.Errs) {
	y, ef := validate.Year(r.URL.Query().Get("year"))
	if ef != nil {
		errs = append(errs, *ef)
	}
	q, ef := validate.Quarter(r.URL.Query().Get("quarter"))
	if ef != nil {
		errs = append(errs, *ef)
	}
	return y, q, errs
}

func writeValidation(w http.ResponseWriter, errs validate.Errs) {
	httpx.WriteError(w, http.StatusBadRequest, "validation_error", errs.Error(), errs)
}

// writeResult is the shared success/failure tail of every read endpoint.
func writeResult(w http.ResponseWriter, v interface{}, err error) {
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "no data for the requested slice", nil)
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "query_failed", err.Error(), nil)
		return
	}
	w.Header().Set("Cache-Control", cacheControl)
	httpx.WriteJSON(w, http.StatusOK, v)
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/api/validate"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/services"
)

type RankingHandler struct {
	svc *services.RankingService
}

func NewRankingHandler(svc *services.RankingService) *RankingHandler {
	return &RankingHandler{svc: svc}
}

// Top serves the Top leaderboard. The state parameter is optional; when it is
// absent the ranking is countrywide.
func (h *RankingHandler) Top(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	entity, ef := validate.Entity(r.URL.Query().Get("level"))
	if ef != nil {
		errs = append(errs, *ef)
	}
	limit, ef := validate.Limit(r.URL.Query().Get("limit"), 10, maxLimit)
	if ef != nil {
		errs = append(errs, *ef)
	}
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	state := r.URL.Query().Get("state")
	out, err := h.svc.Top(r.Context(), state, y, q, entity, limit)
	writeResult(w, out, err)
}

func (h *RankingHandler) TopPincodesByUsers(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	limit, ef := validate.Limit(r.URL.Query().Get("limit"), 10, maxLimit)
	if ef != nil {
		errs = append(errs, *ef)
	}
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	state := r.URL.Query().Get("state")
	out, err := h.svc.TopPincodesByUsers(r.Context(), state, y, q, limit)
	writeResult(w, out, err)
}

func (h *RankingHandler) DistrictNames(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	state := chi.URLParam(r, "state")
	if ef := validate.Required("state", state); ef != nil {
		errs = append(errs, *ef)
	}
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	out, err := h.svc.DistrictNames(r.Context(), state, y, q)
	writeResult(w, out, err)
}

func (h *RankingHandler) PincodeNames(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	state := chi.URLParam(r, "state")
	if ef := validate.Required("state", state); ef != nil {
		errs = append(errs, *ef)
	}
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	source := r.URL.Query().Get("source")
	out, err := h.svc.PincodeNames(r.Context(), state, y, q, source)
	writeResult(w, out, err)
}

func (h *RankingHandler) StatesWithDistricts(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	out, err := h.svc.StatesWithDistricts(r.Context(), y, q)
	writeResult(w, out, err)
}

func (h *RankingHandler) DistrictShare(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	state := chi.URLParam(r, "state")
	if ef := validate.Required("state", state); ef != nil {
		errs = append(errs, *ef)
	}
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	out, err := h.svc.DistrictShare(r.Context(), state, y, q)
	writeResult(w, out, err)
}

func (h *RankingHandler) DistrictYoY(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	state := chi.URLParam(r, "state")
	if ef := validate.Required("state", state); ef != nil {
		errs = append(errs, *ef)
	}
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	out, err := h.svc.DistrictYoY(r.Context(), state, y, q)
	writeResult(w, out, err)
}

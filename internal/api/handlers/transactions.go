package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/api/validate"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/services"
)

type TransactionHandler struct {
	svc *services.TransactionService
}

func NewTransactionHandler(svc *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

func (h *TransactionHandler) Overview(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	out, err := h.svc.Overview(r.Context(), y, q)
	writeResult(w, out, err)
}

func (h *TransactionHandler) StateSummary(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	state := chi.URLParam(r, "state")
	if ef := validate.Required("state", state); ef != nil {
		errs = append(errs, *ef)
	}
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	out, err := h.svc.StateSummary(r.Context(), state, y, q)
	writeResult(w, out, err)
}

func (h *TransactionHandler) ByState(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	out, err := h.svc.AmountByState(r.Context(), y, q)
	writeResult(w, out, err)
}

func (h *TransactionHandler) Categories(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	out, err := h.svc.CategoryTotals(r.Context(), y, q)
	writeResult(w, out, err)
}

func (h *TransactionHandler) StateCategories(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	state := chi.URLParam(r, "state")
	if ef := validate.Required("state", state); ef != nil {
		errs = append(errs, *ef)
	}
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	out, err := h.svc.ByCategory(r.Context(), state, y, q)
	writeResult(w, out, err)
}

func (h *TransactionHandler) StateTrend(w http.ResponseWriter, r *http.Request) {
	state := chi.URLParam(r, "state")
	if ef := validate.Required("state", state); ef != nil {
		writeValidation(w, validate.Errs{*ef})
		return
	}
	out, err := h.svc.StateTrend(r.Context(), state)
	writeResult(w, out, err)
}

func (h *TransactionHandler) TopStates(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	limit, ef := validate.Limit(r.URL.Query().Get("limit"), 10, maxLimit)
	if ef != nil {
		errs = append(errs, *ef)
	}
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	out, err := h.svc.TopStates(r.Context(), y, q, limit)
	writeResult(w, out, err)
}

func (h *TransactionHandler) StateDistricts(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	state := chi.URLParam(r, "state")
	if ef := validate.Required("state", state); ef != nil {
		errs = append(errs, *ef)
	}
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	out, err := h.svc.DistrictTotals(r.Context(), state, y, q)
	writeResult(w, out, err)
}

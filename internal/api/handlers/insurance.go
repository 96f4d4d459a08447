package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/api/validate"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/services"
)

type InsuranceHandler struct {
	svc *services.InsuranceService
}

func NewInsuranceHandler(svc *services.InsuranceService) *InsuranceHandler {
	return &InsuranceHandler{svc: svc}
}

func (h *InsuranceHandler) Overview(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	out, err := h.svc.Overview(r.Context(), y, q)
	writeResult(w, out, err)
}

func (h *InsuranceHandler) ByState(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	out, err := h.svc.AmountByState(r.Context(), y, q)
	writeResult(w, out, err)
}

func (h *InsuranceHandler) States(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	out, err := h.svc.States(r.Context(), y, q)
	writeResult(w, out, err)
}

func (h *InsuranceHandler) TopDistricts(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	state := chi.URLParam(r, "state")
	if ef := validate.Required("state", state); ef != nil {
		errs = append(errs, *ef)
	}
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	out, err := h.svc.TopDistricts(r.Context(), state, y, q)
	writeResult(w, out, err)
}

func (h *InsuranceHandler) YoY(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	out, err := h.svc.YoYByState(r.Context(), y, q)
	writeResult(w, out, err)
}

func (h *InsuranceHandler) VsTransactions(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	out, err := h.svc.VsTransactions(r.Context(), y, q)
	writeResult(w, out, err)
}

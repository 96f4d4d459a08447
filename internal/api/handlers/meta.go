package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/api/validate"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/services"
)

type MetaHandler struct {
	svc *services.MetaService
}

func NewMetaHandler(svc *services.MetaService) *MetaHandler {
	return &MetaHandler{svc: svc}
}

func (h *MetaHandler) Periods(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Periods(r.Context())
	writeResult(w, out, err)
}

func (h *MetaHandler) Quarters(w http.ResponseWriter, r *http.Request) {
	y, ef := validate.Year(chi.URLParam(r, "year"))
	if ef != nil {
		writeValidation(w, validate.Errs{*ef})
		return
	}
	out, err := h.svc.QuartersForYear(r.Context(), y)
	writeResult(w, out, err)
}

func (h *MetaHandler) States(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	out, err := h.svc.States(r.Context(), y, q)
	writeResult(w, out, err)
}

func (h *MetaHandler) ReferenceStates(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ReferenceStates(r.Context())
	writeResult(w, out, err)
}

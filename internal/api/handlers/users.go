package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/api/validate"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/services"
)

type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Overview(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	out, err := h.svc.Overview(r.Context(), y, q)
	writeResult(w, out, err)
}

func (h *UserHandler) StateSummary(w http.ResponseWriter, r *http.Request) {
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

func (h *UserHandler) ByState(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	out, err := h.svc.UsersByState(r.Context(), y, q)
	writeResult(w, out, err)
}

func (h *UserHandler) StateDistricts(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	state := chi.URLParam(r, "state")
	if ef := validate.Required("state", state); ef != nil {
		errs = append(errs, *ef)
	}
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	out, err := h.svc.Districts(r.Context(), state, y, q)
	writeResult(w, out, err)
}

func (h *UserHandler) Brands(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	out, err := h.svc.Brands(r.Context(), y, q)
	writeResult(w, out, err)
}

func (h *UserHandler) BrandNames(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	out, err := h.svc.BrandNames(r.Context(), y, q)
	writeResult(w, out, err)
}

func (h *UserHandler) TopBrandPerState(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	out, err := h.svc.TopBrandPerState(r.Context(), y, q)
	writeResult(w, out, err)
}

func (h *UserHandler) BrandTrend(w http.ResponseWriter, r *http.Request) {
	brand := chi.URLParam(r, "brand")
	if ef := validate.Required("brand", brand); ef != nil {
		writeValidation(w, validate.Errs{*ef})
		return
	}
	out, err := h.svc.BrandTrend(r.Context(), brand)
	writeResult(w, out, err)
}

func (h *UserHandler) BrandShare(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	brand := chi.URLParam(r, "brand")
	if ef := validate.Required("brand", brand); ef != nil {
		errs = append(errs, *ef)
	}
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	out, err := h.svc.BrandShareByState(r.Context(), brand, y, q)
	writeResult(w, out, err)
}

func (h *UserHandler) Engagement(w http.ResponseWriter, r *http.Request) {
	y, q, errs := period(r)
	if errs != nil {
		writeValidation(w, errs)
		return
	}
	out, err := h.svc.Engagement(r.Context(), y, q)
	writeResult(w, out, err)
}

func (h *UserHandler) LatestPeriod(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.LatestCommonPeriod(r.Context())
	writeResult(w, out, err)
}

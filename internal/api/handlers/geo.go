package handlers

import (
	"net/http"

	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/api/httpx"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/geo"
)

type GeoHandler struct {
	client *geo.Client
}

func NewGeoHandler(client *geo.Client) *GeoHandler {
	return &GeoHandler{client: client}
}

// IndiaStates proxies the upstream India states GeoJSON so the browser never
// talks to the gist host directly.
func (h *GeoHandler) IndiaStates(w http.ResponseWriter, r *http.Request) {
	body, err := h.client.IndiaStates(r.Context())
	if err != nil {
		httpx.WriteError(w, http.StatusBadGateway, "geojson_unavailable", err.Error(), nil)
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	w.Header().Set("Cache-Control", cacheControl)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

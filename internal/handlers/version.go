package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// NewVersionHandler returns build information.
// @Summary Build information
// @Tags system
// @Produce json
// @Success 200 {object} models.VersionResponse
// @Router /api/version [get]
func NewVersionHandler(info models.VersionResponse) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, info)
	}
}

// RegisterVersionHandler registers the version route.
func RegisterVersionHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/api/version", h)
}

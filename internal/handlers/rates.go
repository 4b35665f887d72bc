package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=rates.go -destination=mock_rates.go -package=handlers

// RatesReader returns the latest rates.
type RatesReader interface {
	LatestRates(ctx context.Context) (*models.RatesResponse, error)
}

// NewRatesHandler returns the latest rates against the base currency.
// @Summary Latest rates
// @Description Latest rates of the supported currencies against the base, served from cache for up to the cache TTL
// @Tags fx
// @Produce json
// @Success 200 {object} models.RatesResponse
// @Failure 502 {object} models.ErrorResponse "Upstream unavailable and nothing cached"
// @Router /api/rates [get]
func NewRatesHandler(svc RatesReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := svc.LatestRates(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// RegisterRatesHandler registers the latest-rates route.
func RegisterRatesHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/api/rates", h)
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=currencies.go -destination=mock_currencies.go -package=handlers

// CurrencyLister exposes the configured currencies.
type CurrencyLister interface {
	Currencies() *models.CurrenciesResponse
}

// NewCurrenciesHandler lists the supported currencies.
// @Summary Supported currencies
// @Description Returns the base currency and the currencies offered for conversion
// @Tags fx
// @Produce json
// @Success 200 {object} models.CurrenciesResponse
// @Router /api/currencies [get]
func NewCurrenciesHandler(svc CurrencyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Currencies())
	}
}

// RegisterCurrenciesHandler registers the currencies route.
func RegisterCurrenciesHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/api/currencies", h)
}

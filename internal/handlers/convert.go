package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=convert.go -destination=mock_convert.go -package=handlers

// Converter converts an amount between currencies.
type Converter interface {
	Convert(ctx context.Context, req models.ConversionRequest) (*models.ConvertResponse, error)
}

// NewConvertHandler converts an amount between two currencies.
// @Summary Convert amount
// @Description Converts amount from one currency to another through the base currency
// @Tags fx
// @Produce json
// @Param amount query number true "Amount to convert" example(100)
// @Param from query string true "Source currency" example(USD)
// @Param to query string true "Target currency" example(MXN)
// @Success 200 {object} models.ConvertResponse
// @Failure 400 {object} models.ErrorResponse "Invalid amount or malformed currency code"
// @Failure 422 {object} models.ErrorResponse "Rate not available"
// @Failure 502 {object} models.ErrorResponse "Upstream error"
// @Router /api/convert [get]
func NewConvertHandler(svc Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		amount, err := strconv.ParseFloat(q.Get("amount"), 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, models.ErrInvalidAmount.Error())
			return
		}

		from := models.NormalizeCode(q.Get("from"))
		to := models.NormalizeCode(q.Get("to"))
		if from == "" || to == "" {
			writeError(w, http.StatusBadRequest, models.ErrMissingCurrency.Error())
			return
		}
		for _, code := range []models.Code{from, to} {
			if !code.Valid() {
				writeError(w, http.StatusBadRequest, "Unsupported currency: "+code.String())
				return
			}
		}

		resp, err := svc.Convert(r.Context(), models.ConversionRequest{Amount: amount, From: from.String(), To: to.String()})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// RegisterConvertHandler registers the conversion route.
func RegisterConvertHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/api/convert", h)
}

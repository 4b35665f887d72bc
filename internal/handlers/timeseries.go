package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=timeseries.go -destination=mock_timeseries.go -package=handlers

const defaultDays = 30

// TimeseriesReader returns daily rates for one symbol.
type TimeseriesReader interface {
	Timeseries(ctx context.Context, symbol models.Code, days int) (*models.TimeseriesResponse, error)
}

// NewTimeseriesHandler returns daily rates of symbol against the base.
// @Summary Rate history
// @Description Daily rates of one currency against the base over the last days
// @Tags fx
// @Produce json
// @Param symbol query string true "Currency to chart" example(CLP)
// @Param days query int false "Window in days, 2 to 365" default(30)
// @Success 200 {object} models.TimeseriesResponse
// @Failure 400 {object} models.ErrorResponse "Invalid symbol or days"
// @Failure 502 {object} models.ErrorResponse "Upstream unavailable and nothing cached"
// @Router /api/timeseries [get]
func NewTimeseriesHandler(svc TimeseriesReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		symbol := models.NormalizeCode(q.Get("symbol"))
		if symbol == "" {
			writeError(w, http.StatusBadRequest, "symbol is required")
			return
		}

		days := defaultDays
		if raw := q.Get("days"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, models.ErrInvalidDays.Error())
				return
			}
			days = n
		}

		resp, err := svc.Timeseries(r.Context(), symbol, days)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// RegisterTimeseriesHandler registers the timeseries route.
func RegisterTimeseriesHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/api/timeseries", h)
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

// writeServiceError maps a service error onto an HTTP status.
func writeServiceError(w http.ResponseWriter, err error) {
	var unsupported *models.UnsupportedCurrencyError

	switch {
	case errors.As(err, &unsupported):
		writeError(w, http.StatusUnprocessableEntity, "Rate not available for "+unsupported.Code.String())
	case errors.Is(err, models.ErrInvalidAmount),
		errors.Is(err, models.ErrMissingCurrency),
		errors.Is(err, models.ErrUnsupportedSymbol),
		errors.Is(err, models.ErrInvalidDays):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNetworkFailure), errors.Is(err, models.ErrParseFailure):
		writeError(w, http.StatusBadGateway, "Upstream error: "+err.Error())
	default:
		logger.Log.Errorw("unexpected service error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

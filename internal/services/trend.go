package services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=trend.go -destination=mock_trend.go -package=services

const (
	MinTrendDays     = 2
	MaxTrendDays     = 365
	DefaultTrendDays = 30
)

// TrendSource returns a daily series of symbol against the base.
type TrendSource interface {
	FetchTrend(ctx context.Context, symbol models.Code, days int) (*models.Timeseries, error)
}

// TrendService fetches and summarizes trends for one base currency.
type TrendService struct {
	source TrendSource
	base   models.Code
}

// NewTrendService creates a trend service for base.
func NewTrendService(source TrendSource, base models.Code) *TrendService {
	return &TrendService{source: source, base: base}
}

// ClampDays maps days into the supported window. Zero or negative selects
// the default.
func ClampDays(days int) int {
	switch {
	case days <= 0:
		return DefaultTrendDays
	case days < MinTrendDays:
		return MinTrendDays
	case days > MaxTrendDays:
		return MaxTrendDays
	default:
		return days
	}
}

// FetchTrend returns the summarized trend of symbol over the last days.
func (s *TrendService) FetchTrend(ctx context.Context, symbol string, days int) (*models.TimeseriesSummary, error) {
	code := models.NormalizeCode(symbol)
	if !code.Valid() || code == s.base {
		return nil, &models.UnsupportedSymbolError{Symbol: code}
	}

	series, err := s.source.FetchTrend(ctx, code, ClampDays(days))
	if err != nil {
		logger.Log.Errorw("failed to fetch trend", "symbol", code, "error", err)
		return nil, fmt.Errorf("%w: %w", models.ErrTrendFetchFailed, err)
	}

	return Summarize(code, series.Points, series.Meta.Cached, series.Meta.Stale)
}

// Summarize computes min, max and last over points without reordering
// them. At least two points are required.
func Summarize(symbol models.Code, points []models.TimeseriesPoint, cached, stale bool) (*models.TimeseriesSummary, error) {
	if len(points) < 2 {
		return nil, models.ErrEmptySeries
	}

	lo, hi := points[0].Rate, points[0].Rate
	for _, p := range points[1:] {
		lo = min(lo, p.Rate)
		hi = max(hi, p.Rate)
	}

	return &models.TimeseriesSummary{
		Symbol: symbol,
		Points: points,
		Min:    lo,
		Max:    hi,
		Last:   points[len(points)-1].Rate,
		Cached: cached,
		Stale:  stale,
	}, nil
}

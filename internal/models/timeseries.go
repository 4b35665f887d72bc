package models

import "cloud.google.com/go/civil"

// TimeseriesPoint is one day's rate.
// swagger:model TimeseriesPoint
type TimeseriesPoint struct {
	// Calendar day
	// example: 2026-01-19
	Date civil.Date `json:"date" swaggertype:"string"`

	// Units of symbol per one unit of base
	// example: 0.92
	Rate float64 `json:"rate"`
}

// SeriesMeta carries cache provenance of a series or rate payload.
// swagger:model SeriesMeta
type SeriesMeta struct {
	Cached          bool   `json:"cached"`
	Stale           bool   `json:"stale"`
	CacheTTLSeconds int    `json:"cache_ttl_seconds,omitempty"`
	Source          string `json:"source,omitempty"`
	Error           string `json:"error,omitempty"`
}

// Timeseries is what a trend source returns: points ascending by date.
type Timeseries struct {
	Base   Code
	Symbol Code
	Points []TimeseriesPoint
	Meta   SeriesMeta
}

// TimeseriesSummary is a series packaged for display.
type TimeseriesSummary struct {
	Symbol Code
	Points []TimeseriesPoint
	Min    float64
	Max    float64
	Last   float64
	Cached bool
	Stale  bool
}

// Series returns chart labels and values in point order.
func (s *TimeseriesSummary) Series() (labels []string, values []float64) {
	labels = make([]string, len(s.Points))
	values = make([]float64, len(s.Points))
	for i, p := range s.Points {
		labels[i] = p.Date.String()
		values[i] = p.Rate
	}
	return labels, values
}

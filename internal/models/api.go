package models

import "time"

// RatesResponse is the body of GET /api/rates.
// swagger:model RatesResponse
type RatesResponse struct {
	// Base currency
	// example: USD
	Base Code `json:"base"`

	// Upstream "as of" date
	// example: 2026-01-19
	Date string `json:"date,omitempty"`

	// Units of each currency per one unit of base
	Rates map[Code]float64 `json:"rates"`

	// Cache provenance
	Meta SeriesMeta `json:"meta"`
}

// ConvertResponse is the body of GET /api/convert.
// swagger:model ConvertResponse
type ConvertResponse struct {
	// Base currency used as pivot
	// example: USD
	Base Code `json:"base"`

	// example: EUR
	From Code `json:"from"`

	// example: JPY
	To Code `json:"to"`

	// example: 100
	Amount float64 `json:"amount"`

	// Converted amount
	// example: 16250
	Result float64 `json:"result"`

	// Rate for one unit of from in to
	// example: 162.5
	FxRate float64 `json:"fx_rate"`

	// Upstream "as of" date
	// example: 2026-01-19
	FxDate string `json:"fx_date,omitempty"`

	// When the rates were fetched from upstream
	// example: 2026-01-19T15:04:05Z
	FetchedAt *time.Time `json:"fetched_at,omitempty"`

	// Cache provenance
	Meta SeriesMeta `json:"meta"`
}

// TimeseriesResponse is the body of GET /api/timeseries.
// swagger:model TimeseriesResponse
type TimeseriesResponse struct {
	// example: USD
	Base Code `json:"base"`

	// example: CLP
	Symbol Code `json:"symbol"`

	// example: 30
	Days int `json:"days"`

	Points []TimeseriesPoint `json:"points"`

	Meta SeriesMeta `json:"meta"`
}

// CurrenciesResponse is the body of GET /api/currencies.
// swagger:model CurrenciesResponse
type CurrenciesResponse struct {
	// example: USD
	Base       Code       `json:"base"`
	Currencies []Currency `json:"currencies"`
}

// VersionResponse is the body of GET /api/version.
// swagger:model VersionResponse
type VersionResponse struct {
	App          string `json:"app"`
	Base         Code   `json:"base"`
	BuildTag     string `json:"build_tag"`
	GitSHA       string `json:"git_sha"`
	BuildTimeUTC string `json:"build_time_utc"`
}

// ErrorResponse is returned on any failure.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Rate not available for JPY
	Error string `json:"error"`
}

// SetMeta replaces the cache provenance.
func (r *RatesResponse) SetMeta(meta SeriesMeta) { r.Meta = meta }

// SetMeta replaces the cache provenance.
func (r *TimeseriesResponse) SetMeta(meta SeriesMeta) { r.Meta = meta }

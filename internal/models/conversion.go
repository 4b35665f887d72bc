package models

import "time"

// ConversionRequest is a user-entered conversion.
type ConversionRequest struct {
	Amount float64
	From   string
	To     string
}

// ConversionResult is the outcome of a conversion together with its
// provenance.
type ConversionResult struct {
	Amount float64
	From   Code
	To     Code
	Result float64
	Base   Code
	// AsOf is the fetch time of the rate table; nil for identity conversions.
	AsOf *time.Time
	// FxDate is the API-supplied "as of" date, when available.
	FxDate string
	// Rate is the effective rate for one unit of From in To.
	Rate float64
	// Cached reports whether the rate table came from the local cache.
	Cached bool
}

// Identity reports whether no rate was involved.
func (r *ConversionResult) Identity() bool {
	return r.From == r.To
}

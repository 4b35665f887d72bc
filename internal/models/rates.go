package models

import (
	"fmt"
	"math"
	"time"
)

// RateTable holds rates expressed as units of a currency per one unit of
// Base. It is never mutated once built.
type RateTable struct {
	Base      Code
	Rates     map[Code]float64
	FetchedAt time.Time
	// Date is the "as of" date reported by the API, if any.
	Date string
}

// NewRateTable normalizes codes, drops any entry for the base and rejects
// non-positive or non-finite rates.
func NewRateTable(base Code, rates map[string]float64, fetchedAt time.Time, date string) (*RateTable, error) {
	base = NormalizeCode(string(base))
	if base == "" {
		return nil, &ParseError{Detail: "rate table has no base currency"}
	}

	table := &RateTable{
		Base:      base,
		Rates:     make(map[Code]float64, len(rates)),
		FetchedAt: fetchedAt,
		Date:      date,
	}
	for raw, rate := range rates {
		code := NormalizeCode(raw)
		if code == base || code == "" {
			continue
		}
		if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
			return nil, &ParseError{Detail: fmt.Sprintf("invalid rate %v for %s", rate, code)}
		}
		table.Rates[code] = rate
	}
	return table, nil
}

// Rate returns the rate for code, 1.0 for the base currency.
func (t *RateTable) Rate(code Code) (float64, bool) {
	if code == t.Base {
		return 1.0, true
	}
	rate, ok := t.Rates[code]
	return rate, ok
}

// WithFetchedAt returns a copy stamped with fetchedAt. The rates map is
// shared since tables are read-only.
func (t *RateTable) WithFetchedAt(fetchedAt time.Time) *RateTable {
	cp := *t
	cp.FetchedAt = fetchedAt
	return &cp
}

// Age returns how long ago the table was fetched.
func (t *RateTable) Age(now time.Time) time.Duration {
	return now.Sub(t.FetchedAt)
}

package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount       = errors.New("invalid amount: enter a number greater than zero")
	ErrMissingCurrency     = errors.New("missing currency: select both from and to currencies")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrUnsupportedSymbol   = errors.New("unsupported symbol")
	ErrEmptySeries         = errors.New("empty series: at least two points are needed for a trend")
	ErrNetworkFailure      = errors.New("network failure")
	ErrParseFailure        = errors.New("parse failure")
	ErrTrendFetchFailed    = errors.New("trend fetch failed")
	ErrInvalidDays         = errors.New("days must be between 2 and 365")
)

// UnsupportedCurrencyError is returned when a rate table has no entry for Code.
type UnsupportedCurrencyError struct {
	Code Code
}

func (e *UnsupportedCurrencyError) Error() string {
	return fmt.Sprintf("no rate available for %s (currency not supported by the API)", e.Code)
}

func (e *UnsupportedCurrencyError) Unwrap() error {
	return ErrUnsupportedCurrency
}

// UnsupportedSymbolError is returned for a trend symbol that cannot be charted.
type UnsupportedSymbolError struct {
	Symbol Code
}

func (e *UnsupportedSymbolError) Error() string {
	if e.Symbol == "" {
		return "unsupported symbol: a currency symbol is required"
	}
	return fmt.Sprintf("unsupported symbol %s", e.Symbol)
}

func (e *UnsupportedSymbolError) Unwrap() error {
	return ErrUnsupportedSymbol
}

// NetworkError describes a failed remote call. Status is zero when no
// HTTP response was received.
type NetworkError struct {
	Status int
	Detail string
}

func (e *NetworkError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Status != 0 {
		return fmt.Sprintf("HTTP %d", e.Status)
	}
	return ErrNetworkFailure.Error()
}

func (e *NetworkError) Unwrap() error {
	return ErrNetworkFailure
}

// ParseError is returned when a remote payload cannot be decoded.
type ParseError struct {
	Detail string
	Err    error
}

func (e *ParseError) Error() string {
	msg := "invalid payload"
	if e.Detail != "" {
		msg = e.Detail
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParseFailure}
	}
	return []error{ErrParseFailure, e.Err}
}

// IsValidationError reports whether err was raised before any network call.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrMissingCurrency) ||
		errors.Is(err, ErrUnsupportedCurrency) ||
		errors.Is(err, ErrUnsupportedSymbol)
}

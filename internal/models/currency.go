package models

import "strings"

// Code is a normalized currency code such as "USD".
type Code string

// NormalizeCode trims and uppercases a raw currency code.
func NormalizeCode(raw string) Code {
	return Code(strings.ToUpper(strings.TrimSpace(raw)))
}

// Valid reports whether the code is exactly three ASCII letters.
func (c Code) Valid() bool {
	if len(c) != 3 {
		return false
	}
	for i := 0; i < len(c); i++ {
		if c[i] < 'A' || c[i] > 'Z' {
			return false
		}
	}
	return true
}

func (c Code) String() string {
	return string(c)
}

// Currency describes one entry of the gateway's currency list.
// swagger:model Currency
type Currency struct {
	// Country name
	// example: Chile
	Country string `json:"country"`

	// Flag emoji
	// example: 🇨🇱
	Flag string `json:"flag"`

	// ISO code
	// example: CLP
	Currency Code `json:"currency"`
}

// DefaultCurrencies is the list served by /api/currencies.
var DefaultCurrencies = []Currency{
	{Country: "United States", Flag: "🇺🇸", Currency: "USD"},
	{Country: "Chile", Flag: "🇨🇱", Currency: "CLP"},
	{Country: "Mexico", Flag: "🇲🇽", Currency: "MXN"},
	{Country: "Guatemala", Flag: "🇬🇹", Currency: "GTQ"},
	{Country: "Honduras", Flag: "🇭🇳", Currency: "HNL"},
	{Country: "Costa Rica", Flag: "🇨🇷", Currency: "CRC"},
	{Country: "Belize", Flag: "🇧🇿", Currency: "BZD"},
}

// Package format renders numbers for display.
package format

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Decimals returns how many fractional digits n is shown with:
// 2 from 100 up, 4 from 1 up, 6 below 1.
func Decimals(n float64) int32 {
	abs := math.Abs(n)
	switch {
	case abs >= 100:
		return 2
	case abs >= 1:
		return 4
	default:
		return 6
	}
}

// Number formats n with magnitude-adaptive precision, no grouping and a
// '.' decimal separator. The exact binary value of n is rounded half away
// from zero, so 100.145 (stored as 100.14499...) gives "100.14".
// n must be finite.
func Number(n float64) string {
	places := Decimals(n)
	exact := new(big.Rat).SetFloat64(n)
	num := decimal.NewFromBigInt(exact.Num(), 0)
	den := decimal.NewFromBigInt(exact.Denom(), 0)
	return num.DivRound(den, places).StringFixed(places)
}

// Localized formats n like Number but with the grouping and separators of
// tag. It is meant for display only.
func Localized(tag language.Tag, n float64) string {
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(n, number.Scale(int(Decimals(n)))))
}

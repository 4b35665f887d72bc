package models

import (
	"errors"
	"math"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, Code("EUR"), NormalizeCode("  eur "))
	assert.Equal(t, Code(""), NormalizeCode("   "))
	assert.Equal(t, NormalizeCode("Jpy"), NormalizeCode("JPY "))
}

func TestCode_Valid(t *testing.T) {
	assert.True(t, Code("USD").Valid())
	assert.False(t, Code("US").Valid())
	assert.False(t, Code("usd").Valid())
	assert.False(t, Code("U5D").Valid())
}

func TestNewRateTable(t *testing.T) {
	now := time.Date(2026, 1, 19, 10, 0, 0, 0, time.UTC)

	t.Run("drops_base_and_normalizes", func(t *testing.T) {
		table, err := NewRateTable("usd", map[string]float64{"usd": 1, "eur ": 0.92, "JPY": 149.5}, now, "2026-01-19")
		require.NoError(t, err)
		assert.Equal(t, Code("USD"), table.Base)
		assert.NotContains(t, table.Rates, Code("USD"))
		assert.Equal(t, 0.92, table.Rates["EUR"])

		rate, ok := table.Rate("USD")
		assert.True(t, ok)
		assert.Equal(t, 1.0, rate)
	})

	t.Run("rejects_invalid_rates", func(t *testing.T) {
		for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
			_, err := NewRateTable("USD", map[string]float64{"EUR": bad}, now, "")
			assert.ErrorIs(t, err, ErrParseFailure)
		}
	})

	t.Run("requires_base", func(t *testing.T) {
		_, err := NewRateTable(" ", map[string]float64{"EUR": 1}, now, "")
		assert.ErrorIs(t, err, ErrParseFailure)
	})
}

func TestErrors_AreMatchable(t *testing.T) {
	var err error = &UnsupportedCurrencyError{Code: "XXX"}
	assert.ErrorIs(t, err, ErrUnsupportedCurrency)
	assert.Contains(t, err.Error(), "XXX")

	err = &NetworkError{Status: 503}
	assert.ErrorIs(t, err, ErrNetworkFailure)
	assert.Equal(t, "HTTP 503", err.Error())

	cause := errors.New("unexpected EOF")
	err = &ParseError{Detail: "decode rates", Err: cause}
	assert.ErrorIs(t, err, ErrParseFailure)
	assert.ErrorIs(t, err, cause)

	assert.True(t, IsValidationError(ErrInvalidAmount))
	assert.True(t, IsValidationError(&UnsupportedSymbolError{Symbol: "X"}))
	assert.False(t, IsValidationError(&NetworkError{Status: 500}))
}

func TestTimeseriesSummary_Series(t *testing.T) {
	s := &TimeseriesSummary{Points: []TimeseriesPoint{
		{Date: civil.Date{Year: 2026, Month: 1, Day: 16}, Rate: 1.0},
		{Date: civil.Date{Year: 2026, Month: 1, Day: 19}, Rate: 1.2},
	}}
	labels, values := s.Series()
	assert.Equal(t, []string{"2026-01-16", "2026-01-19"}, labels)
	assert.Equal(t, []float64{1.0, 1.2}, values)
}

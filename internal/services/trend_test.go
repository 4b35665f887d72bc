package services

import (
	"context"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

func points(rates ...float64) []models.TimeseriesPoint {
	start := civil.Date{Year: 2026, Month: 1, Day: 1}
	out := make([]models.TimeseriesPoint, len(rates))
	for i, r := range rates {
		out[i] = models.TimeseriesPoint{Date: start.AddDays(i), Rate: r}
	}
	return out
}

func TestSummarize(t *testing.T) {
	t.Run("min max last", func(t *testing.T) {
		s, err := Summarize("EUR", points(1.0, 1.2, 0.9), false, false)
		require.NoError(t, err)
		assert.Equal(t, 0.9, s.Min)
		assert.Equal(t, 1.2, s.Max)
		assert.Equal(t, 0.9, s.Last)
		assert.False(t, s.Cached)
		assert.False(t, s.Stale)
		assert.Len(t, s.Points, 3)
	})

	t.Run("empty series", func(t *testing.T) {
		_, err := Summarize("EUR", nil, false, false)
		assert.ErrorIs(t, err, models.ErrEmptySeries)

		_, err = Summarize("EUR", points(1.0), false, false)
		assert.ErrorIs(t, err, models.ErrEmptySeries)
	})

	t.Run("meta flags pass through", func(t *testing.T) {
		s, err := Summarize("EUR", points(1, 2), true, true)
		require.NoError(t, err)
		assert.True(t, s.Cached)
		assert.True(t, s.Stale)
	})

	t.Run("unsorted input is not reordered", func(t *testing.T) {
		pts := points(1.0, 1.2, 0.9)
		pts[0], pts[2] = pts[2], pts[0]
		s, err := Summarize("EUR", pts, false, false)
		require.NoError(t, err)
		assert.Equal(t, 1.0, s.Last)
		assert.Equal(t, "2026-01-03", s.Points[0].Date.String())
	})
}

func TestClampDays(t *testing.T) {
	tests := map[int]int{
		-3:  DefaultTrendDays,
		0:   DefaultTrendDays,
		1:   MinTrendDays,
		2:   2,
		30:  30,
		365: 365,
		999: MaxTrendDays,
	}
	for in, want := range tests {
		assert.Equal(t, want, ClampDays(in), "days=%d", in)
	}
}

func TestTrendService_FetchTrend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	source := NewMockTrendSource(ctrl)
	svc := NewTrendService(source, "USD")

	t.Run("success", func(t *testing.T) {
		source.EXPECT().FetchTrend(ctx, models.Code("EUR"), 365).Return(&models.Timeseries{
			Base:   "USD",
			Symbol: "EUR",
			Points: points(1.0, 1.2, 0.9),
			Meta:   models.SeriesMeta{Cached: true},
		}, nil)

		s, err := svc.FetchTrend(ctx, " eur", 1000)
		require.NoError(t, err)
		assert.Equal(t, models.Code("EUR"), s.Symbol)
		assert.Equal(t, 0.9, s.Min)
		assert.True(t, s.Cached)
		assert.False(t, s.Stale)

		labels, values := s.Series()
		assert.Equal(t, []string{"2026-01-01", "2026-01-02", "2026-01-03"}, labels)
		assert.Equal(t, []float64{1.0, 1.2, 0.9}, values)
	})

	t.Run("unsupported symbol", func(t *testing.T) {
		for _, sym := range []string{"", "USD", "EURO", "E1R"} {
			_, err := svc.FetchTrend(ctx, sym, 30)
			assert.ErrorIs(t, err, models.ErrUnsupportedSymbol, "symbol=%q", sym)
		}
	})

	t.Run("source failure is wrapped", func(t *testing.T) {
		source.EXPECT().FetchTrend(ctx, models.Code("MXN"), 30).Return(nil, &models.NetworkError{Status: 502, Detail: "bad gateway"})

		_, err := svc.FetchTrend(ctx, "MXN", 30)
		assert.ErrorIs(t, err, models.ErrTrendFetchFailed)
		assert.ErrorIs(t, err, models.ErrNetworkFailure)
		var netErr *models.NetworkError
		require.ErrorAs(t, err, &netErr)
		assert.Equal(t, 502, netErr.Status)
	})

	t.Run("too few points", func(t *testing.T) {
		source.EXPECT().FetchTrend(ctx, models.Code("CLP"), 2).Return(&models.Timeseries{Points: points(900)}, nil)

		_, err := svc.FetchTrend(ctx, "CLP", 2)
		assert.ErrorIs(t, err, models.ErrEmptySeries)
	})
}

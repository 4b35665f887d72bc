package uistate

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

type fakeConverter struct {
	res     *models.ConversionResult
	err     error
	gate    chan struct{}
	entered chan struct{}
}

func (f *fakeConverter) Convert(ctx context.Context, _ models.ConversionRequest) (*models.ConversionResult, error) {
	if f.entered != nil {
		close(f.entered)
	}
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.res, f.err
}

type fakeTrends struct {
	summary *models.TimeseriesSummary
	err     error
}

func (f *fakeTrends) FetchTrend(context.Context, string, int) (*models.TimeseriesSummary, error) {
	return f.summary, f.err
}

type recordingSink struct {
	labels []string
	values []float64
	err    error
}

func (s *recordingSink) Render(labels []string, values []float64) error {
	s.labels, s.values = labels, values
	return s.err
}

func TestController_RequestConversion(t *testing.T) {
	asOf := time.Date(2026, 1, 19, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		conv     *fakeConverter
		wantErr  bool
		wantView View
	}{
		{
			name: "success",
			conv: &fakeConverter{res: &models.ConversionResult{
				Amount: 100, From: "EUR", To: "JPY", Result: 16250, Base: "USD",
				Rate: 162.5, AsOf: &asOf, FxDate: "2026-01-19", Cached: true,
			}},
			wantView: View{
				Status:         Ok,
				Value:          "16250.00 JPY",
				Hint:           "100.00 EUR → JPY · 1 EUR = 162.50 JPY · base USD · as of 2026-01-19 · cached",
				TriggerEnabled: true,
			},
		},
		{
			name: "identity",
			conv: &fakeConverter{res: &models.ConversionResult{Amount: 5, From: "USD", To: "USD", Result: 5, Base: "USD"}},
			wantView: View{
				Status:         Ok,
				Value:          "5.0000 USD",
				Hint:           "5.0000 USD → USD (same currency)",
				TriggerEnabled: true,
			},
		},
		{
			name:    "validation failure",
			conv:    &fakeConverter{err: models.ErrInvalidAmount},
			wantErr: true,
			wantView: View{
				Status:         Err,
				Value:          "—",
				Hint:           models.ErrInvalidAmount.Error(),
				TriggerEnabled: true,
			},
		},
		{
			name:    "network failure",
			conv:    &fakeConverter{err: &models.NetworkError{Status: 502, Detail: "upstream down"}},
			wantErr: true,
			wantView: View{
				Status:         Err,
				Value:          "Error",
				Hint:           "upstream down",
				TriggerEnabled: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(tt.conv, nil, nil, time.Second)
			view, err := c.RequestConversion(context.Background(), models.ConversionRequest{Amount: 1, From: "A", To: "B"})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantView, view)
			assert.Equal(t, tt.wantView, c.ConversionView())
		})
	}
}

func TestController_RequestConversion_InFlightGuard(t *testing.T) {
	conv := &fakeConverter{
		res:     &models.ConversionResult{Amount: 1, From: "USD", To: "EUR", Result: 0.92, Rate: 0.92},
		gate:    make(chan struct{}),
		entered: make(chan struct{}),
	}
	c := NewController(conv, nil, nil, time.Second)

	done := make(chan View)
	go func() {
		view, _ := c.RequestConversion(context.Background(), models.ConversionRequest{Amount: 1, From: "USD", To: "EUR"})
		done <- view
	}()

	<-conv.entered
	pending := c.ConversionView()
	assert.Equal(t, Loading, pending.Status)
	assert.Equal(t, "…", pending.Value)
	assert.False(t, pending.TriggerEnabled)

	_, err := c.RequestConversion(context.Background(), models.ConversionRequest{Amount: 1, From: "USD", To: "EUR"})
	assert.ErrorIs(t, err, ErrBusy)

	close(conv.gate)
	view := <-done
	assert.Equal(t, Ok, view.Status)
	assert.Equal(t, "0.920000 EUR", view.Value)
	assert.True(t, view.TriggerEnabled)
}

func TestController_RequestConversion_Timeout(t *testing.T) {
	conv := &fakeConverter{gate: make(chan struct{})}
	c := NewController(conv, nil, nil, 20*time.Millisecond)

	view, err := c.RequestConversion(context.Background(), models.ConversionRequest{Amount: 1, From: "USD", To: "EUR"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, Err, view.Status)
	assert.Equal(t, "Error", view.Value)
	assert.Equal(t, "request timed out after 20ms", view.Hint)
	assert.True(t, view.TriggerEnabled)
}

func TestController_RequestTrend(t *testing.T) {
	start := civil.Date{Year: 2026, Month: 1, Day: 1}
	summary := &models.TimeseriesSummary{
		Symbol: "EUR",
		Points: []models.TimeseriesPoint{
			{Date: start, Rate: 1.0},
			{Date: start.AddDays(1), Rate: 1.2},
			{Date: start.AddDays(2), Rate: 0.9},
		},
		Min: 0.9, Max: 1.2, Last: 0.9, Stale: true, Cached: true,
	}

	t.Run("success renders chart", func(t *testing.T) {
		sink := &recordingSink{}
		c := NewController(nil, &fakeTrends{summary: summary}, sink, time.Second)

		view, err := c.RequestTrend(context.Background(), "EUR", 3)
		require.NoError(t, err)
		assert.Equal(t, Ok, view.Status)
		assert.Equal(t, "0.900000", view.Value)
		assert.Equal(t, "EUR, 3 points · min 0.900000 · max 1.2000 · last 0.900000 · stale cache", view.Hint)
		assert.Equal(t, []string{"2026-01-01", "2026-01-02", "2026-01-03"}, sink.labels)
		assert.Equal(t, []float64{1.0, 1.2, 0.9}, sink.values)
	})

	t.Run("empty series", func(t *testing.T) {
		c := NewController(nil, &fakeTrends{err: models.ErrEmptySeries}, &recordingSink{}, time.Second)
		view, err := c.RequestTrend(context.Background(), "EUR", 3)
		assert.ErrorIs(t, err, models.ErrEmptySeries)
		assert.Equal(t, "—", view.Value)
		assert.True(t, view.TriggerEnabled)
	})

	t.Run("fetch failure", func(t *testing.T) {
		fetchErr := errors.Join(models.ErrTrendFetchFailed, &models.NetworkError{Status: 500})
		c := NewController(nil, &fakeTrends{err: fetchErr}, &recordingSink{}, time.Second)
		view, err := c.RequestTrend(context.Background(), "EUR", 3)
		assert.ErrorIs(t, err, models.ErrTrendFetchFailed)
		assert.Equal(t, "Error", view.Value)
		assert.Equal(t, Err, view.Status)
	})

	t.Run("render failure", func(t *testing.T) {
		c := NewController(nil, &fakeTrends{summary: summary}, &recordingSink{err: errors.New("no terminal")}, time.Second)
		view, err := c.RequestTrend(context.Background(), "EUR", 3)
		assert.Error(t, err)
		assert.Equal(t, "Error", view.Value)
		assert.Equal(t, "render chart: no terminal", view.Hint)
	})
}

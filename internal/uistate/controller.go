package uistate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/format"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

const (
	// DefaultActionTimeout bounds one user action end to end.
	DefaultActionTimeout = 20 * time.Second

	pendingValue    = "…"
	validationValue = "—"
	failureValue    = "Error"
)

// Converter converts one request.
type Converter interface {
	Convert(ctx context.Context, req models.ConversionRequest) (*models.ConversionResult, error)
}

// TrendFetcher returns a summarized trend.
type TrendFetcher interface {
	FetchTrend(ctx context.Context, symbol string, days int) (*models.TimeseriesSummary, error)
}

// ChartSink renders labeled numeric points.
type ChartSink interface {
	Render(labels []string, values []float64) error
}

// Controller runs the convert and trend actions against their result areas.
type Controller struct {
	converter Converter
	trends    TrendFetcher
	sink      ChartSink
	timeout   time.Duration

	conversion *Machine
	trend      *Machine
}

// NewController wires the actions. A non-positive timeout selects
// DefaultActionTimeout.
func NewController(converter Converter, trends TrendFetcher, sink ChartSink, timeout time.Duration) *Controller {
	if timeout <= 0 {
		timeout = DefaultActionTimeout
	}
	return &Controller{
		converter:  converter,
		trends:     trends,
		sink:       sink,
		timeout:    timeout,
		conversion: NewMachine(),
		trend:      NewMachine(),
	}
}

// ConversionView returns the conversion area.
func (c *Controller) ConversionView() View { return c.conversion.Snapshot() }

// TrendView returns the trend area.
func (c *Controller) TrendView() View { return c.trend.Snapshot() }

// RequestConversion runs one conversion and returns the resulting view.
func (c *Controller) RequestConversion(ctx context.Context, req models.ConversionRequest) (View, error) {
	if err := c.conversion.Start(pendingValue, "Converting..."); err != nil {
		return c.conversion.Snapshot(), err
	}
	defer c.conversion.Release()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.converter.Convert(ctx, req)
	if err != nil {
		c.fail(ctx, c.conversion, err)
		return c.conversion.Snapshot(), err
	}

	c.conversion.Succeed(format.Number(res.Result)+" "+res.To.String(), conversionHint(res))
	return c.conversion.Snapshot(), nil
}

// RequestTrend fetches a trend, renders it and returns the resulting view.
func (c *Controller) RequestTrend(ctx context.Context, symbol string, days int) (View, error) {
	if err := c.trend.Start(pendingValue, "Loading trend..."); err != nil {
		return c.trend.Snapshot(), err
	}
	defer c.trend.Release()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	summary, err := c.trends.FetchTrend(ctx, symbol, days)
	if err == nil && c.sink != nil {
		labels, values := summary.Series()
		if renderErr := c.sink.Render(labels, values); renderErr != nil {
			err = fmt.Errorf("render chart: %w", renderErr)
		}
	}
	if err != nil {
		c.fail(ctx, c.trend, err)
		return c.trend.Snapshot(), err
	}

	c.trend.Succeed(format.Number(summary.Last), trendHint(summary))
	return c.trend.Snapshot(), nil
}

func (c *Controller) fail(ctx context.Context, m *Machine, err error) {
	if models.IsValidationError(err) || errors.Is(err, models.ErrEmptySeries) {
		m.Fail(validationValue, err.Error())
		return
	}

	hint := err.Error()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		hint = fmt.Sprintf("request timed out after %s", c.timeout)
	}
	logger.Log.Errorw("action failed", "error", err)
	m.Fail(failureValue, hint)
}

func conversionHint(res *models.ConversionResult) string {
	if res.Identity() {
		return fmt.Sprintf("%s %s → %s (same currency)", format.Number(res.Amount), res.From, res.To)
	}

	parts := []string{
		fmt.Sprintf("%s %s → %s", format.Number(res.Amount), res.From, res.To),
		fmt.Sprintf("1 %s = %s %s", res.From, format.Number(res.Rate), res.To),
	}
	if res.Base != "" {
		parts = append(parts, "base "+res.Base.String())
	}
	switch {
	case res.FxDate != "":
		parts = append(parts, "as of "+res.FxDate)
	case res.AsOf != nil:
		parts = append(parts, "as of "+res.AsOf.UTC().Format(time.RFC3339))
	}
	if res.Cached {
		parts = append(parts, "cached")
	}
	return strings.Join(parts, " · ")
}

func trendHint(s *models.TimeseriesSummary) string {
	parts := []string{
		fmt.Sprintf("%s, %d points", s.Symbol, len(s.Points)),
		"min " + format.Number(s.Min),
		"max " + format.Number(s.Max),
		"last " + format.Number(s.Last),
	}
	if s.Stale {
		parts = append(parts, "stale cache")
	} else if s.Cached {
		parts = append(parts, "cached")
	}
	return strings.Join(parts, " · ")
}

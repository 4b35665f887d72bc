package facades

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"cloud.google.com/go/civil"
	"github.com/tidwall/gjson"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// TimeseriesHTTPFacade reads a trend from GET {api}/timeseries.
type TimeseriesHTTPFacade struct {
	getter jsonGetter
}

// NewTimeseriesHTTPFacade creates a trend source facade.
func NewTimeseriesHTTPFacade(baseURL string, timeout time.Duration) *TimeseriesHTTPFacade {
	return &TimeseriesHTTPFacade{getter: newJSONGetter(baseURL, timeout)}
}

// FetchTrend returns the points exactly in the order the server sent them.
func (f *TimeseriesHTTPFacade) FetchTrend(ctx context.Context, symbol models.Code, days int) (*models.Timeseries, error) {
	query := url.Values{}
	query.Set("symbol", symbol.String())
	query.Set("days", strconv.Itoa(days))

	body, err := f.getter.get(ctx, "/timeseries", query)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, &models.ParseError{Detail: "/timeseries response is not JSON"}
	}

	doc := gjson.ParseBytes(body)
	pts := doc.Get("points")
	if !pts.IsArray() {
		return nil, &models.ParseError{Detail: "/timeseries response has no points"}
	}

	series := &models.Timeseries{
		Base:   models.NormalizeCode(doc.Get("base").String()),
		Symbol: symbol,
		Meta: models.SeriesMeta{
			Cached: doc.Get("meta.cached").Bool(),
			Stale:  doc.Get("meta.stale").Bool(),
			Source: doc.Get("meta.source").String(),
		},
	}

	var parseErr error
	pts.ForEach(func(_, p gjson.Result) bool {
		date, err := civil.ParseDate(p.Get("date").String())
		if err != nil {
			parseErr = &models.ParseError{Detail: "invalid point date", Err: err}
			return false
		}
		rate := p.Get("rate")
		if !rate.Exists() {
			rate = p.Get("value")
		}
		if rate.Type != gjson.Number {
			parseErr = &models.ParseError{Detail: fmt.Sprintf("point %s has no numeric rate", date)}
			return false
		}
		series.Points = append(series.Points, models.TimeseriesPoint{Date: date, Rate: rate.Float()})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return series, nil
}

package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// FrankfurterFacade is the upstream FX provider used by the gateway.
type FrankfurterFacade struct {
	latest  jsonGetter
	history jsonGetter
	limiter *rate.Limiter
	now     func() time.Time
}

// NewFrankfurterFacade creates the upstream facade. latestURL is the full
// latest-rates endpoint, historyURL the root that date ranges hang off.
// A non-positive rps disables client-side rate limiting.
func NewFrankfurterFacade(latestURL, historyURL string, timeout time.Duration, rps float64) *FrankfurterFacade {
	f := &FrankfurterFacade{
		latest:  newJSONGetter(latestURL, timeout),
		history: newJSONGetter(historyURL, timeout),
		now:     time.Now,
	}
	if rps > 0 {
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
	return f
}

// SourceName identifies the latest-rates endpoint in response metadata.
func (f *FrankfurterFacade) SourceName() string {
	return hostPath(f.latest.baseURL)
}

// HistorySourceName identifies the range endpoint in response metadata.
func (f *FrankfurterFacade) HistorySourceName() string {
	return hostPath(f.history.baseURL)
}

func (f *FrankfurterFacade) get(ctx context.Context, getter jsonGetter, path string, query url.Values) ([]byte, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(err, "rate limiter")
		}
	}
	return getter.get(ctx, path, query)
}

// Latest fetches the latest table for base. When the symbol-filtered
// request fails the full table is requested and filtered locally.
func (f *FrankfurterFacade) Latest(ctx context.Context, base models.Code, symbols []models.Code) (*models.RateTable, error) {
	query := url.Values{}
	query.Set("base", base.String())
	if len(symbols) > 0 {
		query.Set("symbols", joinCodes(symbols))
	}

	body, err := f.get(ctx, f.latest, "", query)
	if err != nil && len(symbols) > 0 {
		logger.Log.Warnw("latest rates with symbols failed, retrying without symbols",
			"base", base, "error", err)
		query.Del("symbols")
		body, err = f.get(ctx, f.latest, "", query)
	}
	if err != nil {
		return nil, err
	}

	var p ratesPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, &models.ParseError{Detail: "decode upstream latest rates", Err: err}
	}
	if p.Rates == nil {
		return nil, &models.ParseError{Detail: "upstream latest rates missing"}
	}

	rates := p.Rates
	if len(symbols) > 0 {
		rates = make(map[string]float64, len(symbols))
		for _, code := range symbols {
			if v, ok := p.Rates[code.String()]; ok {
				rates[code.String()] = v
			}
		}
	}

	tableBase := models.NormalizeCode(p.Base)
	if tableBase == "" {
		tableBase = base
	}
	return models.NewRateTable(tableBase, rates, f.now(), p.Date)
}

// Range returns daily rates of symbol against base between start and end
// inclusive, ascending by date.
func (f *FrankfurterFacade) Range(ctx context.Context, base, symbol models.Code, start, end civil.Date) ([]models.TimeseriesPoint, error) {
	path := fmt.Sprintf("/%s..%s", start, end)

	query := url.Values{}
	query.Set("from", base.String())
	query.Set("to", symbol.String())

	body, err := f.get(ctx, f.history, path, query)
	if err != nil {
		logger.Log.Warnw("range with from/to failed, retrying with base/symbols",
			"base", base, "symbol", symbol, "error", err)
		query = url.Values{}
		query.Set("base", base.String())
		query.Set("symbols", symbol.String())
		body, err = f.get(ctx, f.history, path, query)
	}
	if err != nil {
		return nil, err
	}

	return parseRange(body, symbol)
}

func parseRange(body []byte, symbol models.Code) ([]models.TimeseriesPoint, error) {
	if !gjson.ValidBytes(body) {
		return nil, &models.ParseError{Detail: "upstream range is not JSON"}
	}
	rates := gjson.GetBytes(body, "rates")
	if !rates.IsObject() {
		return nil, &models.ParseError{Detail: "upstream range has no rates"}
	}

	var (
		points   []models.TimeseriesPoint
		parseErr error
	)
	rates.ForEach(func(key, day gjson.Result) bool {
		v := day.Get(symbol.String())
		if v.Type != gjson.Number {
			return true
		}
		date, err := civil.ParseDate(key.String())
		if err != nil {
			parseErr = &models.ParseError{Detail: "invalid range date", Err: err}
			return false
		}
		points = append(points, models.TimeseriesPoint{Date: date, Rate: v.Float()})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points, nil
}

func joinCodes(codes []models.Code) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

func hostPath(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Host + u.Path
}

package facades

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// RatesHTTPFacade fetches the base rate table from GET {api}/rates.
type RatesHTTPFacade struct {
	getter      jsonGetter
	defaultBase models.Code
	now         func() time.Time
}

// NewRatesHTTPFacade creates a facade; defaultBase is assumed when the
// payload omits its base.
func NewRatesHTTPFacade(baseURL string, defaultBase models.Code, timeout time.Duration) *RatesHTTPFacade {
	return &RatesHTTPFacade{
		getter:      newJSONGetter(baseURL, timeout),
		defaultBase: defaultBase,
		now:         time.Now,
	}
}

type ratesPayload struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// FetchRates implements repositories.RateSource.
func (f *RatesHTTPFacade) FetchRates(ctx context.Context) (*models.RateTable, error) {
	body, err := f.getter.get(ctx, "/rates", nil)
	if err != nil {
		return nil, err
	}

	var p ratesPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, &models.ParseError{Detail: "decode /rates response", Err: err}
	}
	if p.Rates == nil {
		return nil, &models.ParseError{Detail: "/rates response has no rates"}
	}

	base := models.NormalizeCode(p.Base)
	if base == "" {
		base = f.defaultBase
	}
	return models.NewRateTable(base, p.Rates, f.now(), p.Date)
}

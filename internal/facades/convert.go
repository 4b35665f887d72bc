package facades

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// ConvertHTTPFacade delegates conversion arithmetic to GET {api}/convert.
type ConvertHTTPFacade struct {
	getter jsonGetter
	now    func() time.Time
}

// NewConvertHTTPFacade creates a server-side conversion facade.
func NewConvertHTTPFacade(baseURL string, timeout time.Duration) *ConvertHTTPFacade {
	return &ConvertHTTPFacade{
		getter: newJSONGetter(baseURL, timeout),
		now:    time.Now,
	}
}

// Convert asks the server to convert amount from one currency to another.
func (f *ConvertHTTPFacade) Convert(ctx context.Context, amount float64, from, to models.Code) (*models.ConversionResult, error) {
	query := url.Values{}
	query.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))
	query.Set("from", from.String())
	query.Set("to", to.String())

	body, err := f.getter.get(ctx, "/convert", query)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, &models.ParseError{Detail: "/convert response is not JSON"}
	}

	res := gjson.GetManyBytes(body, "result", "base", "fx_rate", "fx_date", "meta.cached", "fetched_at")
	if res[0].Type != gjson.Number {
		return nil, &models.ParseError{Detail: "/convert response has no numeric result"}
	}

	asOf := f.now()
	if res[5].Exists() {
		if t, err := time.Parse(time.RFC3339Nano, res[5].String()); err == nil {
			asOf = t
		}
	}
	return &models.ConversionResult{
		Amount: amount,
		From:   from,
		To:     to,
		Result: res[0].Float(),
		Base:   models.NormalizeCode(res[1].String()),
		Rate:   res[2].Float(),
		FxDate: res[3].String(),
		AsOf:   &asOf,
		Cached: res[4].Bool(),
	}, nil
}

package services

import (
	"context"
	"math"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=converter.go -destination=mock_converter.go -package=services

// RateTableGetter returns the current base rate table, reporting whether it
// was served from cache.
type RateTableGetter interface {
	Get(ctx context.Context, ttl time.Duration) (*models.RateTable, bool, error)
}

// DirectConversionSource converts on the server side.
type DirectConversionSource interface {
	Convert(ctx context.Context, amount float64, from, to models.Code) (*models.ConversionResult, error)
}

// Converter turns a conversion request into a result. It either pivots
// through a cached rate table or delegates to a direct source, never both.
type Converter struct {
	tables RateTableGetter
	ttl    time.Duration
	direct DirectConversionSource
}

// NewTableConverter converts locally through the base rate table.
func NewTableConverter(tables RateTableGetter, ttl time.Duration) *Converter {
	return &Converter{tables: tables, ttl: ttl}
}

// NewDirectConverter delegates the arithmetic to src.
func NewDirectConverter(src DirectConversionSource) *Converter {
	return &Converter{direct: src}
}

// Convert validates req and converts req.Amount from req.From to req.To.
func (c *Converter) Convert(ctx context.Context, req models.ConversionRequest) (*models.ConversionResult, error) {
	if math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) || req.Amount <= 0 {
		return nil, models.ErrInvalidAmount
	}

	from := models.NormalizeCode(req.From)
	to := models.NormalizeCode(req.To)
	if from == "" || to == "" {
		return nil, models.ErrMissingCurrency
	}

	if from == to {
		return &models.ConversionResult{
			Amount: req.Amount,
			From:   from,
			To:     to,
			Result: req.Amount,
			Base:   from,
			Rate:   1,
		}, nil
	}

	if c.direct != nil {
		res, err := c.direct.Convert(ctx, req.Amount, from, to)
		if err != nil {
			logger.Log.Errorw("direct conversion failed", "from", from, "to", to, "error", err)
			return nil, err
		}
		return res, nil
	}

	table, cached, err := c.tables.Get(ctx, c.ttl)
	if err != nil {
		logger.Log.Errorw("failed to get rate table", "error", err)
		return nil, err
	}

	rateFrom, ok := table.Rate(from)
	if !ok {
		return nil, &models.UnsupportedCurrencyError{Code: from}
	}
	rateTo, ok := table.Rate(to)
	if !ok {
		return nil, &models.UnsupportedCurrencyError{Code: to}
	}

	amountInBase := req.Amount / rateFrom
	asOf := table.FetchedAt

	return &models.ConversionResult{
		Amount: req.Amount,
		From:   from,
		To:     to,
		Result: amountInBase * rateTo,
		Base:   table.Base,
		AsOf:   &asOf,
		FxDate: table.Date,
		Rate:   rateTo / rateFrom,
		Cached: cached,
	}, nil
}

package facades

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
)

// ExchangerGRPCFacade reads rates from the exchanger gRPC service.
// The exchanger quotes every rate against its own base currency.
type ExchangerGRPCFacade struct {
	client pb.ExchangeServiceClient
	base   models.Code
	now    func() time.Time
}

// NewExchangerGRPCFacade creates a facade over an exchanger client whose
// rates are quoted against base.
func NewExchangerGRPCFacade(client pb.ExchangeServiceClient, base models.Code) *ExchangerGRPCFacade {
	return &ExchangerGRPCFacade{client: client, base: base, now: time.Now}
}

// Latest returns the exchanger table re-expressed against base, filtered
// to symbols when any are given.
func (f *ExchangerGRPCFacade) Latest(ctx context.Context, base models.Code, symbols []models.Code) (*models.RateTable, error) {
	resp, err := f.client.GetExchangeRates(ctx, &pb.Empty{})
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates via gRPC", "error", err)
		return nil, &models.NetworkError{Detail: errors.Wrap(err, "exchanger").Error()}
	}

	raw := make(map[models.Code]float64, len(resp.Rates)+1)
	for code, rate := range resp.Rates {
		raw[models.NormalizeCode(code)] = float64(rate)
	}
	raw[f.base] = 1

	pivot, ok := raw[base]
	if !ok || pivot <= 0 {
		return nil, &models.UnsupportedCurrencyError{Code: base}
	}

	rates := make(map[string]float64, len(raw))
	if len(symbols) > 0 {
		for _, code := range symbols {
			if rate, ok := raw[code]; ok {
				rates[code.String()] = rate / pivot
			}
		}
	} else {
		for code, rate := range raw {
			rates[code.String()] = rate / pivot
		}
	}

	now := f.now()
	return models.NewRateTable(base, rates, now, now.UTC().Format(time.DateOnly))
}

// FetchRates implements repositories.RateSource against the exchanger base.
func (f *ExchangerGRPCFacade) FetchRates(ctx context.Context) (*models.RateTable, error) {
	return f.Latest(ctx, f.base, nil)
}

// Convert asks the exchanger for the direct pair rate.
func (f *ExchangerGRPCFacade) Convert(ctx context.Context, amount float64, from, to models.Code) (*models.ConversionResult, error) {
	req := &pb.CurrencyRequest{
		FromCurrency: from.String(),
		ToCurrency:   to.String(),
	}

	resp, err := f.client.GetExchangeRateForCurrency(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rate for currency via gRPC",
			"from", from, "to", to, "error", err)
		return nil, &models.NetworkError{Detail: errors.Wrap(err, "exchanger").Error()}
	}
	if resp.Rate <= 0 {
		return nil, &models.UnsupportedCurrencyError{Code: to}
	}

	rate := float64(resp.Rate)
	asOf := f.now()
	return &models.ConversionResult{
		Amount: amount,
		From:   from,
		To:     to,
		Result: amount * rate,
		Base:   f.base,
		Rate:   rate,
		AsOf:   &asOf,
	}, nil
}

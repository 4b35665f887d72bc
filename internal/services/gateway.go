package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=gateway.go -destination=mock_gateway.go -package=services

// DefaultCacheTTL is how long an upstream payload is served without refetching.
const DefaultCacheTTL = 600 * time.Second

const staleSource = "cache_fallback"

// UpstreamRates returns the latest rates of symbols against base.
type UpstreamRates interface {
	Latest(ctx context.Context, base models.Code, symbols []models.Code) (*models.RateTable, error)
}

// UpstreamHistory returns daily rates of symbol between start and end.
type UpstreamHistory interface {
	Range(ctx context.Context, base, symbol models.Code, start, end civil.Date) ([]models.TimeseriesPoint, error)
}

// PayloadCache stores serialized responses by key.
type PayloadCache interface {
	Get(ctx context.Context, key string) (*models.CachedPayload, error)
	Set(ctx context.Context, key string, data []byte) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// GatewayConfig holds the static settings of the gateway.
type GatewayConfig struct {
	Base          models.Code
	Currencies    []models.Currency
	CacheTTL      time.Duration
	LatestSource  string
	HistorySource string
}

// GatewayService serves rates, conversions and timeseries from an upstream
// provider through a keyed payload cache with stale fallback.
type GatewayService struct {
	cfg         GatewayConfig
	latest      UpstreamRates
	history     UpstreamHistory
	cache       PayloadCache
	kafkaWriter KafkaWriter
	metrics     *metrics.Metrics
	direct      *Converter
	now         func() time.Time
}

// GatewayOption customizes a GatewayService.
type GatewayOption func(*GatewayService)

// WithDirectConversion converts through src instead of the latest rate table.
func WithDirectConversion(src DirectConversionSource) GatewayOption {
	return func(s *GatewayService) {
		s.direct = NewDirectConverter(src)
	}
}

// WithGatewayClock overrides the time source.
func WithGatewayClock(now func() time.Time) GatewayOption {
	return func(s *GatewayService) {
		s.now = now
	}
}

// NewGatewayService creates a gateway. kafkaWriter and m may be nil.
func NewGatewayService(
	cfg GatewayConfig,
	latest UpstreamRates,
	history UpstreamHistory,
	cache PayloadCache,
	kafkaWriter KafkaWriter,
	m *metrics.Metrics,
	opts ...GatewayOption,
) *GatewayService {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	s := &GatewayService{
		cfg:         cfg,
		latest:      latest,
		history:     history,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		metrics:     m,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Base returns the pivot currency.
func (s *GatewayService) Base() models.Code {
	return s.cfg.Base
}

// Currencies returns the configured currency list.
func (s *GatewayService) Currencies() *models.CurrenciesResponse {
	return &models.CurrenciesResponse{Base: s.cfg.Base, Currencies: s.cfg.Currencies}
}

func (s *GatewayService) symbols() []models.Code {
	out := make([]models.Code, 0, len(s.cfg.Currencies))
	for _, c := range s.cfg.Currencies {
		if c.Currency != s.cfg.Base {
			out = append(out, c.Currency)
		}
	}
	return out
}

// LatestRates returns the latest rates for the configured currencies.
func (s *GatewayService) LatestRates(ctx context.Context) (*models.RatesResponse, error) {
	resp, _, err := s.latestFor(ctx, s.symbols())
	return resp, err
}

// pairSymbols returns the sorted, distinct non-base codes of a conversion.
func (s *GatewayService) pairSymbols(req models.ConversionRequest) []models.Code {
	out := make([]models.Code, 0, 2)
	for _, raw := range []string{req.From, req.To} {
		code := models.NormalizeCode(raw)
		if code == "" || code == s.cfg.Base {
			continue
		}
		if len(out) == 1 && out[0] == code {
			continue
		}
		out = append(out, code)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// latestFor reads the latest rates of symbols through the payload cache and
// returns them with the time they were fetched from upstream.
func (s *GatewayService) latestFor(ctx context.Context, symbols []models.Code) (*models.RatesResponse, time.Time, error) {
	parts := make([]string, len(symbols))
	for i, c := range symbols {
		parts[i] = c.String()
	}
	key := fmt.Sprintf("latest:%s:%s", s.cfg.Base, strings.Join(parts, ","))

	return readThrough(ctx, s, "latest", key, s.cfg.LatestSource, func(ctx context.Context) (*models.RatesResponse, error) {
		table, err := s.latest.Latest(ctx, s.cfg.Base, symbols)
		if err != nil {
			return nil, err
		}
		s.publishSnapshot(ctx, table)
		return &models.RatesResponse{Base: table.Base, Date: table.Date, Rates: table.Rates}, nil
	})
}

// Convert converts through the latest rates of the requested pair, or
// directly when configured with WithDirectConversion.
func (s *GatewayService) Convert(ctx context.Context, req models.ConversionRequest) (*models.ConvertResponse, error) {
	converter := s.direct
	if converter == nil {
		converter = NewTableConverter(gatewayRateTables{s: s, symbols: s.pairSymbols(req)}, s.cfg.CacheTTL)
	}

	res, err := converter.Convert(ctx, req)
	if err != nil {
		outcome := "error"
		if models.IsValidationError(err) {
			outcome = "rejected"
		}
		s.metrics.ObserveConversion(outcome)
		return nil, err
	}
	s.metrics.ObserveConversion("ok")

	return &models.ConvertResponse{
		Base:      res.Base,
		From:      res.From,
		To:        res.To,
		Amount:    res.Amount,
		Result:    res.Result,
		FxRate:    res.Rate,
		FxDate:    res.FxDate,
		FetchedAt: res.AsOf,
		Meta: models.SeriesMeta{
			Cached:          res.Cached,
			CacheTTLSeconds: int(s.cfg.CacheTTL.Seconds()),
			Source:          s.cfg.LatestSource,
		},
	}, nil
}

// Timeseries returns the daily rates of symbol over the last days.
func (s *GatewayService) Timeseries(ctx context.Context, symbol models.Code, days int) (*models.TimeseriesResponse, error) {
	if days < MinTrendDays || days > MaxTrendDays {
		return nil, models.ErrInvalidDays
	}
	if !symbol.Valid() || symbol == s.cfg.Base {
		return nil, &models.UnsupportedSymbolError{Symbol: symbol}
	}
	s.metrics.ObserveTimeseries()

	end := civil.DateOf(s.now().UTC())
	start := end.AddDays(-days)
	key := fmt.Sprintf("ts:%s:%s:%s:%s", s.cfg.Base, symbol, start, end)

	resp, _, err := readThrough(ctx, s, "timeseries", key, s.cfg.HistorySource, func(ctx context.Context) (*models.TimeseriesResponse, error) {
		points, err := s.history.Range(ctx, s.cfg.Base, symbol, start, end)
		if err != nil {
			return nil, err
		}
		if points == nil {
			points = []models.TimeseriesPoint{}
		}
		return &models.TimeseriesResponse{Base: s.cfg.Base, Symbol: symbol, Days: days, Points: points}, nil
	})
	return resp, err
}

// readThrough serves key from the payload cache while fresh, refetches it
// otherwise, and falls back to the stale payload when the refetch fails.
// The returned time is when the served payload left the upstream.
func readThrough[T any, PT interface {
	*T
	SetMeta(models.SeriesMeta)
}](ctx context.Context, s *GatewayService, kind, key, source string, fetch func(context.Context) (PT, error)) (PT, time.Time, error) {
	ttlSeconds := int(s.cfg.CacheTTL.Seconds())

	entry, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, models.ErrCacheMiss) {
			logger.Log.Warnw("payload cache read failed", "key", key, "error", err)
		}
		entry = nil
	}

	if entry != nil && entry.Fresh(s.now(), s.cfg.CacheTTL) {
		var out T
		if err := json.Unmarshal(entry.Data, &out); err == nil {
			s.metrics.ObserveCacheLookup(kind, "hit")
			PT(&out).SetMeta(models.SeriesMeta{Cached: true, CacheTTLSeconds: ttlSeconds, Source: source})
			return PT(&out), entry.StoredAt, nil
		}
		logger.Log.Warnw("cached payload is corrupt, refetching", "key", key)
		entry = nil
	}

	fresh, fetchErr := fetch(ctx)
	fetchedAt := s.now()
	s.metrics.ObserveUpstreamFetch(kind, fetchErr)
	if fetchErr != nil {
		logger.Log.Errorw("upstream fetch failed", "kind", kind, "key", key, "error", fetchErr)
		if entry != nil {
			var out T
			if err := json.Unmarshal(entry.Data, &out); err == nil {
				s.metrics.ObserveCacheLookup(kind, "stale")
				PT(&out).SetMeta(models.SeriesMeta{
					Cached: true,
					Stale:  true,
					Source: staleSource,
					Error:  fetchErr.Error(),
				})
				return PT(&out), entry.StoredAt, nil
			}
		}
		s.metrics.ObserveCacheLookup(kind, "miss")
		return nil, time.Time{}, fetchErr
	}
	s.metrics.ObserveCacheLookup(kind, "miss")

	fresh.SetMeta(models.SeriesMeta{Cached: false, CacheTTLSeconds: ttlSeconds, Source: source})
	data, err := json.Marshal(fresh)
	if err != nil {
		logger.Log.Errorw("failed to marshal payload for cache", "key", key, "error", err)
		return fresh, fetchedAt, nil
	}
	if err := s.cache.Set(ctx, key, data); err != nil {
		logger.Log.Warnw("payload cache write failed", "key", key, "error", err)
	}
	return fresh, fetchedAt, nil
}

// publishSnapshot publishes a fresh rate table to Kafka.
func (s *GatewayService) publishSnapshot(ctx context.Context, table *models.RateTable) {
	snapshot := models.RateSnapshot{
		SnapshotID: uuid.NewString(),
		Timestamp:  table.FetchedAt.Unix(),
		Base:       table.Base,
		Date:       table.Date,
		Rates:      table.Rates,
		Source:     s.cfg.LatestSource,
	}

	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "snapshot_id", snapshot.SnapshotID)
		return
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		logger.Log.Errorw("Failed to marshal rate snapshot for Kafka", "snapshot_id", snapshot.SnapshotID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(snapshot.Base),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish rate snapshot to Kafka", "snapshot_id", snapshot.SnapshotID, "error", err)
	} else {
		logger.Log.Infow("Rate snapshot published to Kafka", "snapshot_id", snapshot.SnapshotID, "rates", len(snapshot.Rates))
	}
}

// gatewayRateTables feeds the converter from the cached latest rates of
// one conversion's symbols.
type gatewayRateTables struct {
	s       *GatewayService
	symbols []models.Code
}

func (g gatewayRateTables) Get(ctx context.Context, _ time.Duration) (*models.RateTable, bool, error) {
	resp, fetchedAt, err := g.s.latestFor(ctx, g.symbols)
	if err != nil {
		return nil, false, err
	}

	rates := make(map[string]float64, len(resp.Rates))
	for code, rate := range resp.Rates {
		rates[code.String()] = rate
	}
	table, err := models.NewRateTable(resp.Base, rates, fetchedAt, resp.Date)
	if err != nil {
		return nil, false, err
	}
	return table, resp.Meta.Cached, nil
}

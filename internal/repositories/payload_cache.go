package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

const payloadKeyPrefix = "fx_payload:"

// PayloadCacheRepository keeps upstream payloads in Redis. Entries live for
// the retention period so that stale copies remain available after the
// freshness TTL has passed.
type PayloadCacheRepository struct {
	client    *redis.Client
	retention time.Duration
	now       func() time.Time
}

// NewPayloadCacheRepository creates a Redis-backed payload cache. A zero
// retention keeps entries forever.
func NewPayloadCacheRepository(client *redis.Client, retention time.Duration) *PayloadCacheRepository {
	return &PayloadCacheRepository{
		client:    client,
		retention: retention,
		now:       time.Now,
	}
}

// Get returns the payload stored under key or models.ErrCacheMiss.
func (r *PayloadCacheRepository) Get(ctx context.Context, key string) (*models.CachedPayload, error) {
	k := payloadKeyPrefix + key

	vals, err := r.client.HGetAll(ctx, k).Result()
	if err != nil {
		logger.Log.Errorw("failed to read cached payload", "key", k, "error", err)
		return nil, err
	}
	if len(vals) == 0 {
		logger.Log.Debugw("payload cache miss", "key", k)
		return nil, models.ErrCacheMiss
	}

	storedAt, err := strconv.ParseInt(vals["stored_at"], 10, 64)
	if err != nil {
		logger.Log.Errorw("corrupt cached payload timestamp", "key", k, "value", vals["stored_at"], "error", err)
		return nil, fmt.Errorf("corrupt cached payload %s: %w", k, err)
	}

	logger.Log.Debugw("payload cache hit", "key", k)
	return &models.CachedPayload{
		Data:     []byte(vals["data"]),
		StoredAt: time.UnixMilli(storedAt),
	}, nil
}

// Set stores data under key, replacing any previous entry.
func (r *PayloadCacheRepository) Set(ctx context.Context, key string, data []byte) error {
	k := payloadKeyPrefix + key

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, k, "data", data, "stored_at", r.now().UnixMilli())
		if r.retention > 0 {
			pipe.Expire(ctx, k, r.retention)
		}
		return nil
	})

	logger.Log.Debugw("payload cache set", "key", k, "size", len(data), "error", err)
	return err
}

package models

import (
	"errors"
	"time"
)

// ErrCacheMiss is returned by payload caches when a key is absent.
var ErrCacheMiss = errors.New("payload not found in cache")

// CachedPayload is a raw upstream payload with the time it was stored.
type CachedPayload struct {
	Data     []byte
	StoredAt time.Time
}

// Fresh reports whether the payload is younger than ttl at now.
func (p *CachedPayload) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(p.StoredAt) < ttl
}

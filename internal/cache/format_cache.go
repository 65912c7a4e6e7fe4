// sentiric-phonemask-service/internal/cache/format_cache.go

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/sentiric/sentiric-phonemask-service/internal/phonemask"
)

const DefaultTTL = 5 * time.Minute

// FormatCache stores format results in Redis so that replicas share work for
// repeated keystroke prefixes.
type FormatCache struct {
	redis redis.Cmdable
	ttl   time.Duration
	log   zerolog.Logger
}

func NewFormatCache(client redis.Cmdable, ttl time.Duration, log zerolog.Logger) *FormatCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &FormatCache{redis: client, ttl: ttl, log: log}
}

// Key builds the cache key. The fingerprint covers the country table and the
// formatting options, so a table reload naturally moves to fresh keys.
func Key(fingerprint uint64, raw string) string {
	return fmt.Sprintf("phonemask:format:%016x:%s", fingerprint, raw)
}

// Get returns nil, nil on a cache miss.
func (c *FormatCache) Get(ctx context.Context, fingerprint uint64, raw string) (*phonemask.Result, error) {
	key := Key(fingerprint, raw)

	val, err := c.redis.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		c.log.Error().Err(err).Str("key", key).Msg("Redis read error")
		return nil, err
	}

	var res phonemask.Result
	if err := json.Unmarshal(val, &res); err != nil {
		c.log.Error().Err(err).Str("key", key).Msg("Failed to unmarshal cached result")
		return nil, err
	}

	c.log.Debug().Str("key", key).Msg("✅ Cache HIT")
	return &res, nil
}

// Set stores the result with the configured TTL.
func (c *FormatCache) Set(ctx context.Context, fingerprint uint64, raw string, res phonemask.Result) error {
	key := Key(fingerprint, raw)

	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Error().Err(err).Str("key", key).Msg("Redis write error")
		return err
	}

	c.log.Debug().Str("key", key).Dur("ttl", c.ttl).Msg("✅ Result cached")
	return nil
}

// Invalidate removes one cached result.
func (c *FormatCache) Invalidate(ctx context.Context, fingerprint uint64, raw string) error {
	return c.redis.Del(ctx, Key(fingerprint, raw)).Err()
}

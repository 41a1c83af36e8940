package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
)

const (
	defaultTTL = 10 * time.Minute
	keyPrefix  = "rec:result:"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache returns a result cache. A non-positive ttl uses the default.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// Fingerprint keys a result by the normalized assessment, so raw inputs that
// normalize the same share an entry.
func Fingerprint(a domain.Assessment) (string, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("marshal assessment: %w", err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

func buildKey(fingerprint string) string {
	return keyPrefix + fingerprint
}

// Get returns the cached result, or nil on a miss.
func (c *Cache) Get(ctx context.Context, fingerprint string) (*domain.RecommendationResult, error) {
	key := buildKey(fingerprint)
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get result from cache: %w", err)
	}

	var res domain.RecommendationResult
	if err := json.Unmarshal(val, &res); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result %s: %w", key, err)
	}
	return &res, nil
}

// Set stores a result. Fallback results are not cached.
func (c *Cache) Set(ctx context.Context, fingerprint string, res *domain.RecommendationResult) error {
	if res == nil || res.Fallback {
		return nil
	}
	val, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	if err := c.client.Set(ctx, buildKey(fingerprint), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set result in cache: %w", err)
	}
	return nil
}

// Purge drops every cached result. Called at start-up, since results cached
// by a previous build may not match the current reference tables.
func (c *Cache) Purge(ctx context.Context) (int, error) {
	n := 0
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return n, fmt.Errorf("cache delete %s: %w", iter.Val(), err)
		}
		n++
	}
	return n, iter.Err()
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

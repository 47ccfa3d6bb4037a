package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis-backed cache for rendered airway bill documents. Keys already
// encode the tracking number and the latest event timestamp, so entries
// never need invalidation: stale keys simply stop being asked for and
// age out via TTL.
type RedisDocumentCache struct {
	Client *redis.Client
}

func NewRedisDocumentCache(client *redis.Client) *RedisDocumentCache {
	return &RedisDocumentCache{Client: client}
}

// Return the cached document bytes, or (nil, nil) on a miss.
func (c *RedisDocumentCache) Get(ctx context.Context, key string) ([]byte, error) {
	if c.Client == nil {
		return nil, errors.New("document cache: client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return nil, errors.New("get document cache: key must not be empty")
	}

	doc, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get document cache: key %q: %w", key, err)
	}

	return doc, nil
}

// Store document bytes under key for the given TTL.
func (c *RedisDocumentCache) Put(ctx context.Context, key string, doc []byte, ttl time.Duration) error {
	if c.Client == nil {
		return errors.New("document cache: client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("put document cache: key must not be empty")
	}
	if len(doc) == 0 {
		return errors.New("put document cache: document must not be empty")
	}

	if err := c.Client.Set(ctx, key, doc, ttl).Err(); err != nil {
		return fmt.Errorf("put document cache: key %q: %w", key, err)
	}

	return nil
}

package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/tair/catalog-service/pkg/logger"
)

// DefaultTTL is used when no TTL is configured
const DefaultTTL = 5 * time.Minute

// Config holds cache configuration
type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Cache stores JSON encoded listings in Redis. A nil *Cache or one built
// without an address is valid and behaves as a permanent miss.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis. An empty address disables caching.
func New(cfg Config) (*Cache, error) {
	if cfg.Addr == "" {
		logger.Logger.Info().Msg("Redis address not set, listing cache disabled")
		return &Cache{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Logger.Info().Str("addr", cfg.Addr).Msg("Connected to Redis")
	return NewWithClient(client, cfg.TTL), nil
}

// NewWithClient wraps an existing client
func NewWithClient(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// Enabled reports whether a Redis client is attached
func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// Key builds a namespaced key; variable parts are hashed
func Key(namespace string, parts ...string) string {
	if len(parts) == 0 {
		return namespace
	}
	hash := sha256.Sum256([]byte(strings.Join(parts, ":")))
	return namespace + ":" + hex.EncodeToString(hash[:8])
}

// Get loads key into dest and reports whether it was a hit
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if !c.Enabled() {
		return false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Cache read failed")
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Cache entry corrupt")
		return false
	}

	logger.Debug(ctx).Str("cache_key", key).Msg("Cache hit")
	return true
}

// Set stores value under key. Failures are logged only.
func (c *Cache) Set(ctx context.Context, key string, value any) {
	if !c.Enabled() {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Failed to encode cache entry")
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Failed to cache value")
		return
	}

	logger.Debug(ctx).Str("cache_key", key).Dur("ttl", c.ttl).Int("size", len(data)).Msg("Value cached")
}

// InvalidatePrefix removes every key starting with prefix
func (c *Cache) InvalidatePrefix(ctx context.Context, prefix string) {
	if !c.Enabled() {
		return
	}

	var cursor uint64
	removed := 0
	for {
		keys, next, err := c.client.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			logger.Warn(ctx).Err(err).Str("prefix", prefix).Msg("Cache scan failed")
			return
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				logger.Warn(ctx).Err(err).Str("prefix", prefix).Msg("Cache invalidation failed")
				return
			}
			removed += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	logger.Debug(ctx).Str("prefix", prefix).Int("removed", removed).Msg("Cache invalidated")
}

// Close releases the Redis connection
func (c *Cache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}

package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/mikey/spam-detector/internal/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisCache is a Redis implementation of the CacheRepository interface.
// Each entry is a hash whose key expires together with the entry.
type RedisCache struct {
	client    *redis.Client
	keyPrefix string
	logger    *zap.Logger
}

// NewRedisCache creates a new Redis cache
func NewRedisCache(redisURL, keyPrefix string, logger *zap.Logger) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	// Test connection
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCache{
		client:    client,
		keyPrefix: keyPrefix,
		logger:    logger,
	}, nil
}

func (c *RedisCache) key(fingerprint string) string {
	return c.keyPrefix + ":" + fingerprint
}

// Get retrieves a cached entry for a fingerprint
func (c *RedisCache) Get(ctx context.Context, fingerprint string) (*core.CacheEntry, error) {
	fields, err := c.client.HGetAll(ctx, c.key(fingerprint)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to query cache: %w", err)
	}
	if len(fields) == 0 {
		return nil, ErrNotFound
	}

	entry := &core.CacheEntry{Fingerprint: fingerprint}
	if entry.IsSpam, err = strconv.ParseBool(fields["is_spam"]); err != nil {
		return nil, fmt.Errorf("failed to parse is_spam: %w", err)
	}
	if entry.Matches, err = strconv.Atoi(fields["matches"]); err != nil {
		return nil, fmt.Errorf("failed to parse matches: %w", err)
	}
	lastSeen, err := strconv.ParseInt(fields["last_seen"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse last_seen: %w", err)
	}
	expiresAt, err := strconv.ParseInt(fields["expires_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse expires_at: %w", err)
	}
	entry.LastSeen = time.Unix(0, lastSeen)
	entry.ExpiresAt = time.Unix(0, expiresAt)

	if time.Now().After(entry.ExpiresAt) {
		return nil, ErrNotFound
	}
	return entry, nil
}

// Set stores a cache entry
func (c *RedisCache) Set(ctx context.Context, entry *core.CacheEntry) error {
	key := c.key(entry.Fingerprint)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, map[string]interface{}{
			"is_spam":    strconv.FormatBool(entry.IsSpam),
			"matches":    entry.Matches,
			"last_seen":  entry.LastSeen.UnixNano(),
			"expires_at": entry.ExpiresAt.UnixNano(),
		})
		pipe.PExpireAt(ctx, key, entry.ExpiresAt)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to insert cache entry: %w", err)
	}

	return nil
}

// Delete removes a cache entry
func (c *RedisCache) Delete(ctx context.Context, fingerprint string) error {
	if err := c.client.Del(ctx, c.key(fingerprint)).Err(); err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

// Cleanup is a no-op: Redis expires entries on its own
func (c *RedisCache) Cleanup(ctx context.Context) error {
	c.logger.Debug("Skipping cleanup, Redis expires cache entries")
	return nil
}

// Stop closes the Redis connection
func (c *RedisCache) Stop() {
	if err := c.client.Close(); err != nil {
		c.logger.Error("Failed to close Redis connection", zap.Error(err))
	}
}

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap/zaptest"
)

func testRedisURL() string {
	if url := os.Getenv("SPAM_DETECTOR_TEST_REDIS_URL"); url != "" {
		return url
	}
	return "redis://localhost:6379/1"
}

func isRedisAvailable() bool {
	opt, err := redis.ParseURL(testRedisURL())
	if err != nil {
		return false
	}
	client := redis.NewClient(opt)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return client.Ping(ctx).Err() == nil
}

func TestRedisCache(t *testing.T) {
	// Skip if Redis not available
	if !isRedisAvailable() {
		t.Skip("Redis not available, skipping test")
	}

	repo, err := NewRedisCache(testRedisURL(), "spam-detector:test:"+t.Name(), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("failed to create Redis cache: %v", err)
	}
	defer repo.Stop()

	exerciseRepository(t, repo)
}

func TestNewRedisCacheRejectsBadURL(t *testing.T) {
	if _, err := NewRedisCache("not-a-url", "prefix", zaptest.NewLogger(t)); err == nil {
		t.Error("expected error for invalid Redis URL")
	}
}

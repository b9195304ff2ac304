package cache

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestSQLiteCache(t *testing.T) {
	repo, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"), zaptest.NewLogger(t), 0)
	if err != nil {
		t.Fatalf("failed to create SQLite cache: %v", err)
	}
	defer repo.Stop()

	exerciseRepository(t, repo)
}

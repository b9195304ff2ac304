package core

import (
	"context"
)

// DatasetProvider supplies the labeled training data
type DatasetProvider interface {
	// Ensure writes the built-in dataset if none exists yet
	Ensure() error

	// Load parses the dataset into labeled emails in file order
	Load() ([]LabeledEmail, error)
}

// Tokenizer splits text into lowercased whitespace-separated tokens
type Tokenizer interface {
	Tokenize(text string) []string
}

// CacheRepository defines the interface for caching verdicts
type CacheRepository interface {
	// Get retrieves a cached entry for a message fingerprint
	Get(ctx context.Context, fingerprint string) (*CacheEntry, error)

	// Set stores a cache entry
	Set(ctx context.Context, entry *CacheEntry) error

	// Delete removes a cache entry
	Delete(ctx context.Context, fingerprint string) error

	// Cleanup removes expired entries
	Cleanup(ctx context.Context) error
}

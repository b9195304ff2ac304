package core

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SpamDetectionService is the core service for spam detection
type SpamDetectionService struct {
	classifier   *SpamClassifier
	tokenizer    Tokenizer
	cache        CacheRepository
	logger       *zap.Logger
	cacheEnabled bool
	cacheTTL     time.Duration
}

// NewSpamDetectionService creates a new spam detection service
func NewSpamDetectionService(
	classifier *SpamClassifier,
	tokenizer Tokenizer,
	cache CacheRepository,
	logger *zap.Logger,
	cacheEnabled bool,
	cacheTTL time.Duration,
) *SpamDetectionService {
	return &SpamDetectionService{
		classifier:   classifier,
		tokenizer:    tokenizer,
		cache:        cache,
		logger:       logger,
		cacheEnabled: cacheEnabled && cache != nil,
		cacheTTL:     cacheTTL,
	}
}

// Fingerprint identifies a message by its normalized token sequence, so
// messages differing only in case or spacing share a cache entry
func (s *SpamDetectionService) Fingerprint(message string) string {
	sum := sha256.Sum256([]byte(strings.Join(s.tokenizer.Tokenize(message), " ")))
	return hex.EncodeToString(sum[:])
}

// Check decides whether a message is spam
func (s *SpamDetectionService) Check(ctx context.Context, message string) (*Verdict, error) {
	fingerprint := s.Fingerprint(message)

	// Check cache if enabled
	if s.cacheEnabled {
		entry, err := s.cache.Get(ctx, fingerprint)
		if err == nil {
			verdict := &Verdict{
				ID:        uuid.NewString(),
				IsSpam:    entry.IsSpam,
				Matches:   entry.Matches,
				Source:    SourceCache,
				CheckedAt: time.Now(),
			}
			s.logger.Debug("Cache hit for message",
				zap.String("verdict_id", verdict.ID),
				zap.String("fingerprint", fingerprint))
			return verdict, nil
		}
		s.logger.Debug("Cache miss for message",
			zap.String("fingerprint", fingerprint),
			zap.Error(err))
	}

	isSpam, matches := s.classifier.Evaluate(message)
	verdict := &Verdict{
		ID:        uuid.NewString(),
		IsSpam:    isSpam,
		Matches:   matches,
		Source:    SourceKeywords,
		CheckedAt: time.Now(),
	}

	s.logger.Info("Message checked",
		zap.String("verdict_id", verdict.ID),
		zap.Bool("is_spam", verdict.IsSpam),
		zap.Int("matches", verdict.Matches))

	// Update cache with result if enabled
	if s.cacheEnabled {
		entry := &CacheEntry{
			Fingerprint: fingerprint,
			IsSpam:      verdict.IsSpam,
			Matches:     verdict.Matches,
			LastSeen:    verdict.CheckedAt,
			ExpiresAt:   verdict.CheckedAt.Add(s.cacheTTL),
		}
		if err := s.cache.Set(ctx, entry); err != nil {
			s.logger.Error("Failed to update cache", zap.Error(err))
		}
	}

	return verdict, nil
}

// TrainingStats returns the statistics of the underlying classifier
func (s *SpamDetectionService) TrainingStats() TrainingStats {
	return s.classifier.Stats()
}

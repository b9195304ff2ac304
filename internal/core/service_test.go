package core_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mikey/spam-detector/internal/adapters/cache"
	"github.com/mikey/spam-detector/internal/core"
	"github.com/mikey/spam-detector/internal/utils"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

type failingCache struct {
	sets int
}

func (c *failingCache) Get(ctx context.Context, fingerprint string) (*core.CacheEntry, error) {
	return nil, cache.ErrNotFound
}

func (c *failingCache) Set(ctx context.Context, entry *core.CacheEntry) error {
	c.sets++
	return errors.New("disk full")
}

func (c *failingCache) Delete(ctx context.Context, fingerprint string) error { return nil }

func (c *failingCache) Cleanup(ctx context.Context) error { return nil }

type countingTokenizer struct {
	core.Tokenizer
	calls int
}

func (t *countingTokenizer) Tokenize(text string) []string {
	t.calls++
	return t.Tokenizer.Tokenize(text)
}

func newService(t *testing.T, repo core.CacheRepository, enabled bool) *core.SpamDetectionService {
	t.Helper()
	logger := zaptest.NewLogger(t)
	tp := utils.NewTextProcessor(logger)
	return core.NewSpamDetectionService(core.NewSpamClassifier(tp, logger), tp, repo, logger, enabled, time.Hour)
}

func TestCheckComputesVerdict(t *testing.T) {
	service := newService(t, nil, false)

	verdict, err := service.Check(context.Background(), "FREE WIN URGENT LOTTERY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !verdict.IsSpam || verdict.Matches != 4 {
		t.Errorf("unexpected verdict: %+v", verdict)
	}
	if verdict.Source != core.SourceKeywords {
		t.Errorf("Source = %q, want %q", verdict.Source, core.SourceKeywords)
	}
	if verdict.ID == "" {
		t.Error("expected verdict ID")
	}
}

func TestCheckTokenizesForFingerprintAndClassifierOnly(t *testing.T) {
	logger := zaptest.NewLogger(t)
	tokenizer := &countingTokenizer{Tokenizer: utils.NewTextProcessor(logger)}
	service := core.NewSpamDetectionService(core.NewSpamClassifier(tokenizer, logger), tokenizer, nil, logger, false, time.Hour)

	verdict, err := service.Check(context.Background(), "free win urgent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !verdict.IsSpam || verdict.Matches != 3 {
		t.Errorf("unexpected verdict: %+v", verdict)
	}
	if tokenizer.calls != 2 {
		t.Errorf("expected 2 tokenizations, got %d", tokenizer.calls)
	}
}

func TestCheckServesRepeatsFromCache(t *testing.T) {
	repo := cache.NewMemoryCache(zaptest.NewLogger(t), 0)
	defer repo.Stop()
	service := newService(t, repo, true)
	ctx := context.Background()

	first, err := service.Check(ctx, "free prize winner")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Source != core.SourceKeywords {
		t.Fatalf("first check Source = %q, want %q", first.Source, core.SourceKeywords)
	}

	second, err := service.Check(ctx, "  FREE   Prize winner ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Source != core.SourceCache {
		t.Errorf("second check Source = %q, want %q", second.Source, core.SourceCache)
	}
	if second.IsSpam != first.IsSpam || second.Matches != first.Matches {
		t.Errorf("cached verdict %+v differs from computed %+v", second, first)
	}
	if second.ID == first.ID {
		t.Error("expected a fresh verdict ID for the cached result")
	}
	if repo.Len() != 1 {
		t.Errorf("expected 1 cache entry, got %d", repo.Len())
	}
}

func TestCheckIgnoresDisabledCache(t *testing.T) {
	repo := cache.NewMemoryCache(zaptest.NewLogger(t), 0)
	defer repo.Stop()
	service := newService(t, repo, false)

	for i := 0; i < 2; i++ {
		verdict, err := service.Check(context.Background(), "free win")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if verdict.Source != core.SourceKeywords {
			t.Errorf("Source = %q, want %q", verdict.Source, core.SourceKeywords)
		}
	}
	if repo.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", repo.Len())
	}
}

func TestCheckLogsCacheWriteFailure(t *testing.T) {
	obsCore, logs := observer.New(zap.ErrorLevel)
	logger := zap.New(obsCore)
	tp := utils.NewTextProcessor(logger)
	repo := &failingCache{}
	service := core.NewSpamDetectionService(core.NewSpamClassifier(tp, logger), tp, repo, logger, true, time.Hour)

	verdict, err := service.Check(context.Background(), "free win urgent")
	if err != nil {
		t.Fatalf("cache failure must not fail the check: %v", err)
	}
	if !verdict.IsSpam {
		t.Error("expected spam verdict")
	}
	if repo.sets != 1 {
		t.Errorf("expected 1 cache write, got %d", repo.sets)
	}
	if logs.FilterMessage("Failed to update cache").Len() != 1 {
		t.Error("expected cache failure to be logged")
	}
}

func TestFingerprintNormalizesCaseAndSpacing(t *testing.T) {
	service := newService(t, nil, false)

	a := service.Fingerprint("Hello   World")
	b := service.Fingerprint(" hello world\n")
	c := service.Fingerprint("hello worlds")
	if a != b {
		t.Error("expected equal fingerprints for case/spacing variants")
	}
	if a == c {
		t.Error("expected different fingerprints for different text")
	}
	if len(a) != 64 {
		t.Errorf("expected hex sha256 fingerprint, got %q", a)
	}
}

func TestTrainingStatsDelegatesToClassifier(t *testing.T) {
	logger := zaptest.NewLogger(t)
	tp := utils.NewTextProcessor(logger)
	classifier := core.NewSpamClassifier(tp, logger)
	service := core.NewSpamDetectionService(classifier, tp, nil, logger, false, 0)

	classifier.Train([]core.LabeledEmail{{Label: "spam", Content: "a b"}})

	if got := service.TrainingStats(); got.SpamCount != 1 || got.SpamWords != 2 {
		t.Errorf("unexpected stats: %+v", got)
	}
}

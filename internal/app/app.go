package app

import (
	"context"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/spam-detector/internal/core"
	"github.com/mikey/spam-detector/internal/ports"
)

// Params are the dependencies of Run, resolved by the container
type Params struct {
	dig.In

	Logger     *zap.Logger
	Dataset    core.DatasetProvider
	Classifier *core.SpamClassifier
	Filter     ports.EmailFilter
	Cache      core.CacheRepository
}

// Run prepares the dataset, trains the classifier and serves the
// interactive filter until the user exits
func Run(ctx context.Context, p Params) error {
	defer p.Logger.Sync()

	// Stop the cache if needed
	if stopper, ok := p.Cache.(interface{ Stop() }); ok {
		defer stopper.Stop()
	}

	if err := p.Dataset.Ensure(); err != nil {
		return err
	}

	emails, err := p.Dataset.Load()
	if err != nil {
		return err
	}

	p.Classifier.Train(emails)

	stats := p.Classifier.Stats()
	p.Logger.Info("Classifier trained",
		zap.Int("spam_count", stats.SpamCount),
		zap.Int("ham_count", stats.HamCount),
		zap.Int("spam_words", stats.SpamWords),
		zap.Int("ham_words", stats.HamWords))

	if err := p.Filter.Run(ctx); err != nil {
		return err
	}

	p.Logger.Info("Shutdown complete")
	return nil
}

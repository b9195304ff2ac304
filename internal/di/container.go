package di

import (
	"io"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/spam-detector/internal/config"
	"github.com/mikey/spam-detector/internal/core"
	"github.com/mikey/spam-detector/internal/factory"
	"github.com/mikey/spam-detector/internal/logging"
	"github.com/mikey/spam-detector/internal/ports"
	"github.com/mikey/spam-detector/internal/utils"
)

// Terminal is the interactive input and output of the application
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

// BuildContainer creates and configures a dependency injection container
func BuildContainer(term Terminal) (*dig.Container, error) {
	return BuildContainerWithConfig(term, config.New)
}

// BuildContainerWithConfig is BuildContainer with a custom configuration source
func BuildContainerWithConfig(term Terminal, newConfig func() (*config.Config, error)) (*dig.Container, error) {
	container := dig.New()

	// Register terminal
	if err := container.Provide(func() Terminal { return term }); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(newConfig); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewDatasetFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewFilterFactory); err != nil {
		return nil, err
	}

	// Register text processor, which is also the tokenizer
	if err := container.Provide(utils.NewTextProcessor); err != nil {
		return nil, err
	}
	if err := container.Provide(func(tp *utils.TextProcessor) core.Tokenizer {
		return tp
	}); err != nil {
		return nil, err
	}

	// Register dataset provider
	if err := container.Provide(func(f *factory.DatasetFactory, term Terminal) core.DatasetProvider {
		return f.CreateDatasetProvider(term.Out)
	}); err != nil {
		return nil, err
	}

	// Register cache repository
	if err := container.Provide(func(f *factory.CacheFactory) (core.CacheRepository, error) {
		return f.CreateCacheRepository()
	}); err != nil {
		return nil, err
	}

	// Register classifier and spam detection service
	if err := container.Provide(core.NewSpamClassifier); err != nil {
		return nil, err
	}
	if err := container.Provide(func(
		cfg *config.Config,
		classifier *core.SpamClassifier,
		tokenizer core.Tokenizer,
		repo core.CacheRepository,
		logger *zap.Logger,
	) (*core.SpamDetectionService, error) {
		cacheCfg, err := cfg.GetCache()
		if err != nil {
			return nil, err
		}
		return core.NewSpamDetectionService(classifier, tokenizer, repo, logger, cacheCfg.Enabled, cacheCfg.TTL), nil
	}); err != nil {
		return nil, err
	}

	// Register email filter
	if err := container.Provide(func(f *factory.FilterFactory, term Terminal) (ports.EmailFilter, error) {
		return f.CreateEmailFilter(term.In, term.Out)
	}); err != nil {
		return nil, err
	}

	return container, nil
}

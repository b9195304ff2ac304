package factory

import (
	"io"

	"github.com/mikey/spam-detector/internal/adapters/dataset"
	"github.com/mikey/spam-detector/internal/config"
	"github.com/mikey/spam-detector/internal/core"
	"github.com/mikey/spam-detector/internal/utils"
	"go.uber.org/zap"
)

// DatasetFactory creates dataset providers
type DatasetFactory struct {
	cfg           *config.Config
	textProcessor *utils.TextProcessor
	logger        *zap.Logger
}

// NewDatasetFactory creates a new dataset factory
func NewDatasetFactory(cfg *config.Config, tp *utils.TextProcessor, logger *zap.Logger) *DatasetFactory {
	return &DatasetFactory{
		cfg:           cfg,
		textProcessor: tp,
		logger:        logger,
	}
}

// CreateDatasetProvider creates a CSV dataset provider for the configured path
func (f *DatasetFactory) CreateDatasetProvider(out io.Writer) core.DatasetProvider {
	return dataset.NewCSVDataset(f.cfg.GetDataset().Path, out, f.textProcessor, f.logger)
}

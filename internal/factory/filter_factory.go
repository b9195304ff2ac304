package factory

import (
	"io"

	"github.com/mikey/spam-detector/internal/adapters/filter"
	"github.com/mikey/spam-detector/internal/core"
	"github.com/mikey/spam-detector/internal/ports"
	"github.com/mikey/spam-detector/internal/utils"
	"go.uber.org/zap"
)

// FilterFactory creates the user-facing email filter
type FilterFactory struct {
	logger        *zap.Logger
	spamService   *core.SpamDetectionService
	textProcessor *utils.TextProcessor
}

// NewFilterFactory creates a new filter factory
func NewFilterFactory(logger *zap.Logger, spamService *core.SpamDetectionService, textProcessor *utils.TextProcessor) *FilterFactory {
	return &FilterFactory{
		logger:        logger,
		spamService:   spamService,
		textProcessor: textProcessor,
	}
}

// CreateEmailFilter creates the interactive CLI filter bound to in and out
func (f *FilterFactory) CreateEmailFilter(in io.Reader, out io.Writer) (ports.EmailFilter, error) {
	return filter.NewCliFilter(f.spamService, f.textProcessor, f.logger, in, out)
}

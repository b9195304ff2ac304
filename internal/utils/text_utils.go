package utils

import (
	"errors"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TextProcessor provides utilities for processing text
type TextProcessor struct {
	logger *zap.Logger
}

// NewTextProcessor creates a new TextProcessor
func NewTextProcessor(logger *zap.Logger) *TextProcessor {
	return &TextProcessor{
		logger: logger,
	}
}

// Lower applies full Unicode lowercase mapping
func (tp *TextProcessor) Lower(text string) string {
	// A Caser keeps state between calls, so build one per call.
	return cases.Lower(language.Und).String(text)
}

// Tokenize lowercases text and splits it on runs of whitespace.
// Leading and trailing whitespace never produce empty tokens.
func (tp *TextProcessor) Tokenize(text string) []string {
	return strings.Fields(tp.Lower(text))
}

// ValidateUTF8 rejects text that is not valid UTF-8
func (tp *TextProcessor) ValidateUTF8(text string) error {
	if utf8.ValidString(text) {
		return nil
	}
	return errors.New("input is not valid UTF-8")
}

// TruncateText safely truncates text to the specified maximum size
// and ensures the result is valid UTF-8
func (tp *TextProcessor) TruncateText(text string, maxSize int) string {
	// If no limit or text is already within limits, return as is
	if maxSize <= 0 || len(text) <= maxSize {
		return text
	}

	// First truncate to the byte limit
	truncated := text[:maxSize]

	// Drop the tail of a rune cut in half
	for !utf8.ValidString(truncated) && len(truncated) > 0 {
		truncated = truncated[:len(truncated)-1]
	}

	tp.logger.Debug("Text truncated",
		zap.Int("original_size", len(text)),
		zap.Int("truncated_size", len(truncated)),
		zap.Int("max_size", maxSize))

	return truncated + "..."
}

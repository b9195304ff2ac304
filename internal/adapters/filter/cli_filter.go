package filter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mikey/spam-detector/internal/core"
	"github.com/mikey/spam-detector/internal/utils"
	"go.uber.org/zap"
)

const (
	menuText         = "\nSpam Detection Tool\n1. Check an email message\n2. Exit\n"
	choicePrompt     = "Enter your choice (1/2): "
	messagePrompt    = "Enter the email message to check for spam: "
	spamMessage      = "🚨 SPAM DETECTED! This message appears to be spam."
	hamMessage       = "✅ NO SPAM DETECTED. This message seems safe."
	invalidChoiceMsg = "Invalid choice. Please try again."

	previewSize = 80
)

// CliFilter implements the interactive command-line menu for spam detection
type CliFilter struct {
	service       *core.SpamDetectionService
	textProcessor *utils.TextProcessor
	logger        *zap.Logger
	in            *bufio.Reader
	out           io.Writer
}

// NewCliFilter creates a new CLI filter reading from in and writing to out
func NewCliFilter(
	service *core.SpamDetectionService,
	textProcessor *utils.TextProcessor,
	logger *zap.Logger,
	in io.Reader,
	out io.Writer,
) (*CliFilter, error) {
	if service == nil {
		return nil, errors.New("spam detection service is required")
	}
	return &CliFilter{
		service:       service,
		textProcessor: textProcessor,
		logger:        logger,
		in:            bufio.NewReader(in),
		out:           out,
	}, nil
}

// Run shows the menu until the user picks exit. It returns an error
// wrapping core.ErrInputRead when a line cannot be read.
func (f *CliFilter) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(f.out, menuText)
		fmt.Fprint(f.out, choicePrompt)

		choice, err := f.readLine()
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := f.checkMessage(ctx); err != nil {
				return err
			}
		case "2":
			f.logger.Debug("Exit selected")
			return nil
		default:
			fmt.Fprintln(f.out, invalidChoiceMsg)
		}
	}
}

// ProcessMessage checks a single message and prints the verdict
func (f *CliFilter) ProcessMessage(ctx context.Context, message string) (*core.Verdict, error) {
	f.logger.Debug("Processing message",
		zap.String("preview", f.textProcessor.TruncateText(message, previewSize)))

	verdict, err := f.service.Check(ctx, message)
	if err != nil {
		f.logger.Error("Failed to check message", zap.Error(err))
		return nil, err
	}

	if verdict.IsSpam {
		fmt.Fprintln(f.out, spamMessage)
	} else {
		fmt.Fprintln(f.out, hamMessage)
	}

	return verdict, nil
}

func (f *CliFilter) checkMessage(ctx context.Context) error {
	fmt.Fprint(f.out, messagePrompt)

	message, err := f.readLine()
	if err != nil {
		return err
	}

	_, err = f.ProcessMessage(ctx, message)
	return err
}

// readLine reads one line and trims surrounding whitespace. A final line
// without a newline is accepted; end of input with nothing read is an error.
func (f *CliFilter) readLine() (string, error) {
	line, err := f.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("%w: %w", core.ErrInputRead, err)
	}

	if err := f.textProcessor.ValidateUTF8(line); err != nil {
		return "", fmt.Errorf("%w: %w", core.ErrInputRead, err)
	}

	return strings.TrimSpace(line), nil
}

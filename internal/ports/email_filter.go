package ports

import (
	"context"

	"github.com/mikey/spam-detector/internal/core"
)

// EmailFilter defines the interface for the user-facing frontend
type EmailFilter interface {
	// ProcessMessage checks a message and reports the verdict to the user
	ProcessMessage(ctx context.Context, message string) (*core.Verdict, error)

	// Run serves the frontend until the user exits or an error occurs
	Run(ctx context.Context) error
}

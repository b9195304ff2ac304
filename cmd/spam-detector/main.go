package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/mikey/spam-detector/internal/app"
	"github.com/mikey/spam-detector/internal/di"
)

func main() {
	// Optional .env feeds the SPAM_DETECTOR_* environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load .env file: %v\n", err)
		os.Exit(1)
	}

	// Build the dependency injection container
	container, err := di.BuildContainer(di.Terminal{In: os.Stdin, Out: os.Stdout})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(func(p app.Params) error {
		return app.Run(context.Background(), p)
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

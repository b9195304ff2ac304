package core

import "errors"

var (
	// ErrDatasetCreate is returned when the default dataset cannot be written
	ErrDatasetCreate = errors.New("failed to create dataset")
	// ErrDatasetParse is returned when the dataset cannot be read as CSV
	ErrDatasetParse = errors.New("failed to parse dataset")
	// ErrInputRead is returned when a line cannot be read from the user
	ErrInputRead = errors.New("failed to read input")
)

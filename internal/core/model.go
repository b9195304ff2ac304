package core

import (
	"time"
)

// LabeledEmail is one row of the training dataset
type LabeledEmail struct {
	Label   string
	Content string
}

// Verdict represents the outcome of checking a message
type Verdict struct {
	ID        string
	IsSpam    bool
	Matches   int
	Source    string
	CheckedAt time.Time
}

// TrainingStats summarizes what the classifier accumulated during training
type TrainingStats struct {
	SpamCount int
	HamCount  int
	SpamWords int
	HamWords  int
}

type CacheEntry struct {
	Fingerprint string
	IsSpam      bool
	Matches     int
	LastSeen    time.Time
	ExpiresAt   time.Time
}

const (
	// SourceKeywords marks a verdict computed by the keyword heuristic
	SourceKeywords = "keywords"
	// SourceCache marks a verdict served from the verdict cache
	SourceCache = "cache"
)

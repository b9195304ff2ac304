package core

import (
	"go.uber.org/zap"
)

// spamMatchThreshold is the number of indicator hits a message must exceed to be spam
const spamMatchThreshold = 2

// spamIndicators are compared against whole tokens, so the two-word entries
// never match a whitespace-split token.
var spamIndicators = [...]string{
	"free",
	"win",
	"urgent",
	"lottery",
	"click here",
	"limited offer",
	"$$$",
	"winner",
	"prize",
	"congratulations",
}

// SpamIndicators returns a copy of the fixed indicator list in order
func SpamIndicators() []string {
	out := make([]string, len(spamIndicators))
	copy(out, spamIndicators[:])
	return out
}

// SpamClassifier accumulates per-class word lists during training and
// flags messages by counting spam indicator tokens
type SpamClassifier struct {
	tokenizer Tokenizer
	logger    *zap.Logger

	spamWords []string
	hamWords  []string
	spamCount int
	hamCount  int
}

// NewSpamClassifier creates an untrained classifier
func NewSpamClassifier(tokenizer Tokenizer, logger *zap.Logger) *SpamClassifier {
	return &SpamClassifier{
		tokenizer: tokenizer,
		logger:    logger,
	}
}

// Train appends the tokens of every email to the word list of its class.
// Only the exact label "spam" counts as spam.
func (c *SpamClassifier) Train(emails []LabeledEmail) {
	for _, email := range emails {
		words := c.tokenizer.Tokenize(email.Content)

		if email.Label == "spam" {
			c.spamWords = append(c.spamWords, words...)
			c.spamCount++
		} else {
			c.hamWords = append(c.hamWords, words...)
			c.hamCount++
		}
	}

	c.logger.Debug("Training pass complete",
		zap.Int("emails", len(emails)),
		zap.Int("spam_count", c.spamCount),
		zap.Int("ham_count", c.hamCount))
}

// Matches counts the tokens of message that equal a spam indicator
func (c *SpamClassifier) Matches(message string) int {
	matches := 0
	for _, word := range c.tokenizer.Tokenize(message) {
		if isSpamIndicator(word) {
			matches++
		}
	}
	return matches
}

// Predict reports whether message contains more than two spam indicator tokens.
// It does not depend on training.
func (c *SpamClassifier) Predict(message string) bool {
	isSpam, _ := c.Evaluate(message)
	return isSpam
}

// Evaluate returns the verdict of Predict together with the match count
// behind it, tokenizing message once
func (c *SpamClassifier) Evaluate(message string) (bool, int) {
	matches := c.Matches(message)
	return matches > spamMatchThreshold, matches
}

// Stats returns the counters accumulated by Train
func (c *SpamClassifier) Stats() TrainingStats {
	return TrainingStats{
		SpamCount: c.spamCount,
		HamCount:  c.hamCount,
		SpamWords: len(c.spamWords),
		HamWords:  len(c.hamWords),
	}
}

func isSpamIndicator(word string) bool {
	for _, indicator := range spamIndicators {
		if word == indicator {
			return true
		}
	}
	return false
}

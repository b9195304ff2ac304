package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"go.uber.org/zap/zaptest"
)

func TestTokenize(t *testing.T) {
	tp := NewTextProcessor(zaptest.NewLogger(t))

	tests := []struct {
		text     string
		expected []string
	}{
		{"", nil},
		{"   \t\n ", nil},
		{"Hello World", []string{"hello", "world"}},
		{"  leading and trailing  ", []string{"leading", "and", "trailing"}},
		{"tabs\tand\nnewlines\r\nmixed", []string{"tabs", "and", "newlines", "mixed"}},
		{"Claim $10,000 NOW!", []string{"claim", "$10,000", "now!"}},
		{"non\u00a0breaking", []string{"non", "breaking"}},
	}

	for _, tt := range tests {
		got := tp.Tokenize(tt.text)
		if len(got) != len(tt.expected) {
			t.Errorf("Tokenize(%q) = %q, want %q", tt.text, got, tt.expected)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("Tokenize(%q)[%d] = %q, want %q", tt.text, i, got[i], tt.expected[i])
			}
		}
	}
}

func TestLowerHandlesUnicode(t *testing.T) {
	tp := NewTextProcessor(zaptest.NewLogger(t))

	if got := tp.Lower("ÜBER Straße"); got != "über straße" {
		t.Errorf("Lower = %q", got)
	}
	if got := tp.Lower("ΟΔΟΣ"); got != "οδος" && got != "οδοσ" {
		t.Errorf("Lower = %q", got)
	}
}

func TestValidateUTF8(t *testing.T) {
	tp := NewTextProcessor(zaptest.NewLogger(t))

	if err := tp.ValidateUTF8("✅ fine"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := tp.ValidateUTF8("bad \xff byte"); err == nil {
		t.Error("expected error for invalid UTF-8")
	}
}

func TestTruncateText(t *testing.T) {
	tp := NewTextProcessor(zaptest.NewLogger(t))

	if got := tp.TruncateText("short", 10); got != "short" {
		t.Errorf("TruncateText = %q", got)
	}
	if got := tp.TruncateText("unlimited", 0); got != "unlimited" {
		t.Errorf("TruncateText = %q", got)
	}

	got := tp.TruncateText("abcdefghij", 4)
	if got != "abcd..." {
		t.Errorf("TruncateText = %q", got)
	}

	// "é" is two bytes; cutting in the middle must drop it
	got = tp.TruncateText("aé"+strings.Repeat("b", 10), 2)
	if got != "a..." {
		t.Errorf("TruncateText = %q", got)
	}
	if !utf8.ValidString(got) {
		t.Error("truncated text is not valid UTF-8")
	}
}

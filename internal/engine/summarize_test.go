package engine

import "testing"

func TestNewSummarizerRequiresKey(t *testing.T) {
	for _, key := range []string{"", "   ", "\t"} {
		if _, err := NewSummarizer(key); err == nil {
			t.Errorf("NewSummarizer(%q) = nil error, want key-required error", key)
		}
	}
}

func TestNewSummarizerWithKey(t *testing.T) {
	s, err := NewSummarizer("test-key")
	if err != nil {
		t.Fatalf("NewSummarizer: %v", err)
	}
	if s == nil || s.client == nil {
		t.Fatal("NewSummarizer returned nil client")
	}
}

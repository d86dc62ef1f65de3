package engine

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
)

// summarizeInputCap bounds how many transcript chars are sent to the model.
// Long videos easily exceed the model's useful context for a 250-word summary.
const summarizeInputCap = 24000

// Summarizer sends transcripts to the Gemini OpenAI-compatible endpoint.
// One is constructed per session with the key that session supplied; no
// process-wide client state exists.
type Summarizer struct {
	client *llm.Client
}

// NewSummarizer builds a Summarizer for the given API key using the
// configured endpoint and model.
func NewSummarizer(apiKey string) (*Summarizer, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("API key is required")
	}
	client := llm.NewClient(cfg.LLMAPIBase, apiKey, cfg.LLMModel,
		llm.WithMaxTokens(cfg.LLMMaxTokens),
		llm.WithTemperature(cfg.LLMTemperature),
		llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
	)
	return &Summarizer{client: client}, nil
}

// Summarize sends the fixed instruction plus the transcript in a single
// blocking call and returns the generated summary. Errors (auth, quota,
// network) propagate to the caller unmodified — there is no fallback for
// this step.
func (s *Summarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	metrics.LLMCalls.Add(1)
	if len(transcript) > summarizeInputCap {
		transcript = transcript[:summarizeInputCap] + "..."
	}
	resp, err := s.client.Complete(ctx, "", summaryInstruction+transcript)
	if err != nil {
		metrics.LLMErrors.Add(1)
		return "", err
	}
	return strings.TrimSpace(resp), nil
}

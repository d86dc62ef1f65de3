package engine

import (
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	// LLMAPIKey is used by the MCP tools. Web sessions supply their own key
	// per request and never touch this field.
	LLMAPIKey      string
	LLMAPIBase     string
	LLMModel       string
	LLMTemperature float64
	LLMMaxTokens   int

	YtdlpPath    string        // yt-dlp binary name or absolute path
	YtdlpTimeout time.Duration // covers one yt-dlp invocation
	FetchTimeout time.Duration // per HTTP request to YouTube endpoints

	TranscriptLang string // preferred caption language code

	// MinTranscriptChars is the normalization plausibility floor: stripped
	// caption text shorter than this is treated as a normalization failure.
	MinTranscriptChars int

	// PrimaryAcceptChars is the acceptance floor for the downloader strategy.
	// Shorter results fall through to the transcript API instead of being
	// returned as-is.
	PrimaryAcceptChars int

	HTTPClient    *http.Client
	BrowserClient *BrowserClient // nil = watch-page scrape disabled
}

const (
	defaultMinTranscriptChars = 10
	defaultPrimaryAcceptChars = 100
)

var cfg Config

// Cfg exposes the engine configuration for sub-packages (sources).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.LLMAPIBase == "" {
		c.LLMAPIBase = "https://generativelanguage.googleapis.com/v1beta/openai"
	}
	if c.LLMModel == "" {
		c.LLMModel = "gemini-2.0-flash-001"
	}
	if c.YtdlpPath == "" {
		c.YtdlpPath = "yt-dlp"
	}
	if c.YtdlpTimeout <= 0 {
		c.YtdlpTimeout = 90 * time.Second
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 15 * time.Second
	}
	if c.TranscriptLang == "" {
		c.TranscriptLang = "en"
	}
	if c.MinTranscriptChars <= 0 {
		c.MinTranscriptChars = defaultMinTranscriptChars
	}
	if c.PrimaryAcceptChars <= 0 {
		c.PrimaryAcceptChars = defaultPrimaryAcceptChars
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.FetchTimeout}
	}
	cfg = c
	Cfg = &cfg
}

func minTranscriptChars() int {
	if cfg.MinTranscriptChars > 0 {
		return cfg.MinTranscriptChars
	}
	return defaultMinTranscriptChars
}

func primaryAcceptChars() int {
	if cfg.PrimaryAcceptChars > 0 {
		return cfg.PrimaryAcceptChars
	}
	return defaultPrimaryAcceptChars
}

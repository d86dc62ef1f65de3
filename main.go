// youtube-summarizer — transcript-based YouTube video summaries.
//
// Serves a web UI that takes a video URL plus a Gemini API key, acquires the
// English transcript (yt-dlp with a transcript-API fallback), and renders a
// bulleted summary. With MCP_PORT set, the same pipeline is additionally
// exposed as MCP tools.
package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	stealth "github.com/anatolykoptev/go-stealth"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Subramaniya-pillai/youtube-summarizer/internal/engine"
	"github.com/Subramaniya-pillai/youtube-summarizer/internal/engine/sources"
	"github.com/Subramaniya-pillai/youtube-summarizer/internal/mcptool"
	"github.com/Subramaniya-pillai/youtube-summarizer/internal/webui"
)

var (
	version = "dev"
	webPort = env.Str("PORT", "8890")
)

func main() {
	initEngine()

	if mcpPort := env.Str("MCP_PORT", ""); mcpPort != "" {
		go runMCP(mcpPort)
	}

	server := webui.NewServer(sources.DefaultStrategies())

	slog.Info("starting youtube-summarizer",
		slog.String("version", version),
		slog.String("port", webPort),
	)
	if err := http.ListenAndServe(":"+webPort, server.Handler()); err != nil {
		slog.Error("web server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		LLMAPIKey:          env.Str("LLM_API_KEY", ""),
		LLMAPIBase:         env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		LLMModel:           env.Str("LLM_MODEL", "gemini-2.0-flash-001"),
		LLMTemperature:     env.Float("LLM_TEMPERATURE", 0.3),
		LLMMaxTokens:       env.Int("LLM_MAX_TOKENS", 2048),
		YtdlpPath:          env.Str("YTDLP_PATH", "yt-dlp"),
		YtdlpTimeout:       env.Duration("YTDLP_TIMEOUT", 90*time.Second),
		FetchTimeout:       env.Duration("FETCH_TIMEOUT", 15*time.Second),
		TranscriptLang:     env.Str("TRANSCRIPT_LANG", "en"),
		MinTranscriptChars: env.Int("MIN_TRANSCRIPT_CHARS", 10),
		PrimaryAcceptChars: env.Int("PRIMARY_ACCEPT_CHARS", 100),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	bc, err := stealth.NewClient(stealth.WithTimeout(15))
	if err != nil {
		slog.Warn("stealth client init failed, watch-page scrape uses plain HTTP", slog.Any("error", err))
	} else {
		c.BrowserClient = bc
		slog.Info("stealth browser client initialized")
	}

	engine.Init(c)
}

func runMCP(port string) {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "youtube-summarizer",
		Version: version,
	}, nil)

	mcptool.RegisterTools(server)
	slog.Info("mcp tools registered", slog.Int("count", 2), slog.String("port", port))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "youtube-summarizer",
		Version:      version,
		Port:         port,
		WriteTimeout: 600 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("mcp server failed", slog.Any("error", err))
	}
}

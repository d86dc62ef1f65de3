// Package mcptool exposes the transcript pipeline as MCP tools.
package mcptool

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Subramaniya-pillai/youtube-summarizer/internal/engine"
	"github.com/Subramaniya-pillai/youtube-summarizer/internal/engine/sources"
)

// RegisterTools registers the video summarization tools on the given MCP
// server: summarize_video, get_transcript.
func RegisterTools(server *mcp.Server) {
	registerSummarizeVideo(server)
	registerGetTranscript(server)
}

type SummarizeVideoInput struct {
	URL string `json:"url" jsonschema:"YouTube video URL (youtu.be or youtube.com/watch form)"`
}

type SummarizeVideoOutput struct {
	VideoID         string `json:"video_id"`
	URL             string `json:"url"`
	Thumbnail       string `json:"thumbnail"`
	TranscriptChars int    `json:"transcript_chars"`
	Summary         string `json:"summary"`
}

func registerSummarizeVideo(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "summarize_video",
		Description: "Summarize a YouTube video from its English captions. Acquires the transcript (yt-dlp with transcript-API fallback) and returns a bulleted Gemini summary.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input SummarizeVideoInput) (*mcp.CallToolResult, SummarizeVideoOutput, error) {
		videoID, ok := engine.ExtractVideoID(input.URL)
		if !ok {
			return nil, SummarizeVideoOutput{}, fmt.Errorf("not a recognized YouTube URL: %q", input.URL)
		}

		res := engine.AcquireTranscript(ctx, videoID, sources.DefaultStrategies(), nil)
		if !res.OK() {
			return nil, SummarizeVideoOutput{}, fmt.Errorf("transcript acquisition failed: %s", res.Message())
		}

		sum, err := engine.NewSummarizer(engine.Cfg.LLMAPIKey)
		if err != nil {
			return nil, SummarizeVideoOutput{}, fmt.Errorf("LLM_API_KEY not configured: %w", err)
		}
		summary, err := sum.Summarize(ctx, res.Text)
		if err != nil {
			slog.Warn("summarize_video: LLM error", slog.Any("error", err))
			return nil, SummarizeVideoOutput{}, fmt.Errorf("summarization failed: %w", err)
		}

		return nil, SummarizeVideoOutput{
			VideoID:         videoID,
			URL:             engine.WatchURL(videoID),
			Thumbnail:       engine.ThumbnailURL(videoID),
			TranscriptChars: len(res.Text),
			Summary:         summary,
		}, nil
	})
}

type GetTranscriptInput struct {
	URL string `json:"url" jsonschema:"YouTube video URL (youtu.be or youtube.com/watch form)"`
}

type GetTranscriptOutput struct {
	VideoID    string `json:"video_id"`
	Transcript string `json:"transcript"`
}

func registerGetTranscript(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_transcript",
		Description: "Fetch the flat English transcript of a YouTube video without summarizing it. Same two-strategy acquisition pipeline as summarize_video.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input GetTranscriptInput) (*mcp.CallToolResult, GetTranscriptOutput, error) {
		videoID, ok := engine.ExtractVideoID(input.URL)
		if !ok {
			return nil, GetTranscriptOutput{}, fmt.Errorf("not a recognized YouTube URL: %q", input.URL)
		}

		res := engine.AcquireTranscript(ctx, videoID, sources.DefaultStrategies(), nil)
		if !res.OK() {
			return nil, GetTranscriptOutput{}, fmt.Errorf("transcript acquisition failed: %s", res.Message())
		}

		return nil, GetTranscriptOutput{VideoID: videoID, Transcript: res.Text}, nil
	})
}

// Package webui is the presentation shell: it collects the video URL and the
// user's API key, runs the transcript pipeline, and renders the summary.
package webui

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/Subramaniya-pillai/youtube-summarizer/internal/engine"
)

//go:embed templates/index.html
var templatesFS embed.FS

// pipelineTimeout bounds one full acquire+summarize run.
const pipelineTimeout = 3 * time.Minute

// SummarizeFunc produces a summary for a transcript using the given API key.
type SummarizeFunc func(ctx context.Context, apiKey, transcript string) (string, error)

// Server serves the web UI. One pipeline run is handled to completion before
// the next is accepted; per-user data lives only in the request.
type Server struct {
	mu         sync.Mutex // serializes pipeline runs
	tmpl       *template.Template
	strategies []engine.Strategy
	summarize  SummarizeFunc
}

// NewServer builds the UI server around the given acquisition strategies.
func NewServer(strategies []engine.Strategy) *Server {
	return &Server{
		tmpl:       template.Must(template.ParseFS(templatesFS, "templates/index.html")),
		strategies: strategies,
		summarize:  summarizeWithGemini,
	}
}

// SetSummarizeFunc replaces the summarization call. Used by tests.
func (s *Server) SetSummarizeFunc(fn SummarizeFunc) { s.summarize = fn }

// Handler returns the HTTP handler for the UI.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleIndex)
	mux.HandleFunc("POST /summarize", s.handleSummarize)
	mux.HandleFunc("GET /metrics", s.handleMetrics)
	return mux
}

// page carries everything the template renders for one request.
type page struct {
	URL          string
	VideoID      string
	ThumbnailURL string
	Progress     []string
	Summary      string
	Error        string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.render(w, page{})
}

func (s *Server) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(engine.FormatMetrics()))
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	p := page{URL: r.FormValue("url")}
	apiKey := r.FormValue("api_key")

	if apiKey == "" {
		p.Error = "Please enter your Google API key to continue."
		s.render(w, p)
		return
	}

	videoID, ok := engine.ExtractVideoID(p.URL)
	if !ok {
		p.Error = engine.Failure(engine.FailureInvalidID, "").Message()
		s.render(w, p)
		return
	}
	p.VideoID = videoID
	p.ThumbnailURL = engine.ThumbnailURL(videoID)

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(r.Context(), pipelineTimeout)
	defer cancel()

	progress := func(line string) {
		slog.Info("pipeline", slog.String("video_id", videoID), slog.String("step", line))
		p.Progress = append(p.Progress, line)
	}

	res := engine.AcquireTranscript(ctx, videoID, s.strategies, progress)
	if !res.OK() {
		p.Error = res.Message()
		s.render(w, p)
		return
	}

	summary, err := s.summarize(ctx, apiKey, res.Text)
	if err != nil {
		slog.Warn("summarization failed", slog.String("video_id", videoID), slog.Any("error", err))
		p.Error = "Summarization failed: " + err.Error()
		s.render(w, p)
		return
	}
	p.Summary = summary

	s.render(w, p)
}

func (s *Server) render(w http.ResponseWriter, p page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, p); err != nil {
		slog.Error("template render failed", slog.Any("error", err))
	}
}

func summarizeWithGemini(ctx context.Context, apiKey, transcript string) (string, error) {
	sum, err := engine.NewSummarizer(apiKey)
	if err != nil {
		return "", err
	}
	return sum.Summarize(ctx, transcript)
}

package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// metrics tracks operational counters across the engine.
var metrics struct {
	AcquireRequests   atomic.Int64
	AcquireFailures   atomic.Int64
	YtdlpRuns         atomic.Int64
	YtdlpErrors       atomic.Int64
	InnertubeRequests atomic.Int64
	TimedTextRequests atomic.Int64
	WatchPageScrapes  atomic.Int64
	LLMCalls          atomic.Int64
	LLMErrors         atomic.Int64
}

// GetMetrics returns a snapshot of all counters.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"acquire_requests":   metrics.AcquireRequests.Load(),
		"acquire_failures":   metrics.AcquireFailures.Load(),
		"ytdlp_runs":         metrics.YtdlpRuns.Load(),
		"ytdlp_errors":       metrics.YtdlpErrors.Load(),
		"innertube_requests": metrics.InnertubeRequests.Load(),
		"timedtext_requests": metrics.TimedTextRequests.Load(),
		"watch_page_scrapes": metrics.WatchPageScrapes.Load(),
		"llm_calls":          metrics.LLMCalls.Load(),
		"llm_errors":         metrics.LLMErrors.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"acquire_requests", "acquire_failures",
		"ytdlp_runs", "ytdlp_errors",
		"innertube_requests", "timedtext_requests", "watch_page_scrapes",
		"llm_calls", "llm_errors",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the sources sub-package.
func IncrYtdlpRuns()         { metrics.YtdlpRuns.Add(1) }
func IncrYtdlpErrors()       { metrics.YtdlpErrors.Add(1) }
func IncrInnertubeRequests() { metrics.InnertubeRequests.Add(1) }
func IncrTimedTextRequests() { metrics.TimedTextRequests.Add(1) }
func IncrWatchPageScrapes()  { metrics.WatchPageScrapes.Add(1) }

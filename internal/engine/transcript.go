package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// FailureKind classifies transcript acquisition failures.
type FailureKind string

const (
	FailureNone                FailureKind = ""
	FailureInvalidID           FailureKind = "invalid_id"
	FailureNoCaptions          FailureKind = "no_captions"
	FailureVideoUnavailable    FailureKind = "video_unavailable"
	FailureTranscriptsDisabled FailureKind = "transcripts_disabled"
	FailureNormalization       FailureKind = "normalization_failed"
	FailureBoth                FailureKind = "both_failed"
)

// TranscriptResult is the tagged outcome of transcript acquisition: either
// OK with flat transcript text, or a failure Kind with diagnostic Detail.
// Downstream code branches on Kind, never on text prefixes.
type TranscriptResult struct {
	Text   string
	Kind   FailureKind
	Detail string
}

// Transcript wraps flat text in a successful result.
func Transcript(text string) TranscriptResult {
	return TranscriptResult{Text: text}
}

// Failure builds a failed result of the given kind.
func Failure(kind FailureKind, detail string) TranscriptResult {
	return TranscriptResult{Kind: kind, Detail: detail}
}

// OK reports whether acquisition succeeded.
func (r TranscriptResult) OK() bool { return r.Kind == FailureNone }

// Message renders a failure for display. Empty for successful results.
func (r TranscriptResult) Message() string {
	switch r.Kind {
	case FailureNone:
		return ""
	case FailureInvalidID:
		return "Invalid YouTube link format."
	case FailureNoCaptions:
		return "No English captions found for this video."
	case FailureVideoUnavailable:
		return "The video is unavailable or private."
	case FailureTranscriptsDisabled:
		return "Transcripts are disabled for this video."
	case FailureNormalization:
		return "Caption markup produced no usable text (" + r.Detail + ")"
	case FailureBoth:
		return "All transcript strategies failed: " + r.Detail
	}
	return string(r.Kind)
}

// Sentinel conditions reported by the transcript-API strategy. The engine
// translates these into their failure kinds without trying anything else.
var (
	ErrVideoUnavailable    = errors.New("video unavailable")
	ErrTranscriptsDisabled = errors.New("transcripts disabled")
)

// StrategyOutcome is the tagged result of one acquisition strategy:
// success-with-text, no-data, or error-detail.
type StrategyOutcome struct {
	Text   string
	NoData bool // strategy ran fine but the video has no usable English track
	Err    error
}

// Strategy is one independent method of obtaining caption text for a video.
type Strategy interface {
	Name() string
	Fetch(ctx context.Context, videoID string, progress ProgressFunc) StrategyOutcome
}

// ProgressFunc receives human-readable progress lines during acquisition.
// Informational only, not part of the result contract.
type ProgressFunc func(string)

// AcquireTranscript runs the given strategies in order, short-circuiting on
// the first accepted result and accumulating failure details for the
// composite error. The order is fixed by the caller: downloader first,
// transcript API second — the downloader path succeeds more often for
// auto-captioned content, while the API rejects some videos outright.
func AcquireTranscript(ctx context.Context, videoID string, strategies []Strategy, progress ProgressFunc) TranscriptResult {
	metrics.AcquireRequests.Add(1)
	if progress == nil {
		progress = func(string) {}
	}

	var failures []string
	noData := 0

	for i, s := range strategies {
		progress("Trying " + s.Name() + "...")
		out := s.Fetch(ctx, videoID, progress)

		switch {
		case out.Err != nil:
			if errors.Is(out.Err, ErrVideoUnavailable) {
				metrics.AcquireFailures.Add(1)
				return Failure(FailureVideoUnavailable, out.Err.Error())
			}
			if errors.Is(out.Err, ErrTranscriptsDisabled) {
				metrics.AcquireFailures.Add(1)
				return Failure(FailureTranscriptsDisabled, out.Err.Error())
			}
			slog.Warn("transcript strategy failed",
				slog.String("strategy", s.Name()),
				slog.String("video_id", videoID),
				slog.Any("error", out.Err))
			progress(s.Name() + " failed, falling back...")
			failures = append(failures, s.Name()+": "+out.Err.Error())

		case out.NoData:
			progress(s.Name() + ": no English captions available")
			noData++
			failures = append(failures, s.Name()+": no English captions available")

		default:
			text := strings.TrimSpace(out.Text)
			if len(text) < acceptChars(i) {
				progress(fmt.Sprintf("%s returned only %d chars, falling back...", s.Name(), len(text)))
				failures = append(failures, fmt.Sprintf("%s: transcript too short (%d chars)", s.Name(), len(text)))
				continue
			}
			progress("Transcript acquired via " + s.Name())
			return Transcript(text)
		}
	}

	metrics.AcquireFailures.Add(1)
	if noData == len(strategies) {
		return Failure(FailureNoCaptions, "")
	}
	return Failure(FailureBoth, strings.Join(failures, "; "))
}

// acceptChars returns the minimum accepted transcript length for the strategy
// at position i. Only the primary strategy carries the high floor; later
// strategies just have to produce something non-trivial.
func acceptChars(i int) int {
	if i == 0 {
		return primaryAcceptChars()
	}
	return 1
}

package engine

import (
	"regexp"
	"strings"
)

// WEBVTT cue markup. Each pattern is stripped independently; a document
// missing any of them still normalizes cleanly.
var (
	vttTimestampRE = regexp.MustCompile(`\d{2}:\d{2}:\d{2}\.\d{3} --> \d{2}:\d{2}:\d{2}\.\d{3}.*`)
	vttTagRE       = regexp.MustCompile(`<[^>]+>`)
	vttHeaderRE    = regexp.MustCompile(`(?m)^WEBVTT.*$|^(?:Kind|Language):.*$`)
	vttCueIndexRE  = regexp.MustCompile(`(?m)^\d+[ \t]*$`)
	whitespaceRE   = regexp.MustCompile(`\s+`)
)

// rawPreviewChars caps how much of the raw document a normalization failure
// carries for diagnostics.
const rawPreviewChars = 500

// NormalizeVTT converts a WEBVTT caption document into flat prose: cue
// timestamp lines, inline tags, the file header, and numeric cue indices are
// stripped, then whitespace runs collapse to single spaces.
//
// If the stripped text falls below the plausibility floor the markup was
// probably not what we expected, so the result is a normalization failure
// carrying a preview of the raw input instead of near-empty "prose".
func NormalizeVTT(doc string) TranscriptResult {
	text := vttTimestampRE.ReplaceAllString(doc, "")
	text = vttTagRE.ReplaceAllString(text, "")
	text = vttHeaderRE.ReplaceAllString(text, "")
	text = vttCueIndexRE.ReplaceAllString(text, "")
	text = whitespaceRE.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	if len(text) < minTranscriptChars() {
		return Failure(FailureNormalization, "raw input: "+Truncate(doc, rawPreviewChars))
	}
	return Transcript(text)
}

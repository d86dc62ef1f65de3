package engine

import (
	"html"
	"regexp"
	"strings"
)

// UserAgentBot identifies plain API requests that don't need to look like a browser.
const UserAgentBot = "youtube-summarizer/1.0"

var htmlTagRE = regexp.MustCompile(`<[^>]+>`)

// CleanHTML strips HTML tags, decodes entities, and trims whitespace.
// Timedtext cues double-encode entities, so the decode runs after the
// XML layer has already unescaped once.
func CleanHTML(s string) string {
	return strings.TrimSpace(html.UnescapeString(htmlTagRE.ReplaceAllString(s, "")))
}

// Truncate returns the first n bytes of s.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

package engine

import (
	"net/url"
	"strings"
)

// ExtractVideoID parses a YouTube URL into its video ID.
//
// Recognized shapes:
//   - https://youtu.be/<id>            — ID is the whole path
//   - https://www.youtube.com/watch?v=<id>[&...] — ID is the v query param
//
// Any other host, a malformed URL, or a missing ID yields ("", false).
// The ID is not checked against YouTube; existence is the acquisition
// engine's problem.
func ExtractVideoID(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}

	host := strings.ToLower(u.Hostname())
	switch {
	case host == "youtu.be":
		id := strings.TrimPrefix(u.Path, "/")
		if id == "" {
			return "", false
		}
		return id, true

	case host == "youtube.com" || strings.HasSuffix(host, ".youtube.com"):
		id := u.Query().Get("v")
		if id == "" {
			return "", false
		}
		return id, true
	}

	return "", false
}

// WatchURL returns the canonical watch URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// ThumbnailURL returns the default thumbnail image URL for a video ID.
func ThumbnailURL(videoID string) string {
	return "http://img.youtube.com/vi/" + videoID + "/0.jpg"
}

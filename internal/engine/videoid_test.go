package engine

import "testing"

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		wantID string
		wantOK bool
	}{
		{
			name:   "short link",
			url:    "https://youtu.be/abc123",
			wantID: "abc123",
			wantOK: true,
		},
		{
			name:   "canonical watch URL",
			url:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "canonical with extra params",
			url:    "https://www.youtube.com/watch?v=abc123&t=30s",
			wantID: "abc123",
			wantOK: true,
		},
		{
			name:   "bare host no www",
			url:    "https://youtube.com/watch?v=abc123",
			wantID: "abc123",
			wantOK: true,
		},
		{
			name:   "mobile host",
			url:    "https://m.youtube.com/watch?v=abc123",
			wantID: "abc123",
			wantOK: true,
		},
		{
			name:   "unrelated host",
			url:    "https://vimeo.com/12345",
			wantOK: false,
		},
		{
			name:   "watch URL missing v param",
			url:    "https://www.youtube.com/watch?t=30s",
			wantOK: false,
		},
		{
			name:   "short link with empty path",
			url:    "https://youtu.be/",
			wantOK: false,
		},
		{
			name:   "not a URL at all",
			url:    "definitely not a url",
			wantOK: false,
		},
		{
			name:   "lookalike host suffix",
			url:    "https://notyoutube.com/watch?v=abc123",
			wantOK: false,
		},
		{
			name:   "empty string",
			url:    "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractVideoID(tt.url)
			if ok != tt.wantOK {
				t.Fatalf("ExtractVideoID(%q) ok = %v, want %v", tt.url, ok, tt.wantOK)
			}
			if ok && id != tt.wantID {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.url, id, tt.wantID)
			}
		})
	}
}

func TestWatchAndThumbnailURLs(t *testing.T) {
	if got := WatchURL("abc123"); got != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("WatchURL = %q", got)
	}
	if got := ThumbnailURL("abc123"); got != "http://img.youtube.com/vi/abc123/0.jpg" {
		t.Errorf("ThumbnailURL = %q", got)
	}
}

package sources

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Subramaniya-pillai/youtube-summarizer/internal/engine"
)

func TestPickEnglishTrack(t *testing.T) {
	manual := captionTrack{BaseURL: "https://yt/api/timedtext?v=1", LanguageCode: "en"}
	auto := captionTrack{BaseURL: "https://yt/api/timedtext?v=2", LanguageCode: "en", Kind: "asr"}
	regional := captionTrack{BaseURL: "https://yt/api/timedtext?v=3", LanguageCode: "en-GB"}
	german := captionTrack{BaseURL: "https://yt/api/timedtext?v=4", LanguageCode: "de"}
	gated := captionTrack{BaseURL: "https://yt/api/timedtext?v=5&exp=xpe", LanguageCode: "en"}

	tests := []struct {
		name    string
		tracks  []captionTrack
		wantURL string
		wantOK  bool
	}{
		{"manual wins over asr", []captionTrack{auto, manual}, manual.BaseURL, true},
		{"asr when no manual", []captionTrack{german, auto}, auto.BaseURL, true},
		{"regional variant last resort", []captionTrack{german, regional}, regional.BaseURL, true},
		{"potoken track skipped", []captionTrack{gated, auto}, auto.BaseURL, true},
		{"only potoken track", []captionTrack{gated}, "", false},
		{"no english", []captionTrack{german}, "", false},
		{"empty list", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track, ok := pickEnglishTrack(tt.tracks, "en")
			if ok != tt.wantOK {
				t.Fatalf("pickEnglishTrack ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && track.BaseURL != tt.wantURL {
				t.Errorf("pickEnglishTrack = %q, want %q", track.BaseURL, tt.wantURL)
			}
		})
	}
}

func TestTracksFromPlayerResp(t *testing.T) {
	t.Run("unplayable maps to video unavailable", func(t *testing.T) {
		var resp innertubePlayerResp
		mustUnmarshal(t, `{"playabilityStatus": {"status": "UNPLAYABLE", "reason": "This video is private"}}`, &resp)

		_, err := tracksFromPlayerResp(&resp)
		if !errors.Is(err, engine.ErrVideoUnavailable) {
			t.Fatalf("err = %v, want ErrVideoUnavailable", err)
		}
		if !strings.Contains(err.Error(), "This video is private") {
			t.Errorf("err = %v, want playability reason included", err)
		}
	})

	t.Run("login required maps to video unavailable", func(t *testing.T) {
		var resp innertubePlayerResp
		mustUnmarshal(t, `{"playabilityStatus": {"status": "LOGIN_REQUIRED"}}`, &resp)

		if _, err := tracksFromPlayerResp(&resp); !errors.Is(err, engine.ErrVideoUnavailable) {
			t.Fatalf("err = %v, want ErrVideoUnavailable", err)
		}
	})

	t.Run("no captions block maps to transcripts disabled", func(t *testing.T) {
		var resp innertubePlayerResp
		mustUnmarshal(t, `{"playabilityStatus": {"status": "OK"}}`, &resp)

		if _, err := tracksFromPlayerResp(&resp); !errors.Is(err, engine.ErrTranscriptsDisabled) {
			t.Fatalf("err = %v, want ErrTranscriptsDisabled", err)
		}
	})

	t.Run("tracks returned when playable", func(t *testing.T) {
		var resp innertubePlayerResp
		mustUnmarshal(t, `{
			"playabilityStatus": {"status": "OK"},
			"captions": {"playerCaptionsTracklistRenderer": {"captionTracks": [
				{"baseUrl": "https://yt/api/timedtext?v=1", "languageCode": "en", "kind": "asr"}
			]}}
		}`, &resp)

		tracks, err := tracksFromPlayerResp(&resp)
		if err != nil {
			t.Fatalf("tracksFromPlayerResp: %v", err)
		}
		if len(tracks) != 1 || tracks[0].LanguageCode != "en" || tracks[0].Kind != "asr" {
			t.Errorf("tracks = %+v", tracks)
		}
	})
}

func mustUnmarshal(t *testing.T, raw string, v any) {
	t.Helper()
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
}

func TestParseTimedText(t *testing.T) {
	doc := `<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0.0" dur="2.5">so the first thing</text>
  <text start="2.5" dur="2.5">we&amp;#39;re going to do</text>
  <text start="5.0" dur="3.1">is &lt;b&gt;look&lt;/b&gt; at it</text>
  <text start="8.1" dur="1.0"></text>
</transcript>`

	got, err := parseTimedText([]byte(doc))
	if err != nil {
		t.Fatalf("parseTimedText: %v", err)
	}
	want := "so the first thing we're going to do is look at it"
	if got != want {
		t.Errorf("parseTimedText = %q, want %q", got, want)
	}
}

func TestParseTimedTextBadXML(t *testing.T) {
	if _, err := parseTimedText([]byte("<transcript><text>unclosed")); err == nil {
		t.Error("expected XML parse error")
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple object", `{"a":1};var x`, `{"a":1}`},
		{"nested braces", `{"a":{"b":{"c":2}}}tail`, `{"a":{"b":{"c":2}}}`},
		{"braces inside strings", `{"a":"}{"}rest`, `{"a":"}{"}`},
		{"escaped quote in string", `{"a":"\"}"}rest`, `{"a":"\"}"}`},
		{"not an object", `[1,2,3]`, ""},
		{"unterminated", `{"a":1`, ""},
		{"empty", ``, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractJSON([]byte(tt.input))
			if string(got) != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

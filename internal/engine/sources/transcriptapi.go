package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Subramaniya-pillai/youtube-summarizer/internal/engine"
)

// TranscriptAPI is the transcript-service strategy: list the video's caption
// tracks through the Innertube player API, select the English one, and fetch
// its timedtext cues. Listing falls back to scraping ytInitialPlayerResponse
// from the watch page when the player endpoint is blocked for this IP.
type TranscriptAPI struct{}

// NewTranscriptAPI returns the transcript-service strategy.
func NewTranscriptAPI() *TranscriptAPI { return &TranscriptAPI{} }

func (t *TranscriptAPI) Name() string { return "transcript API" }

// Fetch implements engine.Strategy.
func (t *TranscriptAPI) Fetch(ctx context.Context, videoID string, progress engine.ProgressFunc) engine.StrategyOutcome {
	tracks, err := listTracks(ctx, videoID)
	if err != nil {
		return engine.StrategyOutcome{Err: err}
	}

	track, ok := pickEnglishTrack(tracks, engine.Cfg.TranscriptLang)
	if !ok {
		return engine.StrategyOutcome{NoData: true}
	}

	if track.Kind == "asr" {
		progress("Found auto-generated English captions, fetching...")
	} else {
		progress("Found manual English captions, fetching...")
	}

	text, err := fetchTimedText(ctx, track.BaseURL)
	if err != nil {
		return engine.StrategyOutcome{Err: err}
	}
	if text == "" {
		return engine.StrategyOutcome{Err: errors.New("empty timedtext document")}
	}
	return engine.StrategyOutcome{Text: text}
}

// listTracks queries /player for the video's caption tracks, scraping the
// watch page when the player endpoint itself fails. Unavailable and
// captions-disabled conditions surface as the engine's sentinel errors and
// are not retried through the scrape path.
func listTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	playerResp, playerErr := postPlayer(ctx, videoID)
	if playerErr == nil {
		return tracksFromPlayerResp(playerResp)
	}

	scraped, scrapeErr := scrapeTracks(ctx, videoID)
	if scrapeErr != nil {
		return nil, fmt.Errorf("player: %v; scrape: %w", playerErr, scrapeErr)
	}
	return scraped, nil
}

// scrapeTracks extracts caption tracks from the watch page's embedded
// ytInitialPlayerResponse JSON.
func scrapeTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	const marker = "ytInitialPlayerResponse = "

	body, err := fetchWatchPage(ctx, videoID)
	if err != nil {
		return nil, err
	}

	idx := strings.Index(string(body), marker)
	if idx < 0 {
		return nil, errNoPlayerResponse
	}
	jsonData := extractJSON(body[idx+len(marker):])
	if jsonData == nil {
		return nil, errors.New("failed to extract ytInitialPlayerResponse JSON")
	}

	var playerResp innertubePlayerResp
	if err := json.Unmarshal(jsonData, &playerResp); err != nil {
		return nil, fmt.Errorf("decode ytInitialPlayerResponse: %w", err)
	}
	return tracksFromPlayerResp(&playerResp)
}

// tracksFromPlayerResp maps a player response to its caption tracks,
// translating playability problems into the engine's sentinel errors.
func tracksFromPlayerResp(resp *innertubePlayerResp) ([]captionTrack, error) {
	if ps := resp.PlayabilityStatus; ps != nil {
		switch ps.Status {
		case "ERROR", "UNPLAYABLE", "LOGIN_REQUIRED":
			if ps.Reason != "" {
				return nil, fmt.Errorf("%w: %s", engine.ErrVideoUnavailable, ps.Reason)
			}
			return nil, engine.ErrVideoUnavailable
		}
	}
	if resp.Captions == nil {
		return nil, engine.ErrTranscriptsDisabled
	}
	return resp.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks, nil
}

// needsPoToken reports whether a caption track URL requires a PoToken.
// Tracks with &exp=xpe can only be fetched from a browser session.
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

// pickEnglishTrack selects the best usable track for the preferred language:
// manual track first, then auto-generated, then any English variant.
func pickEnglishTrack(tracks []captionTrack, lang string) (captionTrack, bool) {
	usable := make([]captionTrack, 0, len(tracks))
	for _, t := range tracks {
		if !needsPoToken(t.BaseURL) {
			usable = append(usable, t)
		}
	}

	for _, t := range usable {
		if t.LanguageCode == lang && t.Kind != "asr" {
			return t, true
		}
	}
	for _, t := range usable {
		if t.LanguageCode == lang {
			return t, true
		}
	}
	for _, t := range usable {
		if strings.HasPrefix(t.LanguageCode, lang) {
			return t, true
		}
	}
	return captionTrack{}, false
}

package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Subramaniya-pillai/youtube-summarizer/internal/engine"
)

// Ytdlp is the downloader strategy: shell out to yt-dlp to list the video's
// caption tracks, download the English one as WEBVTT into a scratch
// directory, and normalize the markup. Richer than the transcript API —
// auto-generated tracks are reliably reachable this way — but also the more
// failure-prone path, which is why it runs first with the API as fallback.
type Ytdlp struct{}

// NewYtdlp returns the downloader strategy.
func NewYtdlp() *Ytdlp { return &Ytdlp{} }

func (y *Ytdlp) Name() string { return "yt-dlp" }

// Fetch implements engine.Strategy.
func (y *Ytdlp) Fetch(ctx context.Context, videoID string, progress engine.ProgressFunc) engine.StrategyOutcome {
	if _, err := exec.LookPath(engine.Cfg.YtdlpPath); err != nil {
		return engine.StrategyOutcome{Err: fmt.Errorf("yt-dlp not installed: %w", err)}
	}

	info, err := probe(ctx, videoID)
	if err != nil {
		return engine.StrategyOutcome{Err: err}
	}

	lang, auto, ok := pickSubLang(info, engine.Cfg.TranscriptLang)
	if !ok {
		return engine.StrategyOutcome{NoData: true}
	}
	if auto {
		progress("Found auto-generated English captions, downloading...")
	} else {
		progress("Found manual English captions, downloading...")
	}

	doc, err := downloadVTT(ctx, videoID, lang, auto)
	if err != nil {
		return engine.StrategyOutcome{Err: err}
	}

	res := engine.NormalizeVTT(doc)
	if !res.OK() {
		return engine.StrategyOutcome{Err: fmt.Errorf("normalization failed: %s", res.Detail)}
	}
	return engine.StrategyOutcome{Text: res.Text}
}

// ytdlpInfo is the slice of yt-dlp's -J output we care about: the caption
// track maps, keyed by language code.
type ytdlpInfo struct {
	Subtitles         map[string][]ytdlpSubFormat `json:"subtitles"`
	AutomaticCaptions map[string][]ytdlpSubFormat `json:"automatic_captions"`
}

type ytdlpSubFormat struct {
	Ext string `json:"ext"`
	URL string `json:"url"`
}

// probe runs yt-dlp -J to list the video's available caption tracks without
// downloading anything.
func probe(ctx context.Context, videoID string) (*ytdlpInfo, error) {
	out, err := runYtdlp(ctx, "-J", "--skip-download", engine.WatchURL(videoID))
	if err != nil {
		return nil, err
	}
	var info ytdlpInfo
	if err := json.Unmarshal(out, &info); err != nil {
		return nil, fmt.Errorf("parse yt-dlp -J output: %w", err)
	}
	return &info, nil
}

// pickSubLang chooses the caption language key to download: a manual track in
// the preferred language wins over an auto-generated one, and exact language
// codes win over regional variants (en before en-US).
func pickSubLang(info *ytdlpInfo, lang string) (key string, auto, ok bool) {
	if key, ok := matchLang(info.Subtitles, lang); ok {
		return key, false, true
	}
	if key, ok := matchLang(info.AutomaticCaptions, lang); ok {
		return key, true, true
	}
	return "", false, false
}

func matchLang(tracks map[string][]ytdlpSubFormat, lang string) (string, bool) {
	if _, ok := tracks[lang]; ok {
		return lang, true
	}
	for key := range tracks {
		if strings.HasPrefix(key, lang+"-") {
			return key, true
		}
	}
	return "", false
}

// downloadVTT has yt-dlp write the selected caption track as WEBVTT into a
// scratch directory and returns the file contents. The scratch directory is
// removed on every exit path.
func downloadVTT(ctx context.Context, videoID, lang string, auto bool) (string, error) {
	dir, err := os.MkdirTemp("", "ytsummarizer-*")
	if err != nil {
		return "", fmt.Errorf("scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	writeFlag := "--write-subs"
	if auto {
		writeFlag = "--write-auto-subs"
	}
	_, err = runYtdlp(ctx,
		"--skip-download",
		writeFlag,
		"--sub-langs", lang,
		"--sub-format", "vtt",
		"-o", filepath.Join(dir, "%(id)s.%(ext)s"),
		engine.WatchURL(videoID),
	)
	if err != nil {
		return "", err
	}

	path, err := findVTT(dir)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read caption file: %w", err)
	}
	return string(data), nil
}

// findVTT locates the downloaded .vtt file in the scratch directory.
func findVTT(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.vtt"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no VTT file written by yt-dlp")
	}
	return matches[0], nil
}

// runYtdlp executes one yt-dlp invocation under the configured timeout,
// returning stdout. Stderr is folded into the error.
func runYtdlp(ctx context.Context, args ...string) ([]byte, error) {
	engine.IncrYtdlpRuns()

	ctx, cancel := context.WithTimeout(ctx, engine.Cfg.YtdlpTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, engine.Cfg.YtdlpPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		engine.IncrYtdlpErrors()
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return nil, fmt.Errorf("yt-dlp: %s", engine.Truncate(detail, 300))
	}
	return stdout.Bytes(), nil
}

// DefaultStrategies returns the fixed acquisition order: downloader first,
// transcript API second.
func DefaultStrategies() []engine.Strategy {
	return []engine.Strategy{NewYtdlp(), NewTranscriptAPI()}
}

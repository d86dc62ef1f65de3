package engine

import (
	"strings"
	"testing"
)

const sampleVTT = `WEBVTT
Kind: captions
Language: en

1
00:00:00.000 --> 00:00:02.500
<c>so the first thing</c> we want to do

2
00:00:02.500 --> 00:00:05.000
is <b>look at</b> the transcript

3
00:00:05.000 --> 00:00:08.120 align:start position:0%
and clean it up properly
`

func TestNormalizeVTTThreeCues(t *testing.T) {
	res := NormalizeVTT(sampleVTT)
	if !res.OK() {
		t.Fatalf("NormalizeVTT failed: %s", res.Message())
	}

	want := "so the first thing we want to do is look at the transcript and clean it up properly"
	if res.Text != want {
		t.Errorf("NormalizeVTT = %q, want %q", res.Text, want)
	}
	for _, leftover := range []string{"-->", "<", ">", "WEBVTT", "\n"} {
		if strings.Contains(res.Text, leftover) {
			t.Errorf("normalized text still contains %q", leftover)
		}
	}
}

func TestNormalizeVTTIdempotent(t *testing.T) {
	first := NormalizeVTT(sampleVTT)
	if !first.OK() {
		t.Fatalf("first pass failed: %s", first.Message())
	}
	second := NormalizeVTT(first.Text)
	if !second.OK() {
		t.Fatalf("second pass failed: %s", second.Message())
	}
	if second.Text != first.Text {
		t.Errorf("normalize not idempotent: %q != %q", second.Text, first.Text)
	}
}

func TestNormalizeVTTTwoCueHelloWorld(t *testing.T) {
	doc := "WEBVTT\n\n00:00:00.000 --> 00:00:01.000\nhello\n\n00:00:01.000 --> 00:00:02.000\nworld\n"

	Init(Config{MinTranscriptChars: 5})
	defer Init(Config{})

	res := NormalizeVTT(doc)
	if !res.OK() {
		t.Fatalf("NormalizeVTT failed: %s", res.Message())
	}
	if res.Text != "hello world" {
		t.Errorf("NormalizeVTT = %q, want %q", res.Text, "hello world")
	}
}

func TestNormalizeVTTShortInputFails(t *testing.T) {
	doc := "WEBVTT\n\n00:00:00.000 --> 00:00:01.000\nhi\n"
	res := NormalizeVTT(doc)
	if res.OK() {
		t.Fatalf("expected normalization failure, got %q", res.Text)
	}
	if res.Kind != FailureNormalization {
		t.Errorf("Kind = %q, want %q", res.Kind, FailureNormalization)
	}
	if !strings.Contains(res.Detail, "WEBVTT") {
		t.Errorf("failure detail should carry a raw-input preview, got %q", res.Detail)
	}
}

func TestNormalizeVTTUnexpectedMarkup(t *testing.T) {
	// A document that is nothing but markup should not silently yield "".
	doc := "WEBVTT\n\n1\n00:00:00.000 --> 00:00:01.000\n<c></c>\n"
	res := NormalizeVTT(doc)
	if res.OK() {
		t.Fatalf("expected failure for markup-only document, got %q", res.Text)
	}
}

func TestNormalizeVTTPreviewCapped(t *testing.T) {
	doc := "WEBVTT\n" + strings.Repeat("<x>", 1000)
	res := NormalizeVTT(doc)
	if res.OK() {
		t.Fatal("expected failure")
	}
	if len(res.Detail) > rawPreviewChars+len("raw input: ") {
		t.Errorf("preview too long: %d chars", len(res.Detail))
	}
}

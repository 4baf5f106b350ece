package internal

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
)

// ErrNoTranscript signals a soft miss: the provider works but has no
// transcript for this video in any acceptable language. The provider
// chain continues past it; any other error aborts the chain.
var ErrNoTranscript = errors.New("no transcript available")

// Provider fetches a transcript for a video in one of the preferred
// languages, most preferred first.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, videoID string, langs []string) (*Transcript, error)
}

// FetchTranscript tries each provider in order. It stops at the first
// success, continues past soft misses, and propagates any other failure
// immediately. With all providers exhausted it returns ErrNoTranscript.
func FetchTranscript(ctx context.Context, providers []Provider, videoID string, langs []string) (*Transcript, error) {
	for _, p := range providers {
		transcript, err := p.Fetch(ctx, videoID, langs)
		if err == nil {
			log.Debug("transcript fetched", "provider", p.Name(), "segments", len(transcript.Segments))
			return transcript, nil
		}
		if errors.Is(err, ErrNoTranscript) {
			log.Debug("provider has no transcript, trying next", "provider", p.Name())
			continue
		}
		return nil, err
	}
	return nil, ErrNoTranscript
}

// captionTrack is the tracklist entry shape both providers decode, as it
// appears in the player response and embedded in the watch page.
type captionTrack struct {
	BaseURL string `json:"baseUrl"`
	Name    struct {
		SimpleText string `json:"simpleText"`
	} `json:"name"`
	VssID        string `json:"vssId"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

// code returns the track's caption code: "en" for human-authored tracks,
// "a.en" for automatic ones.
func (t captionTrack) code() string {
	if t.VssID != "" {
		if t.VssID[0] == '.' {
			return t.VssID[1:]
		}
		return t.VssID
	}
	if t.Kind == "asr" {
		return "a." + t.LanguageCode
	}
	return t.LanguageCode
}

type captionTracklist struct {
	Renderer struct {
		CaptionTracks []captionTrack `json:"captionTracks"`
	} `json:"playerCaptionsTracklistRenderer"`
}

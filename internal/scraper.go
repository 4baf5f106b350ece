package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/net/html"
)

// ScraperProvider is the fallback transcript source. It scrapes the
// caption tracklist embedded in the watch page, which reaches
// auto-generated tracks the player API sometimes omits. Human-authored
// captions in any preferred language outrank automatic ones: the
// candidate codes are every preferred language in order, then a single
// "a.<lang>" auto-caption code derived from the most preferred language.
type ScraperProvider struct {
	fetcher PageFetcher
}

func NewScraperProvider(fetcher PageFetcher) *ScraperProvider {
	return &ScraperProvider{fetcher: fetcher}
}

func (p *ScraperProvider) Name() string { return "scraper" }

func (p *ScraperProvider) Fetch(ctx context.Context, videoID string, langs []string) (*Transcript, error) {
	page, err := p.fetcher.GetWatchPage(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("fetching watch page: %w", err)
	}

	body := string(page)
	tracks, err := extractCaptionTracks(body)
	if err != nil {
		return nil, err
	}

	candidates := make([]string, 0, len(langs)+1)
	candidates = append(candidates, langs...)
	if len(langs) > 0 {
		candidates = append(candidates, "a."+langs[0])
	}

	for _, code := range candidates {
		track, ok := findTrack(tracks, code)
		if !ok {
			continue
		}
		log.Debug("selected caption track", "provider", p.Name(), "code", code)

		xmlData, err := p.fetcher.Get(ctx, track.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("fetching caption track: %w", err)
		}
		segments, err := ParseTimedText(xmlData)
		if err != nil {
			return nil, err
		}

		return &Transcript{
			VideoID:  videoID,
			Title:    extractTitle(body),
			Language: track.LanguageCode,
			Segments: segments,
		}, nil
	}

	return nil, fmt.Errorf("no caption track for %v: %w", candidates, ErrNoTranscript)
}

// extractCaptionTracks cuts the captions JSON blob out of the watch page
// HTML and decodes its tracklist.
func extractCaptionTracks(body string) ([]captionTrack, error) {
	_, after, found := strings.Cut(body, `"captions":`)
	if !found {
		if strings.Contains(body, `class="g-recaptcha"`) {
			return nil, fmt.Errorf("blocked by captcha, too many requests")
		}
		if !strings.Contains(body, `"playabilityStatus":`) {
			return nil, fmt.Errorf("video unavailable")
		}
		return nil, fmt.Errorf("no captions data on watch page: %w", ErrNoTranscript)
	}

	blob, _, _ := strings.Cut(after, `,"videoDetails`)
	blob = strings.ReplaceAll(blob, "\n", "")

	var tracklist captionTracklist
	if err := json.Unmarshal([]byte(blob), &tracklist); err != nil {
		return nil, fmt.Errorf("decoding caption tracklist: %w", err)
	}

	return tracklist.Renderer.CaptionTracks, nil
}

func findTrack(tracks []captionTrack, code string) (captionTrack, bool) {
	for _, track := range tracks {
		if track.code() == code {
			return track, true
		}
	}
	return captionTrack{}, false
}

// extractTitle walks the page HTML for the <title> element.
func extractTitle(body string) string {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return ""
	}

	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
			title = strings.TrimSuffix(n.FirstChild.Data, " - YouTube")
			return
		}
		for c := n.FirstChild; c != nil && title == ""; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return title
}

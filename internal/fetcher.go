package internal

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/charmbracelet/log"
)

var watchPageURL = "https://www.youtube.com/watch?v=%s"

// PageFetcher performs the HTTP requests the transcript providers need.
// Both providers depend on this interface so tests can substitute stubs.
type PageFetcher interface {
	// Get fetches a URL with bounded retries.
	Get(ctx context.Context, url string) ([]byte, error)
	// GetWatchPage fetches a video's watch page, handling the EU consent
	// interstitial by retrying with a CONSENT cookie.
	GetWatchPage(ctx context.Context, videoID string) ([]byte, error)
	// PostJSON sends a JSON request body and returns the response body.
	PostJSON(ctx context.Context, url string, body []byte) ([]byte, error)
}

// HTTPFetcher is the default PageFetcher backed by net/http.
type HTTPFetcher struct {
	client     *http.Client
	retries    int
	retryDelay time.Duration
}

// NewHTTPFetcher creates a fetcher with the given request timeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		client:     &http.Client{Timeout: timeout},
		retries:    3,
		retryDelay: 2 * time.Second,
	}
}

func (f *HTTPFetcher) Get(ctx context.Context, url string) ([]byte, error) {
	return f.get(ctx, url, nil)
}

func (f *HTTPFetcher) get(ctx context.Context, url string, cookie *http.Cookie) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < f.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(f.retryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Accept-Language", "en-US")
		if cookie != nil {
			req.AddCookie(cookie)
		}

		resp, err := f.client.Do(req)
		if err != nil {
			lastErr = err
			log.Debug("fetch failed", "url", url, "attempt", attempt+1, "err", err)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("unexpected status %d", resp.StatusCode)
			log.Debug("fetch failed", "url", url, "attempt", attempt+1, "status", resp.StatusCode)
			continue
		}

		return body, nil
	}

	return nil, fmt.Errorf("fetching %s: %w", url, lastErr)
}

var consentFormRegex = regexp.MustCompile(`action="https://consent\.youtube\.com/s`)
var consentValueRegex = regexp.MustCompile(`name="v" value="(.*?)"`)

func (f *HTTPFetcher) GetWatchPage(ctx context.Context, videoID string) ([]byte, error) {
	pageURL := fmt.Sprintf(watchPageURL, videoID)

	body, err := f.get(ctx, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching watch page: %w", err)
	}

	if !consentFormRegex.Match(body) {
		return body, nil
	}

	log.Debug("consent page returned, retrying with cookie", "video", videoID)
	match := consentValueRegex.FindSubmatch(body)
	if match == nil {
		return nil, fmt.Errorf("consent required but no consent value found")
	}

	cookie := &http.Cookie{
		Name:   "CONSENT",
		Value:  "YES+" + string(match[1]),
		Domain: ".youtube.com",
	}

	body, err = f.get(ctx, pageURL, cookie)
	if err != nil {
		return nil, fmt.Errorf("fetching watch page after consent: %w", err)
	}
	return body, nil
}

func (f *HTTPFetcher) PostJSON(ctx context.Context, url string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", "en-US")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("posting to %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("posting to %s: unexpected status %d", url, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

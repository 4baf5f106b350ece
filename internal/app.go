package internal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

// App holds the application state and dependencies
type App struct {
	providers []Provider
	writers   []FormatWriter
	config    *Config
	ui        UIManager
}

// NewApp initializes the application
func NewApp(config *Config, options ...AppOption) *App {
	fetcher := NewHTTPFetcher(config.FetchTimeout)

	app := &App{
		providers: []Provider{
			NewInnertubeProvider(fetcher),
			NewScraperProvider(fetcher),
		},
		writers: DefaultWriters(),
		config:  config,
		ui:      NewUIManager(config.Quiet),
	}

	for _, option := range options {
		option(app)
	}

	return app
}

// AppOption customizes App creation
type AppOption func(*App)

// WithProviders sets a custom provider chain
func WithProviders(providers ...Provider) AppOption {
	return func(a *App) {
		a.providers = providers
	}
}

// WithWriters sets custom format writers
func WithWriters(writers ...FormatWriter) AppOption {
	return func(a *App) {
		a.writers = writers
	}
}

// WithUI sets a custom UI manager
func WithUI(ui UIManager) AppOption {
	return func(a *App) {
		a.ui = ui
	}
}

// Run walks a single fetch-and-save pass: prompt for the URL and output
// filename, fetch the transcript through the provider chain, then write
// every output format and report the tally. Any returned error aborts
// the run with a nonzero exit.
func (app *App) Run(ctx context.Context) error {
	url := PromptLine("Enter YouTube video URL")
	if url == "" {
		return errors.New("no URL provided")
	}

	videoID, err := ExtractVideoID(url)
	if err != nil {
		return fmt.Errorf("invalid YouTube URL: %w", err)
	}

	base := PromptLine("Enter filename to save transcript (without extension)")
	if base == "" {
		return errors.New("no filename provided")
	}
	base = trimKnownExtension(base, app.writers)

	app.ui.Printf("Fetching transcript for video ID: %s\n", videoID)
	spinner := app.ui.NewSpinner("Fetching transcript...")
	transcript, err := FetchTranscript(ctx, app.providers, videoID, []string{app.config.Lang})
	spinner.Finish()
	if err != nil {
		if errors.Is(err, ErrNoTranscript) {
			return errors.New("no transcript or captions available for this video")
		}
		return fmt.Errorf("fetching transcript: %w", err)
	}

	results := WriteAll(base, transcript, app.writers)

	saved := 0
	for _, result := range results {
		if result.Err != nil {
			fmt.Fprintf(os.Stderr, "Error saving %s output: %v\n", result.Name, result.Err)
			continue
		}
		saved++
		app.ui.Printf("Saved %s\n", result.Path)
	}

	switch {
	case saved == 0:
		return errors.New("no output formats could be saved")
	case saved < len(results):
		app.ui.Printf("%d/%d formats saved\n", saved, len(results))
	default:
		app.ui.Printf("Transcript saved in all %d formats\n", saved)
	}
	return nil
}

// trimKnownExtension drops a writer extension the user typed on the base
// filename, so "out.json" and "out" produce the same sibling files.
func trimKnownExtension(base string, writers []FormatWriter) string {
	for _, w := range writers {
		if strings.HasSuffix(base, w.Ext) {
			return strings.TrimSuffix(base, w.Ext)
		}
	}
	return base
}

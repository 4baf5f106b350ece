package internal

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// UIManager handles user-facing output: status messages and the fetch
// spinner. Quiet mode and non-TTY output both suppress the spinner.
type UIManager interface {
	NewSpinner(description string) Spinner
	Printf(format string, args ...any)
}

// Spinner abstracts the fetch progress indicator.
type Spinner interface {
	Describe(description string)
	Finish()
}

// StandardUIManager writes to stdout.
type StandardUIManager struct {
	quiet bool
	tty   bool
}

func NewUIManager(quiet bool) UIManager {
	return &StandardUIManager{
		quiet: quiet,
		tty:   isatty.IsTerminal(os.Stdout.Fd()),
	}
}

func (ui *StandardUIManager) NewSpinner(description string) Spinner {
	if ui.quiet || !ui.tty {
		return &silentSpinner{}
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
	)
	return &visibleSpinner{bar: bar}
}

func (ui *StandardUIManager) Printf(format string, args ...any) {
	if !ui.quiet {
		fmt.Printf(format, args...)
	}
}

type visibleSpinner struct {
	bar *progressbar.ProgressBar
}

func (s *visibleSpinner) Describe(description string) {
	s.bar.Describe(description)
}

func (s *visibleSpinner) Finish() {
	s.bar.Finish()
}

type silentSpinner struct{}

func (s *silentSpinner) Describe(string) {}
func (s *silentSpinner) Finish()         {}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ytscript/ytscript/internal"
)

var (
	config *internal.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ytscript",
	Short: "Fetch a YouTube video's transcript and save it as JSON, text and PDF",
	Long: `ytscript downloads the transcript of a YouTube video and saves it
to three sibling files: a JSON file with timed segments, a plain-text
file with one line per segment, and a timestamped PDF document.

The video URL and output filename are read interactively from stdin.
Human-authored captions are preferred; automatic captions in the
requested language are used as a fallback.`,
	Example: `  # Fetch a transcript (prompts for URL and filename)
  ytscript

  # Prefer German captions
  ytscript --lang de`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			config.Verbose = true
		}
		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			config.Quiet = true
		}
		if config.Verbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.WarnLevel)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if lang, _ := cmd.Flags().GetString("lang"); lang != "" {
			config.Lang = lang
		}

		app := internal.NewApp(config)
		return app.Run(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	config = internal.InitConfig()

	if err := internal.EnsureDirs(config.ConfigDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating config directory: %v\n", err)
		os.Exit(1)
	}
	if err := internal.EnsureDefaultConfig(config.ConfigDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to ensure default config: %v\n", err)
	}

	// Cancel in-flight fetches on interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, shutting down...")
		cancel()
	}()

	rootCmd.SetContext(ctx)

	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringP("lang", "l", "", "Preferred caption language code (default from config, \"en\")")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for debugging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress status output")
}

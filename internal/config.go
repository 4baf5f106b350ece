package internal

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// Config holds application settings
type Config struct {
	// User configurable settings
	Lang         string
	FetchTimeout time.Duration
	Verbose      bool
	Quiet        bool

	// Fixed XDG path (not configurable)
	ConfigDir string
}

//go:embed config.toml
var defaultFS embed.FS

// FileExists checks if a file exists
func FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

// EnsureDirs creates directories if needed
func EnsureDirs(dirs ...string) error {
	for _, dir := range dirs {
		if !FileExists(dir) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}
	}
	return nil
}

// EnsureDefaultConfig checks if a config file exists in the XDG config
// directory and creates it from the embedded default if it doesn't.
func EnsureDefaultConfig(configDir string) error {
	filePath := filepath.Join(configDir, "config.toml")
	if FileExists(filePath) {
		return nil
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	defaultContent, err := defaultFS.ReadFile("config.toml")
	if err != nil {
		return fmt.Errorf("reading embedded default configuration: %w", err)
	}

	if err := os.WriteFile(filePath, defaultContent, 0644); err != nil {
		return fmt.Errorf("writing default configuration: %w", err)
	}

	return nil
}

// InitConfig initializes Viper and loads configuration
func InitConfig() *Config {
	configDir := filepath.Join(xdg.ConfigHome, "ytscript")

	v := viper.New()

	// Defaults for configurable settings
	v.SetDefault("lang", "en")
	v.SetDefault("fetch_timeout", 30*time.Second)
	v.SetDefault("verbose", false)
	v.SetDefault("quiet", false)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	v.SetEnvPrefix("YTSCRIPT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: Error reading config file: %v\n", err)
		}
	}

	return &Config{
		Lang:         v.GetString("lang"),
		FetchTimeout: v.GetDuration("fetch_timeout"),
		Verbose:      v.GetBool("verbose"),
		Quiet:        v.GetBool("quiet"),
		ConfigDir:    configDir,
	}
}

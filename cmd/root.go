package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kagazlabs/kagaz-cli/internal/api"
	cfgpkg "github.com/kagazlabs/kagaz-cli/internal/config"
	"github.com/kagazlabs/kagaz-cli/internal/history"
)

var (
	// Global flags (wired to config/viper in loadConfig)
	cfgFile string
	debug   bool
	// Connection flags (override config if set)
	flagBaseURL        string
	flagAudioURL       string
	flagHTTPTimeoutSec int

	// Loaded configuration
	cfg *cfgpkg.Settings
)

var rootCmd = &cobra.Command{
	Use:   "kagaz",
	Short: "Kagaz CLI: upload documents for analysis and read the results",
	Long: `Kagaz is a client for the Kagaz document-analysis service. It uploads
scanned or digital documents, tracks the analysis (summary, translation,
named entities, spoken audio), and renders the results in the terminal.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.kagaz/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "analysis service base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagAudioURL, "audio-url", "", "audio base URL (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagHTTPTimeoutSec, "http-timeout", 0, "HTTP client timeout in seconds (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		cfg = &cfgpkg.Settings{}
	} else {
		cfg = c
	}

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("base-url") && flagBaseURL != "" {
		cfg.BackendBaseURL = flagBaseURL
	}
	if f.Changed("audio-url") && flagAudioURL != "" {
		cfg.AudioBaseURL = flagAudioURL
	}
	if f.Changed("http-timeout") && flagHTTPTimeoutSec > 0 {
		cfg.HTTPTimeoutSec = flagHTTPTimeoutSec
	}
}

// newClient builds the shared service client from the effective config.
func newClient() *api.Client {
	if cfg == nil {
		cfg = &cfgpkg.Settings{}
	}
	c := api.NewClient(cfg.BackendBaseURL, cfg.AudioBaseURL, cfg.HTTPTimeout())
	if debug {
		fmt.Fprintf(os.Stderr, "using backend %s\n", c.BaseURL())
	}
	return c
}

// loadHistory opens the local upload history at its configured path.
func loadHistory() (*history.File, error) {
	if cfg == nil || cfg.HistoryPath == "" {
		return nil, fmt.Errorf("history path not configured")
	}
	return history.Load(cfg.HistoryPath)
}

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/kagazlabs/kagaz-cli/internal/config"
	"github.com/kagazlabs/kagaz-cli/internal/lang"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set Kagaz configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("backend_base_url: %s\n", cfg.BackendBaseURL)
		if cfg.AudioBaseURL != "" {
			fmt.Printf("audio_base_url: %s\n", cfg.AudioBaseURL)
		}
		fmt.Printf("default_language: %s (%s)\n", cfg.DefaultLanguage, lang.DisplayName(cfg.DefaultLanguage))
		fmt.Printf("consent: %t\n", cfg.Consent)
		fmt.Printf("history_path: %s\n", cfg.HistoryPath)
		fmt.Printf("http_timeout_sec: %d\n", cfg.HTTPTimeoutSec)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "backend_base_url":
			cfg.BackendBaseURL = val
		case "audio_base_url":
			cfg.AudioBaseURL = val
		case "default_language":
			if !lang.Supported(val) {
				return fmt.Errorf("unknown language code %q (run 'kagaz languages' for the supported set)", val)
			}
			cfg.DefaultLanguage = val
		case "consent":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for consent: %v", val)
			}
			cfg.Consent = b
		case "history_path":
			cfg.HistoryPath = val
		case "http_timeout_sec":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid positive int for http_timeout_sec: %v", val)
			}
			cfg.HTTPTimeoutSec = i
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

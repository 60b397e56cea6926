package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/kagazlabs/kagaz-cli/internal/api"
)

// Settings is the persisted client configuration.
type Settings struct {
	// BackendBaseURL is where the analysis service listens.
	BackendBaseURL string `mapstructure:"backend_base_url" yaml:"backend_base_url"`
	// AudioBaseURL overrides where synthesized audio is served from.
	// Empty means the backend host serves audio too.
	AudioBaseURL string `mapstructure:"audio_base_url" yaml:"audio_base_url"`
	// DefaultLanguage is the output language used when --language is omitted.
	DefaultLanguage string `mapstructure:"default_language" yaml:"default_language"`
	// Consent records that the user agreed to remote processing of uploads.
	Consent bool `mapstructure:"consent" yaml:"consent"`
	// HistoryPath overrides where the local upload history is kept.
	HistoryPath string `mapstructure:"history_path" yaml:"history_path"`

	HTTPTimeoutSec int `mapstructure:"http_timeout_sec" yaml:"http_timeout_sec"`
}

// Dir returns the configuration directory (~/.kagaz).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".kagaz"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.kagaz/config.yaml, creating the directory if necessary.
func Save(s *Settings, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("KAGAZ")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("backend_base_url", api.DefaultBaseURL)
	v.SetDefault("audio_base_url", "")
	v.SetDefault("default_language", "en")
	v.SetDefault("consent", false)
	v.SetDefault("history_path", "")
	// Uploads wait for server-side extraction and analysis, so the
	// default timeout is generous.
	v.SetDefault("http_timeout_sec", 120)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// Resolve history_path default: ~/.kagaz/history.yaml
	if s.HistoryPath == "" {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		s.HistoryPath = filepath.Join(dir, "history.yaml")
	}
	return &s, nil
}

// HTTPTimeout returns the configured client timeout as a duration.
func (s *Settings) HTTPTimeout() time.Duration {
	if s.HTTPTimeoutSec <= 0 {
		return 120 * time.Second
	}
	return time.Duration(s.HTTPTimeoutSec) * time.Second
}

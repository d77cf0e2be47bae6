package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig holds log file settings. Logs always go to a file; the
// terminal belongs to the TUI.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	StartForm       string `mapstructure:"start_form"`
	SubmissionLimit int    `mapstructure:"submission_limit"`
}

// Load reads configuration from file and env. Env var overrides use prefix FORMPAD_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(xdg.DataHome, "formpad", "formpad.db"))
	v.SetDefault("log.path", filepath.Join(xdg.StateHome, "formpad", "formpad.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.start_form", "profile")
	v.SetDefault("ui.submission_limit", 5)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("FORMPAD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(xdg.ConfigHome, "formpad"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FORMPAD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("FORMPAD_CONFIG")
	if path == "" {
		path = filepath.Join(xdg.ConfigHome, "formpad", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("ui.start_form", cfg.UI.StartForm)
	v.Set("ui.submission_limit", cfg.UI.SubmissionLimit)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

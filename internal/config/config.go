package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI     UIConfig     `mapstructure:"ui"`
	Log    LogConfig    `mapstructure:"log"`
	Export ExportConfig `mapstructure:"export"`
}

// UIConfig controls the terminal UI.
type UIConfig struct {
	// Title is the heading shown above the list.
	Title string `mapstructure:"title"`
	// Placeholder is shown in the empty new-item input.
	Placeholder string `mapstructure:"placeholder"`
	// ConfirmRemoveAll asks before clearing the list.
	ConfirmRemoveAll bool `mapstructure:"confirm_remove_all"`
	// Mouse enables click and double-click handling.
	Mouse bool `mapstructure:"mouse"`
}

// LogConfig controls the debug log.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
	// File receives log output. Empty disables logging.
	File string `mapstructure:"file"`
}

// ExportConfig controls HTML export.
type ExportConfig struct {
	// Dir is where exports are written. Empty means ~/Downloads.
	Dir string `mapstructure:"dir"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			Title:       "Todo App",
			Placeholder: "What do you want to do?",
			Mouse:       true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers DefaultConfig on v.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("ui.title", d.UI.Title)
	v.SetDefault("ui.placeholder", d.UI.Placeholder)
	v.SetDefault("ui.confirm_remove_all", d.UI.ConfirmRemoveAll)
	v.SetDefault("ui.mouse", d.UI.Mouse)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("export.dir", d.Export.Dir)
}

// New returns a viper instance with defaults, TODO_* environment
// overrides, and the config search path set up. An explicit path skips
// the search.
func New(path string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := ConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("TODO")
	// TODO_UI_TITLE for ui.title
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file (if any) and decodes it.
// A missing config file is not an error; defaults apply.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// Apply defaults for values cleared in the file
	defaults := DefaultConfig()
	if cfg.UI.Title == "" {
		cfg.UI.Title = defaults.UI.Title
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	return &cfg, nil
}

// ConfigDir returns the config directory: ~/.config/todo
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "todo"), nil
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	TUI     TUIConfig     `yaml:"tui"`
	Scroll  ScrollConfig  `yaml:"scroll"`
	Logging LoggingConfig `yaml:"logging"`
}

// TUIConfig holds display settings.
type TUIConfig struct {
	Theme             string `yaml:"theme"` // "auto", "dark" or "light"
	HighlightColor    string `yaml:"highlight_color"`
	InputHeight       int    `yaml:"input_height"`
	CharLimit         int    `yaml:"char_limit"` // 0 means unlimited
	DraftPlaceholder  string `yaml:"draft_placeholder"`
	SearchPlaceholder string `yaml:"search_placeholder"`
}

// ScrollConfig holds scroll-to-match animation settings.
type ScrollConfig struct {
	Smooth    bool    `yaml:"smooth"`
	FPS       int     `yaml:"fps"`
	Frequency float64 `yaml:"frequency"`
	Damping   float64 `yaml:"damping"`
}

// LoggingConfig holds debug log settings.
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"` // debug, info, warn, error
}

// Defaults returns a Config with sensible defaults.
func Defaults() Config {
	return Config{
		TUI: TUIConfig{
			Theme:             "auto",
			HighlightColor:    "#FDE68A",
			InputHeight:       4,
			CharLimit:         0,
			DraftPlaceholder:  "Enter your text here...",
			SearchPlaceholder: "Search text...",
		},
		Scroll: ScrollConfig{
			Smooth:    true,
			FPS:       60,
			Frequency: 8.0,
			Damping:   1.0,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
		},
	}
}

// Load reads the config from disk. If the file doesn't exist, returns defaults.
func Load() (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(ConfigFile())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), fmt.Errorf("parsing config: %w", err)
	}

	cfg.Validate()
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigFile(), data, 0o644)
}

// Exists reports whether a config file is present.
func Exists() bool {
	_, err := os.Stat(ConfigFile())
	return err == nil
}

// Validate replaces out-of-range values with their defaults.
func (c *Config) Validate() {
	def := Defaults()

	switch c.TUI.Theme {
	case "auto", "dark", "light":
	default:
		c.TUI.Theme = def.TUI.Theme
	}
	if c.TUI.HighlightColor == "" {
		c.TUI.HighlightColor = def.TUI.HighlightColor
	}
	if c.TUI.InputHeight < 1 || c.TUI.InputHeight > 20 {
		c.TUI.InputHeight = def.TUI.InputHeight
	}
	if c.TUI.CharLimit < 0 {
		c.TUI.CharLimit = def.TUI.CharLimit
	}
	if c.Scroll.FPS <= 0 || c.Scroll.FPS > 240 {
		c.Scroll.FPS = def.Scroll.FPS
	}
	if c.Scroll.Frequency <= 0 {
		c.Scroll.Frequency = def.Scroll.Frequency
	}
	if c.Scroll.Damping <= 0 {
		c.Scroll.Damping = def.Scroll.Damping
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
}

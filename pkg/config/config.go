// Package config loads and validates dockyard configuration from YAML.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	dockerrors "github.com/odvcencio/dockyard/pkg/errors"
)

// Default configuration values exported for documentation and validation
const (
	DefaultHeaderHeight      = 1
	DefaultSpacing           = 0
	DefaultMinPartSize       = 3
	DefaultAnimationDuration = 150 * time.Millisecond
	DefaultAutosaveInterval  = 2 * time.Second
	DefaultLogLevel          = "info"
	DefaultThemeName         = "dark"
)

// Config represents the complete dockyard configuration
type Config struct {
	Animation   AnimationConfig   `yaml:"animation"`
	Layout      LayoutConfig      `yaml:"layout"`
	Theme       ThemeConfig       `yaml:"theme"`
	Persistence PersistenceConfig `yaml:"persistence"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// AnimationConfig controls collapse/expand transitions
type AnimationConfig struct {
	// Duration of a full collapse or expand. Zero or negative disables
	// animation entirely (state changes apply in a single re-fit).
	Duration time.Duration `yaml:"duration"`
	Disabled bool          `yaml:"disabled"`
}

// LayoutConfig controls part geometry
type LayoutConfig struct {
	HeaderHeight int `yaml:"header_height"` // rows per part header (vertical)
	Spacing      int `yaml:"spacing"`       // rows/cols between parts
	MinPartSize  int `yaml:"min_part_size"` // minimum content extent
}

// ThemeConfig selects the visual theme
type ThemeConfig struct {
	Name string `yaml:"name"`
}

// PersistenceConfig controls layout state storage
type PersistenceConfig struct {
	DatabasePath     string        `yaml:"database_path"`
	AutosaveInterval time.Duration `yaml:"autosave_interval"`
	Disabled         bool          `yaml:"disabled"`
}

// LoggingConfig controls the session logger
type LoggingConfig struct {
	Dir   string `yaml:"dir"`
	Level string `yaml:"level"`
}

// DefaultConfig returns a config with all defaults applied
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	dataDir := filepath.Join(home, ".dockyard")
	return &Config{
		Animation: AnimationConfig{
			Duration: DefaultAnimationDuration,
		},
		Layout: LayoutConfig{
			HeaderHeight: DefaultHeaderHeight,
			Spacing:      DefaultSpacing,
			MinPartSize:  DefaultMinPartSize,
		},
		Theme: ThemeConfig{
			Name: DefaultThemeName,
		},
		Persistence: PersistenceConfig{
			DatabasePath:     filepath.Join(dataDir, "layout.db"),
			AutosaveInterval: DefaultAutosaveInterval,
		},
		Logging: LoggingConfig{
			Dir:   filepath.Join(dataDir, "logs"),
			Level: DefaultLogLevel,
		},
	}
}

// Load reads a config file and merges it over defaults.
// A missing file is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, dockerrors.Wrap(err, dockerrors.ErrCodeConfigLoad, "failed to read config").
			WithContext("path", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, dockerrors.Wrap(err, dockerrors.ErrCodeConfigParse, "failed to parse config").
			WithContext("path", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Layout.HeaderHeight < 1 {
		return dockerrors.New(dockerrors.ErrCodeConfigInvalid, "layout.header_height must be at least 1").
			WithContext("header_height", c.Layout.HeaderHeight)
	}
	if c.Layout.Spacing < 0 {
		return dockerrors.New(dockerrors.ErrCodeConfigInvalid, "layout.spacing cannot be negative").
			WithContext("spacing", c.Layout.Spacing)
	}
	if c.Layout.MinPartSize < 0 {
		return dockerrors.New(dockerrors.ErrCodeConfigInvalid, "layout.min_part_size cannot be negative").
			WithContext("min_part_size", c.Layout.MinPartSize)
	}
	if c.Persistence.AutosaveInterval < 0 {
		return dockerrors.New(dockerrors.ErrCodeConfigInvalid, "persistence.autosave_interval cannot be negative").
			WithContext("autosave_interval", c.Persistence.AutosaveInterval.String())
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return dockerrors.New(dockerrors.ErrCodeConfigInvalid, "logging.level must be debug, info, warn, or error").
			WithContext("level", c.Logging.Level)
	}
	return nil
}

// AnimationEnabled reports whether collapse/expand transitions animate
func (c *Config) AnimationEnabled() bool {
	return !c.Animation.Disabled && c.Animation.Duration > 0
}

// Package config handles resolving configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const appName = "greetings"

// Config is the on-disk configuration. Zero values are filled from Default.
type Config struct {
	Theme   string   `yaml:"theme"`
	Style   string   `yaml:"style"`
	Count   *int     `yaml:"count,omitempty"`
	Names   []string `yaml:"names,omitempty"`
	Animate *bool    `yaml:"animate,omitempty"`

	Padding Padding `yaml:"padding"`
	Labels  Labels  `yaml:"labels"`
	Log     Log     `yaml:"log"`
	State   State   `yaml:"state"`
}

// Padding is the extra space, in terminal rows, below a greeting.
type Padding struct {
	Collapsed int `yaml:"collapsed"`
	Expanded  int `yaml:"expanded"`
}

// Labels are the button captions for each state.
type Labels struct {
	More string `yaml:"more"`
	Less string `yaml:"less"`
}

type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// State selects where UI state is kept between runs.
type State struct {
	Backend string `yaml:"backend"` // json|sqlite
	Path    string `yaml:"path"`
}

// DefaultPath is where Load looks when no --config is given.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName+".yaml")
}

// Default returns a config with every value populated.
func Default() *Config {
	animate, count := true, 1000
	return &Config{
		Theme:   "classic",
		Style:   "card",
		Count:   &count,
		Animate: &animate,
		Padding: Padding{Collapsed: 0, Expanded: 2},
		Labels:  Labels{More: "Show more", Less: "Show less"},
		Log: Log{
			Level: "info",
			File:  filepath.Join(xdg.StateHome, appName, appName+".log"),
		},
		State: State{Backend: "json"},
	}
}

// Load reads a YAML file at path, merges it over Default and validates it.
// A missing file is not an error: defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var file Config
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file at %s: %w", path, err)
	}
	cfg.merge(&file)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) merge(o *Config) {
	if o.Theme != "" {
		c.Theme = o.Theme
	}
	if o.Style != "" {
		c.Style = o.Style
	}
	if o.Count != nil {
		c.Count = o.Count
	}
	if len(o.Names) > 0 {
		c.Names = o.Names
	}
	if o.Animate != nil {
		c.Animate = o.Animate
	}
	if o.Padding != (Padding{}) {
		c.Padding = o.Padding
	}
	if o.Labels.More != "" {
		c.Labels.More = o.Labels.More
	}
	if o.Labels.Less != "" {
		c.Labels.Less = o.Labels.Less
	}
	if o.Log.Level != "" {
		c.Log.Level = o.Log.Level
	}
	if o.Log.File != "" {
		c.Log.File = o.Log.File
	}
	if o.State.Backend != "" {
		c.State.Backend = o.State.Backend
	}
	if o.State.Path != "" {
		c.State.Path = o.State.Path
	}
}

// Validate rejects values the rest of the program cannot handle.
func (c *Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		errs = append(errs, fmt.Errorf("unknown theme %q", c.Theme))
	}
	switch c.Style {
	case "plain", "card":
	default:
		errs = append(errs, fmt.Errorf("unknown style %q", c.Style))
	}
	if c.Count != nil && *c.Count < 0 {
		errs = append(errs, fmt.Errorf("count must not be negative, got %d", *c.Count))
	}
	if c.Padding.Collapsed < 0 || c.Padding.Expanded < 0 {
		errs = append(errs, errors.New("padding must not be negative"))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Log.Level))
	}
	switch c.State.Backend {
	case "json", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("unknown state backend %q", c.State.Backend))
	}
	return errors.Join(errs...)
}

// Rows is the number of generated rows shown when no names are configured.
func (c *Config) Rows() int {
	if c.Count == nil {
		return 1000
	}
	return *c.Count
}

// AnimationEnabled reports whether padding changes should spring.
func (c *Config) AnimationEnabled() bool {
	return c.Animate == nil || *c.Animate
}

// StatePath resolves the state location for the configured backend.
func (c *Config) StatePath() string {
	if c.State.Path != "" {
		return c.State.Path
	}
	name := "state.json"
	if c.State.Backend == "sqlite" {
		name = "state.sqlite"
	}
	return filepath.Join(xdg.StateHome, appName, name)
}

// Write saves c as YAML at path, creating parent directories.
func Write(path string, c *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write config file to %s: %w", path, err)
	}
	return nil
}

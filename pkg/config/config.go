// Package config handles loading and saving slidedeck configuration.
//
// The config file follows the XDG Base Directory specification and lives
// at ~/.config/slidedeck/config.yaml unless XDG_CONFIG_HOME is set.
//
// Values resolve in order: command-line flags, then the DECK_POLICY
// environment variable, then the config file, then DefaultConfig.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vanderheijden86/slidedeck/pkg/nav"
)

// NavigationConfig controls boundary behavior.
type NavigationConfig struct {
	Policy string `yaml:"policy,omitempty"` // wrap or clamp
}

// UIConfig holds presenter preference settings.
type UIConfig struct {
	Mouse       bool `yaml:"mouse"`                   // Mouse clicks and drag gestures
	CellWidthPx int  `yaml:"cell_width_px,omitempty"` // Pixels per terminal cell for swipe distance
	ShowNotes   bool `yaml:"show_notes,omitempty"`    // Open the notes pane on start
}

// DeckConfig names the deck opened when none is given on the command line.
type DeckConfig struct {
	Path  string `yaml:"path,omitempty"`
	Watch bool   `yaml:"watch,omitempty"` // Reload the deck when the file changes
}

// ExportConfig holds defaults for `deck export`.
type ExportConfig struct {
	Format string `yaml:"format,omitempty"` // svg or png
}

// Config is the top-level configuration for slidedeck.
type Config struct {
	Navigation NavigationConfig `yaml:"navigation,omitempty"`
	UI         UIConfig         `yaml:"ui,omitempty"`
	Deck       DeckConfig       `yaml:"deck,omitempty"`
	Export     ExportConfig     `yaml:"export,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Navigation: NavigationConfig{Policy: string(nav.DefaultPolicy)},
		UI: UIConfig{
			Mouse:       true,
			CellWidthPx: 8,
		},
		Export: ExportConfig{Format: "svg"},
	}
}

// ConfigDir returns the XDG config directory for slidedeck.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "slidedeck")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "slidedeck")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	cfg.Deck.Path = expandHome(cfg.Deck.Path)
	return cfg, nil
}

// ApplyEnv overlays environment overrides onto cfg.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("DECK_POLICY"); v != "" {
		p, err := nav.ParsePolicy(v)
		if err != nil {
			return fmt.Errorf("DECK_POLICY: %w", err)
		}
		c.Navigation.Policy = string(p)
	}
	return nil
}

// Validate checks enumerated fields and fills zero numeric ones.
func (c *Config) Validate() error {
	if c.Navigation.Policy == "" {
		c.Navigation.Policy = string(nav.DefaultPolicy)
	}
	p, err := nav.ParsePolicy(c.Navigation.Policy)
	if err != nil {
		return err
	}
	c.Navigation.Policy = string(p)

	if c.UI.CellWidthPx <= 0 {
		c.UI.CellWidthPx = DefaultConfig().UI.CellWidthPx
	}

	switch f := strings.ToLower(c.Export.Format); f {
	case "":
		c.Export.Format = "svg"
	case "svg", "png":
		c.Export.Format = f
	default:
		return fmt.Errorf("unknown export format %q (want svg or png)", c.Export.Format)
	}
	return nil
}

// NavPolicy returns the configured boundary policy.
func (c Config) NavPolicy() nav.Policy {
	p, err := nav.ParsePolicy(c.Navigation.Policy)
	if err != nil {
		return nav.DefaultPolicy
	}
	return p
}

// Save writes the config to the XDG config directory.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vanderheijden86/slidedeck/pkg/nav"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Navigation.Policy != "clamp" {
		t.Errorf("expected default policy 'clamp', got %q", cfg.Navigation.Policy)
	}
	if !cfg.UI.Mouse {
		t.Error("expected mouse enabled by default")
	}
	if cfg.UI.CellWidthPx != 8 {
		t.Errorf("expected cell width 8, got %d", cfg.UI.CellWidthPx)
	}
	if cfg.Export.Format != "svg" {
		t.Errorf("expected export format svg, got %q", cfg.Export.Format)
	}
}

func TestLoadFrom_NonExistent(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.NavPolicy() != nav.PolicyClamp {
		t.Errorf("expected default config, got policy %q", cfg.Navigation.Policy)
	}
}

func TestLoadFrom_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
navigation:
  policy: Wrap
ui:
  mouse: false
  cell_width_px: 10
  show_notes: true
deck:
  path: ~/talks/village.yaml
  watch: true
export:
  format: PNG
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.NavPolicy() != nav.PolicyWrap {
		t.Errorf("expected wrap policy, got %q", cfg.Navigation.Policy)
	}
	if cfg.UI.Mouse {
		t.Error("expected mouse disabled")
	}
	if cfg.UI.CellWidthPx != 10 || !cfg.UI.ShowNotes {
		t.Errorf("unexpected ui config: %+v", cfg.UI)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, "talks/village.yaml"); cfg.Deck.Path != want {
		t.Errorf("expected expanded path %q, got %q", want, cfg.Deck.Path)
	}
	if !cfg.Deck.Watch {
		t.Error("expected watch enabled")
	}
	if cfg.Export.Format != "png" {
		t.Errorf("expected export format png, got %q", cfg.Export.Format)
	}
}

func TestLoadFrom_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("deck:\n  watch: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.UI.Mouse || cfg.UI.CellWidthPx != 8 || cfg.NavPolicy() != nav.PolicyClamp {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadFrom_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"bad yaml":   "navigation: [",
		"bad policy": "navigation:\n  policy: bounce\n",
		"bad format": "export:\n  format: gif\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFrom(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig()
	t.Setenv("DECK_POLICY", "wrap")
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatal(err)
	}
	if cfg.NavPolicy() != nav.PolicyWrap {
		t.Errorf("env override ignored, got %q", cfg.Navigation.Policy)
	}

	t.Setenv("DECK_POLICY", "sideways")
	if err := cfg.ApplyEnv(); err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.Navigation.Policy = "wrap"
	cfg.UI.Mouse = false
	cfg.Deck.Path = "/decks/impact.yaml"

	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}
	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.NavPolicy() != nav.PolicyWrap || loaded.UI.Mouse || loaded.Deck.Path != "/decks/impact.yaml" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	if got := ConfigDir(); got != "/tmp/xdg-test/slidedeck" {
		t.Errorf("expected /tmp/xdg-test/slidedeck, got %q", got)
	}
	if got := ConfigPath(); got != "/tmp/xdg-test/slidedeck/config.yaml" {
		t.Errorf("unexpected config path %q", got)
	}
}

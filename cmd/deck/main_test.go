package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vanderheijden86/slidedeck/pkg/config"
	"github.com/vanderheijden86/slidedeck/pkg/debug"
)

// run executes the CLI with an isolated config file.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := cmd.Execute()
	return out.String(), err
}

const sampleDeck = `title: Sample
slides:
  - id: 1
    type: title
    content:
      title: Hello
  - id: 2
    type: chart
    content:
      title: Revenue Mix
      chartType: pie
      data:
        - {name: Rent, value: 60}
        - {name: Grants, value: 40}
`

func writeDeck(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.yaml")
	if err := os.WriteFile(path, []byte(sampleDeck), 0644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "deck v") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestOutlineBuiltin(t *testing.T) {
	out, err := run(t, "outline")
	if err != nil {
		t.Fatalf("outline: %v", err)
	}
	if !strings.HasPrefix(out, "# ") || !strings.Contains(out, "## 1. ") || !strings.Contains(out, "## 23. ") {
		t.Errorf("outline should cover the bundled deck:\n%s", out)
	}
}

func TestOutlineNamedBuiltin(t *testing.T) {
	if _, err := run(t, "outline", "builtin:impact"); err != nil {
		t.Errorf("named builtin: %v", err)
	}
	if _, err := run(t, "outline", "builtin:nope"); err == nil {
		t.Error("unknown builtin should fail")
	}
}

func TestOutlineFile(t *testing.T) {
	out, err := run(t, "outline", writeDeck(t))
	if err != nil {
		t.Fatalf("outline: %v", err)
	}
	if !strings.Contains(out, "## 2. Revenue Mix") {
		t.Errorf("missing chart section:\n%s", out)
	}
}

func TestExportCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	out, err := run(t, "export", writeDeck(t), "--dir", dir, "--format", "png")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	want := filepath.Join(dir, "02-revenue-mix.png")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("expected %s: %v", want, err)
	}
	if !strings.Contains(out, "slide 2:") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	if _, err := run(t, "export", writeDeck(t), "--dir", t.TempDir(), "--format", "gif"); err == nil {
		t.Error("gif should be rejected")
	}
}

func TestPresentValidatesFlagsBeforeStarting(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"start past end", []string{"--start", "99"}},
		{"start zero", []string{"--start", "0"}},
		{"bad policy", []string{"--policy", "bounce"}},
		{"missing file", []string{"present", filepath.Join(t.TempDir(), "missing.yaml")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Errorf("expected an error for %v", tt.args)
			}
		})
	}
}

func TestInvalidPolicyEnv(t *testing.T) {
	t.Setenv("DECK_POLICY", "bounce")
	if _, err := run(t, "version"); err == nil {
		t.Error("invalid DECK_POLICY should fail config loading")
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	exec := func(args ...string) (string, error) {
		cmd := newRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(append([]string{"--config", path, "config", "init"}, args...))
		err := cmd.Execute()
		return out.String(), err
	}

	out, err := exec()
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("output should name the file, got %q", out)
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if cfg != config.DefaultConfig() {
		t.Errorf("written config = %+v, want defaults", cfg)
	}

	if _, err := exec(); err == nil {
		t.Error("init should refuse to overwrite without --force")
	}
	if _, err := exec("--force"); err != nil {
		t.Errorf("init --force: %v", err)
	}
}

func TestLoadConfigDumpsWhenDebugging(t *testing.T) {
	var buf bytes.Buffer
	debug.SetOutput(&buf)
	t.Cleanup(func() { debug.SetOutput(nil) })

	a := &app{cfgPath: filepath.Join(t.TempDir(), "missing.yaml")}
	if err := a.loadConfig(); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if !strings.Contains(buf.String(), "config: config.Config") {
		t.Errorf("expected config dump in debug output:\n%s", buf.String())
	}
}

func TestResolveDeckPrecedence(t *testing.T) {
	path := writeDeck(t)
	a := &app{}
	a.cfg.Deck.Path = path

	d, got, err := a.resolveDeck(nil)
	if err != nil || got != path || d.Title != "Sample" {
		t.Errorf("configured path: got %q %q %v", got, d.Title, err)
	}
	d, got, err = a.resolveDeck([]string{"builtin:wisdom-village"})
	if err != nil || got != "" || d.Len() != 23 {
		t.Errorf("argument should win: got %q %d %v", got, d.Len(), err)
	}
}

func TestAutoCloseAfter(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"", 0},
		{"abc", 0},
		{"-5", 0},
		{" 250 ", 250 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := autoCloseAfter(tt.in); got != tt.want {
			t.Errorf("autoCloseAfter(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

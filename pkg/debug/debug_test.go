package debug

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestDisabledIsSilent(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetOutput(nil)
	t.Cleanup(func() { SetOutput(nil) })

	if Enabled() {
		t.Fatal("expected debug logging to be off")
	}
	Log("hidden %d", 1)
	LogTiming("hidden", time.Millisecond)
	LogEnterExit("hidden")()
	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote output: %q", buf.String())
	}
	if Logger() == nil {
		t.Error("Logger should never be nil")
	}
}

func TestLogWritesWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	if !Enabled() {
		t.Fatal("SetOutput should enable logging")
	}
	Log("loaded %d slides", 23)
	LogIf(false, "skipped")
	LogIf(true, "kept")
	LogTiming("deck.Load", 3*time.Millisecond)
	Dump("policy", "clamp")

	out := buf.String()
	for _, want := range []string{"loaded 23 slides", "kept", "deck.Load", "policy: string = clamp"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "skipped") {
		t.Error("LogIf(false) should not write")
	}
}

func TestLogEnterExit(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	LogEnterExit("render")()
	out := buf.String()
	if !strings.Contains(out, "-> render") || !strings.Contains(out, "<- render") {
		t.Errorf("expected enter and exit lines:\n%s", out)
	}
}

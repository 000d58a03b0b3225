// Package debug provides conditional debug logging for slidedeck.
//
// Debug logging is enabled by setting the DECK_DEBUG environment variable:
//
//	DECK_DEBUG=1 deck present talk.yaml
//
// The presenter owns the terminal, so messages go to a file instead of
// stderr: DECK_DEBUG_FILE when set, otherwise slidedeck-debug.log in the
// system temp directory. When disabled (default), all debug functions are
// no-ops.
//
// Usage:
//
//	debug.Log("loaded %d slides", d.Len())
//	debug.LogTiming("deck.Load", elapsed)
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger is nil while debug logging is off.
var logger atomic.Pointer[zap.SugaredLogger]

func init() {
	if os.Getenv("DECK_DEBUG") != "" {
		SetEnabled(true)
	}
}

// DefaultPath is where debug output lands when DECK_DEBUG_FILE is unset.
func DefaultPath() string {
	if p := os.Getenv("DECK_DEBUG_FILE"); p != "" {
		return p
	}
	return filepath.Join(os.TempDir(), "slidedeck-debug.log")
}

// Enabled returns whether debug logging is enabled.
func Enabled() bool {
	return logger.Load() != nil
}

// SetEnabled turns debug logging on (writing to DefaultPath) or off.
func SetEnabled(e bool) {
	if !e {
		disable()
		return
	}
	if Enabled() {
		return
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{DefaultPath()}
	cfg.ErrorOutputPaths = []string{DefaultPath()}
	cfg.DisableStacktrace = true
	l, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "debug: cannot open log file: %v\n", err)
		return
	}
	logger.Store(l.Named("deck").Sugar())
}

// SetOutput enables debug logging to w. Passing nil disables it.
func SetOutput(w io.Writer) {
	if w == nil {
		disable()
		return
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), zapcore.DebugLevel)
	logger.Store(zap.New(core).Named("deck").Sugar())
}

// Logger returns the structured logger, or a no-op logger while disabled.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l.Desugar()
	}
	return zap.NewNop()
}

// Sync flushes buffered output.
func Sync() {
	if l := logger.Load(); l != nil {
		_ = l.Sync()
	}
}

func disable() {
	if l := logger.Swap(nil); l != nil {
		_ = l.Sync()
	}
}

// Log writes a debug message if debug logging is enabled.
// Uses printf-style formatting.
func Log(format string, args ...any) {
	if l := logger.Load(); l != nil {
		l.Debugf(format, args...)
	}
}

// LogTiming writes a timing message if debug logging is enabled.
func LogTiming(name string, d time.Duration) {
	if l := logger.Load(); l != nil {
		l.Debugw("timing", "op", name, "elapsed", d)
	}
}

// LogIf writes a debug message only if the condition is true.
func LogIf(cond bool, format string, args ...any) {
	if !cond {
		return
	}
	Log(format, args...)
}

// LogEnterExit logs function entry and exit with timing.
//
//	defer debug.LogEnterExit("renderSlide")()
func LogEnterExit(name string) func() {
	l := logger.Load()
	if l == nil {
		return func() {}
	}
	l.Debugf("-> %s", name)
	start := time.Now()
	return func() {
		l.Debugf("<- %s (%v)", name, time.Since(start))
	}
}

// Dump logs a value with its type.
func Dump(name string, v any) {
	if l := logger.Load(); l != nil {
		l.Debugf("%s: %T = %+v", name, v, v)
	}
}

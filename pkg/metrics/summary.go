package metrics

import (
	"go.uber.org/zap"

	"github.com/vanderheijden86/slidedeck/pkg/debug"
)

// LogSummary writes one debug log entry per metric with data. It is
// called when the presenter exits.
func LogSummary() {
	if !debug.Enabled() {
		return
	}
	l := debug.Logger().Named("metrics")
	for _, s := range AllTimingStats() {
		l.Debug("timing summary",
			zap.String("name", s.Name),
			zap.Int64("count", s.Count),
			zap.Float64("avg_ms", s.AvgMs),
			zap.Float64("max_ms", s.MaxMs),
			zap.Float64("min_ms", s.MinMs),
		)
	}
}

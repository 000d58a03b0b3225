// Package chart draws the numeric slides: bar, pie and line charts over a
// list of named values. Text renderings feed the terminal presenter;
// SVG and PNG renderings back the export command.
//
// Callers hand in points that already passed deck.ValidPoints. Points
// without a value are skipped defensively, never drawn as zero.
package chart

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/vanderheijden86/slidedeck/pkg/deck"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("chart has no data points")

// Kind is the chart form.
type Kind string

const (
	Bar  Kind = "bar"
	Pie  Kind = "pie"
	Line Kind = "line"
)

// ParseKind maps a slide's chartType to a Kind, defaulting to Bar for
// empty input.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case Bar, "":
		return Bar, nil
	case Pie:
		return Pie, nil
	case Line:
		return Line, nil
	default:
		return "", fmt.Errorf("unknown chart type %q", s)
	}
}

// series is the numeric view of a point list.
type series struct {
	names  []string
	values []float64
}

func newSeries(points []deck.DataPoint) series {
	var s series
	for _, p := range points {
		if p.Name == "" || p.Value == nil {
			continue
		}
		s.names = append(s.names, p.Name)
		s.values = append(s.values, *p.Value)
	}
	return s
}

func (s series) len() int { return len(s.values) }

// bounds returns the value range, always including zero so bars and
// axes start at the baseline.
func (s series) bounds() (lo, hi float64) {
	if s.len() == 0 {
		return 0, 0
	}
	lo, hi = floats.Min(s.values), floats.Max(s.values)
	if lo > 0 {
		lo = 0
	}
	if hi < 0 {
		hi = 0
	}
	return lo, hi
}

// shares returns each value's fraction of the positive total. Negative
// values get no share.
func (s series) shares() []float64 {
	pos := make([]float64, s.len())
	for i, v := range s.values {
		if v > 0 {
			pos[i] = v
		}
	}
	total := floats.Sum(pos)
	if total == 0 {
		return pos
	}
	floats.Scale(1/total, pos)
	return pos
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

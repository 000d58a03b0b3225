package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vanderheijden86/slidedeck/pkg/deck"
)

// NoDataText is drawn in place of a chart with nothing to plot.
const NoDataText = "(no data)"

// pieGlyphs tell adjacent slices apart without color.
var pieGlyphs = []string{"█", "▓", "▒", "░"}

// RenderText draws points as a plain-text chart at most width cells wide.
// height only applies to line charts. Styling is left to the caller.
func RenderText(kind Kind, points []deck.DataPoint, width, height int) string {
	s := newSeries(points)
	if s.len() == 0 {
		return NoDataText
	}
	if width < 20 {
		width = 20
	}
	switch kind {
	case Pie:
		return renderPieText(s, width)
	case Line:
		return renderLineText(s, width, height)
	default:
		return renderBarText(s, width)
	}
}

// renderBarText draws one horizontal bar per point.
func renderBarText(s series, width int) string {
	labelW := 0
	for _, n := range s.names {
		labelW = max(labelW, runewidth.StringWidth(n))
	}
	labelW = min(labelW, width/3)

	valueW := 0
	for _, v := range s.values {
		valueW = max(valueW, len(formatValue(v)))
	}

	barMax := width - labelW - valueW - 2
	if barMax < 1 {
		barMax = 1
	}
	_, hi := s.bounds()

	lines := make([]string, 0, s.len())
	for i, v := range s.values {
		n := 0
		if hi > 0 && v > 0 {
			n = int(math.Round(v / hi * float64(barMax)))
			n = max(n, 1)
		}
		lines = append(lines, fmt.Sprintf("%s %s%s %s",
			fit(s.names[i], labelW),
			strings.Repeat("█", n),
			strings.Repeat(" ", barMax-n),
			formatValue(v),
		))
	}
	return strings.Join(lines, "\n")
}

// renderPieText draws the shares as one stacked bar followed by a legend
// line per point.
func renderPieText(s series, width int) string {
	shares := s.shares()
	barW := width - 2

	var bar strings.Builder
	used := 0
	for i, share := range shares {
		n := int(math.Round(share * float64(barW)))
		if i == len(shares)-1 && share > 0 {
			n = barW - used
		}
		n = max(0, min(n, barW-used))
		bar.WriteString(strings.Repeat(pieGlyphs[i%len(pieGlyphs)], n))
		used += n
	}

	lines := []string{bar.String()}
	for i, name := range s.names {
		lines = append(lines, fmt.Sprintf("%s %s %5.1f%%",
			pieGlyphs[i%len(pieGlyphs)],
			fit(name, width-10),
			shares[i]*100,
		))
	}
	return strings.Join(lines, "\n")
}

// renderLineText plots each point as a dot on a height-row grid, with the
// value range on the left axis and the names underneath.
func renderLineText(s series, width, height int) string {
	if height < 3 {
		height = 8
	}
	lo, hi := s.bounds()
	loLabel, hiLabel := formatValue(lo), formatValue(hi)
	axisW := max(len(loLabel), len(hiLabel))

	plotW := width - axisW - 2
	colW := max(1, plotW/s.len())

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", colW*s.len()))
	}
	for i, v := range s.values {
		row := 0
		if hi > lo {
			row = int(math.Round((v - lo) / (hi - lo) * float64(height-1)))
		}
		grid[height-1-row][i*colW+colW/2] = '●'
	}

	var b strings.Builder
	for r, cells := range grid {
		label := ""
		switch r {
		case 0:
			label = hiLabel
		case height - 1:
			label = loLabel
		}
		fmt.Fprintf(&b, "%*s │%s\n", axisW, label, strings.TrimRight(string(cells), " "))
	}
	fmt.Fprintf(&b, "%*s └%s\n", axisW, "", strings.Repeat("─", colW*s.len()))

	var names strings.Builder
	for _, n := range s.names {
		names.WriteString(fit(n, colW))
	}
	fmt.Fprintf(&b, "%*s  %s", axisW, "", strings.TrimRight(names.String(), " "))
	return b.String()
}

// fit truncates or pads s to exactly w cells.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > w {
		s = runewidth.Truncate(s, w, "…")
	}
	return runewidth.FillRight(s, w)
}

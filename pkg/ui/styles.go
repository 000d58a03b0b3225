package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Adaptive colors for light and dark terminals
// Light mode colors tuned for WCAG AA compliance (contrast ratio >= 4.5:1)
// ══════════════════════════════════════════════════════════════════════════════

var (
	ColorBgHighlight = lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#44475A"}
	ColorText        = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#F8F8F2"}
	ColorSubtext     = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BFBFBF"}
	ColorMuted       = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#6272A4"}

	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#6B47D9", Dark: "#BD93F9"}
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"}
	ColorInfo      = lipgloss.AdaptiveColor{Light: "#006080", Dark: "#8BE9FD"}
	ColorSuccess   = lipgloss.AdaptiveColor{Light: "#007700", Dark: "#50FA7B"}
	ColorWarning   = lipgloss.AdaptiveColor{Light: "#B06800", Dark: "#FFB86C"}
	ColorDanger    = lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"}
)

// ══════════════════════════════════════════════════════════════════════════════
// ICONS - Deck icon names mapped to single-cell glyphs
// ══════════════════════════════════════════════════════════════════════════════

var iconGlyphs = map[string]string{
	"heart":      "♥",
	"users":      "☺",
	"user":       "☺",
	"home":       "⌂",
	"building":   "▦",
	"leaf":       "❦",
	"tree":       "♣",
	"sun":        "☼",
	"star":       "★",
	"sparkles":   "✦",
	"brain":      "✺",
	"book":       "▤",
	"calendar":   "▦",
	"clock":      "◷",
	"trending":   "↗",
	"trendingup": "↗",
	"chart":      "▮",
	"dollar":     "$",
	"money":      "$",
	"target":     "◎",
	"shield":     "⛨",
	"check":      "✓",
	"award":      "✪",
	"globe":      "◍",
	"music":      "♪",
	"coffee":     "☕",
	"activity":   "∿",
	"zap":        "ϟ",
	"lightbulb":  "✧",
}

// IconGlyph returns a glyph for a deck icon name, or a bullet when the
// name is unknown or empty.
func IconGlyph(name string) string {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
	if g, ok := iconGlyphs[key]; ok {
		return g
	}
	return "•"
}

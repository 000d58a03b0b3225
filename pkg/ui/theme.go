package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
)

// TermProfile holds the detected terminal color profile. Computed once at
// package init so every style helper can branch without re-detecting.
var TermProfile colorprofile.Profile

func init() {
	TermProfile = colorprofile.Detect(os.Stdout, os.Environ())
}

// ThemeBg returns the given hex color for TrueColor terminals and
// lipgloss.NoColor{} otherwise, so 16/256-color terminals keep their own
// background.
func ThemeBg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.TrueColor {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}

// ThemeFg returns the given hex color for ANSI256+ terminals and a safe
// ANSI white (color 7) for 16-color or lower terminals.
func ThemeFg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.ANSI256 {
		return lipgloss.ANSIColor(7)
	}
	return lipgloss.Color(hex)
}

// Theme bundles the presenter's colors and the styles built from them.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
	Danger    lipgloss.AdaptiveColor

	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor

	Base     lipgloss.Style
	Header   lipgloss.Style
	Title    lipgloss.Style // Slide headline
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Card     lipgloss.Style
	Focused  lipgloss.Style // Highlighted metric or dimension
	Quote    lipgloss.Style

	MutedText   lipgloss.Style
	PrimaryBold lipgloss.Style
	AccentBold  lipgloss.Style
	Bullet      lipgloss.Style

	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Status         lipgloss.Style
}

// DefaultTheme returns the Dracula-inspired adaptive theme.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Renderer: r,

		Primary:   ColorPrimary,
		Secondary: ColorSecondary,
		Subtext:   ColorSubtext,
		Accent:    ColorInfo,
		Success:   ColorSuccess,
		Warning:   ColorWarning,
		Danger:    ColorDanger,

		Border:    lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#44475A"},
		Highlight: ColorBgHighlight,
		Muted:     ColorMuted,
	}

	t.Base = r.NewStyle().Foreground(ColorText)

	t.Header = r.NewStyle().
		Background(t.Primary).
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#282A36"}).
		Bold(true).
		Padding(0, 1)

	t.Title = r.NewStyle().Foreground(t.Primary).Bold(true)
	t.Subtitle = r.NewStyle().Foreground(t.Subtext).Italic(true)
	t.Body = r.NewStyle().Foreground(ColorText)

	t.Card = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	t.Focused = r.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(t.Primary).
		Background(ThemeBg("#44475A")).
		Padding(0, 1)

	t.Quote = r.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(t.Accent).
		PaddingLeft(2).
		Italic(true)

	t.MutedText = r.NewStyle().Foreground(t.Muted)
	t.PrimaryBold = r.NewStyle().Foreground(t.Primary).Bold(true)
	t.AccentBold = r.NewStyle().Foreground(t.Accent).Bold(true)
	t.Bullet = r.NewStyle().Foreground(t.Success)

	t.Button = r.NewStyle().Foreground(t.Primary).Bold(true)
	t.ButtonDisabled = r.NewStyle().Foreground(t.Muted).Faint(true)
	t.Status = r.NewStyle().Foreground(t.Subtext)

	return t
}

// ContentColor resolves a color authored in a deck ("#16a34a" or a
// palette name like "emerald") to a terminal color, falling back to the
// theme accent.
func (t Theme) ContentColor(name string) lipgloss.TerminalColor {
	name = strings.TrimSpace(strings.ToLower(name))
	if strings.HasPrefix(name, "#") && (len(name) == 7 || len(name) == 4) {
		return ThemeFg(name)
	}
	if hex, ok := namedColors[name]; ok {
		return ThemeFg(hex)
	}
	return t.Accent
}

// namedColors are the palette names used by metric and dimension entries.
var namedColors = map[string]string{
	"green":   "#50FA7B",
	"emerald": "#34D399",
	"blue":    "#6699FF",
	"cyan":    "#8BE9FD",
	"teal":    "#00CED1",
	"purple":  "#BD93F9",
	"pink":    "#FF79C6",
	"red":     "#FF5555",
	"orange":  "#FFB86C",
	"amber":   "#FBBF24",
	"yellow":  "#F1FA8C",
}

// TestTheme returns a theme suitable for use in tests.
func TestTheme() Theme {
	return DefaultTheme(lipgloss.NewRenderer(os.Stdout))
}

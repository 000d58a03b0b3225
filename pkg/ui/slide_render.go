package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/slidedeck/pkg/chart"
	"github.com/vanderheijden86/slidedeck/pkg/deck"
	"github.com/vanderheijden86/slidedeck/pkg/metrics"
)

// UnsupportedText is shown in place of a slide whose type has no layout.
const UnsupportedText = "Slide type not supported"

const (
	minSlideWidth = 24
	cardGap       = 2
	chartHeight   = 10
)

// RenderSlide draws one slide at the given width. highlight names the
// metric or dimension to emphasize; it is ignored by other layouts.
// RenderSlide never fails: slides without a layout get a placeholder.
func RenderSlide(s deck.Slide, theme Theme, width int, highlight string) string {
	defer metrics.Timer(metrics.SlideRender)()

	if width < minSlideWidth {
		width = minSlideWidth
	}
	r := slideRenderer{t: theme, width: width, highlight: highlight}

	switch c := s.Content.(type) {
	case deck.TitleContent:
		return r.title(c)
	case deck.HeroContent:
		return r.hero(c)
	case deck.BodyContent:
		return r.body(c)
	case deck.SplitContent:
		return r.split(c)
	case deck.QuoteContent:
		return r.quote(c)
	case deck.ComparisonContent:
		return r.comparison(c)
	case deck.StatsContent:
		return r.stats(c)
	case deck.GridContent:
		return r.grid(c)
	case deck.TimelineContent:
		return r.timeline(c)
	case deck.ChartContent:
		return r.chart(c)
	case deck.ShowcaseContent:
		return r.showcase(c)
	case deck.MetricsContent:
		return r.metrics(c)
	case deck.DimensionsContent:
		return r.dimensions(c)
	default:
		return r.unsupported(s)
	}
}

// HighlightTargets lists the names tab cycles through on s, in order.
func HighlightTargets(s deck.Slide) []string {
	var names []string
	switch c := s.Content.(type) {
	case deck.MetricsContent:
		for _, m := range c.Metrics {
			names = append(names, m.Title)
		}
	case deck.DimensionsContent:
		for _, d := range c.Dimensions {
			names = append(names, d.Name)
		}
	}
	return names
}

type slideRenderer struct {
	t         Theme
	width     int
	highlight string
}

func (r slideRenderer) style() lipgloss.Style {
	return r.t.Renderer.NewStyle()
}

// stack joins the non-empty blocks with a blank line between them.
func stack(blocks ...string) string {
	kept := blocks[:0:0]
	for _, b := range blocks {
		if strings.TrimSpace(b) != "" {
			kept = append(kept, b)
		}
	}
	return strings.Join(kept, "\n\n")
}

func (r slideRenderer) heading(title, subtitle string) string {
	var b strings.Builder
	b.WriteString(r.t.Title.Width(r.width).Render(title))
	if subtitle != "" {
		b.WriteString("\n")
		b.WriteString(r.t.Subtitle.Width(r.width).Render(subtitle))
	}
	return b.String()
}

func (r slideRenderer) centered(s lipgloss.Style, text string) string {
	if text == "" {
		return ""
	}
	return s.Width(r.width).Align(lipgloss.Center).Render(text)
}

// image stands in for a picture the terminal cannot show.
func (r slideRenderer) image(path string) string {
	if path == "" {
		return ""
	}
	return r.t.MutedText.Render("▧ " + filepath.Base(path))
}

func (r slideRenderer) bullets(points []string, width int) string {
	if len(points) == 0 {
		return ""
	}
	lines := make([]string, len(points))
	text := r.t.Body.Width(max(width-2, 1))
	for i, p := range points {
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top, r.t.Bullet.Render("• "), text.Render(p))
	}
	return strings.Join(lines, "\n")
}

func (r slideRenderer) insights(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return r.t.AccentBold.Render("Insights") + "\n" + r.bullets(items, r.width)
}

// cardColumns picks how many cards fit side by side.
func (r slideRenderer) cardColumns(n int) int {
	cols := clampInt(r.width/26, 1, 4)
	return clampInt(cols, 1, max(n, 1))
}

// row lays cards out in rows of equal-width columns. Each card gets the
// inner width it may use.
func (r slideRenderer) row(n int, card func(i, inner int) string) string {
	if n == 0 {
		return ""
	}
	cols := r.cardColumns(n)
	cellW := (r.width - (cols-1)*cardGap) / cols
	// Border and padding take four cells.
	inner := max(cellW-4, 4)

	var rows []string
	for start := 0; start < n; start += cols {
		var cells []string
		for i := start; i < min(start+cols, n); i++ {
			if i > start {
				cells = append(cells, strings.Repeat(" ", cardGap))
			}
			cells = append(cells, card(i, inner))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (r slideRenderer) card(inner int, lines ...string) string {
	return r.t.Card.Width(inner + 2).Render(strings.Join(nonEmpty(lines), "\n"))
}

func nonEmpty(lines []string) []string {
	out := lines[:0:0]
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// ── layouts ─────────────────────────────────────────────────────────────────

func (r slideRenderer) title(c deck.TitleContent) string {
	byline := strings.Join(nonEmpty([]string{c.Author, c.Date}), " · ")
	return stack(
		r.centered(r.t.Title.Padding(1, 0), c.Title),
		r.centered(r.t.Subtitle, c.Subtitle),
		r.centered(r.t.MutedText, byline),
		r.centered(r.style(), r.image(c.Image)),
	)
}

func (r slideRenderer) hero(c deck.HeroContent) string {
	var callout string
	if c.Callout != "" {
		callout = r.centered(r.style(), r.t.Card.BorderForeground(r.t.Accent).Render(r.t.AccentBold.Render(c.Callout)))
	}
	return stack(
		r.centered(r.style(), r.image(c.BackgroundImage)),
		r.centered(r.t.Title.Padding(1, 0), c.Title),
		r.centered(r.t.Subtitle, c.Subtitle),
		callout,
	)
}

func (r slideRenderer) body(c deck.BodyContent) string {
	cards := r.row(len(c.Cards), func(i, inner int) string {
		cd := c.Cards[i]
		return r.card(inner,
			r.t.PrimaryBold.Render(IconGlyph(cd.Icon)+" "+cd.Title),
			r.t.Body.Width(inner).Render(cd.Description),
		)
	})
	return stack(
		r.heading(c.Title, c.Subtitle),
		r.bullets(c.Points, r.width),
		cards,
		r.image(c.Image),
	)
}

func (r slideRenderer) split(c deck.SplitContent) string {
	half := r.width
	sideBySide := r.width >= 60
	if sideBySide {
		half = (r.width - cardGap*2) / 2
	}
	left := r
	left.width = half

	lhs := stack(left.heading(c.LeftTitle, c.LeftSubtitle), left.bullets(c.LeftPoints, half))

	var overlay string
	if c.RightOverlay != nil {
		overlay = r.t.Card.Width(max(half-2, 4)).Render(strings.Join(nonEmpty([]string{
			r.t.PrimaryBold.Render(c.RightOverlay.Title),
			c.RightOverlay.Description,
		}), "\n"))
	}
	rhs := stack(r.image(c.RightImage), overlay)

	if !sideBySide || rhs == "" {
		return stack(lhs, rhs)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		r.style().Width(half).Render(lhs),
		strings.Repeat(" ", cardGap*2),
		rhs,
	)
}

func (r slideRenderer) quote(c deck.QuoteContent) string {
	attribution := c.Author
	if c.Role != "" {
		attribution = strings.Join(nonEmpty([]string{c.Author, c.Role}), ", ")
	}
	if attribution != "" {
		attribution = r.t.MutedText.Render("— " + attribution)
	}
	return stack(
		r.t.Quote.Width(r.width-3).Render("“"+c.Quote+"”"),
		attribution,
		r.image(c.Image),
	)
}

func (r slideRenderer) comparison(c deck.ComparisonContent) string {
	sides := []deck.Side{c.Before, c.After}
	accents := []lipgloss.AdaptiveColor{r.t.Danger, r.t.Success}
	cols := r.row(2, func(i, inner int) string {
		s := sides[i]
		head := r.style().Foreground(accents[i]).Bold(true).Render(s.Title)
		var sub string
		if s.Subtitle != "" {
			sub = r.t.Subtitle.Render(s.Subtitle)
		}
		return r.t.Card.BorderForeground(accents[i]).Width(inner + 2).Render(
			strings.Join(nonEmpty([]string{head, sub, r.bullets(s.Points, inner)}), "\n"))
	})
	return stack(r.heading(c.Title, c.Subtitle), cols)
}

func (r slideRenderer) stats(c deck.StatsContent) string {
	cards := r.row(len(c.Stats), func(i, inner int) string {
		st := c.Stats[i]
		return r.card(inner,
			r.t.AccentBold.Render(IconGlyph(st.Icon)+" "+st.Value),
			r.t.PrimaryBold.Render(st.Label),
			r.t.MutedText.Width(inner).Render(st.Description),
		)
	})
	return stack(r.heading(c.Title, c.Subtitle), cards)
}

func (r slideRenderer) grid(c deck.GridContent) string {
	cards := r.row(len(c.Items), func(i, inner int) string {
		it := c.Items[i]
		var metric string
		if it.Metric != "" {
			metric = r.t.AccentBold.Render(it.Metric)
		}
		return r.card(inner,
			r.t.PrimaryBold.Render(it.Title),
			r.t.Body.Width(inner).Render(it.Description),
			metric,
			r.image(it.Image),
		)
	})
	return stack(r.heading(c.Title, c.Subtitle), cards)
}

func (r slideRenderer) timeline(c deck.TimelineContent) string {
	var b strings.Builder
	textW := max(r.width-4, 8)
	for i, ph := range c.Phases {
		if i > 0 {
			b.WriteString(r.t.MutedText.Render("│") + "\n")
		}
		head := r.t.PrimaryBold.Render(ph.Title)
		if ph.Duration != "" {
			head += "  " + r.t.MutedText.Render(ph.Duration)
		}
		b.WriteString(r.t.Bullet.Render("●") + "  " + head + "\n")
		if ph.Description != "" {
			b.WriteString(indent(r.t.Body.Width(textW).Render(ph.Description), "│  ") + "\n")
		}
		for _, m := range ph.Milestones {
			b.WriteString(r.t.MutedText.Render("│  ") + r.t.Bullet.Render("✓ ") + m + "\n")
		}
	}
	return stack(r.heading(c.Title, c.Subtitle), strings.TrimRight(b.String(), "\n"))
}

func indent(block, prefix string) string {
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

func (r slideRenderer) chart(c deck.ChartContent) string {
	var plot string
	kind, err := chart.ParseKind(c.ChartType)
	if err != nil {
		plot = r.t.MutedText.Render(fmt.Sprintf("Chart type %q not supported", c.ChartType))
	} else {
		plot = chart.RenderText(kind, deck.ValidPoints(c.Data), r.width-4, chartHeight)
	}
	return stack(
		r.heading(c.Title, c.Subtitle),
		r.t.Card.Width(r.width-2).Render(plot),
		r.insights(c.Insights),
	)
}

func (r slideRenderer) showcase(c deck.ShowcaseContent) string {
	features := r.row(len(c.Features), func(i, inner int) string {
		f := c.Features[i]
		return r.card(inner,
			r.t.PrimaryBold.Render(IconGlyph(f.Icon)+" "+f.Title),
			r.t.Body.Width(inner).Render(f.Description),
		)
	})
	var side []string
	for _, img := range c.SideImages {
		side = append(side, r.image(img))
	}
	return stack(
		r.heading(c.Title, c.Subtitle),
		r.image(c.MainImage),
		features,
		strings.Join(side, "   "),
	)
}

func (r slideRenderer) metrics(c deck.MetricsContent) string {
	var detail string
	cards := r.row(len(c.Metrics), func(i, inner int) string {
		m := c.Metrics[i]
		color := r.t.ContentColor(m.Color)
		value := r.style().Foreground(color).Bold(true).Render(formatMetric(m.Value) + m.Unit)
		lines := []string{
			r.t.PrimaryBold.Render(IconGlyph(m.Icon) + " " + m.Title),
			value,
			r.style().Foreground(color).Render(meter(m.Value, 100, inner)),
			r.t.MutedText.Render(m.Period),
		}
		box := r.t.Card
		if m.Title == r.highlight {
			box = r.t.Focused
			detail = r.detail(m.Title, m.Description, m.Impact, m.Details)
		}
		return box.Width(inner + 2).Render(strings.Join(nonEmpty(lines), "\n"))
	})
	return stack(r.heading(c.Title, c.Subtitle), cards, detail, r.insights(c.Insights))
}

func (r slideRenderer) dimensions(c deck.DimensionsContent) string {
	nameW := 0
	for _, d := range c.Dimensions {
		nameW = max(nameW, lipgloss.Width(d.Name))
	}
	nameW = min(nameW, r.width/3)
	barW := max(r.width-nameW-12, 4)

	var rows []string
	var detail string
	for _, d := range c.Dimensions {
		color := r.t.ContentColor(d.Color)
		marker := "  "
		name := r.t.Body.Render(padRight(truncateRunesHelper(d.Name, nameW, "…"), nameW))
		if d.Name == r.highlight {
			marker = r.t.PrimaryBold.Render("▶ ")
			name = r.t.PrimaryBold.Render(padRight(truncateRunesHelper(d.Name, nameW, "…"), nameW))
			detail = r.detail(d.Name, d.Description, "", d.Details)
		}
		rows = append(rows, marker+name+"  "+
			r.style().Foreground(color).Render(meter(d.Value, 100, barW))+"  "+
			r.t.AccentBold.Render(formatMetric(d.Value)))
	}
	return stack(r.heading(c.Title, c.Subtitle), strings.Join(rows, "\n"), detail, r.insights(c.Insights))
}

// detail is the expanded block for the highlighted metric or dimension.
func (r slideRenderer) detail(title, description, impact, details string) string {
	var lines []string
	lines = append(lines, r.t.PrimaryBold.Render(title))
	if description != "" {
		lines = append(lines, description)
	}
	if impact != "" {
		lines = append(lines, r.t.AccentBold.Render("Impact: ")+impact)
	}
	if details != "" {
		lines = append(lines, r.t.MutedText.Render(details))
	}
	return r.t.Focused.Width(r.width - 4).Render(strings.Join(lines, "\n"))
}

func (r slideRenderer) unsupported(s deck.Slide) string {
	msg := r.centered(r.t.Title.Padding(2, 0), UnsupportedText)
	if k := deck.KindOf(s.Content); k != "" {
		msg = stack(msg, r.centered(r.t.MutedText, fmt.Sprintf("type %q", string(k))))
	}
	return msg
}

func formatMetric(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

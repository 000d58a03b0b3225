package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/vanderheijden86/slidedeck/pkg/deck"
)

// Outline writes d as Markdown: one "##" section per slide with its
// fields as bullets, followed by speaker notes as a quote.
func Outline(w io.Writer, d deck.Deck) error {
	var sb strings.Builder
	if d.Title != "" {
		fmt.Fprintf(&sb, "# %s\n\n", d.Title)
	}
	for i, s := range d.Slides {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(SlideOutline(s))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// SlideOutline renders a single slide as a Markdown section.
func SlideOutline(s deck.Slide) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %d. %s\n\n", s.ID, s.Headline())

	bullet := func(format string, args ...any) {
		sb.WriteString("- ")
		fmt.Fprintf(&sb, format, args...)
		sb.WriteString("\n")
	}
	text := func(label, v string) {
		if v != "" {
			bullet("%s: %s", label, v)
		}
	}
	list := func(items []string) {
		for _, it := range items {
			bullet("%s", it)
		}
	}

	switch c := s.Content.(type) {
	case deck.TitleContent:
		text("Subtitle", c.Subtitle)
		text("Author", c.Author)
		text("Date", c.Date)
	case deck.HeroContent:
		text("Subtitle", c.Subtitle)
		text("Callout", c.Callout)
	case deck.BodyContent:
		text("Subtitle", c.Subtitle)
		list(c.Points)
		for _, card := range c.Cards {
			bullet("**%s** %s", card.Title, card.Description)
		}
	case deck.SplitContent:
		text("Subtitle", c.LeftSubtitle)
		list(c.LeftPoints)
		if c.RightOverlay != nil {
			bullet("**%s** %s", c.RightOverlay.Title, c.RightOverlay.Description)
		}
	case deck.QuoteContent:
		fmt.Fprintf(&sb, "> %s\n", c.Quote)
		if c.Author != "" {
			fmt.Fprintf(&sb, ">\n> %s", c.Author)
			if c.Role != "" {
				fmt.Fprintf(&sb, ", %s", c.Role)
			}
			sb.WriteString("\n")
		}
	case deck.ComparisonContent:
		text("Subtitle", c.Subtitle)
		for _, side := range []deck.Side{c.Before, c.After} {
			bullet("**%s**", side.Title)
			for _, p := range side.Points {
				fmt.Fprintf(&sb, "  - %s\n", p)
			}
		}
	case deck.StatsContent:
		text("Subtitle", c.Subtitle)
		for _, st := range c.Stats {
			bullet("**%s** %s", st.Value, st.Label)
		}
	case deck.GridContent:
		text("Subtitle", c.Subtitle)
		for _, it := range c.Items {
			if it.Metric != "" {
				bullet("**%s** %s (%s)", it.Title, it.Description, it.Metric)
			} else {
				bullet("**%s** %s", it.Title, it.Description)
			}
		}
	case deck.TimelineContent:
		text("Subtitle", c.Subtitle)
		for _, ph := range c.Phases {
			bullet("**%s** (%s) %s", ph.Title, ph.Duration, ph.Description)
			for _, m := range ph.Milestones {
				fmt.Fprintf(&sb, "  - %s\n", m)
			}
		}
	case deck.ChartContent:
		text("Subtitle", c.Subtitle)
		for _, p := range deck.ValidPoints(c.Data) {
			bullet("%s: %g", p.Name, *p.Value)
		}
		list(c.Insights)
	case deck.ShowcaseContent:
		text("Subtitle", c.Subtitle)
		for _, f := range c.Features {
			bullet("**%s** %s", f.Title, f.Description)
		}
	case deck.MetricsContent:
		text("Subtitle", c.Subtitle)
		for _, m := range c.Metrics {
			bullet("**%s**: %g%s %s", m.Title, m.Value, m.Unit, m.Period)
		}
		list(c.Insights)
	case deck.DimensionsContent:
		text("Subtitle", c.Subtitle)
		for _, dim := range c.Dimensions {
			bullet("**%s**: %g", dim.Name, dim.Value)
		}
		list(c.Insights)
	case deck.Unsupported:
		bullet("_unsupported slide type %q_", c.Type)
	}

	if s.Notes != "" {
		sb.WriteString("\n")
		for _, line := range strings.Split(strings.TrimRight(s.Notes, "\n"), "\n") {
			fmt.Fprintf(&sb, "> %s\n", line)
		}
	}
	return sb.String()
}

package ui

import (
	"strings"
	"testing"

	"github.com/vanderheijden86/slidedeck/pkg/deck"
)

func TestRenderSlideBuiltinDeck(t *testing.T) {
	theme := TestTheme()
	d := deck.Builtin()
	for i := 0; i < d.Len(); i++ {
		s := d.At(i)
		out := RenderSlide(s, theme, 100, "")
		if strings.TrimSpace(out) == "" {
			t.Errorf("slide %d (%s) rendered empty", s.ID, s.Kind)
		}
		if strings.Contains(out, UnsupportedText) {
			t.Errorf("slide %d (%s) fell back to the placeholder", s.ID, s.Kind)
		}
	}
}

func TestRenderSlideUnsupported(t *testing.T) {
	s := deck.Slide{ID: 9, Kind: "hologram", Content: deck.Unsupported{Type: "hologram"}}
	out := RenderSlide(s, TestTheme(), 80, "")
	if !strings.Contains(out, UnsupportedText) {
		t.Errorf("expected fallback text, got:\n%s", out)
	}
	if !strings.Contains(out, "hologram") {
		t.Errorf("expected the type name, got:\n%s", out)
	}
}

func TestRenderSlideNilContent(t *testing.T) {
	out := RenderSlide(deck.Slide{ID: 1}, TestTheme(), 80, "")
	if !strings.Contains(out, UnsupportedText) {
		t.Errorf("expected fallback text, got:\n%s", out)
	}
}

func TestRenderSlideChartDrawsValidPointsOnly(t *testing.T) {
	s := deck.Slide{ID: 4, Kind: deck.KindChart, Content: deck.ChartContent{
		Title:     "Program Reach",
		ChartType: "bar",
		Data: []deck.DataPoint{
			deck.Point("Rooms", 40),
			{Name: "Pending"},
			deck.Point("Programs", 60),
		},
	}}
	out := RenderSlide(s, TestTheme(), 80, "")
	if !strings.Contains(out, "Rooms") || !strings.Contains(out, "Programs") {
		t.Errorf("expected both valid points:\n%s", out)
	}
	if strings.Contains(out, "Pending") {
		t.Errorf("valueless point should not be drawn:\n%s", out)
	}
}

func TestRenderSlideChartUnknownType(t *testing.T) {
	s := deck.Slide{Content: deck.ChartContent{Title: "Radar", ChartType: "radar", Data: []deck.DataPoint{deck.Point("a", 1)}}}
	out := RenderSlide(s, TestTheme(), 80, "")
	if !strings.Contains(out, `Chart type "radar" not supported`) {
		t.Errorf("expected chart type notice:\n%s", out)
	}
}

func TestRenderSlideOmitsMissingRegions(t *testing.T) {
	s := deck.Slide{Content: deck.QuoteContent{Quote: "Home is people."}}
	out := RenderSlide(s, TestTheme(), 80, "")
	if !strings.Contains(out, "Home is people.") {
		t.Errorf("quote missing:\n%s", out)
	}
	if strings.Contains(out, "—") {
		t.Errorf("attribution should be omitted without an author:\n%s", out)
	}

	split := deck.Slide{Content: deck.SplitContent{LeftTitle: "Left", LeftPoints: []string{"one"}}}
	if out := RenderSlide(split, TestTheme(), 80, ""); strings.Contains(out, "▧") {
		t.Errorf("image placeholder should be omitted without an image:\n%s", out)
	}
}

func metricsSlide() deck.Slide {
	return deck.Slide{ID: 5, Kind: deck.KindMetrics, Content: deck.MetricsContent{
		Title: "Outcomes",
		Metrics: []deck.Metric{
			{Title: "Loneliness", Value: 68, Unit: "%", Details: "UCLA scale"},
			{Title: "Participation", Value: 84, Unit: "%", Impact: "+31 points"},
		},
	}}
}

func TestRenderSlideMetricsHighlight(t *testing.T) {
	theme := TestTheme()
	plain := RenderSlide(metricsSlide(), theme, 100, "")
	if strings.Contains(plain, "UCLA scale") {
		t.Error("details should only show for the highlighted metric")
	}
	focused := RenderSlide(metricsSlide(), theme, 100, "Loneliness")
	if !strings.Contains(focused, "UCLA scale") {
		t.Errorf("highlighted metric should show details:\n%s", focused)
	}
	if strings.Contains(focused, "+31 points") {
		t.Error("only the highlighted metric's details should show")
	}
}

func TestRenderSlideDimensionsHighlight(t *testing.T) {
	s := deck.Slide{Content: deck.DimensionsContent{
		Title: "Wellbeing",
		Dimensions: []deck.Dimension{
			{Name: "Physical", Value: 82, Details: "Monthly assessments"},
			{Name: "Social", Value: 91},
		},
	}}
	out := RenderSlide(s, TestTheme(), 80, "Physical")
	if !strings.Contains(out, "▶ Physical") {
		t.Errorf("expected highlight marker:\n%s", out)
	}
	if !strings.Contains(out, "Monthly assessments") {
		t.Errorf("expected details block:\n%s", out)
	}
}

func TestRenderSlideNarrowWidth(t *testing.T) {
	theme := TestTheme()
	d := deck.Builtin()
	for i := 0; i < d.Len(); i++ {
		if out := RenderSlide(d.At(i), theme, 5, ""); out == "" {
			t.Errorf("slide %d rendered empty at narrow width", i+1)
		}
	}
}

func TestHighlightTargets(t *testing.T) {
	got := HighlightTargets(metricsSlide())
	if len(got) != 2 || got[0] != "Loneliness" || got[1] != "Participation" {
		t.Errorf("unexpected targets %v", got)
	}
	if HighlightTargets(deck.Slide{Content: deck.TitleContent{Title: "x"}}) != nil {
		t.Error("title slide has no targets")
	}
}

func TestIconGlyph(t *testing.T) {
	if IconGlyph("Heart") != "♥" || IconGlyph("trending-up") != "↗" {
		t.Error("known icons should map to glyphs")
	}
	if IconGlyph("") != "•" || IconGlyph("unknown") != "•" {
		t.Error("unknown icons should fall back to a bullet")
	}
}

// Package deck holds the slide model: a fixed, ordered sequence of typed
// slide records loaded once at start and never mutated afterwards.
//
// Each slide carries a Kind tag and a Content value whose concrete type is
// selected by that tag. Content is a closed sum type: every renderable kind
// has exactly one struct, and anything else decodes to Unsupported so the
// presenter can show a placeholder instead of failing.
package deck

// Kind is the slide type tag that selects a layout.
type Kind string

const (
	KindTitle      Kind = "title"
	KindContent    Kind = "content"
	KindChart      Kind = "chart"
	KindStats      Kind = "stats"
	KindTimeline   Kind = "timeline"
	KindHero       Kind = "hero"
	KindSplit      Kind = "split"
	KindGrid       Kind = "grid"
	KindQuote      Kind = "quote"
	KindComparison Kind = "comparison"
	KindShowcase   Kind = "showcase"
	KindMetrics    Kind = "custom-metrics"
	KindDimensions Kind = "wellness-triangle"
)

// contentTypes maps every tag with a dedicated renderer to a constructor
// for its content struct.
var contentTypes = map[Kind]func() Content{
	KindTitle:      func() Content { return &TitleContent{} },
	KindHero:       func() Content { return &HeroContent{} },
	KindContent:    func() Content { return &BodyContent{} },
	KindSplit:      func() Content { return &SplitContent{} },
	KindQuote:      func() Content { return &QuoteContent{} },
	KindComparison: func() Content { return &ComparisonContent{} },
	KindStats:      func() Content { return &StatsContent{} },
	KindGrid:       func() Content { return &GridContent{} },
	KindTimeline:   func() Content { return &TimelineContent{} },
	KindChart:      func() Content { return &ChartContent{} },
	KindShowcase:   func() Content { return &ShowcaseContent{} },
	KindMetrics:    func() Content { return &MetricsContent{} },
	KindDimensions: func() Content { return &DimensionsContent{} },
}

// IsKnown reports whether k has a renderer.
func (k Kind) IsKnown() bool {
	_, ok := contentTypes[k]
	return ok
}

// Slide is one static content record.
type Slide struct {
	ID      int
	Title   string
	Kind    Kind
	Content Content
	Notes   string // Speaker notes, Markdown
}

// Content is implemented by one struct per slide kind.
type Content interface {
	kind() Kind
}

// Card is an icon/title/description block used by content slides.
type Card struct {
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Overlay is the caption drawn over the image side of a split slide.
type Overlay struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Side is one column of a comparison slide.
type Side struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Points   []string `json:"points,omitempty"`
}

// Stat is a single headline figure.
type Stat struct {
	Icon        string `json:"icon,omitempty"`
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// GridItem is one tile of a grid slide.
type GridItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Metric      string `json:"metric,omitempty"`
}

// Phase is one step of a timeline slide.
type Phase struct {
	Title       string   `json:"title"`
	Duration    string   `json:"duration,omitempty"`
	Description string   `json:"description,omitempty"`
	Milestones  []string `json:"milestones,omitempty"`
}

// Feature is a highlighted capability on a showcase slide.
type Feature struct {
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Metric is one ring of a custom-metrics slide.
type Metric struct {
	Icon        string  `json:"icon,omitempty"`
	Title       string  `json:"title"`
	Value       float64 `json:"value"`
	Unit        string  `json:"unit,omitempty"`
	Period      string  `json:"period,omitempty"`
	Color       string  `json:"color,omitempty"`
	Description string  `json:"description,omitempty"`
	Impact      string  `json:"impact,omitempty"`
	Details     string  `json:"details,omitempty"`
}

// Dimension is one node of a wellness-triangle slide.
type Dimension struct {
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Color       string  `json:"color,omitempty"`
	Description string  `json:"description,omitempty"`
	Details     string  `json:"details,omitempty"`
}

type TitleContent struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Image    string `json:"image,omitempty"`
	Author   string `json:"author,omitempty"`
	Date     string `json:"date,omitempty"`
}

type HeroContent struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle,omitempty"`
	BackgroundImage string `json:"backgroundImage,omitempty"`
	Callout         string `json:"callout,omitempty"`
}

// BodyContent is the "content" kind: points and/or cards beside an image.
type BodyContent struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Image    string   `json:"image,omitempty"`
	Points   []string `json:"points,omitempty"`
	Cards    []Card   `json:"cards,omitempty"`
}

type SplitContent struct {
	LeftTitle    string   `json:"leftTitle"`
	LeftSubtitle string   `json:"leftSubtitle,omitempty"`
	LeftPoints   []string `json:"leftPoints,omitempty"`
	RightImage   string   `json:"rightImage,omitempty"`
	RightOverlay *Overlay `json:"rightOverlay,omitempty"`
}

type QuoteContent struct {
	Quote  string `json:"quote"`
	Author string `json:"author,omitempty"`
	Role   string `json:"role,omitempty"`
	Image  string `json:"image,omitempty"`
}

type ComparisonContent struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Before   Side   `json:"before"`
	After    Side   `json:"after"`
}

type StatsContent struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Stats    []Stat `json:"stats,omitempty"`
}

type GridContent struct {
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle,omitempty"`
	Items    []GridItem `json:"items,omitempty"`
}

type TimelineContent struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle,omitempty"`
	Phases   []Phase `json:"phases,omitempty"`
}

type ChartContent struct {
	Title     string      `json:"title"`
	Subtitle  string      `json:"subtitle,omitempty"`
	ChartType string      `json:"chartType"`
	Data      []DataPoint `json:"data,omitempty"`
	Insights  []string    `json:"insights,omitempty"`
}

type ShowcaseContent struct {
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle,omitempty"`
	MainImage  string    `json:"mainImage,omitempty"`
	Features   []Feature `json:"features,omitempty"`
	SideImages []string  `json:"sideImages,omitempty"`
}

type MetricsContent struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Metrics  []Metric `json:"metrics,omitempty"`
	Insights []string `json:"insights,omitempty"`
}

type DimensionsContent struct {
	Title      string      `json:"title"`
	Subtitle   string      `json:"subtitle,omitempty"`
	Dimensions []Dimension `json:"wellnessDimensions,omitempty"`
	Insights   []string    `json:"insights,omitempty"`
}

// Unsupported is the content of any slide whose tag has no renderer.
type Unsupported struct {
	Type string
}

func (TitleContent) kind() Kind      { return KindTitle }
func (HeroContent) kind() Kind       { return KindHero }
func (BodyContent) kind() Kind       { return KindContent }
func (SplitContent) kind() Kind      { return KindSplit }
func (QuoteContent) kind() Kind      { return KindQuote }
func (ComparisonContent) kind() Kind { return KindComparison }
func (StatsContent) kind() Kind      { return KindStats }
func (GridContent) kind() Kind       { return KindGrid }
func (TimelineContent) kind() Kind   { return KindTimeline }
func (ChartContent) kind() Kind      { return KindChart }
func (ShowcaseContent) kind() Kind   { return KindShowcase }
func (MetricsContent) kind() Kind    { return KindMetrics }
func (DimensionsContent) kind() Kind { return KindDimensions }
func (u Unsupported) kind() Kind     { return Kind(u.Type) }

// KindOf returns the tag a content value renders as.
func KindOf(c Content) Kind {
	if c == nil {
		return ""
	}
	return c.kind()
}

// Deck is the full ordered sequence of slides for a presentation.
type Deck struct {
	Title  string
	Slides []Slide
}

// Len returns the number of slides.
func (d Deck) Len() int {
	return len(d.Slides)
}

// At returns the slide at index i. Callers keep i within [0, Len()).
func (d Deck) At(i int) Slide {
	return d.Slides[i]
}

// Headline returns the most prominent text of a slide: the content title
// when the layout has one, the slide title otherwise.
func (s Slide) Headline() string {
	switch c := s.Content.(type) {
	case TitleContent:
		return firstNonEmpty(c.Title, s.Title)
	case HeroContent:
		return firstNonEmpty(c.Title, s.Title)
	case BodyContent:
		return firstNonEmpty(c.Title, s.Title)
	case SplitContent:
		return firstNonEmpty(c.LeftTitle, s.Title)
	case ComparisonContent:
		return firstNonEmpty(c.Title, s.Title)
	case StatsContent:
		return firstNonEmpty(c.Title, s.Title)
	case GridContent:
		return firstNonEmpty(c.Title, s.Title)
	case TimelineContent:
		return firstNonEmpty(c.Title, s.Title)
	case ChartContent:
		return firstNonEmpty(c.Title, s.Title)
	case ShowcaseContent:
		return firstNonEmpty(c.Title, s.Title)
	case MetricsContent:
		return firstNonEmpty(c.Title, s.Title)
	case DimensionsContent:
		return firstNonEmpty(c.Title, s.Title)
	default:
		return s.Title
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

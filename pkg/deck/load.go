package deck

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/vanderheijden86/slidedeck/pkg/debug"
	"github.com/vanderheijden86/slidedeck/pkg/metrics"
)

// Common errors.
var (
	ErrEmptyDeck     = errors.New("deck has no slides")
	ErrUnknownFormat = errors.New("unknown deck format")
)

// Format identifies a deck file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath infers the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// wireDeck is the on-disk shape shared by every format. Content stays a
// generic map until the slide type is known.
type wireDeck struct {
	Title  string      `json:"title" yaml:"title" toml:"title"`
	Slides []wireSlide `json:"slides" yaml:"slides" toml:"slides"`
}

type wireSlide struct {
	ID      int            `json:"id" yaml:"id" toml:"id"`
	Title   string         `json:"title" yaml:"title" toml:"title"`
	Type    string         `json:"type" yaml:"type" toml:"type"`
	Notes   string         `json:"notes" yaml:"notes" toml:"notes"`
	Content map[string]any `json:"content" yaml:"content" toml:"content"`
}

// Load reads a deck file, picking the decoder from its extension.
func Load(path string) (Deck, error) {
	start := time.Now()
	defer func() {
		d := time.Since(start)
		metrics.DeckLoad.Record(d)
		debug.LogTiming("deck.Load "+path, d)
	}()

	format, err := FormatFromPath(path)
	if err != nil {
		return Deck{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("reading deck: %w", err)
	}
	d, err := Parse(data, format)
	if err != nil {
		return Deck{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return d, nil
}

// Parse decodes a deck document in the given format.
func Parse(data []byte, format Format) (Deck, error) {
	var w wireDeck
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &w); err != nil {
			return Deck{}, fmt.Errorf("parsing yaml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &w); err != nil {
			return Deck{}, fmt.Errorf("parsing json: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &w); err != nil {
			return Deck{}, fmt.Errorf("parsing toml: %w", err)
		}
	default:
		return Deck{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if len(w.Slides) == 0 {
		return Deck{}, ErrEmptyDeck
	}

	d := Deck{Title: w.Title, Slides: make([]Slide, 0, len(w.Slides))}
	for i, ws := range w.Slides {
		content, err := decodeContent(Kind(ws.Type), ws.Content)
		if err != nil {
			return Deck{}, fmt.Errorf("slide %d (%s): %w", i+1, ws.Type, err)
		}
		id := ws.ID
		if id == 0 {
			id = i + 1
		}
		d.Slides = append(d.Slides, Slide{
			ID:      id,
			Title:   ws.Title,
			Kind:    Kind(ws.Type),
			Content: content,
			Notes:   ws.Notes,
		})
	}
	return d, nil
}

// decodeContent re-encodes the generic content map and decodes it into the
// struct for kind. Fields the struct does not know are ignored; fields the
// document omits stay zero.
func decodeContent(kind Kind, raw map[string]any) (Content, error) {
	if !kind.IsKnown() {
		debug.Log("slide type %q has no renderer", kind)
		return Unsupported{Type: string(kind)}, nil
	}
	target := contentTypes[kind]()

	if len(raw) > 0 {
		data, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("encoding content: %w", err)
		}
		if err := json.Unmarshal(data, target); err != nil {
			return nil, fmt.Errorf("decoding content: %w", err)
		}
	}
	return deref(target), nil
}

func deref(c Content) Content {
	switch v := c.(type) {
	case *TitleContent:
		return *v
	case *HeroContent:
		return *v
	case *BodyContent:
		return *v
	case *SplitContent:
		return *v
	case *QuoteContent:
		return *v
	case *ComparisonContent:
		return *v
	case *StatsContent:
		return *v
	case *GridContent:
		return *v
	case *TimelineContent:
		return *v
	case *ChartContent:
		return *v
	case *ShowcaseContent:
		return *v
	case *MetricsContent:
		return *v
	case *DimensionsContent:
		return *v
	default:
		return c
	}
}

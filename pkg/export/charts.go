// Package export writes deck artifacts outside the terminal: chart images
// for every chart slide and a Markdown outline of the whole deck.
package export

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vanderheijden86/slidedeck/pkg/chart"
	"github.com/vanderheijden86/slidedeck/pkg/debug"
	"github.com/vanderheijden86/slidedeck/pkg/deck"
)

var slugNonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9]+`)

// maxWorkers bounds concurrent image renders.
const maxWorkers = 4

// ChartFile is one image written by Charts.
type ChartFile struct {
	SlideID int
	Path    string
}

// Charts renders every chart slide of d into dir as format ("svg" or
// "png"). Slides whose data has no valid point are skipped. Files are
// returned in slide order.
func Charts(ctx context.Context, d deck.Deck, dir, format string) ([]ChartFile, error) {
	defer debug.LogEnterExit("export.Charts")()

	format = strings.ToLower(format)
	if format == "" {
		format = "svg"
	}
	if format != "svg" && format != "png" {
		return nil, fmt.Errorf("unsupported format %q (want svg or png)", format)
	}

	type job struct {
		pos   int
		slide deck.Slide
		body  deck.ChartContent
	}
	var jobs []job
	for i, s := range d.Slides {
		if c, ok := s.Content.(deck.ChartContent); ok {
			jobs = append(jobs, job{pos: i + 1, slide: s, body: c})
		}
	}

	written := make([]*ChartFile, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxWorkers)

	for i, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			kind, err := chart.ParseKind(j.body.ChartType)
			if err != nil {
				return fmt.Errorf("slide %d: %w", j.slide.ID, err)
			}
			path := filepath.Join(dir, chartFileName(j.pos, j.slide, format))
			err = chart.Save(chart.SnapshotOptions{
				Path:   path,
				Format: format,
				Title:  j.slide.Headline(),
				Kind:   kind,
				Points: deck.ValidPoints(j.body.Data),
			})
			if errors.Is(err, chart.ErrNoData) {
				debug.Log("export: slide %d has no chart data, skipped", j.slide.ID)
				return nil
			}
			if err != nil {
				return fmt.Errorf("slide %d: %w", j.slide.ID, err)
			}
			written[i] = &ChartFile{SlideID: j.slide.ID, Path: path}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	files := make([]ChartFile, 0, len(written))
	for _, f := range written {
		if f != nil {
			files = append(files, *f)
		}
	}
	return files, nil
}

// chartFileName builds "03-revenue-mix.svg" from the slide's 1-based
// position and headline. Ids may repeat within a deck; positions do not.
func chartFileName(pos int, s deck.Slide, format string) string {
	slug := strings.Trim(slugNonAlphanumericRegex.ReplaceAllString(strings.ToLower(s.Headline()), "-"), "-")
	if slug == "" {
		slug = "chart"
	}
	return fmt.Sprintf("%02d-%s.%s", pos, slug, format)
}

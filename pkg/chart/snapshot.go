package chart

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"git.sr.ht/~sbinet/gg"
	"github.com/ajstarks/svgo"
	"golang.org/x/image/font/basicfont"

	"github.com/vanderheijden86/slidedeck/pkg/deck"
	"github.com/vanderheijden86/slidedeck/pkg/metrics"
)

// SnapshotOptions controls chart image export.
type SnapshotOptions struct {
	Path   string // Output path; format inferred from extension when Format empty
	Format string // "svg" or "png" (case-insensitive). If empty, inferred from Path.
	Title  string // Optional title drawn in the header band
	Kind   Kind
	Points []deck.DataPoint
}

const (
	snapWidth   = 720
	snapHeight  = 440
	snapPadding = 36.0
	snapHeader  = 64.0
)

var (
	colorBackdrop = color.RGBA{0xf9, 0xfa, 0xfb, 0xff}
	colorHeaderBG = color.RGBA{0xf3, 0xf4, 0xf6, 0xff}
	colorAxis     = color.RGBA{0x9c, 0xa3, 0xaf, 0xff}
	colorText     = color.RGBA{0x11, 0x11, 0x11, 0xff}
	colorSubtle   = color.RGBA{0x66, 0x66, 0x66, 0xff}

	// palette cycles across bars, slices and line markers.
	palette = []color.RGBA{
		{0x16, 0xa3, 0x4a, 0xff},
		{0x25, 0x63, 0xeb, 0xff},
		{0xf5, 0x9e, 0x0b, 0xff},
		{0xdc, 0x26, 0x26, 0xff},
		{0x7c, 0x3a, 0xed, 0xff},
		{0x08, 0x91, 0xb2, 0xff},
	}
)

// ResolveFormat works out the output format from opts, defaulting to SVG
// and appending the extension to an extension-less path.
func ResolveFormat(opts SnapshotOptions) (string, string, error) {
	path := opts.Path
	format := strings.ToLower(strings.TrimPrefix(opts.Format, "."))
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".svg":
			format = "svg"
		case ".png":
			format = "png"
		default:
			format = "svg"
			if path != "" && filepath.Ext(path) == "" {
				path += ".svg"
			}
		}
	}
	if format != "svg" && format != "png" {
		return "", "", fmt.Errorf("unsupported format %q (want svg or png)", format)
	}
	if path == "" {
		return "", "", fmt.Errorf("output path is required")
	}
	return path, format, nil
}

// Save renders a chart image to opts.Path.
func Save(opts SnapshotOptions) error {
	start := time.Now()
	defer func() { metrics.ChartRender.Record(time.Since(start)) }()

	s := newSeries(opts.Points)
	if s.len() == 0 {
		return ErrNoData
	}
	path, format, err := ResolveFormat(opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}

	switch format {
	case "png":
		return renderPNG(path, opts, s)
	default:
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		return RenderSVG(file, opts)
	}
}

// --- geometry ----------------------------------------------------------------

type plotArea struct {
	x, y, w, h float64
}

func defaultArea() plotArea {
	return plotArea{
		x: snapPadding + 40,
		y: snapPadding + snapHeader,
		w: snapWidth - 2*snapPadding - 40,
		h: snapHeight - 2*snapPadding - snapHeader - 24,
	}
}

type barRect struct {
	x, y, w, h float64
}

func barLayout(s series, a plotArea) []barRect {
	lo, hi := s.bounds()
	span := hi - lo
	if span == 0 {
		span = 1
	}
	slot := a.w / float64(s.len())
	bw := slot * 0.6
	zeroY := a.y + a.h*(hi/span)

	rects := make([]barRect, s.len())
	for i, v := range s.values {
		h := a.h * math.Abs(v) / span
		y := zeroY - h
		if v < 0 {
			y = zeroY
		}
		rects[i] = barRect{x: a.x + float64(i)*slot + (slot-bw)/2, y: y, w: bw, h: h}
	}
	return rects
}

type linePoint struct {
	x, y float64
}

func lineLayout(s series, a plotArea) []linePoint {
	lo, hi := s.bounds()
	span := hi - lo
	if span == 0 {
		span = 1
	}
	step := 0.0
	if s.len() > 1 {
		step = a.w / float64(s.len()-1)
	}
	pts := make([]linePoint, s.len())
	for i, v := range s.values {
		pts[i] = linePoint{
			x: a.x + float64(i)*step,
			y: a.y + a.h - (v-lo)/span*a.h,
		}
	}
	return pts
}

// wedge is one pie slice in radians, clockwise from 12 o'clock.
type wedge struct {
	from, to float64
}

func pieLayout(s series) []wedge {
	shares := s.shares()
	out := make([]wedge, len(shares))
	angle := -math.Pi / 2
	for i, share := range shares {
		next := angle + share*2*math.Pi
		out[i] = wedge{from: angle, to: next}
		angle = next
	}
	return out
}

func pieCenter() (cx, cy, r float64) {
	a := defaultArea()
	r = math.Min(a.w/2, a.h) / 2
	return a.x + r + 20, a.y + a.h/2, r
}

// --- svg ---------------------------------------------------------------------

// RenderSVG writes the chart as SVG to w.
func RenderSVG(w io.Writer, opts SnapshotOptions) error {
	s := newSeries(opts.Points)
	if s.len() == 0 {
		return ErrNoData
	}
	canvas := svg.New(w)
	canvas.Start(snapWidth, snapHeight)
	canvas.Rect(0, 0, snapWidth, snapHeight, fmt.Sprintf("fill:%s", css(colorBackdrop)))
	canvas.Roundrect(16, 16, snapWidth-32, int(snapHeader-8), 10, 10, fmt.Sprintf("fill:%s", css(colorHeaderBG)))
	canvas.Text(32, 50, titleOrDefault(opts.Title), fmt.Sprintf("fill:%s;font-size:18px;font-family:sans-serif;font-weight:bold", css(colorText)))

	a := defaultArea()
	switch opts.Kind {
	case Pie:
		cx, cy, r := pieCenter()
		for i, wd := range pieLayout(s) {
			if wd.to-wd.from <= 0 {
				continue
			}
			canvas.Path(wedgePath(cx, cy, r, wd), fmt.Sprintf("fill:%s;stroke:#ffffff;stroke-width:2", css(paletteAt(i))))
		}
		drawLegendSVG(canvas, s, int(cx+r+40), int(a.y))
	case Line:
		drawAxesSVG(canvas, a)
		pts := lineLayout(s, a)
		xs := make([]int, len(pts))
		ys := make([]int, len(pts))
		for i, p := range pts {
			xs[i], ys[i] = int(p.x), int(p.y)
		}
		canvas.Polyline(xs, ys, fmt.Sprintf("fill:none;stroke:%s;stroke-width:3", css(paletteAt(0))))
		for i, p := range pts {
			canvas.Circle(int(p.x), int(p.y), 5, fmt.Sprintf("fill:%s", css(paletteAt(0))))
			canvas.Text(int(p.x), int(a.y+a.h+18), s.names[i], labelStyle("middle"))
		}
	default:
		drawAxesSVG(canvas, a)
		for i, r := range barLayout(s, a) {
			canvas.Rect(int(r.x), int(r.y), int(r.w), int(math.Max(r.h, 1)), fmt.Sprintf("fill:%s", css(paletteAt(i))))
			canvas.Text(int(r.x+r.w/2), int(r.y-6), formatValue(s.values[i]), labelStyle("middle"))
			canvas.Text(int(r.x+r.w/2), int(a.y+a.h+18), s.names[i], labelStyle("middle"))
		}
	}

	canvas.End()
	return nil
}

func wedgePath(cx, cy, r float64, wd wedge) string {
	sweep := wd.to - wd.from
	if sweep >= 2*math.Pi-1e-9 {
		// A full circle cannot be one arc; draw two halves.
		return fmt.Sprintf("M %.2f %.2f m %.2f 0 a %.2f %.2f 0 1 0 %.2f 0 a %.2f %.2f 0 1 0 %.2f 0",
			cx, cy, -r, r, r, 2*r, r, r, -2*r)
	}
	x1, y1 := cx+r*math.Cos(wd.from), cy+r*math.Sin(wd.from)
	x2, y2 := cx+r*math.Cos(wd.to), cy+r*math.Sin(wd.to)
	large := 0
	if sweep > math.Pi {
		large = 1
	}
	return fmt.Sprintf("M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f Z",
		cx, cy, x1, y1, r, r, large, x2, y2)
}

func drawAxesSVG(canvas *svg.SVG, a plotArea) {
	style := fmt.Sprintf("stroke:%s;stroke-width:1", css(colorAxis))
	canvas.Line(int(a.x), int(a.y), int(a.x), int(a.y+a.h), style)
	canvas.Line(int(a.x), int(a.y+a.h), int(a.x+a.w), int(a.y+a.h), style)
}

func drawLegendSVG(canvas *svg.SVG, s series, x, y int) {
	shares := s.shares()
	for i, name := range s.names {
		rowY := y + i*22
		canvas.Roundrect(x, rowY, 14, 14, 3, 3, fmt.Sprintf("fill:%s", css(paletteAt(i))))
		canvas.Text(x+22, rowY+12, fmt.Sprintf("%s  %.1f%%", name, shares[i]*100), labelStyle("start"))
	}
}

func labelStyle(anchor string) string {
	return fmt.Sprintf("fill:%s;font-size:12px;font-family:sans-serif;text-anchor:%s", css(colorSubtle), anchor)
}

// --- png ---------------------------------------------------------------------

func renderPNG(path string, opts SnapshotOptions, s series) error {
	dc := gg.NewContext(snapWidth, snapHeight)
	dc.SetColor(colorBackdrop)
	dc.Clear()

	dc.SetColor(colorHeaderBG)
	dc.DrawRoundedRectangle(16, 16, snapWidth-32, snapHeader-8, 10)
	dc.Fill()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(colorText)
	dc.DrawStringAnchored(titleOrDefault(opts.Title), 32, 44, 0, 0.5)

	a := defaultArea()
	switch opts.Kind {
	case Pie:
		cx, cy, r := pieCenter()
		for i, wd := range pieLayout(s) {
			if wd.to-wd.from <= 0 {
				continue
			}
			dc.SetColor(paletteAt(i))
			dc.NewSubPath()
			dc.MoveTo(cx, cy)
			// Approximate the arc with short segments.
			steps := int(math.Max(2, (wd.to-wd.from)/(math.Pi/90)))
			for k := 0; k <= steps; k++ {
				t := wd.from + (wd.to-wd.from)*float64(k)/float64(steps)
				dc.LineTo(cx+r*math.Cos(t), cy+r*math.Sin(t))
			}
			dc.ClosePath()
			dc.Fill()
		}
		shares := s.shares()
		lx, ly := cx+r+40, a.y
		for i, name := range s.names {
			rowY := ly + float64(i)*22
			dc.SetColor(paletteAt(i))
			dc.DrawRoundedRectangle(lx, rowY, 14, 14, 3)
			dc.Fill()
			dc.SetColor(colorSubtle)
			dc.DrawStringAnchored(fmt.Sprintf("%s  %.1f%%", name, shares[i]*100), lx+22, rowY+7, 0, 0.5)
		}
	case Line:
		drawAxesPNG(dc, a)
		pts := lineLayout(s, a)
		dc.SetColor(paletteAt(0))
		dc.SetLineWidth(3)
		for i := 1; i < len(pts); i++ {
			dc.DrawLine(pts[i-1].x, pts[i-1].y, pts[i].x, pts[i].y)
			dc.Stroke()
		}
		for i, p := range pts {
			dc.SetColor(paletteAt(0))
			dc.DrawCircle(p.x, p.y, 5)
			dc.Fill()
			dc.SetColor(colorSubtle)
			dc.DrawStringAnchored(s.names[i], p.x, a.y+a.h+14, 0.5, 0.5)
		}
	default:
		drawAxesPNG(dc, a)
		for i, r := range barLayout(s, a) {
			dc.SetColor(paletteAt(i))
			dc.DrawRectangle(r.x, r.y, r.w, math.Max(r.h, 1))
			dc.Fill()
			dc.SetColor(colorSubtle)
			dc.DrawStringAnchored(formatValue(s.values[i]), r.x+r.w/2, r.y-8, 0.5, 0.5)
			dc.DrawStringAnchored(s.names[i], r.x+r.w/2, a.y+a.h+14, 0.5, 0.5)
		}
	}

	return dc.SavePNG(path)
}

func drawAxesPNG(dc *gg.Context, a plotArea) {
	dc.SetColor(colorAxis)
	dc.SetLineWidth(1)
	dc.DrawLine(a.x, a.y, a.x, a.y+a.h)
	dc.Stroke()
	dc.DrawLine(a.x, a.y+a.h, a.x+a.w, a.y+a.h)
	dc.Stroke()
}

// --- helpers -----------------------------------------------------------------

func paletteAt(i int) color.RGBA {
	return palette[i%len(palette)]
}

func titleOrDefault(title string) string {
	if strings.TrimSpace(title) == "" {
		return "Chart"
	}
	return title
}

func css(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

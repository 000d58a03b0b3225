package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/vanderheijden86/slidedeck/pkg/debug"
)

// notesRenderer renders speaker notes Markdown, rebuilding the glamour
// renderer only when the wrap width changes.
type notesRenderer struct {
	width int
	style string // glamour style name; empty selects auto detection
	tr    *glamour.TermRenderer
}

func newNotesRenderer(style string) *notesRenderer {
	return &notesRenderer{style: style}
}

func (n *notesRenderer) render(markdown string, width int) string {
	markdown = strings.TrimSpace(markdown)
	if markdown == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}
	if n.tr == nil || n.width != width {
		styleOpt := glamour.WithAutoStyle()
		if n.style != "" {
			styleOpt = glamour.WithStandardStyle(n.style)
		}
		tr, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
		if err != nil {
			debug.Log("notes: glamour renderer: %v", err)
			return markdown
		}
		n.tr, n.width = tr, width
	}
	out, err := n.tr.Render(markdown)
	if err != nil {
		debug.Log("notes: render: %v", err)
		return markdown
	}
	return strings.Trim(out, "\n")
}

// Package ui is the terminal presenter: a bubbletea model that owns the
// navigation state, renders the current slide through RenderSlide, and
// turns keys, clicks and drag gestures into navigation.
package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/slidedeck/pkg/debug"
	"github.com/vanderheijden86/slidedeck/pkg/deck"
	"github.com/vanderheijden86/slidedeck/pkg/export"
	"github.com/vanderheijden86/slidedeck/pkg/nav"
)

// DeckReloadedMsg replaces the presented deck after its file changed.
type DeckReloadedMsg struct {
	Deck deck.Deck
	Err  error
}

type copiedMsg struct{ err error }

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

const (
	prevLabel     = "[◀ Prev]"
	nextLabel     = "[Next ▶]"
	footerGap     = 2
	bodyPadding   = 2
	defaultWidth  = 80
	defaultHeight = 24
)

// Options configures a Model.
type Options struct {
	Policy      nav.Policy
	Start       int // 0-based slide index; out-of-range values are ignored
	Mouse       bool
	CellWidthPx int
	ShowNotes   bool
	NotesStyle  string // glamour style; empty selects auto detection
	Theme       *Theme // nil selects DefaultTheme
}

// Model is the presenter state.
type Model struct {
	deck  deck.Deck
	nav   *nav.Navigator
	theme Theme
	keys  keyMap

	help     help.Model
	viewport viewport.Model
	dots     paginator.Model
	progress progress.Model
	notes    *notesRenderer

	gesture     nav.Gesture
	mouse       bool
	cellWidthPx int

	width       int
	height      int
	notesHeight int

	showHelp  bool
	showNotes bool
	playing   bool
	highlight string
	status    string
}

// New builds a presenter for d. d must hold at least one slide.
func New(d deck.Deck, opts Options) Model {
	theme := DefaultTheme(lipgloss.DefaultRenderer())
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	if opts.CellWidthPx <= 0 {
		opts.CellWidthPx = 8
	}

	n := nav.New(d.Len(), opts.Policy)
	n.GoTo(opts.Start)

	dots := paginator.New()
	dots.Type = paginator.Dots
	dots.ActiveDot = theme.PrimaryBold.Render("●") + " "
	dots.InactiveDot = theme.MutedText.Render("○") + " "
	dots.SetTotalPages(d.Len())
	dots.Page = n.Index()

	bar := progress.New(
		progress.WithSolidFill(ColorPrimary.Dark),
		progress.WithoutPercentage(),
		progress.WithWidth(12),
	)

	h := help.New()
	h.Styles.ShortKey = theme.PrimaryBold
	h.Styles.FullKey = theme.PrimaryBold

	m := Model{
		deck:        d,
		nav:         n,
		theme:       theme,
		keys:        defaultKeyMap(),
		help:        h,
		viewport:    viewport.New(defaultWidth, defaultHeight),
		dots:        dots,
		progress:    bar,
		notes:       newNotesRenderer(opts.NotesStyle),
		mouse:       opts.Mouse,
		cellWidthPx: opts.CellWidthPx,
		width:       defaultWidth,
		height:      defaultHeight,
		showNotes:   opts.ShowNotes,
	}
	m.layout()
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Index returns the current slide index.
func (m Model) Index() int { return m.nav.Index() }

// Deck returns the presented deck.
func (m Model) Deck() deck.Deck { return m.deck }

// Highlight returns the emphasized metric or dimension name, if any.
func (m Model) Highlight() string { return m.highlight }

// Playing reports the play/pause toggle. It is display-only.
func (m Model) Playing() bool { return m.playing }

// NotesVisible reports whether the speaker notes pane is open.
func (m Model) NotesVisible() bool { return m.showNotes }

// Status returns the transient status line text.
func (m Model) Status() string { return m.status }

func (m Model) current() deck.Slide {
	return m.deck.At(m.nav.Index())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.mouse {
			return m, nil
		}
		return m.handleMouse(msg)

	case DeckReloadedMsg:
		m.reload(msg)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Copy failed: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Copied slide %d to clipboard", m.current().ID)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		m.layout()

	case key.Matches(msg, m.keys.Next):
		m.next()

	case key.Matches(msg, m.keys.Prev):
		m.prev()

	case key.Matches(msg, m.keys.First):
		if m.nav.First() {
			m.slideChanged()
		}

	case key.Matches(msg, m.keys.Last):
		if m.nav.Last() {
			m.slideChanged()
		}

	case key.Matches(msg, m.keys.Jump):
		m.goTo(int(msg.String()[0] - '1'))

	case key.Matches(msg, m.keys.Highlight):
		m.cycleHighlight(msg.String() == "shift+tab")

	case key.Matches(msg, m.keys.Unfocus):
		if m.showHelp {
			m.showHelp = false
			m.help.ShowAll = false
			m.layout()
		} else if m.highlight != "" {
			m.highlight = ""
			m.refresh()
		}

	case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDn):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keys.Notes):
		m.showNotes = !m.showNotes
		m.layout()

	case key.Matches(msg, m.keys.Play):
		m.playing = !m.playing

	case key.Matches(msg, m.keys.Copy):
		text := export.SlideOutline(m.current())
		return m, func() tea.Msg { return copiedMsg{err: writeClipboard(text)} }
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	px := msg.X * m.cellWidthPx
	switch {
	case msg.Button == tea.MouseButtonWheelUp, msg.Button == tea.MouseButtonWheelDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.gesture.Start(px)

	case msg.Action == tea.MouseActionMotion && m.gesture.Active():
		m.gesture.Move(px)

	case msg.Action == tea.MouseActionRelease && m.gesture.Active():
		m.gesture.Move(px)
		if sw := m.gesture.End(); sw != nav.SwipeNone {
			debug.Log("ui: swipe %s", sw)
			if m.nav.Apply(sw) {
				m.slideChanged()
			}
			return m, nil
		}
		m.click(msg.X, msg.Y)
	}
	return m, nil
}

// ── navigation ──────────────────────────────────────────────────────────────

func (m *Model) next() {
	if m.nav.CanNext() && m.nav.Next() {
		m.slideChanged()
	}
}

func (m *Model) prev() {
	if m.nav.CanPrevious() && m.nav.Previous() {
		m.slideChanged()
	}
}

func (m *Model) goTo(i int) {
	if m.nav.GoTo(i) {
		m.slideChanged()
	}
}

// slideChanged drops per-slide view state and re-renders.
func (m *Model) slideChanged() {
	m.highlight = ""
	m.viewport.GotoTop()
	m.refresh()
}

func (m *Model) cycleHighlight(backward bool) {
	targets := HighlightTargets(m.current())
	if len(targets) == 0 {
		return
	}
	cur := -1
	for i, t := range targets {
		if t == m.highlight {
			cur = i
			break
		}
	}
	switch {
	case cur < 0 && backward:
		cur = len(targets) - 1
	case cur < 0:
		cur = 0
	case backward:
		cur = (cur - 1 + len(targets)) % len(targets)
	default:
		cur = (cur + 1) % len(targets)
	}
	m.highlight = targets[cur]
	m.refresh()
}

func (m *Model) reload(msg DeckReloadedMsg) {
	if msg.Err == nil && msg.Deck.Len() == 0 {
		msg.Err = deck.ErrEmptyDeck
	}
	if msg.Err != nil {
		m.status = fmt.Sprintf("Reload failed: %v", msg.Err)
		return
	}
	m.deck = msg.Deck
	m.nav.Resize(msg.Deck.Len())
	m.dots.SetTotalPages(msg.Deck.Len())

	keep := false
	for _, t := range HighlightTargets(m.current()) {
		keep = keep || t == m.highlight
	}
	if !keep {
		debug.LogIf(m.highlight != "", "ui: highlight %q dropped on reload", m.highlight)
		m.highlight = ""
	}
	m.status = fmt.Sprintf("Reloaded %d slides", msg.Deck.Len())
	m.refresh()
}

// ── layout ──────────────────────────────────────────────────────────────────

// Rows from the top: header, rule, slide body, [rule, notes], rule,
// footer, help.
func (m *Model) layout() {
	helpH := 1
	if m.showHelp {
		helpH = max(lipgloss.Height(m.help.View(m.keys)), 1)
	}
	bodyH := m.height - 4 - helpH
	m.notesHeight = 0
	if m.showNotes {
		m.notesHeight = max(bodyH/3, 3)
		bodyH -= m.notesHeight + 1
	}
	m.viewport.Width = max(m.width, 1)
	m.viewport.Height = max(bodyH, 1)
}

func (m *Model) refresh() {
	m.dots.Page = m.nav.Index()
	body := RenderSlide(m.current(), m.theme, m.width-2*bodyPadding, m.highlight)
	m.viewport.SetContent(indentBlock(body, bodyPadding))
}

func indentBlock(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

func (m Model) footerRow() int {
	row := 2 + m.viewport.Height
	if m.showNotes {
		row += 1 + m.notesHeight
	}
	return row + 1
}

// footerZones locates the clickable parts of the footer line.
type footerZones struct {
	prevStart, prevEnd int
	dotsStart, dotW    int // dotW is 0 when dots are not clickable
	nextStart, nextEnd int
}

func (m Model) dotsView() (string, bool) {
	dots := m.dots
	avail := m.width - 2*lipgloss.Width(prevLabel) - 4*footerGap
	if dots.TotalPages*2 > avail {
		dots.Type = paginator.Arabic
		dots.ArabicFormat = "%d/%d"
		return dots.View(), false
	}
	return dots.View(), true
}

func (m Model) footerZones() footerZones {
	dots, clickable := m.dotsView()
	btnW := lipgloss.Width(prevLabel)
	total := btnW + footerGap + lipgloss.Width(dots) + footerGap + btnW
	left := max((m.width-total)/2, 0)

	z := footerZones{prevStart: left, prevEnd: left + btnW}
	z.dotsStart = z.prevEnd + footerGap
	if clickable {
		z.dotW = 2
	}
	z.nextStart = z.dotsStart + lipgloss.Width(dots) + footerGap
	z.nextEnd = z.nextStart + btnW
	return z
}

func (m *Model) click(x, y int) {
	if y != m.footerRow() {
		return
	}
	z := m.footerZones()
	switch {
	case x >= z.prevStart && x < z.prevEnd:
		m.prev()
	case x >= z.nextStart && x < z.nextEnd:
		m.next()
	case z.dotW > 0 && x >= z.dotsStart:
		if i := (x - z.dotsStart) / z.dotW; i < m.deck.Len() {
			m.goTo(i)
		}
	}
}

// ── view ────────────────────────────────────────────────────────────────────

// View implements tea.Model.
func (m Model) View() string {
	rule := m.theme.MutedText.Render(strings.Repeat("─", max(m.width, 1)))

	parts := []string{m.renderHeader(), rule, m.viewport.View()}
	if m.showNotes {
		parts = append(parts, rule, m.renderNotes())
	}
	parts = append(parts, rule, m.renderFooter(), m.renderBottom())
	return strings.Join(parts, "\n")
}

func (m Model) renderHeader() string {
	title := m.deck.Title
	if title == "" {
		title = "slidedeck"
	}
	left := m.theme.Header.Render(truncateRunesHelper(title, max(m.width/2, 8), "…"))

	glyph := "‖"
	if m.playing {
		glyph = "▶"
	}
	frac := float64(m.nav.Index()+1) / float64(m.nav.Count())
	right := m.theme.PrimaryBold.Render(glyph) + " " +
		m.progress.ViewAs(frac) + " " +
		m.theme.PrimaryBold.Render(m.nav.Indicator())

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderNotes() string {
	body := m.notes.render(m.current().Notes, m.width-2*bodyPadding)
	if body == "" {
		body = m.theme.MutedText.Render("No speaker notes for this slide.")
	}
	lines := strings.Split(body, "\n")
	if len(lines) > m.notesHeight {
		lines = lines[:m.notesHeight]
	}
	for len(lines) < m.notesHeight {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	z := m.footerZones()
	dots, _ := m.dotsView()

	prev := m.theme.Button.Render(prevLabel)
	if !m.nav.CanPrevious() {
		prev = m.theme.ButtonDisabled.Render(prevLabel)
	}
	next := m.theme.Button.Render(nextLabel)
	if !m.nav.CanNext() {
		next = m.theme.ButtonDisabled.Render(nextLabel)
	}
	gap := strings.Repeat(" ", footerGap)
	return strings.Repeat(" ", z.prevStart) + prev + gap + dots + gap + next
}

func (m Model) renderBottom() string {
	if !m.showHelp && m.status != "" {
		return m.theme.Status.Render(truncateRunesHelper(m.status, m.width, "…"))
	}
	return m.help.View(m.keys)
}

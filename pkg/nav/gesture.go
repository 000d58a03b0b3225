package nav

// SwipeThreshold is the horizontal travel, in pixels, a drag must exceed
// to count as a swipe.
const SwipeThreshold = 50

// Swipe is the outcome of one completed gesture.
type Swipe int

const (
	SwipeNone Swipe = iota
	// SwipeForward is a right-to-left drag: go to the next slide.
	SwipeForward
	// SwipeBackward is a left-to-right drag: go to the previous slide.
	SwipeBackward
)

func (s Swipe) String() string {
	switch s {
	case SwipeForward:
		return "forward"
	case SwipeBackward:
		return "backward"
	default:
		return "none"
	}
}

// Gesture holds one in-flight horizontal drag sample. Coordinates are in
// pixels; the zero value is an empty sample.
type Gesture struct {
	startX, endX     int
	hasStart, hasEnd bool
}

// Start begins a new sample at x, discarding any previous end point.
func (g *Gesture) Start(x int) {
	g.startX, g.hasStart = x, true
	g.endX, g.hasEnd = 0, false
}

// Move records the latest x of the drag.
func (g *Gesture) Move(x int) {
	g.endX, g.hasEnd = x, true
}

// Active reports whether a sample has been started and not yet consumed.
func (g *Gesture) Active() bool {
	return g.hasStart
}

// End consumes the sample and classifies it. A sample missing either
// coordinate is not a gesture.
func (g *Gesture) End() Swipe {
	defer g.Reset()
	if !g.hasStart || !g.hasEnd {
		return SwipeNone
	}
	distance := g.startX - g.endX
	switch {
	case distance > SwipeThreshold:
		return SwipeForward
	case distance < -SwipeThreshold:
		return SwipeBackward
	default:
		return SwipeNone
	}
}

// Reset discards the sample.
func (g *Gesture) Reset() {
	*g = Gesture{}
}

// Apply performs the navigation a swipe asks for, respecting the
// navigator's guards. It reports whether the index changed.
func (n *Navigator) Apply(s Swipe) bool {
	switch s {
	case SwipeForward:
		if n.CanNext() {
			return n.Next()
		}
	case SwipeBackward:
		if n.CanPrevious() {
			return n.Previous()
		}
	}
	return false
}

// Package nav holds the presenter's only mutable state: the index of the
// current slide. A Navigator moves that index under one of two boundary
// policies and never lets it leave [0, count).
package nav

import (
	"fmt"
	"strings"
)

// Policy decides what stepping past either end of the deck does.
type Policy string

const (
	// PolicyWrap cycles from the last slide to the first and back.
	PolicyWrap Policy = "wrap"
	// PolicyClamp stops at the ends; stepping further is a no-op.
	PolicyClamp Policy = "clamp"
)

// DefaultPolicy is used when nothing is configured.
const DefaultPolicy = PolicyClamp

// ParsePolicy accepts "wrap" or "clamp" (case-insensitive).
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyWrap:
		return PolicyWrap, nil
	case PolicyClamp:
		return PolicyClamp, nil
	default:
		return "", fmt.Errorf("unknown navigation policy %q (want wrap or clamp)", s)
	}
}

// Navigator tracks the current slide index. The zero value is not usable;
// create one with New. It is not safe for concurrent use: the presenter
// mutates it from a single event loop.
type Navigator struct {
	index  int
	count  int
	policy Policy
}

// New returns a navigator over count slides, positioned on the first one.
// count is clamped to at least 1.
func New(count int, policy Policy) *Navigator {
	if count < 1 {
		count = 1
	}
	if policy != PolicyWrap {
		policy = PolicyClamp
	}
	return &Navigator{count: count, policy: policy}
}

// Index returns the 0-based position of the current slide.
func (n *Navigator) Index() int { return n.index }

// Count returns the number of slides being navigated.
func (n *Navigator) Count() int { return n.count }

// Policy returns the boundary policy in effect.
func (n *Navigator) Policy() Policy { return n.policy }

// IsFirst reports whether the first slide is current.
func (n *Navigator) IsFirst() bool { return n.index == 0 }

// IsLast reports whether the last slide is current.
func (n *Navigator) IsLast() bool { return n.index == n.count-1 }

// CanNext reports whether Next would be accepted by a guarded control.
// Under wrap every step is allowed.
func (n *Navigator) CanNext() bool {
	return n.policy == PolicyWrap || !n.IsLast()
}

// CanPrevious is the mirror of CanNext.
func (n *Navigator) CanPrevious() bool {
	return n.policy == PolicyWrap || !n.IsFirst()
}

// Next advances one slide and reports whether the index changed.
func (n *Navigator) Next() bool {
	old := n.index
	if n.policy == PolicyWrap {
		n.index = (n.index + 1) % n.count
	} else {
		n.index = min(n.index+1, n.count-1)
	}
	return n.index != old
}

// Previous steps back one slide and reports whether the index changed.
func (n *Navigator) Previous() bool {
	old := n.index
	if n.policy == PolicyWrap {
		n.index = (n.index - 1 + n.count) % n.count
	} else {
		n.index = max(n.index-1, 0)
	}
	return n.index != old
}

// GoTo jumps to index k. Callers only pass indices in [0, Count()); any
// other value is ignored and reported as no change.
func (n *Navigator) GoTo(k int) bool {
	if k < 0 || k >= n.count {
		return false
	}
	old := n.index
	n.index = k
	return n.index != old
}

// First jumps to the first slide.
func (n *Navigator) First() bool { return n.GoTo(0) }

// Last jumps to the last slide.
func (n *Navigator) Last() bool { return n.GoTo(n.count - 1) }

// Resize changes the slide count, keeping the index in range. Used when a
// reloaded deck has a different length.
func (n *Navigator) Resize(count int) {
	if count < 1 {
		count = 1
	}
	n.count = count
	if n.index >= count {
		n.index = count - 1
	}
}

// Indicator renders the page indicator, e.g. "5 / 23".
func (n *Navigator) Indicator() string {
	return fmt.Sprintf("%d / %d", n.index+1, n.count)
}

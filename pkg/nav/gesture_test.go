package nav

import "testing"

func TestGestureClassification(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       Swipe
	}{
		{"forward past threshold", 300, 240, SwipeForward},
		{"short forward drag", 300, 270, SwipeNone},
		{"exactly threshold", 300, 250, SwipeNone},
		{"backward past threshold", 100, 160, SwipeBackward},
		{"exactly negative threshold", 100, 150, SwipeNone},
		{"from origin", 0, 80, SwipeBackward},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g Gesture
			g.Start(tt.start)
			g.Move(tt.end)
			if got := g.End(); got != tt.want {
				t.Errorf("End() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGestureIncompleteSample(t *testing.T) {
	var g Gesture
	if got := g.End(); got != SwipeNone {
		t.Errorf("empty sample = %v, want none", got)
	}

	g.Start(300)
	if got := g.End(); got != SwipeNone {
		t.Errorf("sample without end = %v, want none", got)
	}

	g.Move(10)
	if got := g.End(); got != SwipeNone {
		t.Errorf("sample without start = %v, want none", got)
	}
}

func TestGestureStartClearsEnd(t *testing.T) {
	var g Gesture
	g.Start(300)
	g.Move(100)
	g.Start(300)
	if got := g.End(); got != SwipeNone {
		t.Errorf("restarted sample kept stale end: %v", got)
	}
}

func TestGestureConsumedOnce(t *testing.T) {
	var g Gesture
	g.Start(300)
	g.Move(240)
	if g.End() != SwipeForward {
		t.Fatal("expected forward swipe")
	}
	if g.Active() {
		t.Error("sample should be reset after End")
	}
	if g.End() != SwipeNone {
		t.Error("sample must not be consumed twice")
	}
}

func TestSwipeDrivesExactlyOneStep(t *testing.T) {
	n := New(10, PolicyClamp)
	var g Gesture
	g.Start(300)
	g.Move(280)
	g.Move(240)
	if !n.Apply(g.End()) {
		t.Fatal("forward swipe should move")
	}
	if n.Index() != 1 {
		t.Errorf("expected index 1, got %d", n.Index())
	}

	g.Start(300)
	g.Move(270)
	if n.Apply(g.End()) {
		t.Error("short drag should not move")
	}
	if n.Index() != 1 {
		t.Errorf("expected index 1, got %d", n.Index())
	}
}

func TestSwipeGuardedUnderClamp(t *testing.T) {
	n := New(3, PolicyClamp)
	if n.Apply(SwipeBackward) {
		t.Error("backward swipe on first slide should be ignored")
	}
	n.Last()
	if n.Apply(SwipeForward) {
		t.Error("forward swipe on last slide should be ignored")
	}

	w := New(3, PolicyWrap)
	if !w.Apply(SwipeBackward) || w.Index() != 2 {
		t.Errorf("wrap backward swipe should land on 2, got %d", w.Index())
	}
}

package session

import (
	"testing"
	"time"

	"turm/orbit"
)

func newController() *Controller {
	return NewController(orbit.New(orbit.Point{X: 240, Y: 240}, false))
}

func click(c *Controller, b Button, p orbit.Point, mod bool, at time.Time) Op {
	c.Handle(PointerEvent{Pos: p, Button: b, Action: ActionPress, At: at})
	return c.Handle(PointerEvent{Pos: p, Button: b, Action: ActionRelease, Modifier: mod, At: at})
}

func TestEventTable(t *testing.T) {
	t0 := time.Unix(1000, 0)
	c := newController()

	if op := click(c, ButtonPrimary, orbit.Point{X: 240, Y: 140}, false, t0); op != OpMark {
		t.Fatalf("Expected mark, got %v", op)
	}
	if c.Orbit.Len() != 1 || !c.Orbit.PenDown() {
		t.Fatalf("Expected 1 stroke with pen down, got %d %v", c.Orbit.Len(), c.Orbit.PenDown())
	}

	if op := click(c, ButtonSecondary, orbit.Point{X: 1, Y: 1}, false, t0.Add(time.Second)); op != OpRelease {
		t.Fatalf("Expected release, got %v", op)
	}
	if c.Orbit.PenDown() {
		t.Error("Expected pen up after release")
	}

	click(c, ButtonPrimary, orbit.Point{X: 340, Y: 140}, false, t0.Add(2*time.Second))
	if c.Orbit.Len() != 2 {
		t.Fatalf("Expected 2 strokes, got %d", c.Orbit.Len())
	}

	if op := click(c, ButtonSecondary, orbit.Point{X: 1, Y: 1}, true, t0.Add(3*time.Second)); op != OpUndo {
		t.Fatalf("Expected back and hold, got %v", op)
	}
	if c.Orbit.Len() != 1 || c.Orbit.RedoLen() != 1 || !c.Orbit.PenDown() {
		t.Errorf("Expected 1 stroke, 1 redo, pen down; got %d %d %v", c.Orbit.Len(), c.Orbit.RedoLen(), c.Orbit.PenDown())
	}

	if op := click(c, ButtonPrimary, orbit.Point{X: 9, Y: 9}, true, t0.Add(4*time.Second)); op != OpRedo {
		t.Fatalf("Expected redo, got %v", op)
	}
	if c.Orbit.Len() != 2 || c.Orbit.RedoLen() != 0 {
		t.Errorf("Expected 2 strokes and empty redo, got %d %d", c.Orbit.Len(), c.Orbit.RedoLen())
	}

	c.Orbit.Release()
	if op := click(c, ButtonPrimary, orbit.Point{X: 9, Y: 9}, true, t0.Add(5*time.Second)); op != OpRehold {
		t.Fatalf("Expected re-hold, got %v", op)
	}
	if !c.Orbit.PenDown() || c.Orbit.Len() != 2 {
		t.Errorf("Re-hold should only put the pen down")
	}
}

func TestDoubleClickEvent(t *testing.T) {
	c := newController()
	c.Orbit.Mark(orbit.Point{X: 300, Y: 240})

	if op := c.Handle(PointerEvent{Button: ButtonSecondary, Action: ActionDoubleClick}); op != OpUndo {
		t.Fatalf("Expected undo, got %v", op)
	}
	if c.Orbit.Len() != 0 || c.Orbit.RedoLen() != 1 {
		t.Errorf("Expected undo to move the stroke, got %d %d", c.Orbit.Len(), c.Orbit.RedoLen())
	}

	if op := c.Handle(PointerEvent{Button: ButtonPrimary, Action: ActionDoubleClick}); op != OpNone {
		t.Errorf("Primary double click should do nothing, got %v", op)
	}
}

func TestSynthesizedDoubleClick(t *testing.T) {
	t0 := time.Unix(1000, 0)
	c := newController()
	c.Orbit.Mark(orbit.Point{X: 300, Y: 240})
	c.Orbit.Mark(orbit.Point{X: 300, Y: 300})

	p := orbit.Point{X: 10, Y: 10}
	if op := click(c, ButtonSecondary, p, false, t0); op != OpRelease {
		t.Fatalf("Expected release, got %v", op)
	}
	if op := click(c, ButtonSecondary, p, false, t0.Add(100*time.Millisecond)); op != OpUndoRelease {
		t.Fatalf("Expected back and release, got %v", op)
	}
	if c.Orbit.Len() != 1 || c.Orbit.PenDown() {
		t.Errorf("Expected 1 stroke with pen up, got %d %v", c.Orbit.Len(), c.Orbit.PenDown())
	}

	// a third click starts a new pair
	if op := click(c, ButtonSecondary, p, false, t0.Add(200*time.Millisecond)); op != OpRelease {
		t.Errorf("Expected release, got %v", op)
	}

	// too slow
	if op := click(c, ButtonSecondary, p, false, t0.Add(time.Second)); op != OpRelease {
		t.Errorf("Expected release for a slow second click, got %v", op)
	}
	// different spot
	if op := click(c, ButtonSecondary, orbit.Point{X: 11, Y: 10}, false, t0.Add(time.Second+time.Millisecond)); op != OpRelease {
		t.Errorf("Expected release for a second click elsewhere, got %v", op)
	}
	if c.Orbit.Len() != 1 {
		t.Errorf("Expected no further undo, got %d strokes", c.Orbit.Len())
	}
}

func TestReleaseWithoutButton(t *testing.T) {
	c := newController()
	p := orbit.Point{X: 240, Y: 200}
	c.Handle(PointerEvent{Pos: p, Button: ButtonPrimary, Action: ActionPress})
	if op := c.Handle(PointerEvent{Pos: p, Button: ButtonNone, Action: ActionRelease}); op != OpMark {
		t.Errorf("Expected the release to count as primary, got %v", op)
	}
	if op := c.Handle(PointerEvent{Pos: p, Button: ButtonNone, Action: ActionRelease}); op != OpNone {
		t.Errorf("Expected a stray release to do nothing, got %v", op)
	}
}

func TestMotionOnlyPreviews(t *testing.T) {
	c := newController()
	p := orbit.Point{X: 100, Y: 50}
	if op := c.Handle(PointerEvent{Pos: p, Action: ActionMotion}); op != OpPreview {
		t.Fatalf("Expected preview, got %v", op)
	}
	if c.Live() != p {
		t.Errorf("Expected live %v, got %v", p, c.Live())
	}
	if c.Orbit.Len() != 0 || c.Orbit.Modified() {
		t.Error("Motion must not edit the orbit")
	}
}

func TestStatus(t *testing.T) {
	c := newController()
	c.Handle(PointerEvent{Pos: orbit.Point{X: 250, Y: 200}, Button: ButtonPrimary, Action: ActionRelease})
	c.MoveLive(5, 5)

	s := c.Status()
	if s.Strokes != 1 || s.Redo != 0 || !s.PenDown {
		t.Errorf("Unexpected counts %+v", s)
	}
	if s.Cursor != c.Orbit.Cursor() {
		t.Errorf("Expected cursor %v, got %v", c.Orbit.Cursor(), s.Cursor)
	}
	if s.Live != (orbit.Point{X: 255, Y: 205}) {
		t.Errorf("Expected live (255,205), got %v", s.Live)
	}
	if s.RelX != 15 || s.RelY != 35 {
		t.Errorf("Expected relative (15,35), got (%d,%d)", s.RelX, s.RelY)
	}
}

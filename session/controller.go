// Package session maps pointer events onto orbit edits.
package session

import (
	"time"

	"turm/orbit"
)

type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
)

type Action int

const (
	ActionPress Action = iota
	ActionRelease
	ActionMotion
	ActionDoubleClick
)

// PointerEvent is one pointer report in canvas coordinates.
type PointerEvent struct {
	Pos      orbit.Point
	Button   Button
	Action   Action
	Modifier bool
	At       time.Time
}

// Op is the edit an event turned into.
type Op int

const (
	OpNone Op = iota
	OpPreview
	OpMark
	OpRelease
	OpUndo
	OpUndoRelease
	OpRedo
	OpRehold
)

func (op Op) String() string {
	switch op {
	case OpPreview:
		return "preview"
	case OpMark:
		return "mark"
	case OpRelease:
		return "release"
	case OpUndo:
		return "back and hold"
	case OpUndoRelease:
		return "back and release"
	case OpRedo:
		return "redo"
	case OpRehold:
		return "re-hold"
	default:
		return "none"
	}
}

// DefaultDoubleClick is the window for pairing two secondary releases.
const DefaultDoubleClick = 400 * time.Millisecond

// Controller applies pointer events to an orbit. It is single threaded:
// every call finishes its edit before returning.
type Controller struct {
	Orbit *orbit.Orbit
	// DoubleClickInterval pairs two secondary releases on the same spot into
	// a double click. Zero disables synthesis.
	DoubleClickInterval time.Duration

	live    orbit.Point
	pressed Button

	lastSecondary   time.Time
	lastSecondaryAt orbit.Point
}

func NewController(o *orbit.Orbit) *Controller {
	return &Controller{
		Orbit:               o,
		DoubleClickInterval: DefaultDoubleClick,
		live:                o.Cursor(),
	}
}

// Handle applies ev and reports what it did.
//
//	primary release             mark
//	primary release + modifier  redo, or re-hold when nothing to redo
//	secondary release           release the pen
//	secondary + modifier        undo, pen stays down (back and hold)
//	secondary double click      undo
//	motion                      move the live target only
func (c *Controller) Handle(ev PointerEvent) Op {
	switch ev.Action {
	case ActionMotion:
		c.live = ev.Pos
		return OpPreview

	case ActionPress:
		c.pressed = ev.Button
		c.live = ev.Pos
		return OpNone

	case ActionDoubleClick:
		if ev.Button != ButtonSecondary {
			return OpNone
		}
		c.Orbit.Undo()
		return OpUndo

	case ActionRelease:
		button := ev.Button
		if button == ButtonNone {
			button = c.pressed
		}
		c.pressed = ButtonNone
		c.live = ev.Pos

		switch button {
		case ButtonPrimary:
			c.lastSecondary = time.Time{}
			if ev.Modifier {
				if c.Orbit.Redo() {
					return OpRedo
				}
				return OpRehold
			}
			c.Orbit.Mark(ev.Pos)
			return OpMark

		case ButtonSecondary:
			if ev.Modifier {
				c.lastSecondary = time.Time{}
				c.Orbit.Undo()
				return OpUndo
			}
			if c.isDoubleClick(ev) {
				// a double click arrives as release, double click, release
				c.lastSecondary = time.Time{}
				c.Orbit.Undo()
				c.Orbit.Release()
				return OpUndoRelease
			}
			c.lastSecondary, c.lastSecondaryAt = ev.At, ev.Pos
			c.Orbit.Release()
			return OpRelease
		}
	}
	return OpNone
}

func (c *Controller) isDoubleClick(ev PointerEvent) bool {
	if c.DoubleClickInterval <= 0 || c.lastSecondary.IsZero() || ev.At.IsZero() {
		return false
	}
	return ev.Pos == c.lastSecondaryAt && ev.At.Sub(c.lastSecondary) <= c.DoubleClickInterval
}

// MoveLive shifts the live target by dx, dy, for keyboard pointing.
func (c *Controller) MoveLive(dx, dy int) {
	c.live.X += dx
	c.live.Y += dy
}

// SetLive places the live target without touching the orbit.
func (c *Controller) SetLive(p orbit.Point) { c.live = p }

func (c *Controller) Live() orbit.Point { return c.live }

// Status is what the side panel shows.
type Status struct {
	Live    orbit.Point
	Cursor  orbit.Point
	Heading float64
	PenDown bool
	Strokes int
	Redo    int
	// RelX and RelY are the live target relative to the origin, y up.
	RelX, RelY int
}

func (c *Controller) Status() Status {
	o := c.Orbit
	origin := o.Origin()
	return Status{
		Live:    c.live,
		Cursor:  o.Cursor(),
		Heading: o.Heading(),
		PenDown: o.PenDown(),
		Strokes: o.Len(),
		Redo:    o.RedoLen(),
		RelX:    c.live.X - origin.X,
		RelY:    -(c.live.Y - origin.Y),
	}
}

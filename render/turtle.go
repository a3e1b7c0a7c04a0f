// Package render implements replay.Renderer on top of raster and PDF
// back ends.
package render

import (
	"math"

	"turm/orbit"
)

// Turtle tracks position, heading and pen state. Positions are kept in float
// so long replays do not accumulate rounding; headings use the stroke
// orientation (positive = clockwise on screen).
type Turtle struct {
	X, Y    float64
	Heading float64
	Down    bool

	// Line, if set, is called for every forward move made with the pen down.
	Line func(x0, y0, x1, y1 float64)
}

// NewTurtle returns a turtle at origin facing east with the pen down.
func NewTurtle(origin orbit.Point) *Turtle {
	return &Turtle{X: float64(origin.X), Y: float64(origin.Y), Down: true}
}

func (t *Turtle) PenUp()               { t.Down = false }
func (t *Turtle) PenDown()             { t.Down = true }
func (t *Turtle) Turn(degrees float64) { t.Heading += degrees }

func (t *Turtle) Forward(distance float64) {
	rad := t.Heading * math.Pi / 180
	x := t.X + distance*math.Cos(rad)
	y := t.Y + distance*math.Sin(rad)
	if t.Down && t.Line != nil {
		t.Line(t.X, t.Y, x, y)
	}
	t.X, t.Y = x, y
}

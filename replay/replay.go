// Package replay drives a turtle renderer through a stroke sequence in the
// background.
package replay

import (
	"context"
	"time"

	"turm/orbit"
)

// Renderer executes turtle commands. Turn uses the same orientation as
// stroke angles: positive turns towards +y, clockwise on screen.
type Renderer interface {
	PenUp()
	PenDown()
	Turn(degrees float64)
	Forward(distance float64)
}

// Play issues pen, turn and forward commands for each stroke in order. It
// checks ctx before every stroke and while waiting delay between strokes, and
// returns ctx.Err() when cancelled. strokes is only read.
func Play(ctx context.Context, strokes []orbit.Stroke, r Renderer, delay time.Duration) error {
	var timer *time.Timer
	if delay > 0 {
		timer = time.NewTimer(delay)
		defer timer.Stop()
	}

	for i, s := range strokes {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 && timer != nil {
			timer.Reset(delay)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		}
		Step(r, s)
	}
	return nil
}

// Step issues the commands for a single stroke.
func Step(r Renderer, s orbit.Stroke) {
	if s.PenDown {
		r.PenDown()
	} else {
		r.PenUp()
	}
	r.Turn(s.Angle)
	r.Forward(s.Length)
}

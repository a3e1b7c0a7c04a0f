package orbit

// Stroke is one relative pen movement. Angle is the heading change in degrees
// relative to the stroke before it; the first stroke turns from heading 0.
type Stroke struct {
	PenDown bool
	Angle   float64
	Length  float64
}

func cloneStrokes(s []Stroke) []Stroke {
	if len(s) == 0 {
		return nil
	}
	out := make([]Stroke, len(s))
	copy(out, s)
	return out
}

package orbit

import "math"

// Point is an absolute canvas position. Y grows downwards.
type Point struct {
	X, Y int
}

// AngleAndLength returns the absolute heading in degrees and the distance from
// one point to another. The angle lies in (-180, 180]; 0 is +x and positive
// angles turn towards +y, which is clockwise on a screen.
func AngleAndLength(from, to Point) (float64, float64) {
	dx, dy := float64(to.X-from.X), float64(to.Y-from.Y)
	length := math.Sqrt(dx*dx + dy*dy)

	if dx == 0 {
		switch {
		case dy > 0:
			return 90, length
		case dy < 0:
			return -90, length
		default:
			return 0, length
		}
	}

	angle := math.Atan(dy/dx) * 180 / math.Pi
	if dx < 0 {
		if dy >= 0 {
			angle += 180
		} else {
			angle -= 180
		}
	}
	return angle, length
}

// Advance applies a stroke to a heading and position. The resulting position
// is truncated to the integer grid, matching what gets drawn.
func Advance(heading float64, s Stroke, p Point) (float64, Point) {
	h := heading + s.Angle
	rad := h * math.Pi / 180
	return h, Point{
		X: int(float64(p.X) + s.Length*math.Cos(rad)),
		Y: int(float64(p.Y) + s.Length*math.Sin(rad)),
	}
}

// Replay walks strokes from origin at heading 0 and returns the final heading
// and position.
func Replay(origin Point, strokes []Stroke) (float64, Point) {
	heading, p := 0.0, origin
	for _, s := range strokes {
		heading, p = Advance(heading, s, p)
	}
	return heading, p
}

// Trace is Replay that also returns every vertex, origin first.
func Trace(origin Point, strokes []Stroke) (float64, []Point) {
	vertices := make([]Point, 0, len(strokes)+1)
	vertices = append(vertices, origin)
	heading, p := 0.0, origin
	for _, s := range strokes {
		heading, p = Advance(heading, s, p)
		vertices = append(vertices, p)
	}
	return heading, vertices
}

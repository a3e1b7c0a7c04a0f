// Package orbit holds the turtle path model: relative strokes, the geometry
// that converts pointer positions into strokes, linear undo/redo, and the
// *.turtle text format.
package orbit

// Orbit is an editable sequence of strokes with a redo buffer. The cursor
// (heading and position after the last stroke) is cached and recomputed by
// every operation so it always equals a replay from the origin.
//
// An Orbit is not safe for concurrent use. Hand Snapshot to other goroutines.
type Orbit struct {
	origin   Point
	strokes  []Stroke
	redo     []Stroke
	penDown  bool
	heading  float64
	cursor   Point
	modified bool
}

// New returns an empty orbit starting at origin. penDown sets whether the
// first mark draws or only moves.
func New(origin Point, penDown bool) *Orbit {
	return &Orbit{origin: origin, cursor: origin, penDown: penDown}
}

// Mark appends a stroke from the cursor to target. The stroke takes the
// current pen state, and the pen is left down for the next segment. Any
// undone strokes are discarded.
func (o *Orbit) Mark(target Point) Stroke {
	angle, length := AngleAndLength(o.cursor, target)
	s := Stroke{PenDown: o.penDown, Angle: angle - o.heading, Length: length}

	o.strokes = append(o.strokes, s)
	o.redo = o.redo[:0]
	o.heading, o.cursor = Advance(o.heading, s, o.cursor)
	o.penDown = true
	o.modified = true
	return s
}

// Release lifts the pen so the next mark is an invisible move.
func (o *Orbit) Release() {
	o.penDown = false
}

// Undo moves the last stroke onto the redo buffer and puts the pen down so
// the next mark reconnects. It reports false on an empty orbit.
func (o *Orbit) Undo() bool {
	n := len(o.strokes)
	if n == 0 {
		return false
	}
	s := o.strokes[n-1]
	o.strokes = o.strokes[:n-1]
	o.redo = append(o.redo, s)
	o.penDown = true
	o.modified = true
	o.heading, o.cursor = Replay(o.origin, o.strokes)
	return true
}

// Redo restores the most recently undone stroke and reports true.
//
// With an empty redo buffer Redo does not fail: it forces the pen down
// ("re-hold") and reports false. Callers rely on this second meaning.
func (o *Orbit) Redo() bool {
	n := len(o.redo)
	if n == 0 {
		o.penDown = true
		return false
	}
	s := o.redo[n-1]
	o.redo = o.redo[:n-1]
	o.strokes = append(o.strokes, s)
	o.modified = true
	o.heading, o.cursor = Advance(o.heading, s, o.cursor)
	return true
}

// Clear empties the orbit and returns the cursor to the origin.
func (o *Orbit) Clear() {
	o.strokes = nil
	o.redo = nil
	o.penDown = false
	o.heading, o.cursor = 0, o.origin
	o.modified = false
}

// Load replaces the strokes wholesale. The pen follows the last stroke.
func (o *Orbit) Load(strokes []Stroke) {
	o.strokes = cloneStrokes(strokes)
	o.redo = nil
	o.penDown = len(o.strokes) > 0 && o.strokes[len(o.strokes)-1].PenDown
	o.heading, o.cursor = Replay(o.origin, o.strokes)
	o.modified = false
}

// Strokes and RedoBuffer return copies; callers may modify them freely.
func (o *Orbit) Strokes() []Stroke    { return cloneStrokes(o.strokes) }
func (o *Orbit) RedoBuffer() []Stroke { return cloneStrokes(o.redo) }

// Snapshot returns an independent copy of the committed strokes.
func (o *Orbit) Snapshot() []Stroke { return cloneStrokes(o.strokes) }

// Len and RedoLen count committed and undone strokes.
func (o *Orbit) Len() int     { return len(o.strokes) }
func (o *Orbit) RedoLen() int { return len(o.redo) }

// PenDown reports whether the next mark draws.
func (o *Orbit) PenDown() bool { return o.penDown }

// Heading is the absolute direction, in degrees, after the last stroke.
func (o *Orbit) Heading() float64 { return o.heading }

// Cursor is the pen position after the last stroke.
func (o *Orbit) Cursor() Point { return o.cursor }

// Origin is where every replay starts.
func (o *Orbit) Origin() Point { return o.origin }

// Modified reports changes since the orbit was created or last marked saved.
func (o *Orbit) Modified() bool { return o.modified }

// MarkSaved clears the modified flag.
func (o *Orbit) MarkSaved() { o.modified = false }

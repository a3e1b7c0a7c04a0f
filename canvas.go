package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"turm/orbit"
)

// Canvas rasterises the orbit onto braille cells. Every cell holds 2x4 dots
// and every dot covers scale x scale canvas units.
type Canvas struct {
	cols  int
	rows  int
	scale int
	dots  [numLayers][]uint8
	marks map[int]mark
}

type layer int

const (
	layerAxes layer = iota
	layerReplay
	layerPending
	layerPath
	numLayers
)

type mark struct {
	r     rune
	style *lipgloss.Style
}

var (
	axesStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	replayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Faint(true)
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	penDownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	penUpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	pointerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))

	layerStyles = [numLayers]*lipgloss.Style{&axesStyle, &replayStyle, &pendingStyle, &pathStyle}
)

// brailleBits[dy][dx] is the dot bit within a braille cell.
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const (
	brailleBase = 0x2800
	markerRune  = '●'
	pointerRune = '┼'
)

func NewCanvas(width, height, scale int) *Canvas {
	if scale < 1 {
		scale = 1
	}
	dotsW := (width + scale - 1) / scale
	dotsH := (height + scale - 1) / scale
	c := &Canvas{
		cols:  (dotsW + 1) / 2,
		rows:  (dotsH + 3) / 4,
		scale: scale,
		marks: make(map[int]mark),
	}
	for l := range c.dots {
		c.dots[l] = make([]uint8, c.cols*c.rows)
	}
	return c
}

func (c *Canvas) Size() (int, int) { return c.cols, c.rows }

func (c *Canvas) Reset() {
	for l := range c.dots {
		clear(c.dots[l])
	}
	clear(c.marks)
}

func (c *Canvas) Contains(col, row int) bool {
	return col >= 0 && col < c.cols && row >= 0 && row < c.rows
}

// CellPoint is the canvas point a pointer on cell (col, row) stands for: the
// centre of the cell.
func (c *Canvas) CellPoint(col, row int) orbit.Point {
	return orbit.Point{
		X: col*2*c.scale + c.scale,
		Y: row*4*c.scale + 2*c.scale,
	}
}

func (c *Canvas) CellOf(p orbit.Point) (int, int, bool) {
	col := floorDiv(p.X, 2*c.scale)
	row := floorDiv(p.Y, 4*c.scale)
	return col, row, c.Contains(col, row)
}

func (c *Canvas) Mark(p orbit.Point, r rune, style *lipgloss.Style) {
	if col, row, ok := c.CellOf(p); ok {
		c.marks[row*c.cols+col] = mark{r: r, style: style}
	}
}

func (c *Canvas) LinePoints(l layer, a, b orbit.Point) {
	c.Line(l, float64(a.X), float64(a.Y), float64(b.X), float64(b.Y))
}

// Line draws a segment given in canvas units, clipped to the canvas.
func (c *Canvas) Line(l layer, x0, y0, x1, y1 float64) {
	s := float64(c.scale)
	ax, ay, bx, by, ok := clipSegment(x0/s, y0/s, x1/s, y1/s, float64(c.cols*2), float64(c.rows*4))
	if !ok {
		return
	}
	c.bresenham(l, int(math.Floor(ax)), int(math.Floor(ay)), int(math.Floor(bx)), int(math.Floor(by)))
}

func (c *Canvas) set(l layer, x, y int) {
	if x < 0 || y < 0 || x >= c.cols*2 || y >= c.rows*4 {
		return
	}
	c.dots[l][(y/4)*c.cols+x/2] |= brailleBits[y%4][x%2]
}

func (c *Canvas) bresenham(l layer, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.set(l, x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// clipSegment clips a segment to [0,w]x[0,h] (Liang-Barsky).
func clipSegment(x0, y0, x1, y1, w, h float64) (float64, float64, float64, float64, bool) {
	t0, t1 := 0.0, 1.0
	dx, dy := x1-x0, y1-y0
	edges := [4][2]float64{{-dx, x0}, {dx, w - x0}, {-dy, y0}, {dy, h - y0}}
	for _, edge := range edges {
		p, q := edge[0], edge[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func (c *Canvas) cell(i int) (rune, *lipgloss.Style) {
	if m, ok := c.marks[i]; ok {
		return m.r, m.style
	}
	var bits uint8
	var style *lipgloss.Style
	for l := range c.dots {
		if b := c.dots[l][i]; b != 0 {
			bits |= b
			style = layerStyles[l]
		}
	}
	if bits == 0 {
		return ' ', nil
	}
	return rune(brailleBase + int(bits)), style
}

// Render returns one string per cell row. Runs of cells sharing a layer are
// styled together.
func (c *Canvas) Render(styled bool) []string {
	lines := make([]string, c.rows)
	for row := 0; row < c.rows; row++ {
		var b strings.Builder
		var run []rune
		var runStyle *lipgloss.Style
		flush := func() {
			if len(run) == 0 {
				return
			}
			if styled && runStyle != nil {
				b.WriteString(runStyle.Render(string(run)))
			} else {
				b.WriteString(string(run))
			}
			run = run[:0]
		}
		for col := 0; col < c.cols; col++ {
			r, style := c.cell(row*c.cols + col)
			if style != runStyle {
				flush()
				runStyle = style
			}
			run = append(run, r)
		}
		flush()
		lines[row] = b.String()
	}
	return lines
}

// drawScene rasterises axes, the replay layer, the committed path, the
// pending segment and the markers.
func (m *model) drawScene() *Canvas {
	c := m.canvas
	c.Reset()

	o := m.ctl.Orbit
	origin := o.Origin()
	w, h := float64(m.config.Width), float64(m.config.Height)
	c.Line(layerAxes, 0, float64(origin.Y), w, float64(origin.Y))
	c.Line(layerAxes, float64(origin.X), 0, float64(origin.X), h)

	for _, seg := range m.replay.Segments() {
		c.Line(layerReplay, seg[0], seg[1], seg[2], seg[3])
	}

	strokes := o.Strokes()
	_, points := orbit.Trace(origin, strokes)
	for i, s := range strokes {
		if s.PenDown {
			c.LinePoints(layerPath, points[i], points[i+1])
		}
	}

	live := m.ctl.Live()
	if o.PenDown() {
		c.LinePoints(layerPending, o.Cursor(), live)
	}
	c.Mark(live, pointerRune, &pointerStyle)
	if o.PenDown() {
		c.Mark(o.Cursor(), markerRune, &penDownStyle)
	} else {
		c.Mark(o.Cursor(), markerRune, &penUpStyle)
	}
	return c
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

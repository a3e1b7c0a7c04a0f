package main

import "turm/orbit"

// handleNavigation moves the live pointer one braille cell per key, or
// fastMoveFactor cells with shift.
func (m *model) handleNavigation(key string) {
	speed := m.getMoveSpeed(key)
	stepX := 2 * m.config.Scale * speed
	stepY := 4 * m.config.Scale * speed
	switch key {
	case "h", "left", "H", "shift+left":
		m.ctl.MoveLive(-stepX, 0)
	case "l", "right", "L", "shift+right":
		m.ctl.MoveLive(stepX, 0)
	case "k", "up", "K", "shift+up":
		m.ctl.MoveLive(0, -stepY)
	case "j", "down", "J", "shift+down":
		m.ctl.MoveLive(0, stepY)
	}
	m.ensurePointerInBounds()
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return fastMoveFactor
	default:
		return 1
	}
}

func (m *model) ensurePointerInBounds() {
	p := m.ctl.Live()
	if p.X < 0 {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.X >= m.config.Width {
		p.X = m.config.Width - 1
	}
	if p.Y >= m.config.Height {
		p.Y = m.config.Height - 1
	}
	m.ctl.SetLive(p)
}

// pointerToPen puts the live pointer back on the pen.
func (m *model) pointerToPen() {
	m.ctl.SetLive(m.ctl.Orbit.Cursor())
}

// mousePoint maps a terminal cell to the canvas point it stands for.
func (m *model) mousePoint(x, y int) (orbit.Point, bool) {
	if !m.canvas.Contains(x, y) {
		return orbit.Point{}, false
	}
	return m.canvas.CellPoint(x, y), true
}

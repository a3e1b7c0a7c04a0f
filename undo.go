package main

import (
	"log"

	"turm/session"
)

// apply feeds one pointer event to the controller and reports the edit on
// the status line.
func (m *model) apply(ev session.PointerEvent) session.Op {
	op := m.ctl.Handle(ev)
	if op == session.OpNone || op == session.OpPreview {
		return op
	}
	m.lastOp = op
	m.errorMessage = ""
	m.successMessage = ""
	o := m.ctl.Orbit
	log.Printf("%s: %d strokes, %d undone, pen down %v", op, o.Len(), o.RedoLen(), o.PenDown())
	return op
}

// Keyboard edits act at the live pointer. They carry no timestamp so two
// quick releases are never taken for a double click.
func (m *model) keyEvent(b session.Button, modifier bool) session.PointerEvent {
	return session.PointerEvent{
		Pos:      m.ctl.Live(),
		Button:   b,
		Action:   session.ActionRelease,
		Modifier: modifier,
	}
}

func (m *model) markAtPointer() {
	m.apply(m.keyEvent(session.ButtonPrimary, false))
}

func (m *model) release() {
	m.apply(m.keyEvent(session.ButtonSecondary, false))
}

// undo steps back one stroke and keeps the pen down.
func (m *model) undo() {
	if m.ctl.Orbit.Len() == 0 {
		m.errorMessage = "Nothing to undo"
		return
	}
	m.apply(m.keyEvent(session.ButtonSecondary, true))
}

// backAndRelease steps back one stroke and lifts the pen, the same edits a
// secondary double click makes.
func (m *model) backAndRelease() {
	if m.ctl.Orbit.Len() == 0 {
		m.errorMessage = "Nothing to undo"
		return
	}
	m.ctl.Handle(session.PointerEvent{Button: session.ButtonSecondary, Action: session.ActionDoubleClick})
	m.apply(m.keyEvent(session.ButtonSecondary, false))
	m.lastOp = session.OpUndoRelease
}

// redo restores an undone stroke, or puts the pen down when there is none.
func (m *model) redo() {
	if m.apply(m.keyEvent(session.ButtonPrimary, true)) == session.OpRehold {
		m.successMessage = "Nothing to redo, pen down"
	}
}

func (m *model) requestClear() {
	o := m.ctl.Orbit
	if o.Len() == 0 && o.RedoLen() == 0 {
		return
	}
	if o.Modified() && m.config.Confirmations {
		m.mode = ModeConfirm
		m.confirmAction = ConfirmClear
		return
	}
	m.clearOrbit()
}

func (m *model) clearOrbit() {
	m.stopReplay()
	m.ctl.Orbit.Clear()
	m.ctl.SetLive(m.ctl.Orbit.Origin())
	m.current = ""
	m.lastOp = session.OpNone
	m.errorMessage = ""
	m.successMessage = "Cleared"
}

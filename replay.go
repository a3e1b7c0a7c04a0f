package main

import (
	"context"
	"errors"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"turm/orbit"
	"turm/render"
)

// replayLayer collects what the test draw has drawn so far. The replay
// goroutine only writes here; the model polls it on replayTickMsg and never
// receives messages from the goroutine, so stopping a run from Update cannot
// block on a pending send.
type replayLayer struct {
	mu       sync.Mutex
	run      *replayRun
	finished map[string]error
}

type replayRun struct {
	id       string
	segments [][4]float64
}

func newReplayLayer() *replayLayer {
	return &replayLayer{finished: make(map[string]error)}
}

// begin discards the previous drawing and returns a run to draw into.
func (l *replayLayer) begin() *replayRun {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.run = &replayRun{}
	clear(l.finished)
	return l.run
}

// setID names run once the driver has started it. Results of earlier runs,
// including the one Start just stopped, are dropped.
func (l *replayLayer) setID(run *replayRun, id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	run.id = id
	for k := range l.finished {
		if k != id {
			delete(l.finished, k)
		}
	}
}

// renderer returns a turtle that draws into run. Runs that have been
// replaced keep drawing into their own, no longer shown, segments.
func (l *replayLayer) renderer(origin orbit.Point, run *replayRun) *render.Turtle {
	t := render.NewTurtle(origin)
	t.Line = func(x0, y0, x1, y1 float64) {
		l.mu.Lock()
		run.segments = append(run.segments, [4]float64{x0, y0, x1, y1})
		l.mu.Unlock()
	}
	return t
}

// finish is the driver's OnDone hook. Only the shown run's result is kept;
// before its ID is known every result is kept until setID.
func (l *replayLayer) finish(id string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.run == nil || (l.run.id != "" && l.run.id != id) {
		return
	}
	l.finished[id] = err
}

// state reports whether the shown run is still drawing, and how it ended.
func (l *replayLayer) state() (running bool, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.run == nil {
		return false, nil
	}
	if l.run.id == "" {
		return true, nil
	}
	err, done := l.finished[l.run.id]
	return !done, err
}

func (l *replayLayer) Segments() [][4]float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.run == nil {
		return nil
	}
	segs := make([][4]float64, len(l.run.segments))
	copy(segs, l.run.segments)
	return segs
}

func (l *replayLayer) clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.run = nil
	clear(l.finished)
}

func replayTick() tea.Cmd {
	return tea.Tick(replayTickInterval, func(time.Time) tea.Msg {
		return replayTickMsg{}
	})
}

// startReplay test-draws the current path from the origin. A running test
// draw is asked about first.
func (m *model) startReplay() tea.Cmd {
	if m.ctl.Orbit.Len() == 0 {
		m.errorMessage = "Nothing to draw"
		return nil
	}
	if running, _ := m.replay.state(); running && m.config.Confirmations {
		m.mode = ModeConfirm
		m.confirmAction = ConfirmRestartReplay
		return nil
	}
	return m.restartReplay()
}

func (m *model) restartReplay() tea.Cmd {
	strokes := m.ctl.Orbit.Snapshot()
	run := m.replay.begin()
	id := m.driver.Start(strokes, m.replay.renderer(m.ctl.Orbit.Origin(), run))
	m.replay.setID(run, id)
	m.errorMessage = ""
	m.successMessage = "Test drawing..."
	return replayTick()
}

func (m *model) stopReplay() {
	m.driver.Stop()
	m.replay.clear()
}

func (m *model) handleReplayTick() tea.Cmd {
	running, err := m.replay.state()
	if running {
		return replayTick()
	}
	switch {
	case err == nil:
		if m.successMessage == "Test drawing..." {
			m.successMessage = "Test draw finished"
		}
	case errors.Is(err, context.Canceled):
	default:
		m.errorMessage = "Test draw failed: " + err.Error()
	}
	return nil
}

package replay

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"turm/orbit"
)

// Driver runs at most one replay at a time. Starting a new replay cancels the
// active one and waits for it to return before the new one begins, so two
// runs never share a renderer.
type Driver struct {
	// Delay is the pause between strokes.
	Delay time.Duration
	// OnDone is called from the replay goroutine when a run ends. err is nil
	// when every stroke was issued and context.Canceled when it was stopped.
	OnDone func(id string, err error)

	mu     sync.Mutex
	id     string
	cancel context.CancelFunc
	done   chan struct{}
}

// NewDriver returns a Driver pausing delay between strokes.
func NewDriver(delay time.Duration) *Driver {
	return &Driver{Delay: delay}
}

// Start replays a copy of strokes on r and returns the run ID.
func (d *Driver) Start(strokes []orbit.Stroke, r Renderer) string {
	snapshot := make([]orbit.Stroke, len(strokes))
	copy(snapshot, strokes)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()

	ctx, cancel := context.WithCancel(context.Background())
	id := uuid.NewString()
	done := make(chan struct{})
	d.id, d.cancel, d.done = id, cancel, done

	delay, onDone := d.Delay, d.OnDone
	log.Printf("replay %s: start, %d strokes", id, len(snapshot))
	go func() {
		defer close(done)
		err := Play(ctx, snapshot, r, delay)
		if err != nil {
			log.Printf("replay %s: stopped: %v", id, err)
		} else {
			log.Printf("replay %s: done", id)
		}
		if onDone != nil {
			onDone(id, err)
		}
	}()
	return id
}

// Stop cancels the active run, if any, and waits for it to return.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

func (d *Driver) stopLocked() {
	if d.cancel == nil {
		return
	}
	d.cancel()
	<-d.done
	d.id, d.cancel, d.done = "", nil, nil
}

// Wait blocks until the active run, if any, finishes on its own or is stopped.
func (d *Driver) Wait() {
	d.mu.Lock()
	done := d.done
	d.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Running reports whether a run is in progress.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.done == nil {
		return false
	}
	select {
	case <-d.done:
		return false
	default:
		return true
	}
}

// Current returns the ID of the most recent run that has not been stopped.
func (d *Driver) Current() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.id
}

package replay

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"turm/orbit"
)

// recorder is a Renderer that keeps every command as text.
type recorder struct {
	mu       sync.Mutex
	commands []string
	// block, when set, is waited on before every Forward.
	block chan struct{}
}

func (r *recorder) add(cmd string) {
	r.mu.Lock()
	r.commands = append(r.commands, cmd)
	r.mu.Unlock()
}

func (r *recorder) PenUp()           { r.add("up") }
func (r *recorder) PenDown()         { r.add("down") }
func (r *recorder) Turn(deg float64) { r.add(fmt.Sprintf("turn %g", deg)) }

func (r *recorder) Forward(d float64) {
	if r.block != nil {
		<-r.block
	}
	r.add(fmt.Sprintf("forward %g", d))
}

func (r *recorder) Commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.commands...)
}

func TestPlay(t *testing.T) {
	strokes := []orbit.Stroke{
		{PenDown: false, Angle: -90, Length: 100},
		{PenDown: true, Angle: 90, Length: 50.5},
	}
	r := &recorder{}
	if err := Play(context.Background(), strokes, r, 0); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	want := []string{"up", "turn -90", "forward 100", "down", "turn 90", "forward 50.5"}
	if got := r.Commands(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestPlayEmpty(t *testing.T) {
	r := &recorder{}
	if err := Play(context.Background(), nil, r, time.Millisecond); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}
	if len(r.Commands()) != 0 {
		t.Errorf("Expected no commands, got %v", r.Commands())
	}
}

func TestPlayCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &recorder{}
	err := Play(ctx, []orbit.Stroke{{PenDown: true, Length: 1}}, r, 0)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if len(r.Commands()) != 0 {
		t.Errorf("Expected no commands, got %v", r.Commands())
	}
}

func TestPlayCancelledDuringDelay(t *testing.T) {
	strokes := make([]orbit.Stroke, 10)
	for i := range strokes {
		strokes[i] = orbit.Stroke{PenDown: true, Angle: 36, Length: 10}
	}
	ctx, cancel := context.WithCancel(context.Background())
	r := &recorder{}

	errc := make(chan error, 1)
	go func() { errc <- Play(ctx, strokes, r, time.Hour) }()

	// the first stroke is issued without waiting
	deadline := time.After(5 * time.Second)
	for len(r.Commands()) < 3 {
		select {
		case <-deadline:
			t.Fatal("First stroke was never issued")
		case <-time.After(time.Millisecond):
		}
	}
	cancel()

	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Play did not stop after cancel")
	}
	if got := len(r.Commands()); got != 3 {
		t.Errorf("Expected 3 commands, got %d", got)
	}
}

func TestDriverRunsToCompletion(t *testing.T) {
	d := NewDriver(0)
	var (
		mu      sync.Mutex
		doneID  string
		doneErr = errors.New("not called")
	)
	d.OnDone = func(id string, err error) {
		mu.Lock()
		doneID, doneErr = id, err
		mu.Unlock()
	}

	r := &recorder{}
	id := d.Start([]orbit.Stroke{{PenDown: true, Angle: 10, Length: 5}}, r)
	if id == "" {
		t.Fatal("Expected a run ID")
	}
	d.Wait()

	mu.Lock()
	defer mu.Unlock()
	if doneID != id || doneErr != nil {
		t.Errorf("Expected OnDone(%s, nil), got (%s, %v)", id, doneID, doneErr)
	}
	if d.Running() {
		t.Error("Driver should not be running after Wait")
	}
	if len(r.Commands()) != 3 {
		t.Errorf("Expected 3 commands, got %v", r.Commands())
	}
}

func TestDriverRestartStopsPrevious(t *testing.T) {
	d := NewDriver(time.Hour)
	var (
		mu      sync.Mutex
		results = map[string]error{}
	)
	d.OnDone = func(id string, err error) {
		mu.Lock()
		results[id] = err
		mu.Unlock()
	}

	strokes := []orbit.Stroke{{PenDown: true, Length: 1}, {PenDown: true, Length: 2}}
	first := &recorder{}
	firstID := d.Start(strokes, first)
	if !d.Running() {
		t.Fatal("Expected first run to be running")
	}

	d.Delay = 0
	second := &recorder{}
	secondID := d.Start(strokes, second)
	if secondID == firstID {
		t.Fatal("Expected a fresh run ID")
	}

	// Start only returns after the first run has finished
	mu.Lock()
	firstErr, ok := results[firstID]
	mu.Unlock()
	if !ok {
		t.Fatal("First run had not finished when the second started")
	}
	if !errors.Is(firstErr, context.Canceled) {
		t.Errorf("Expected first run cancelled, got %v", firstErr)
	}
	if got := len(first.Commands()); got > 3 {
		t.Errorf("Expected at most one stroke from first run, got %d commands", got)
	}

	d.Wait()
	if got := len(second.Commands()); got != 6 {
		t.Errorf("Expected 6 commands from second run, got %d", got)
	}
	if d.Current() != secondID {
		t.Errorf("Expected current %s, got %s", secondID, d.Current())
	}
}

func TestDriverUsesSnapshot(t *testing.T) {
	d := NewDriver(0)
	strokes := []orbit.Stroke{{PenDown: true, Angle: 0, Length: 7}}
	r := &recorder{block: make(chan struct{})}
	d.Start(strokes, r)

	strokes[0].Length = 99
	r.block <- struct{}{}
	d.Wait()

	want := []string{"down", "turn 0", "forward 7"}
	if got := r.Commands(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestDriverStopIdle(t *testing.T) {
	d := NewDriver(time.Millisecond)
	d.Stop()
	d.Wait()
	if d.Running() || d.Current() != "" {
		t.Error("Idle driver should report nothing running")
	}
}

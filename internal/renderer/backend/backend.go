// Package backend wraps tcell behind the small surface the editor needs:
// screen lifecycle, event polling, and posting config-reload events into
// the main loop.
package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/emed-editor/emed/internal/input/key"
)

// EventType discriminates the events the main loop handles.
type EventType uint8

const (
	// EventNone is an event the editor ignores.
	EventNone EventType = iota

	// EventKey is a key press.
	EventKey

	// EventResize reports a new terminal size.
	EventResize

	// EventReload asks the app to reload its configuration.
	EventReload
)

// Event is a backend-agnostic terminal event.
type Event struct {
	Type   EventType
	Key    key.Event
	Width  int
	Height int
}

// Screen is the terminal surface.
type Screen struct {
	tc tcell.Screen
}

// New creates a screen on the real terminal.
func New() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Screen{tc: tc}, nil
}

// NewSimulation creates a screen on a tcell simulation surface, for tests.
func NewSimulation() (*Screen, tcell.SimulationScreen) {
	sim := tcell.NewSimulationScreen("UTF-8")
	return &Screen{tc: sim}, sim
}

// Init enters raw mode.
func (s *Screen) Init() error {
	return s.tc.Init()
}

// Fini restores the terminal. Safe to call after a failed Init.
func (s *Screen) Fini() {
	s.tc.Fini()
}

// Size returns the terminal dimensions.
func (s *Screen) Size() (int, int) {
	return s.tc.Size()
}

// Tcell exposes the underlying screen for drawing.
func (s *Screen) Tcell() tcell.Screen {
	return s.tc
}

// PollEvent blocks for the next event.
func (s *Screen) PollEvent() Event {
	switch ev := s.tc.PollEvent().(type) {
	case *tcell.EventKey:
		return Event{Type: EventKey, Key: convertKey(ev)}
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	case *reloadEvent:
		return Event{Type: EventReload}
	default:
		return Event{Type: EventNone}
	}
}

// PostReload injects a config-reload event into the event queue. It is
// the only cross-goroutine entry point; the watcher goroutine calls it.
func (s *Screen) PostReload() {
	ev := &reloadEvent{}
	ev.SetEventNow()
	_ = s.tc.PostEvent(ev) // best effort; queue may be full
}

// reloadEvent is a custom tcell event carrying no payload.
type reloadEvent struct {
	tcell.EventTime
}

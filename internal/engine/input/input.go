// Package input turns window-system events into per-frame viewer events.
package input

// EventType identifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Key is a backend-independent key code.
type Key int

// Keys the viewer reacts to. Backends map everything else to KeyUnknown.
const (
	KeyUnknown Key = iota
	KeyEscape
	KeyP
	KeyO
	KeyR
	KeyT
	KeyF12
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Width  int
	Height int
}

// Source is polled once per frame for pending events. Implementations append
// to dst and return the extended slice.
type Source interface {
	PollEvents(dst []Event) []Event
}

// Input collects the events of the current frame.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls src and replaces the previous frame's events.
// Returns true if the viewer should quit.
func (i *Input) Update(src Source) bool {
	i.events = src.PollEvents(i.events[:0])
	for _, e := range i.events {
		if e.Type == EventQuit {
			return true
		}
	}
	return false
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(key Key) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == key {
			return true
		}
	}
	return false
}

// Resized returns the last window size reported this frame, if any.
func (i *Input) Resized() (width, height int, ok bool) {
	for _, e := range i.events {
		if e.Type == EventWindowResize {
			width, height, ok = e.Width, e.Height, true
		}
	}
	return width, height, ok
}

package input

import "fmt"

// EventType enumerates the raw events a host can report.
type EventType int

const (
	// EventQuit is sent when the window or terminal is being closed.
	EventQuit EventType = iota
	// EventPointerDown is sent when the primary pointer button is pressed.
	EventPointerDown
	// EventPointerUp is sent when the primary pointer button is released.
	EventPointerUp
	// EventKey is sent once per key press.
	EventKey
)

func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "quit"
	case EventPointerDown:
		return "pointer-down"
	case EventPointerUp:
		return "pointer-up"
	case EventKey:
		return "key"
	default:
		return fmt.Sprintf("event(%d)", int(t))
	}
}

// Key is a host-independent key code for the shortcuts the player reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeySpace
	KeyN
	KeyRight
	KeyC
	KeyBackspace
	KeyQ
	KeyEscape
)

// Event is one raw input event in window pixel coordinates.
type Event struct {
	Type EventType
	X, Y int
	Key  Key
}

// Quit returns a quit event.
func Quit() Event { return Event{Type: EventQuit} }

// PointerDown returns a pointer press at (x, y).
func PointerDown(x, y int) Event { return Event{Type: EventPointerDown, X: x, Y: y} }

// PointerUp returns a pointer release at (x, y).
func PointerUp(x, y int) Event { return Event{Type: EventPointerUp, X: x, Y: y} }

// KeyPress returns a key event.
func KeyPress(k Key) Event { return Event{Type: EventKey, Key: k} }

func (e Event) String() string {
	switch e.Type {
	case EventPointerDown, EventPointerUp:
		return fmt.Sprintf("%s(%d,%d)", e.Type, e.X, e.Y)
	case EventKey:
		return fmt.Sprintf("key(%d)", int(e.Key))
	default:
		return e.Type.String()
	}
}

package session

// Mode is the play/pause state of a session.
type Mode int

const (
	Paused Mode = iota
	Playing
)

func (m Mode) String() string {
	if m == Playing {
		return "playing"
	}
	return "paused"
}

func (m Mode) toggle() Mode {
	if m == Playing {
		return Paused
	}
	return Playing
}

// Brush is the paint drag held by the pointer. A drag starts on a press
// over the grid while paused and ends on release, whatever the mode is by
// then; it only paints while paused.
type Brush int

const (
	BrushIdle Brush = iota
	// BrushAlive paints cells alive; started by pressing on a dead cell.
	BrushAlive
	// BrushDead paints cells dead; started by pressing on a live cell.
	BrushDead
)

func (b Brush) String() string {
	switch b {
	case BrushAlive:
		return "painting-alive"
	case BrushDead:
		return "painting-dead"
	default:
		return "idle"
	}
}

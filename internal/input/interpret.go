package input

import (
	"fmt"

	"ca-player/internal/ui"
	"ca-player/pkg/core"
)

// ActionKind enumerates the semantic actions raw events translate into.
type ActionKind int

const (
	ActionQuit ActionKind = iota
	// ActionPaintAlive starts a drag that paints cells alive.
	ActionPaintAlive
	// ActionPaintDead starts a drag that paints cells dead.
	ActionPaintDead
	ActionEndDrag
	ActionTogglePlay
	ActionStep
	ActionClear
)

func (k ActionKind) String() string {
	switch k {
	case ActionQuit:
		return "quit"
	case ActionPaintAlive:
		return "paint-alive"
	case ActionPaintDead:
		return "paint-dead"
	case ActionEndDrag:
		return "end-drag"
	case ActionTogglePlay:
		return "toggle-play"
	case ActionStep:
		return "step"
	case ActionClear:
		return "clear"
	default:
		return fmt.Sprintf("action(%d)", int(k))
	}
}

// Button returns the control an action is bound to, if any.
func (k ActionKind) Button() (ui.ButtonKind, bool) {
	switch k {
	case ActionTogglePlay:
		return ui.ButtonPlay, true
	case ActionStep:
		return ui.ButtonStep, true
	case ActionClear:
		return ui.ButtonClear, true
	default:
		return 0, false
	}
}

// Action is a semantic action. Row and Col are set for paint actions.
type Action struct {
	Kind     ActionKind
	Row, Col int
}

// Interpreter maps raw events to actions using the session geometry and
// the control layout of the current frame. It holds no state of its own;
// whether an action has any effect is up to the controller.
type Interpreter struct {
	geom ui.Geometry
}

// NewInterpreter returns an interpreter for the given geometry.
func NewInterpreter(geom ui.Geometry) Interpreter {
	return Interpreter{geom: geom}
}

// Interpret translates ev. A pointer press is checked against the grid
// area and against each button independently; the grid area ends where
// the control strip begins, so at most one of them matches.
func (in Interpreter) Interpret(ev Event, layout ui.Layout, grid *core.Grid) []Action {
	switch ev.Type {
	case EventQuit:
		return []Action{{Kind: ActionQuit}}
	case EventPointerUp:
		return []Action{{Kind: ActionEndDrag}}
	case EventPointerDown:
		var out []Action
		if in.geom.InGrid(ev.X, ev.Y) {
			r, c := in.geom.CellAt(ev.X, ev.Y)
			kind := ActionPaintAlive
			if grid.Alive(r, c) {
				kind = ActionPaintDead
			}
			out = append(out, Action{Kind: kind, Row: r, Col: c})
		}
		if b, ok := layout.HitButton(ev.X, ev.Y); ok {
			out = append(out, Action{Kind: buttonAction(b)})
		}
		return out
	case EventKey:
		if kind, ok := keyAction(ev.Key); ok {
			return []Action{{Kind: kind}}
		}
	}
	return nil
}

func buttonAction(b ui.ButtonKind) ActionKind {
	switch b {
	case ui.ButtonStep:
		return ActionStep
	case ui.ButtonClear:
		return ActionClear
	default:
		return ActionTogglePlay
	}
}

func keyAction(k Key) (ActionKind, bool) {
	switch k {
	case KeySpace:
		return ActionTogglePlay, true
	case KeyN, KeyRight:
		return ActionStep, true
	case KeyC, KeyBackspace:
		return ActionClear, true
	case KeyQ, KeyEscape:
		return ActionQuit, true
	default:
		return 0, false
	}
}

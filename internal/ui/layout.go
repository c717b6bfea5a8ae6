package ui

import (
	"errors"
	"fmt"
	"image"

	"ca-player/pkg/core"
)

// ErrCellSize is returned for non-positive cell sizes.
var ErrCellSize = errors.New("cell size must be positive")

// ButtonKind identifies one of the three controls below the grid.
type ButtonKind int

const (
	ButtonPlay ButtonKind = iota
	ButtonStep
	ButtonClear

	numButtons
)

func (k ButtonKind) String() string {
	switch k {
	case ButtonPlay:
		return "play"
	case ButtonStep:
		return "step"
	case ButtonClear:
		return "clear"
	default:
		return fmt.Sprintf("button(%d)", int(k))
	}
}

// Button is a control hit-area together with what should be drawn in it.
type Button struct {
	Kind   ButtonKind
	Rect   image.Rectangle
	Label  string
	Dimmed bool
}

// Layout is the control strip for one frame.
type Layout struct {
	Playing bool
	Buttons [numButtons]Button
}

// Button returns the button of the given kind.
func (l Layout) Button(kind ButtonKind) Button { return l.Buttons[kind] }

// HitButton reports which button, if any, contains (x, y).
func (l Layout) HitButton(x, y int) (ButtonKind, bool) {
	for _, b := range l.Buttons {
		if pointInRect(x, y, b.Rect) {
			return b.Kind, true
		}
	}
	return 0, false
}

// Geometry is the pixel layout of a session derived from the grid size,
// the cell size and the theme. It does not change during a session.
type Geometry struct {
	Rows, Cols int
	CellSize   int

	GridW, GridH int
	ButtonW      int
	ButtonH      int
}

// NewGeometry computes the geometry for a rows x cols grid.
func NewGeometry(rows, cols, cellSize int, theme Theme) (Geometry, error) {
	if rows <= 0 || cols <= 0 {
		return Geometry{}, fmt.Errorf("geometry for %dx%d: %w", rows, cols, core.ErrEmptyGrid)
	}
	if cellSize <= 0 {
		return Geometry{}, fmt.Errorf("%d: %w", cellSize, ErrCellSize)
	}
	if theme.ButtonWidth <= 0 || theme.ButtonHeight <= 0 {
		return Geometry{}, fmt.Errorf("button size %dx%d must be positive", theme.ButtonWidth, theme.ButtonHeight)
	}
	g := Geometry{
		Rows:     rows,
		Cols:     cols,
		CellSize: cellSize,
		GridW:    cols * cellSize,
		GridH:    rows * cellSize,
		ButtonH:  theme.ButtonHeight,
	}
	// Narrow grids shrink the buttons; grids under three pixels wide widen
	// the window instead so that all three stay inside it.
	g.ButtonW = max(1, min(theme.ButtonWidth, g.GridW/3))
	return g, nil
}

// WindowSize returns the window dimensions: the grid plus the control strip.
func (g Geometry) WindowSize() (int, int) {
	return max(g.GridW, g.stripX()+int(numButtons)*g.ButtonW), g.GridH + g.ButtonH
}

// stripX is the left edge of the first button.
func (g Geometry) stripX() int {
	return max(0, (g.GridW-g.ButtonW)/2-g.ButtonW)
}

// InGrid reports whether a pointer at (x, y) is over the grid rather than
// the control strip.
func (g Geometry) InGrid(x, y int) bool {
	return y < g.GridH
}

// CellAt maps pixel coordinates to the cell under them, clamping the point
// to the grid's pixel bounds first.
func (g Geometry) CellAt(x, y int) (row, col int) {
	x = clampInt(x, 0, g.GridW-1)
	y = clampInt(y, 0, g.GridH-1)
	return y / g.CellSize, x / g.CellSize
}

// Layout returns the control strip for the given play state. Button
// geometry only depends on the grid; playing changes the Play label and
// dims Step and Clear.
func (g Geometry) Layout(playing bool) Layout {
	bw, bh := g.ButtonW, g.ButtonH
	x0 := g.stripX()
	y := g.GridH
	l := Layout{Playing: playing}
	labels := [numButtons]string{"Play", "Step", "Clear"}
	if playing {
		labels[ButtonPlay] = "Pause"
	}
	for i := range l.Buttons {
		x := x0 + i*bw
		l.Buttons[i] = Button{
			Kind:   ButtonKind(i),
			Rect:   image.Rect(x, y, x+bw, y+bh),
			Label:  labels[i],
			Dimmed: playing && ButtonKind(i) != ButtonPlay,
		}
	}
	return l
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

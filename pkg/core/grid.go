package core

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid is returned for grids without at least one row and one column.
	ErrEmptyGrid = errors.New("grid has no cells")
	// ErrDimensionMismatch is returned when a grid is replaced by one of a different size.
	ErrDimensionMismatch = errors.New("grid dimensions changed")
)

// Grid stores a 2D grid of alive/dead cells in row-major order. Its
// dimensions are fixed once allocated.
type Grid struct {
	Rows, Cols int
	cells      []bool
}

// NewGrid allocates an all-dead grid with the given dimensions. Negative
// dimensions are treated as zero; Validate reports such grids as empty.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{Rows: rows, Cols: cols, cells: make([]bool, rows*cols)}
}

// Validate reports whether the grid is usable as simulation state.
func (g *Grid) Validate() error {
	if g == nil {
		return fmt.Errorf("nil grid: %w", ErrEmptyGrid)
	}
	if g.Rows <= 0 || g.Cols <= 0 {
		return fmt.Errorf("%dx%d: %w", g.Rows, g.Cols, ErrEmptyGrid)
	}
	if len(g.cells) != g.Rows*g.Cols {
		return fmt.Errorf("%dx%d grid backed by %d cells: %w", g.Rows, g.Cols, len(g.cells), ErrDimensionMismatch)
	}
	return nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []bool { return g.cells }

// Index returns the linear slice index for cell (r, c).
func (g *Grid) Index(r, c int) int { return r*g.Cols + c }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(r, c int) (int, int) {
	r = (r%g.Rows + g.Rows) % g.Rows
	c = (c%g.Cols + g.Cols) % g.Cols
	return r, c
}

// Alive reports the state of cell (r, c).
func (g *Grid) Alive(r, c int) bool { return g.cells[g.Index(r, c)] }

// Set updates the state of cell (r, c).
func (g *Grid) Set(r, c int, alive bool) { g.cells[g.Index(r, c)] = alive }

// Clear marks every cell dead.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

// Replace copies the cells of next into g. Both grids must have the same
// dimensions.
func (g *Grid) Replace(next *Grid) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if next.Rows != g.Rows || next.Cols != g.Cols {
		return fmt.Errorf("%dx%d -> %dx%d: %w", g.Rows, g.Cols, next.Rows, next.Cols, ErrDimensionMismatch)
	}
	if next != g {
		copy(g.cells, next.cells)
	}
	return nil
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{Rows: g.Rows, Cols: g.Cols, cells: make([]bool, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.Rows != o.Rows || g.Cols != o.Cols || len(g.cells) != len(o.cells) {
		return false
	}
	for i, v := range g.cells {
		if o.cells[i] != v {
			return false
		}
	}
	return true
}

// Population counts the alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.cells {
		if v {
			n++
		}
	}
	return n
}

// ParseGrid builds a grid from rows of text where '#', 'O', 'o', '*' and
// '1' mark alive cells and anything else is dead. Short rows are padded
// with dead cells.
func ParseGrid(rows ...string) *Grid {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	g := NewGrid(len(rows), cols)
	for r, row := range rows {
		for c := 0; c < len(row); c++ {
			switch row[c] {
			case '#', 'O', 'o', '*', '1':
				g.Set(r, c, true)
			}
		}
	}
	return g
}

// String renders the grid with '#' for alive and '.' for dead cells.
func (g *Grid) String() string {
	if g == nil {
		return "<nil>"
	}
	buf := make([]byte, 0, g.Rows*(g.Cols+1))
	for r := 0; r < g.Rows; r++ {
		if r > 0 {
			buf = append(buf, '\n')
		}
		for c := 0; c < g.Cols; c++ {
			if g.Alive(r, c) {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}

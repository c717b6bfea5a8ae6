package life

import "ca-player/pkg/core"

// gosperGliderGun lists the live cells of Gosper's glider gun inside its
// 11x38 bounding box as (row, col) pairs.
var gosperGliderGun = [][2]int{
	{5, 1}, {5, 2}, {6, 1}, {6, 2}, {3, 13}, {3, 14}, {4, 12}, {4, 16},
	{5, 11}, {5, 17}, {6, 11}, {6, 15}, {6, 17}, {6, 18}, {7, 11},
	{7, 17}, {8, 12}, {8, 16}, {9, 13}, {9, 14}, {1, 25}, {2, 23},
	{2, 25}, {3, 21}, {3, 22}, {4, 21}, {4, 22}, {5, 21}, {5, 22},
	{6, 23}, {6, 25}, {7, 25}, {3, 35}, {3, 36}, {4, 35}, {4, 36},
}

// Stamp sets the listed cells alive, offset by (row, col) and wrapped onto g.
func Stamp(g *core.Grid, row, col int, cells [][2]int) {
	for _, rc := range cells {
		r, c := g.Wrap(row+rc[0], col+rc[1])
		g.Set(r, c, true)
	}
}

// GosperGun returns an initializer placing a glider gun one cell in from
// the top-left corner of an otherwise dead rows x cols board.
func GosperGun(rows, cols int) core.Initializer {
	return core.InitializerFunc(func() *core.Grid {
		g := core.NewGrid(rows, cols)
		if g.Validate() != nil {
			return g
		}
		Stamp(g, 1, 1, gosperGliderGun)
		return g
	})
}

// Random returns an initializer filling a rows x cols board with live cells
// at the given density, deterministically for a seed.
func Random(rows, cols int, seed int64, density float64) core.Initializer {
	return core.InitializerFunc(func() *core.Grid {
		g := core.NewGrid(rows, cols)
		core.NewRNG(seed).FillRandom(g, density)
		return g
	})
}

// Blank returns an initializer producing an all-dead board.
func Blank(rows, cols int) core.Initializer {
	return core.InitializerFunc(func() *core.Grid {
		return core.NewGrid(rows, cols)
	})
}

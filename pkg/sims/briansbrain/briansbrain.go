package briansbrain

import (
	"fmt"
	"slices"
	"strconv"

	"ca-player/pkg/core"
)

// Config holds parameters for Brian's Brain.
type Config struct {
	Rows, Cols int
	Seed       int64
	Density    float64
}

// DefaultConfig returns a 200x200 grid with one cell in eight firing.
func DefaultConfig() Config {
	return Config{Rows: 200, Cols: 200, Seed: 42, Density: 0.125}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	for key, dst := range map[string]*int{"rows": &c.Rows, "h": &c.Rows, "cols": &c.Cols, "w": &c.Cols} {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return c, fmt.Errorf("%s=%q: want a positive integer", key, v)
		}
		*dst = n
	}
	if v, ok := cfg["seed"]; ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("seed=%q: %w", v, err)
		}
		c.Seed = n
	}
	if v, ok := cfg["density"]; ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || f > 1 {
			return c, fmt.Errorf("density=%q: want a value in [0,1]", v)
		}
		c.Density = f
	}
	return c, nil
}

// Brain implements Brian's Brain on a boolean grid. Alive cells are firing;
// a cell that fired spends the next generation dying, which is tracked here
// and shown as dead. A grid edited since the last step (painted or
// cleared) starts over with no dying cells.
type Brain struct {
	dying []bool
	nxt   []bool
	last  []bool
}

// New creates a Brain with no dying cells.
func New() *Brain { return &Brain{} }

// Dying reports whether the cell at index i is refractory.
func (b *Brain) Dying(i int) bool { return i < len(b.dying) && b.dying[i] }

// Step advances the automaton by one tick, in place.
func (b *Brain) Step(g *core.Grid) *core.Grid {
	n := g.Rows * g.Cols
	cells := g.Cells()
	if len(b.dying) != n {
		b.dying = make([]bool, n)
		b.nxt = make([]bool, n)
		b.last = make([]bool, n)
	} else if !slices.Equal(cells, b.last) {
		clear(b.dying)
	}
	w, h := g.Cols, g.Rows
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			switch {
			case cells[idx]:
				b.nxt[idx] = false
			case b.dying[idx]:
				b.nxt[idx] = false
			default:
				neighbors := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx := (x + dx + w) % w
						ny := (y + dy + h) % h
						if cells[ny*w+nx] {
							neighbors++
						}
					}
				}
				b.nxt[idx] = neighbors == 2
			}
		}
	}
	copy(b.dying, cells)
	copy(cells, b.nxt)
	copy(b.last, cells)
	return g
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return core.Sim{}, err
		}
		start := core.InitializerFunc(func() *core.Grid {
			g := core.NewGrid(c.Rows, c.Cols)
			core.NewRNG(c.Seed).FillRandom(g, c.Density)
			return g
		})
		return core.Sim{Name: "briansbrain", Init: start, Step: New()}, nil
	})
}

package life

import (
	"fmt"

	"ca-player/pkg/core"
)

// Edges selects how neighbours are found beyond the border of the grid.
type Edges int

const (
	// EdgesWrap connects each edge to the opposite one (toroidal).
	EdgesWrap Edges = iota
	// EdgesDead treats every cell outside the grid as dead.
	EdgesDead
)

// ParseEdges maps "wrap" and "dead" to their Edges value.
func ParseEdges(s string) (Edges, error) {
	switch s {
	case "wrap", "":
		return EdgesWrap, nil
	case "dead":
		return EdgesDead, nil
	default:
		return EdgesWrap, fmt.Errorf("unknown edges %q (want wrap or dead)", s)
	}
}

// Life applies a life-like rule to a boolean grid.
type Life struct {
	rule  Rule
	edges Edges
	nxt   *core.Grid
}

// New returns a Life transition for the provided rule with toroidal edges.
func New(rule Rule) *Life {
	return &Life{rule: rule}
}

// NewBounded returns a Life transition whose border cells see dead cells
// beyond the edge.
func NewBounded(rule Rule) *Life {
	return &Life{rule: rule, edges: EdgesDead}
}

// Step advances g by one generation in place and returns it. Neighbours are
// the eight surrounding cells.
func (l *Life) Step(g *core.Grid) *core.Grid {
	w, h := g.Cols, g.Rows
	if w == 0 || h == 0 {
		return g
	}
	if l.nxt == nil || l.nxt.Rows != h || l.nxt.Cols != w {
		l.nxt = core.NewGrid(h, w)
	}
	cur, nxt := g.Cells(), l.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if l.edges == EdgesDead {
						if nx < 0 || nx >= w || ny < 0 || ny >= h {
							continue
						}
					} else {
						nx = (nx + w) % w
						ny = (ny + h) % h
					}
					if cur[ny*w+nx] {
						neighbors++
					}
				}
			}
			idx := y*w + x
			nxt[idx] = l.rule.Next(cur[idx], neighbors)
		}
	}
	copy(cur, nxt)
	return g
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return core.Sim{}, err
		}
		rule, err := ParseRule(c.Rule)
		if err != nil {
			return core.Sim{}, err
		}
		edges, err := ParseEdges(c.Edges)
		if err != nil {
			return core.Sim{}, err
		}
		start, err := c.Initializer()
		if err != nil {
			return core.Sim{}, err
		}
		return core.Sim{
			Name: fmt.Sprintf("life %s", rule),
			Init: start,
			Step: &Life{rule: rule, edges: edges},
		}, nil
	})
}

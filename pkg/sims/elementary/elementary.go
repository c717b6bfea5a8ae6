package elementary

import (
	"fmt"
	"strconv"

	"ca-player/pkg/core"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 200, Height: 200, Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return c, fmt.Errorf("w=%q: want a positive integer", v)
		}
		c.Width = parsed
	}
	if v, ok := cfg["h"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return c, fmt.Errorf("h=%q: want a positive integer", v)
		}
		c.Height = parsed
	}
	if v, ok := cfg["rule"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 || parsed > 255 {
			return c, fmt.Errorf("rule=%q: want a Wolfram code in [0,255]", v)
		}
		c.Rule = uint8(parsed)
	}
	return c, nil
}

// Elementary implements a one-dimensional Wolfram code projected vertically:
// row 0 holds the newest generation and older rows scroll downwards.
type Elementary struct {
	rule uint8
	tmp  []bool
}

// New creates an automaton for the given rule.
func New(rule uint8) *Elementary {
	return &Elementary{rule: rule}
}

// Seed returns an initializer that clears the grid and seeds the top row
// with a single active cell.
func Seed(w, h int) core.Initializer {
	return core.InitializerFunc(func() *core.Grid {
		g := core.NewGrid(h, w)
		if w > 0 && h > 0 {
			g.Set(0, w/2, true)
		}
		return g
	})
}

// Step computes the next generation from row 0 and scrolls history down.
func (e *Elementary) Step(g *core.Grid) *core.Grid {
	w, h := g.Cols, g.Rows
	if w == 0 || h == 0 {
		return g
	}
	cells := g.Cells()
	if len(e.tmp) != w {
		e.tmp = make([]bool, w)
	}
	copy(e.tmp, cells[:w])
	copy(cells[w:], cells[:w*(h-1)])
	for x := 0; x < w; x++ {
		idx := bit(e.tmp[(x-1+w)%w])<<2 | bit(e.tmp[x])<<1 | bit(e.tmp[(x+1)%w])
		cells[x] = (e.rule>>idx)&1 == 1
	}
	return g
}

func bit(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}

func init() {
	core.Register("elementary", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return core.Sim{}, err
		}
		return core.Sim{
			Name: fmt.Sprintf("elementary rule %d", c.Rule),
			Init: Seed(c.Width, c.Height),
			Step: New(c.Rule),
		}, nil
	})
}

package life

import (
	"fmt"
	"strconv"

	"ca-player/pkg/core"
)

// Pattern names accepted by Config.Pattern.
const (
	PatternGun    = "gun"
	PatternRandom = "random"
	PatternBlank  = "blank"
)

// Config holds parameters for the life simulation.
type Config struct {
	Rows    int
	Cols    int
	Rule    string
	Edges   string
	Pattern string
	Seed    int64
	Density float64
}

// DefaultConfig returns the default configuration: Conway's rule on a
// 200x200 board seeded with a glider gun.
func DefaultConfig() Config {
	return Config{Rows: 200, Cols: 200, Rule: "B3/S23", Edges: "wrap", Pattern: PatternGun, Seed: 42, Density: 0.25}
}

// FromMap populates a Config from a string map. Unknown keys are ignored;
// malformed values are reported.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	for _, key := range []string{"rows", "h"} {
		if v, ok := cfg[key]; ok {
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed <= 0 {
				return c, fmt.Errorf("%s=%q: want a positive integer", key, v)
			}
			c.Rows = parsed
		}
	}
	for _, key := range []string{"cols", "w"} {
		if v, ok := cfg[key]; ok {
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed <= 0 {
				return c, fmt.Errorf("%s=%q: want a positive integer", key, v)
			}
			c.Cols = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		c.Rule = v
	}
	if v, ok := cfg["edges"]; ok {
		c.Edges = v
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("seed=%q: %w", v, err)
		}
		c.Seed = parsed
	}
	if v, ok := cfg["density"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed < 0 || parsed > 1 {
			return c, fmt.Errorf("density=%q: want a number in [0,1]", v)
		}
		c.Density = parsed
	}
	return c, nil
}

// Initializer returns the initializer selected by c.Pattern.
func (c Config) Initializer() (core.Initializer, error) {
	switch c.Pattern {
	case PatternGun, "":
		return GosperGun(c.Rows, c.Cols), nil
	case PatternRandom:
		return Random(c.Rows, c.Cols, c.Seed, c.Density), nil
	case PatternBlank:
		return Blank(c.Rows, c.Cols), nil
	default:
		return nil, fmt.Errorf("unknown pattern %q", c.Pattern)
	}
}

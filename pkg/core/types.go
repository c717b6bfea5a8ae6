package core

import (
	"fmt"
	"sort"
)

// Initializer produces the grid a session starts from. It is called exactly
// once per session and its dimensions size the window.
type Initializer interface {
	Init() *Grid
}

// Transition advances a grid by one generation. Implementations may return
// a new grid or mutate and return their argument, but must keep the
// dimensions unchanged.
type Transition interface {
	Step(g *Grid) *Grid
}

// InitializerFunc adapts a plain function to the Initializer interface.
type InitializerFunc func() *Grid

// Init calls f.
func (f InitializerFunc) Init() *Grid { return f() }

// TransitionFunc adapts a plain function to the Transition interface.
type TransitionFunc func(*Grid) *Grid

// Step calls f.
func (f TransitionFunc) Step(g *Grid) *Grid { return f(g) }

// Sim pairs the two collaborators a player session needs.
type Sim struct {
	Name string
	Init Initializer
	Step Transition
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames returns the registered names in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewSim looks up name in the registry and builds it with cfg.
func NewSim(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return Sim{}, fmt.Errorf("unknown sim %q (have %v)", name, SimNames())
	}
	sim, err := f(cfg)
	if err != nil {
		return Sim{}, fmt.Errorf("sim %s: %w", name, err)
	}
	if sim.Name == "" {
		sim.Name = name
	}
	return sim, nil
}

package session

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"ca-player/internal/input"
	"ca-player/internal/ui"
	"ca-player/pkg/core"
)

// Default session parameters.
const (
	DefaultCellSize = 5
	DefaultDelay    = 100 * time.Millisecond
)

// ErrNilTransition is returned when a transition yields no grid.
var ErrNilTransition = errors.New("transition returned a nil grid")

// Renderer draws one frame of a session. Render is called once per frame
// after input has been applied and Present once all drawing is done.
type Renderer interface {
	Render(grid *core.Grid, layout ui.Layout)
	Present()
}

// activator is implemented by renderers that animate pressed buttons.
type activator interface {
	Activate(kind ui.ButtonKind)
}

// Options configures a Controller.
type Options struct {
	CellSize int
	Delay    time.Duration
	Theme    ui.Theme
	Logger   *slog.Logger
}

// DefaultOptions returns 5px cells, a 100ms delay and the default theme.
func DefaultOptions() Options {
	return Options{CellSize: DefaultCellSize, Delay: DefaultDelay, Theme: ui.DefaultTheme()}
}

// Frame carries the input gathered by a host since the previous frame.
type Frame struct {
	Events  []input.Event
	Pointer image.Point
}

// Result tells the host how to continue after a frame.
type Result struct {
	Running bool
	// Delay is how long to wait before the next frame; zero while paused.
	Delay time.Duration
}

// Controller owns the grid and the play/pause state machine and runs one
// frame per Tick.
type Controller struct {
	grid   *core.Grid
	step   core.Transition
	geom   ui.Geometry
	interp input.Interpreter
	render Renderer
	delay  time.Duration
	log    *slog.Logger

	mode       Mode
	brush      Brush
	running    bool
	generation int
}

// New builds the initial grid, calling init exactly once, and derives the
// session geometry from it.
func New(init core.Initializer, step core.Transition, opts Options) (*Controller, error) {
	if init == nil || step == nil {
		return nil, errors.New("session needs both an initializer and a transition")
	}
	if opts.Delay < 0 {
		return nil, fmt.Errorf("negative delay %s", opts.Delay)
	}
	if opts.Theme == (ui.Theme{}) {
		opts.Theme = ui.DefaultTheme()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	grid := init.Init()
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("initial grid: %w", err)
	}
	geom, err := ui.NewGeometry(grid.Rows, grid.Cols, opts.CellSize, opts.Theme)
	if err != nil {
		return nil, err
	}
	logger.Info("session created", "rows", grid.Rows, "cols", grid.Cols, "cell_size", opts.CellSize, "delay", opts.Delay)
	return &Controller{
		grid:    grid,
		step:    step,
		geom:    geom,
		interp:  input.NewInterpreter(geom),
		render:  nopRenderer{},
		delay:   opts.Delay,
		log:     logger,
		mode:    Paused,
		running: true,
	}, nil
}

// Attach sets the renderer used by subsequent frames. A nil renderer
// disables drawing.
func (c *Controller) Attach(r Renderer) {
	if r == nil {
		r = nopRenderer{}
	}
	c.render = r
}

// Tick runs one frame: apply the events in arrival order, continue any
// paint drag under the pointer, render, advance one generation while
// playing, then present. After a quit the current frame still completes
// and every later Tick is a no-op.
func (c *Controller) Tick(f Frame) (Result, error) {
	if !c.running {
		return Result{}, nil
	}
	layout := c.geom.Layout(c.mode == Playing)
	for _, ev := range f.Events {
		for _, a := range c.interp.Interpret(ev, layout, c.grid) {
			if err := c.apply(a); err != nil {
				return c.result(), err
			}
		}
	}

	c.paintDrag(f.Pointer)
	c.render.Render(c.grid, c.geom.Layout(c.mode == Playing))
	if c.mode == Playing {
		if err := c.advance(); err != nil {
			return c.result(), err
		}
	}
	c.render.Present()

	if !c.running {
		c.log.Info("session stopped", "generation", c.generation, "population", c.grid.Population())
	}
	return c.result(), nil
}

func (c *Controller) apply(a input.Action) error {
	switch a.Kind {
	case input.ActionQuit:
		c.running = false
	case input.ActionPaintAlive, input.ActionPaintDead:
		if c.mode != Paused || c.brush != BrushIdle {
			return nil
		}
		alive := a.Kind == input.ActionPaintAlive
		c.brush = BrushDead
		if alive {
			c.brush = BrushAlive
		}
		c.grid.Set(a.Row, a.Col, alive)
	case input.ActionEndDrag:
		c.brush = BrushIdle
	case input.ActionTogglePlay:
		c.mode = c.mode.toggle()
		c.log.Debug("mode changed", "mode", c.mode, "generation", c.generation)
		c.activate(a.Kind)
	case input.ActionStep:
		if c.mode != Paused {
			return nil
		}
		if err := c.advance(); err != nil {
			return err
		}
		c.log.Debug("stepped", "generation", c.generation)
		c.activate(a.Kind)
	case input.ActionClear:
		if c.mode != Paused {
			return nil
		}
		c.grid.Clear()
		c.generation = 0
		c.log.Debug("cleared")
		c.activate(a.Kind)
	}
	return nil
}

func (c *Controller) paintDrag(p image.Point) {
	if c.mode != Paused || c.brush == BrushIdle || !c.geom.InGrid(p.X, p.Y) {
		return
	}
	r, col := c.geom.CellAt(p.X, p.Y)
	c.grid.Set(r, col, c.brush == BrushAlive)
}

func (c *Controller) advance() error {
	next := c.step.Step(c.grid)
	if next == nil {
		return fmt.Errorf("generation %d: %w", c.generation+1, ErrNilTransition)
	}
	if err := c.grid.Replace(next); err != nil {
		return fmt.Errorf("generation %d: %w", c.generation+1, err)
	}
	c.generation++
	return nil
}

func (c *Controller) activate(kind input.ActionKind) {
	a, ok := c.render.(activator)
	if !ok {
		return
	}
	if b, ok := kind.Button(); ok {
		a.Activate(b)
	}
}

func (c *Controller) result() Result {
	res := Result{Running: c.running}
	if c.running && c.mode == Playing {
		res.Delay = c.delay
	}
	return res
}

// Grid returns the live grid. Callers must not retain it across frames.
func (c *Controller) Grid() *core.Grid { return c.grid }

// Geometry returns the session geometry.
func (c *Controller) Geometry() ui.Geometry { return c.geom }

// Layout returns the control strip for the current state.
func (c *Controller) Layout() ui.Layout { return c.geom.Layout(c.mode == Playing) }

// Mode reports whether the session is paused or playing.
func (c *Controller) Mode() Mode { return c.mode }

// Brush reports the active paint drag, if any.
func (c *Controller) Brush() Brush { return c.brush }

// Running reports whether the session has not been quit.
func (c *Controller) Running() bool { return c.running }

// Generation counts the generations advanced since start or the last clear.
func (c *Controller) Generation() int { return c.generation }

type nopRenderer struct{}

func (nopRenderer) Render(*core.Grid, ui.Layout) {}
func (nopRenderer) Present()                     {}

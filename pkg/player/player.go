// Package player runs an interactive cellular automaton session: it shows
// the grid produced by an Initializer, advances it with a Transition while
// playing, and lets the user paint cells while paused.
package player

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ca-player/internal/app"
	"ca-player/internal/session"
	"ca-player/internal/term"
	"ca-player/internal/ui"
	"ca-player/pkg/core"
)

// ErrNoGUI is returned by Play when a window is requested from a build
// without the ebiten tag.
var ErrNoGUI = app.ErrNoGUI

// Option customises a call to Play.
type Option func(*settings)

type settings struct {
	cellSize int
	delay    time.Duration
	theme    ui.Theme
	terminal bool
	fps      bool
	title    string
	logger   *slog.Logger
}

func defaults() settings {
	return settings{
		cellSize: session.DefaultCellSize,
		delay:    session.DefaultDelay,
		theme:    ui.DefaultTheme(),
		title:    "ca-player",
	}
}

// WithCellSize sets the side of one cell in pixels. Defaults to 5.
func WithCellSize(n int) Option { return func(s *settings) { s.cellSize = n } }

// WithDelay sets the pause between generations while playing. Defaults to
// 100ms.
func WithDelay(d time.Duration) Option { return func(s *settings) { s.delay = d } }

// WithTheme overrides the colours and button sizes.
func WithTheme(t ui.Theme) Option { return func(s *settings) { s.theme = t } }

// WithTerminal plays in the terminal instead of a window. Cell size and
// theme sizing are fixed to one character per cell.
func WithTerminal() Option { return func(s *settings) { s.terminal = true } }

// WithFPS shows the frame rate overlay in the window.
func WithFPS() Option { return func(s *settings) { s.fps = true } }

// WithTitle sets the window title.
func WithTitle(title string) Option { return func(s *settings) { s.title = title } }

// WithLogger routes session logs to l.
func WithLogger(l *slog.Logger) Option { return func(s *settings) { s.logger = l } }

func (s settings) validate() error {
	if s.cellSize <= 0 {
		return fmt.Errorf("cell size %d: %w", s.cellSize, ui.ErrCellSize)
	}
	if s.delay < 0 {
		return fmt.Errorf("negative delay %s", s.delay)
	}
	return nil
}

func (s settings) sessionOptions() session.Options {
	opts := session.Options{CellSize: s.cellSize, Delay: s.delay, Theme: s.theme, Logger: s.logger}
	if s.terminal {
		opts.CellSize = 1
		opts.Theme = term.Theme()
	}
	return opts
}

// Play calls init once, opens a window sized to the grid and runs the
// session until the user quits or closes the window. It returns an error
// for invalid options, an empty initial grid, a transition that changes
// the grid's dimensions, or a failure to open the display.
func Play(init core.Initializer, step core.Transition, opts ...Option) error {
	s := defaults()
	for _, o := range opts {
		o(&s)
	}
	if err := s.validate(); err != nil {
		return err
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	ctrl, err := session.New(init, step, s.sessionOptions())
	if err != nil {
		return err
	}
	if s.terminal {
		err = term.Run(ctrl, term.Options{Logger: s.logger})
	} else {
		err = app.Run(ctrl, app.Options{Title: s.title, Theme: s.theme, ShowFPS: s.fps, Logger: s.logger})
	}
	if err != nil && !errors.Is(err, ErrNoGUI) {
		return fmt.Errorf("play: %w", err)
	}
	return err
}

// PlaySim is Play for a registered simulation.
func PlaySim(sim core.Sim, opts ...Option) error {
	if sim.Init == nil || sim.Step == nil {
		return fmt.Errorf("sim %q is incomplete", sim.Name)
	}
	return Play(sim.Init, sim.Step, append([]Option{WithTitle(sim.Name)}, opts...)...)
}

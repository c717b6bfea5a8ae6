package term

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ca-player/internal/core"
	"ca-player/internal/input"
	"ca-player/internal/session"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

const (
	playerView = "player"
	helpView   = "help"

	// DefaultFrameInterval is how often the host polls the controller.
	DefaultFrameInterval = 20 * time.Millisecond
)

// Options configures the terminal host.
type Options struct {
	FrameInterval time.Duration
	Logger        *slog.Logger
}

// host feeds gocui input into a session controller. Everything except the
// ticker goroutine runs on the gocui main loop.
type host struct {
	g        *gocui.Gui
	ctrl     *session.Controller
	renderer *Renderer
	au       aurora.Aurora
	log      *slog.Logger
	interval time.Duration

	queue   input.Queue
	pacer   *core.Pacer
	pointer pointer
}

type keyBinding struct {
	key   interface{}
	event input.Event
}

var keyBindings = []keyBinding{
	{gocui.KeyCtrlC, input.Quit()},
	{'q', input.KeyPress(input.KeyQ)},
	{gocui.KeyEsc, input.KeyPress(input.KeyEscape)},
	{gocui.KeySpace, input.KeyPress(input.KeySpace)},
	{'n', input.KeyPress(input.KeyN)},
	{gocui.KeyArrowRight, input.KeyPress(input.KeyRight)},
	{'c', input.KeyPress(input.KeyC)},
	{gocui.KeyBackspace, input.KeyPress(input.KeyBackspace)},
	{gocui.KeyBackspace2, input.KeyPress(input.KeyBackspace)},
}

// Run plays the session in the terminal until it is quit. The controller
// must have been built with a cell size of 1 and Theme.
func Run(ctrl *session.Controller, opts Options) error {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if geom := ctrl.Geometry(); geom.CellSize != 1 {
		return fmt.Errorf("terminal sessions need a cell size of 1, got %d", geom.CellSize)
	}

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer g.Close()
	g.Mouse = true

	h := &host{
		g:        g,
		ctrl:     ctrl,
		au:       aurora.NewAurora(true),
		log:      opts.Logger,
		interval: opts.FrameInterval,
		pacer:    core.NewPacer(nil),
	}
	h.pointer.queue = &h.queue
	h.renderer = newRenderer(h.au, h.show)
	ctrl.Attach(h.renderer)

	g.SetManagerFunc(h.layout)
	if err := h.bind(); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	go h.tick(done)

	if err := g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

func (h *host) bind() error {
	for _, kb := range keyBindings {
		ev := kb.event
		if err := h.g.SetKeybinding("", kb.key, gocui.ModNone, func(*gocui.Gui, *gocui.View) error {
			h.queue.Push(ev)
			return nil
		}); err != nil {
			return fmt.Errorf("bind %v: %w", kb.key, err)
		}
	}
	if err := h.g.SetKeybinding(playerView, gocui.MouseLeft, gocui.ModNone, h.mouseLeft); err != nil {
		return fmt.Errorf("bind mouse: %w", err)
	}
	if err := h.g.SetKeybinding("", gocui.MouseRelease, gocui.ModNone, h.mouseRelease); err != nil {
		return fmt.Errorf("bind mouse: %w", err)
	}
	return nil
}

// mouseLeft fires once per press. Terminals do not report drags through
// this binding, so a drag paints the pressed cell only.
func (h *host) mouseLeft(_ *gocui.Gui, v *gocui.View) error {
	cx, cy := v.Cursor()
	h.pointer.press(cx, cy)
	return nil
}

func (h *host) mouseRelease(_ *gocui.Gui, v *gocui.View) error {
	if v != nil && v.Name() == playerView {
		cx, cy := v.Cursor()
		h.pointer.release(cx, cy)
		return nil
	}
	h.pointer.releaseHere()
	return nil
}

func (h *host) tick(done <-chan struct{}) {
	t := time.NewTicker(h.interval)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case <-t.C:
			h.g.Update(h.frame)
		}
	}
}

func (h *host) frame(*gocui.Gui) error {
	if h.renderer.flashes.Active() {
		h.renderer.flashes.Update(float32(h.interval.Seconds()))
	}
	if !h.pacer.Ready() {
		return nil
	}
	res, err := h.ctrl.Tick(session.Frame{Events: h.queue.Drain(), Pointer: h.pointer.pos})
	if err != nil {
		return err
	}
	if !res.Running {
		return gocui.ErrQuit
	}
	h.pacer.Hold(res.Delay)
	return nil
}

func (h *host) show(frame string) {
	v, err := h.g.View(playerView)
	if err != nil {
		return
	}
	v.Clear()
	fmt.Fprint(v, frame)
	h.status()
}

func (h *host) status() {
	v, err := h.g.View(helpView)
	if err != nil {
		return
	}
	v.Clear()
	mode := h.au.Blue("paused").String()
	if h.ctrl.Mode() == session.Playing {
		mode = h.au.Cyan("playing").String()
	}
	fmt.Fprintf(v, " %s  %s: %d  %s: %d  %s: play  %s: step  %s: clear  %s: quit",
		mode,
		h.au.Green("generation"), h.ctrl.Generation(),
		h.au.Green("population"), h.ctrl.Grid().Population(),
		h.au.Green("SPACE"), h.au.Green("N"), h.au.Green("C"), h.au.Green("Q"))
}

func (h *host) layout(g *gocui.Gui) error {
	w, ht := h.ctrl.Geometry().WindowSize()
	if v, err := g.SetView(playerView, 0, 0, w+1, ht+1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = true
		v.Title = "ca-player"
	}
	if v, err := g.SetView(helpView, 0, ht+2, max(w+1, 70), ht+4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		h.status()
	}
	return nil
}

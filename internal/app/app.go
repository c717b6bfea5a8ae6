//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"ca-player/internal/core"
	"ca-player/internal/input"
	"ca-player/internal/render"
	"ca-player/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keymap = map[ebiten.Key]input.Key{
	ebiten.KeySpace:      input.KeySpace,
	ebiten.KeyN:          input.KeyN,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyC:          input.KeyC,
	ebiten.KeyBackspace:  input.KeyBackspace,
	ebiten.KeyQ:          input.KeyQ,
	ebiten.KeyEscape:     input.KeyEscape,
}

// Game adapts a session controller to the ebiten.Game interface. Input is
// queued on every ebiten tick; the controller only runs a frame once the
// pacer releases it.
type Game struct {
	ctrl     *session.Controller
	renderer *render.Renderer
	queue    input.Queue
	pacer    *core.Pacer
	opts     Options
	log      *slog.Logger

	generation int
}

// New constructs a Game for the provided controller.
func New(ctrl *session.Controller, opts Options) *Game {
	opts = opts.withDefaults()
	return &Game{
		ctrl:       ctrl,
		pacer:      core.NewPacer(nil),
		opts:       opts,
		log:        opts.Logger,
		generation: -1,
	}
}

// Update collects input and runs a controller frame when one is due.
func (g *Game) Update() error {
	if g.renderer == nil {
		g.renderer = render.NewRenderer(g.ctrl.Geometry(), g.opts.Theme)
		g.ctrl.Attach(g.renderer)
	}
	g.collect()
	g.renderer.Update(1 / float32(ebiten.TPS()))
	if !g.pacer.Ready() {
		return nil
	}

	x, y := ebiten.CursorPosition()
	res, err := g.ctrl.Tick(session.Frame{Events: g.queue.Drain(), Pointer: image.Pt(x, y)})
	if err != nil {
		return err
	}
	if !res.Running {
		return ebiten.Termination
	}
	g.pacer.Hold(res.Delay)
	g.updateTitle()
	return nil
}

func (g *Game) collect() {
	if ebiten.IsWindowBeingClosed() {
		g.queue.Push(input.Quit())
	}
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.queue.Push(input.PointerDown(x, y))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.queue.Push(input.PointerUp(x, y))
	}
	for k, key := range keymap {
		if inpututil.IsKeyJustPressed(k) {
			g.queue.Push(input.KeyPress(key))
		}
	}
}

func (g *Game) updateTitle() {
	gen := g.ctrl.Generation()
	if gen == g.generation {
		return
	}
	g.generation = gen
	ebiten.SetWindowTitle(fmt.Sprintf("%s | generation %d", g.opts.Title, gen))
}

// Draw renders the last presented frame.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.renderer == nil {
		return
	}
	g.renderer.Draw(screen)
	if g.opts.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS %.0f  gen %d  pop %d",
			ebiten.ActualFPS(), g.ctrl.Generation(), g.ctrl.Grid().Population()))
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ctrl.Geometry().WindowSize()
}

// Run opens a window sized for the controller's geometry and plays the
// session until it is quit or the window is closed.
func Run(ctrl *session.Controller, opts Options) error {
	game := New(ctrl, opts)
	w, h := ctrl.Geometry().WindowSize()

	ebiten.SetWindowTitle(game.opts.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowClosingHandled(true)

	game.log.Info("window opened", "width", w, "height", h)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	game.log.Info("window closed", "generation", ctrl.Generation())
	return nil
}

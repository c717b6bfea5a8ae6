//go:build ebiten

package render

import (
	"image"
	"image/color"

	"ca-player/internal/ui"
	"ca-player/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Renderer draws a session into an offscreen back buffer. Present swaps it
// to the front buffer, which Draw copies onto the ebiten screen, so the
// window only ever shows completed frames.
type Renderer struct {
	geom    ui.Geometry
	theme   ui.Theme
	painter *GridPainter
	face    font.Face

	pixel       *ebiten.Image
	back, front *ebiten.Image
	flashes     ui.Flashes
}

// NewRenderer allocates the buffers for the given geometry.
func NewRenderer(geom ui.Geometry, theme ui.Theme) *Renderer {
	w, h := geom.WindowSize()
	r := &Renderer{
		geom:    geom,
		theme:   theme,
		painter: NewGridPainter(geom.Cols, geom.Rows),
		face:    basicfont.Face7x13,
		pixel:   ebiten.NewImage(1, 1),
		back:    ebiten.NewImage(w, h),
		front:   ebiten.NewImage(w, h),
	}
	r.pixel.Fill(color.White)
	r.front.Fill(theme.Dead)
	return r
}

// Render draws the grid and the control strip into the back buffer.
func (r *Renderer) Render(grid *core.Grid, layout ui.Layout) {
	r.back.Fill(r.theme.Dead)
	r.painter.Blit(r.back, grid.Cells(), r.theme.Alive, r.theme.Dead, r.geom.CellSize)
	for _, b := range layout.Buttons {
		r.drawButton(b)
	}
}

// Present makes the last rendered frame visible.
func (r *Renderer) Present() {
	r.back, r.front = r.front, r.back
}

// Activate flashes the pressed button.
func (r *Renderer) Activate(kind ui.ButtonKind) {
	r.flashes.Trigger(kind)
}

// Update advances button animations by dt seconds.
func (r *Renderer) Update(dt float32) {
	if r.flashes.Active() {
		r.flashes.Update(dt)
	}
}

// Draw copies the front buffer onto screen.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.front, nil)
}

func (r *Renderer) drawButton(b ui.Button) {
	rect := b.Rect
	if rect.Dx() > 2 && rect.Dy() > 2 {
		rect = rect.Inset(1)
	}
	r.fillRect(rect, ui.Blend(r.theme.ButtonFill, r.theme.ButtonLit, r.flashes.Level(b.Kind)))

	fg := r.theme.Label
	if b.Dimmed {
		fg = r.theme.LabelDim
	}
	bounds := text.BoundString(r.face, b.Label)
	x, y := labelOrigin(rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy(), bounds.Dx(), bounds.Dy())
	text.Draw(r.back, b.Label, r.face, x, y, fg)
}

func (r *Renderer) fillRect(rect image.Rectangle, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	r.back.DrawImage(r.pixel, op)
}

package term

import (
	"strings"

	"ca-player/internal/ui"
	"ca-player/pkg/core"

	"github.com/logrusorgru/aurora"
)

const (
	liveFiller = "█"
	deadFiller = "░"
)

// Theme returns the control strip sizing for terminal sessions, where one
// character is one cell and the strip is a single line.
func Theme() ui.Theme {
	t := ui.DefaultTheme()
	t.ButtonWidth = 9
	t.ButtonHeight = 1
	return t
}

// Renderer draws a session as text, one character per cell, with the
// control strip on the line below the grid. The finished frame is handed
// to flush on Present.
type Renderer struct {
	au      aurora.Aurora
	flush   func(frame string)
	flashes ui.Flashes

	live, dead string
	b          strings.Builder
	frame      string
}

func newRenderer(au aurora.Aurora, flush func(string)) *Renderer {
	return &Renderer{
		au:    au,
		flush: flush,
		live:  au.Green(liveFiller).String(),
		dead:  deadFiller,
	}
}

// Render composes the grid and the control strip.
func (r *Renderer) Render(grid *core.Grid, layout ui.Layout) {
	r.b.Reset()
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			if grid.Alive(row, col) {
				r.b.WriteString(r.live)
			} else {
				r.b.WriteString(r.dead)
			}
		}
		r.b.WriteByte('\n')
	}
	r.strip(layout, grid.Cols)
	r.frame = r.b.String()
}

func (r *Renderer) strip(layout ui.Layout, width int) {
	x := 0
	for _, btn := range layout.Buttons {
		if btn.Rect.Min.X > x {
			r.b.WriteString(strings.Repeat(" ", btn.Rect.Min.X-x))
		}
		r.b.WriteString(r.button(btn))
		x = btn.Rect.Max.X
	}
	if width > x {
		r.b.WriteString(strings.Repeat(" ", width-x))
	}
}

func (r *Renderer) button(btn ui.Button) string {
	w := btn.Rect.Dx()
	label := btn.Label
	if len(label) > w {
		label = label[:w]
	}
	pad := w - len(label)
	text := strings.Repeat(" ", pad/2) + label + strings.Repeat(" ", pad-pad/2)
	switch {
	case r.flashes.Level(btn.Kind) > 0:
		return r.au.Black(text).BgCyan().String()
	case btn.Dimmed:
		return r.au.Blue(text).BgWhite().String()
	default:
		return r.au.Black(text).BgWhite().String()
	}
}

// Present hands the composed frame over for display.
func (r *Renderer) Present() {
	if r.flush != nil {
		r.flush(r.frame)
	}
}

// Activate highlights a pressed button for a moment.
func (r *Renderer) Activate(kind ui.ButtonKind) {
	r.flashes.Trigger(kind)
}

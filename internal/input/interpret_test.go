package input

import (
	"testing"

	"ca-player/internal/ui"
	"ca-player/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInterpreter(t *testing.T) (Interpreter, ui.Geometry) {
	t.Helper()
	geom, err := ui.NewGeometry(20, 60, 10, ui.DefaultTheme())
	require.NoError(t, err)
	return NewInterpreter(geom), geom
}

func TestPointerDownOverGrid(t *testing.T) {
	in, geom := newTestInterpreter(t)
	grid := core.NewGrid(20, 60)
	grid.Set(3, 4, true)
	layout := geom.Layout(false)

	got := in.Interpret(PointerDown(45, 35), layout, grid)
	assert.Equal(t, []Action{{Kind: ActionPaintDead, Row: 3, Col: 4}}, got)

	got = in.Interpret(PointerDown(55, 35), layout, grid)
	assert.Equal(t, []Action{{Kind: ActionPaintAlive, Row: 3, Col: 5}}, got)
}

func TestPointerDownOverButtons(t *testing.T) {
	in, geom := newTestInterpreter(t)
	grid := core.NewGrid(20, 60)
	layout := geom.Layout(true)

	for _, tt := range []struct {
		button ui.ButtonKind
		want   ActionKind
	}{
		{ui.ButtonPlay, ActionTogglePlay},
		{ui.ButtonStep, ActionStep},
		{ui.ButtonClear, ActionClear},
	} {
		r := layout.Button(tt.button).Rect
		got := in.Interpret(PointerDown(r.Min.X+1, r.Min.Y+1), layout, grid)
		require.Len(t, got, 1, "press on %s", tt.button)
		assert.Equal(t, tt.want, got[0].Kind)

		b, ok := got[0].Kind.Button()
		assert.True(t, ok)
		assert.Equal(t, tt.button, b)
	}
}

func TestPointerDownInStripOutsideButtons(t *testing.T) {
	in, geom := newTestInterpreter(t)
	grid := core.NewGrid(20, 60)
	layout := geom.Layout(false)

	play := layout.Button(ui.ButtonPlay).Rect
	got := in.Interpret(PointerDown(play.Min.X-1, geom.GridH+5), layout, grid)
	assert.Empty(t, got, "a press in the strip must not paint the grid")
}

func TestPointerUpEndsDrag(t *testing.T) {
	in, geom := newTestInterpreter(t)
	grid := core.NewGrid(20, 60)

	for _, y := range []int{5, geom.GridH + 5} {
		got := in.Interpret(PointerUp(10, y), geom.Layout(false), grid)
		assert.Equal(t, []Action{{Kind: ActionEndDrag}}, got)
	}
}

func TestQuitAndKeys(t *testing.T) {
	in, geom := newTestInterpreter(t)
	grid := core.NewGrid(20, 60)
	layout := geom.Layout(false)

	assert.Equal(t, []Action{{Kind: ActionQuit}}, in.Interpret(Quit(), layout, grid))

	keys := map[Key]ActionKind{
		KeySpace:     ActionTogglePlay,
		KeyN:         ActionStep,
		KeyRight:     ActionStep,
		KeyC:         ActionClear,
		KeyBackspace: ActionClear,
		KeyQ:         ActionQuit,
		KeyEscape:    ActionQuit,
	}
	for k, want := range keys {
		assert.Equal(t, []Action{{Kind: want}}, in.Interpret(KeyPress(k), layout, grid), "key %d", k)
	}
	assert.Empty(t, in.Interpret(KeyPress(KeyUnknown), layout, grid))
}

func TestQueueDrain(t *testing.T) {
	var q Queue
	assert.Nil(t, q.Drain())

	q.Push(PointerDown(1, 2))
	q.Push(PointerUp(1, 2))
	q.Push(Quit())
	require.Equal(t, 3, q.Len())

	got := q.Drain()
	assert.Equal(t, []Event{PointerDown(1, 2), PointerUp(1, 2), Quit()}, got)
	assert.Zero(t, q.Len())

	q.Push(KeyPress(KeyN))
	assert.Equal(t, []Event{KeyPress(KeyN)}, q.Drain())
	assert.Equal(t, PointerDown(1, 2), got[0], "drained slice must not alias the queue")
}

package ui

import (
	"image"
	"image/color"
	"testing"

	"ca-player/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometryWindowSize(t *testing.T) {
	g, err := NewGeometry(200, 200, 5, DefaultTheme())
	require.NoError(t, err)

	w, h := g.WindowSize()
	assert.Equal(t, 1000, w)
	assert.Equal(t, 1050, h)
	assert.Equal(t, 1000, g.GridH)
	assert.Equal(t, 200, g.ButtonW)
}

func TestGeometryRejectsBadInput(t *testing.T) {
	_, err := NewGeometry(0, 10, 5, DefaultTheme())
	require.ErrorIs(t, err, core.ErrEmptyGrid)

	_, err = NewGeometry(10, 10, 0, DefaultTheme())
	require.ErrorIs(t, err, ErrCellSize)

	theme := DefaultTheme()
	theme.ButtonHeight = 0
	_, err = NewGeometry(10, 10, 5, theme)
	require.Error(t, err)
}

func TestLayoutButtonsCentredUnderGrid(t *testing.T) {
	g, err := NewGeometry(200, 200, 5, DefaultTheme())
	require.NoError(t, err)

	l := g.Layout(false)
	assert.Equal(t, image.Rect(200, 1000, 400, 1050), l.Button(ButtonPlay).Rect)
	assert.Equal(t, image.Rect(400, 1000, 600, 1050), l.Button(ButtonStep).Rect)
	assert.Equal(t, image.Rect(600, 1000, 800, 1050), l.Button(ButtonClear).Rect)

	for i, b := range l.Buttons {
		for j, o := range l.Buttons {
			if i != j {
				assert.False(t, b.Rect.Overlaps(o.Rect), "%s overlaps %s", b.Kind, o.Kind)
			}
		}
	}
}

func TestLayoutLabelsFollowPlayState(t *testing.T) {
	g, err := NewGeometry(10, 90, 5, DefaultTheme())
	require.NoError(t, err)

	paused := g.Layout(false)
	playing := g.Layout(true)

	assert.Equal(t, "Play", paused.Button(ButtonPlay).Label)
	assert.Equal(t, "Pause", playing.Button(ButtonPlay).Label)
	assert.False(t, paused.Button(ButtonStep).Dimmed)
	assert.True(t, playing.Button(ButtonStep).Dimmed)
	assert.True(t, playing.Button(ButtonClear).Dimmed)
	assert.False(t, playing.Button(ButtonPlay).Dimmed)

	for k := ButtonPlay; k < numButtons; k++ {
		assert.Equal(t, paused.Button(k).Rect, playing.Button(k).Rect, "geometry of %s must not depend on play state", k)
	}
}

func TestNarrowGridShrinksButtons(t *testing.T) {
	g, err := NewGeometry(3, 3, 5, DefaultTheme())
	require.NoError(t, err)
	assert.Equal(t, 5, g.ButtonW)

	l := g.Layout(false)
	assert.Equal(t, image.Rect(0, 15, 5, 65), l.Button(ButtonPlay).Rect)
	assert.Equal(t, image.Rect(10, 15, 15, 65), l.Button(ButtonClear).Rect)
}

func TestTinyGridWidensWindow(t *testing.T) {
	theme := DefaultTheme()
	theme.ButtonHeight = 1
	for _, cols := range []int{1, 2} {
		g, err := NewGeometry(2, cols, 1, theme)
		require.NoError(t, err)
		w, h := g.WindowSize()
		assert.Equal(t, 3, w, "%d columns", cols)
		assert.Equal(t, 3, h)

		l := g.Layout(false)
		assert.Equal(t, image.Rect(0, 2, 1, 3), l.Button(ButtonPlay).Rect)
		assert.Equal(t, image.Rect(2, 2, 3, 3), l.Button(ButtonClear).Rect)
		for _, b := range l.Buttons {
			got, ok := l.HitButton(b.Rect.Min.X, b.Rect.Min.Y)
			require.True(t, ok, "%s reachable", b.Kind)
			assert.Equal(t, b.Kind, got)
		}
	}
}

func TestHitButton(t *testing.T) {
	g, err := NewGeometry(200, 200, 5, DefaultTheme())
	require.NoError(t, err)
	l := g.Layout(false)

	tests := []struct {
		name   string
		x, y   int
		want   ButtonKind
		wantOK bool
	}{
		{"play centre", 300, 1025, ButtonPlay, true},
		{"step left edge", 400, 1000, ButtonStep, true},
		{"clear inside", 799, 1049, ButtonClear, true},
		{"right of clear", 800, 1025, 0, false},
		{"left of play", 199, 1025, 0, false},
		{"over grid", 300, 999, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.HitButton(tt.x, tt.y)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCellAtClamps(t *testing.T) {
	g, err := NewGeometry(4, 6, 10, DefaultTheme())
	require.NoError(t, err)

	tests := []struct {
		x, y     int
		row, col int
	}{
		{0, 0, 0, 0},
		{59, 39, 3, 5},
		{15, 25, 2, 1},
		{-5, -5, 0, 0},
		{100, 100, 3, 5},
	}
	for _, tt := range tests {
		r, c := g.CellAt(tt.x, tt.y)
		assert.Equal(t, tt.row, r, "row for (%d,%d)", tt.x, tt.y)
		assert.Equal(t, tt.col, c, "col for (%d,%d)", tt.x, tt.y)
	}

	assert.True(t, g.InGrid(10, 39))
	assert.False(t, g.InGrid(10, 40))
}

func TestFlashesFade(t *testing.T) {
	var f Flashes
	assert.False(t, f.Active())

	f.Trigger(ButtonStep)
	assert.True(t, f.Active())
	assert.Equal(t, float32(1), f.Level(ButtonStep))
	assert.Zero(t, f.Level(ButtonPlay))

	f.Update(FlashDuration / 2)
	mid := f.Level(ButtonStep)
	assert.Greater(t, mid, float32(0))
	assert.Less(t, mid, float32(1))

	f.Update(FlashDuration)
	assert.Zero(t, f.Level(ButtonStep))
	assert.False(t, f.Active())

	f.Trigger(ButtonKind(42))
	assert.False(t, f.Active())
}

func TestBlend(t *testing.T) {
	a := color.RGBA{R: 0, G: 100, B: 200, A: 255}
	b := color.RGBA{R: 200, G: 100, B: 0, A: 255}
	assert.Equal(t, a, Blend(a, b, 0))
	assert.Equal(t, b, Blend(a, b, 1))
	assert.Equal(t, color.RGBA{R: 100, G: 100, B: 100, A: 255}, Blend(a, b, 0.5))
}

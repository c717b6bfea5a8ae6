package ui

import "image/color"

// Theme holds the colours and control strip dimensions used to draw a
// session. It is built once at startup and never mutated afterwards.
type Theme struct {
	Alive      color.RGBA
	Dead       color.RGBA
	ButtonFill color.RGBA
	ButtonLit  color.RGBA
	Label      color.RGBA
	LabelDim   color.RGBA

	ButtonWidth  int
	ButtonHeight int
}

// DefaultTheme returns white cells on black with a white control strip.
func DefaultTheme() Theme {
	return Theme{
		Alive:        color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Dead:         color.RGBA{R: 0, G: 0, B: 0, A: 255},
		ButtonFill:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		ButtonLit:    color.RGBA{R: 170, G: 200, B: 255, A: 255},
		Label:        color.RGBA{R: 0, G: 0, B: 0, A: 255},
		LabelDim:     color.RGBA{R: 100, G: 100, B: 100, A: 255},
		ButtonWidth:  200,
		ButtonHeight: 50,
	}
}

// Blend mixes base towards lit by t in [0, 1].
func Blend(base, lit color.RGBA, t float32) color.RGBA {
	if t <= 0 {
		return base
	}
	if t >= 1 {
		return lit
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*t + 0.5)
	}
	return color.RGBA{
		R: mix(base.R, lit.R),
		G: mix(base.G, lit.G),
		B: mix(base.B, lit.B),
		A: mix(base.A, lit.A),
	}
}

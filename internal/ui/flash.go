package ui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FlashDuration is how long, in seconds, a pressed button stays highlighted.
const FlashDuration = 0.25

// Flashes tracks the fading highlight of recently pressed buttons.
type Flashes struct {
	tweens [numButtons]*gween.Tween
	levels [numButtons]float32
}

// Trigger starts (or restarts) the highlight of a button at full intensity.
func (f *Flashes) Trigger(kind ButtonKind) {
	if kind < 0 || kind >= numButtons {
		return
	}
	f.tweens[kind] = gween.New(1, 0, FlashDuration, ease.OutQuad)
	f.levels[kind] = 1
}

// Update advances every running highlight by dt seconds.
func (f *Flashes) Update(dt float32) {
	for i, tw := range f.tweens {
		if tw == nil {
			continue
		}
		level, done := tw.Update(dt)
		f.levels[i] = level
		if done {
			f.tweens[i] = nil
			f.levels[i] = 0
		}
	}
}

// Level returns the current highlight intensity of a button in [0, 1].
func (f *Flashes) Level(kind ButtonKind) float32 {
	if kind < 0 || kind >= numButtons {
		return 0
	}
	return f.levels[kind]
}

// Active reports whether any highlight is still fading.
func (f *Flashes) Active() bool {
	for _, tw := range f.tweens {
		if tw != nil {
			return true
		}
	}
	return false
}

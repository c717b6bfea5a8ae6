package term

import (
	"image"

	"ca-player/internal/input"
)

// pointer turns terminal mouse callbacks into input events. gocui only
// delivers button presses and releases (motion carries a modifier the
// bindings do not match), and drops releases that land outside every view.
// Every press is therefore reported, and a press that follows a lost
// release first ends the previous drag.
type pointer struct {
	queue *input.Queue
	pos   image.Point
	held  bool
}

func (p *pointer) press(x, y int) {
	if p.held {
		p.queue.Push(input.PointerUp(p.pos.X, p.pos.Y))
	}
	p.pos = image.Pt(x, y)
	p.held = true
	p.queue.Push(input.PointerDown(x, y))
}

func (p *pointer) release(x, y int) {
	p.pos = image.Pt(x, y)
	p.held = false
	p.queue.Push(input.PointerUp(x, y))
}

// releaseHere ends a drag at the last known position.
func (p *pointer) releaseHere() {
	p.release(p.pos.X, p.pos.Y)
}

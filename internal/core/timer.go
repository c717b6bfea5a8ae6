package core

import "time"

// Pacer spaces out frames without blocking the caller: after Hold(d) the
// pacer reports not ready until d has elapsed. Hosts keep polling input
// while held so that nothing is dropped.
type Pacer struct {
	now   func() time.Time
	until time.Time
}

// NewPacer constructs a Pacer. A nil clock uses time.Now.
func NewPacer(now func() time.Time) *Pacer {
	if now == nil {
		now = time.Now
	}
	return &Pacer{now: now}
}

// Hold delays the next frame by d. Non-positive durations release the pacer.
func (p *Pacer) Hold(d time.Duration) {
	if d <= 0 {
		p.until = time.Time{}
		return
	}
	p.until = p.now().Add(d)
}

// Ready reports whether the next frame may run.
func (p *Pacer) Ready() bool {
	return p.Remaining() == 0
}

// Remaining returns how long the pacer is still held for.
func (p *Pacer) Remaining() time.Duration {
	if p.until.IsZero() {
		return 0
	}
	left := p.until.Sub(p.now())
	if left <= 0 {
		p.until = time.Time{}
		return 0
	}
	return left
}

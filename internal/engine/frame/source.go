// Package frame drives the viewer's self-rescheduling render loop.
package frame

// Source delivers per-frame callbacks at the host surface's refresh rate.
// Request replaces any pending callback; ts is in milliseconds.
type Source interface {
	Request(fn func(ts float64))
	Cancel()
}

// Pump is a Source the owner fires by hand: the desktop host fires it once
// per swapped frame, tests fire it with chosen timestamps.
type Pump struct {
	pending func(ts float64)
}

func (p *Pump) Request(fn func(ts float64)) {
	p.pending = fn
}

func (p *Pump) Cancel() {
	p.pending = nil
}

// Pending reports whether a callback is waiting.
func (p *Pump) Pending() bool {
	return p.pending != nil
}

// Fire runs the pending callback. It reports false if nothing was pending.
func (p *Pump) Fire(ts float64) bool {
	fn := p.pending
	if fn == nil {
		return false
	}
	p.pending = nil
	fn(ts)
	return true
}

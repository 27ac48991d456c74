package rate

import (
	"context"
	"go.uber.org/ratelimit"
)

// Pacer spaces work at a fixed number of slots per second with a small
// burst allowance, feeding a channel so callers can select on it together
// with cancellation.
type Pacer struct {
	ch   chan struct{}
	l    ratelimit.Limiter
	rate int
}

func NewPacer(ctx context.Context, perSec int) *Pacer {
	if perSec < 1 {
		perSec = 1
	}
	brst := perSec / 10
	if brst < 1 {
		brst = 1
	}
	p := &Pacer{
		rate: perSec,
		ch:   make(chan struct{}, brst),
		l:    ratelimit.New(perSec),
	}
	go p.provider(ctx)
	return p
}

func (p *Pacer) provider(ctx context.Context) {
	defer close(p.ch)
	for {
		p.l.Take()
		select {
		case <-ctx.Done():
			return
		case p.ch <- struct{}{}:
		}
	}
}

// Take blocks until the next slot. It returns false once the pacer's
// context is cancelled and no slots remain.
func (p *Pacer) Take() bool {
	_, ok := <-p.ch
	return ok
}

func (p *Pacer) Chan() <-chan struct{} {
	return p.ch
}

func (p *Pacer) Rate() int {
	return p.rate
}

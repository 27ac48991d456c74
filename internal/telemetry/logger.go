package telemetry

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

type Logger interface {
	Emitted()
	Interval() time.Duration
	Close() error
}

// Logs reports stream progress on a fixed interval: values emitted since
// the last report, the effective per-second rate and the running total.
type Logs struct {
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *slog.Logger
	interval time.Duration
	emitted  atomic.Uint64
}

func New(ctx context.Context, logger *slog.Logger, interval time.Duration) *Logs {
	ctx, cancel := context.WithCancel(ctx)
	return (&Logs{
		ctx:      ctx,
		cancel:   cancel,
		logger:   logger,
		interval: interval,
	}).run()
}

// Emitted records one streamed value. Safe for concurrent use.
func (l *Logs) Emitted() {
	l.emitted.Add(1)
}

func (l *Logs) Interval() time.Duration {
	return l.interval
}

func (l *Logs) Close() error {
	l.cancel()
	return nil
}

func (l *Logs) run() *Logs {
	if l.interval > 0 {
		go l.loop()
	}
	return l
}

func (l *Logs) loop() {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	var prev uint64
	for {
		select {
		case <-l.ctx.Done():
			return

		case <-ticker.C:
			cur := l.emitted.Load()
			d := cur - prev
			prev = cur

			l.logger.Info("stream",
				"interval", l.interval.String(),
				"emitted", int64(d),
				"per_sec", float64(d)/l.interval.Seconds(),
				"total", int64(cur),
			)
		}
	}
}

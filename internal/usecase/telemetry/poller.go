package telemetry

import (
	"context"
	"log/slog"
	"time"
)

// Poller refetches a value on a fixed interval. It serves panels that
// tolerate staleness and have no push source.
type Poller[T any] struct {
	name     string
	interval time.Duration
	fetch    func(ctx context.Context) (T, error)
	logger   *slog.Logger
}

func NewPoller[T any](name string, interval time.Duration, fetch func(ctx context.Context) (T, error), logger *slog.Logger) *Poller[T] {
	return &Poller[T]{name: name, interval: interval, fetch: fetch, logger: logger}
}

// Run fetches immediately and then every interval until ctx ends. emit
// only sees successful results; on error the previous value stands.
func (p *Poller[T]) Run(ctx context.Context, emit func(T)) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		value, err := p.fetch(ctx)
		switch {
		case err == nil:
			emit(value)
		case ctx.Err() != nil:
			return
		default:
			p.logger.Warn("poll failed, keeping previous value",
				slog.String("poller", p.name),
				slog.Any("error", err))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

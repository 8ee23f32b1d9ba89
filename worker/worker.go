package worker

import (
	"context"
	"time"
)

// Worker a background job
type Worker interface {
	Run(ctx context.Context) error
}

// TickWorker runs a task on a fixed interval until the context is done
type TickWorker struct {
	Delay    time.Duration
	ErrDelay time.Duration
}

// StartTick start ticking
func (w *TickWorker) StartTick(ctx context.Context, onWork func(ctx context.Context) error) error {
	delay := w.Delay
	if delay <= 0 {
		delay = time.Minute
	}
	errDelay := w.ErrDelay
	if errDelay <= 0 {
		errDelay = delay
	}

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			next := delay
			if err := onWork(ctx); err != nil {
				next = errDelay
			}
			timer.Reset(next)
		}
	}
}

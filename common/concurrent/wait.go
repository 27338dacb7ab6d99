package concurrent

import (
	"context"
	"errors"
	"time"
)

var ErrWaitTimeout = errors.New("wait timed out")

// WaitFor calls f every tick until it returns a non-nil result or an error.
// The first call happens immediately. Each call of f gets a context bounded by timeout,
// so a stalled call is interrupted too.
// ErrWaitTimeout is returned once timeout elapses; cancellation of ctx returns ctx.Err().
func WaitFor[T any](ctx context.Context, timeout, tick time.Duration, f func(context.Context) (*T, error)) (*T, error) {
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		res, err := f(waitCtx)
		if err != nil {
			if waitCtx.Err() != nil {
				return nil, waitError(ctx)
			}
			return nil, err
		}
		if res != nil {
			return res, nil
		}

		select {
		case <-waitCtx.Done():
			return nil, waitError(ctx)
		case <-ticker.C:
		}
	}
}

func waitError(parent context.Context) error {
	if err := parent.Err(); err != nil {
		return err
	}
	return ErrWaitTimeout
}

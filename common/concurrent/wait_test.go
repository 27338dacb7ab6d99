package concurrent

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWaitForResult(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	res, err := WaitFor(context.Background(), time.Second, time.Millisecond, func(context.Context) (*int, error) {
		if calls.Add(1) < 3 {
			return nil, nil
		}
		v := 7
		return &v, nil
	})
	require.NoError(t, err)
	require.Equal(t, 7, *res)
	require.Equal(t, int32(3), calls.Load())
}

func TestWaitForTimeout(t *testing.T) {
	t.Parallel()

	res, err := WaitFor(context.Background(), 20*time.Millisecond, time.Millisecond, func(context.Context) (*int, error) {
		return nil, nil
	})
	require.ErrorIs(t, err, ErrWaitTimeout)
	require.Nil(t, res)
}

func TestWaitForError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := WaitFor(context.Background(), time.Second, time.Millisecond, func(context.Context) (*int, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)
}

func TestWaitForCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WaitFor(ctx, time.Second, time.Millisecond, func(context.Context) (*int, error) {
		return nil, nil
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestWaitForStalledCall(t *testing.T) {
	t.Parallel()

	start := time.Now()
	_, err := WaitFor(context.Background(), 50*time.Millisecond, time.Millisecond, func(ctx context.Context) (*int, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	require.ErrorIs(t, err, ErrWaitTimeout)
	require.Less(t, time.Since(start), 2*time.Second)
}

func TestWaitForCanceledDuringCall(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	_, err := WaitFor(ctx, time.Minute, time.Millisecond, func(ctx context.Context) (*int, error) {
		cancel()
		<-ctx.Done()
		return nil, ctx.Err()
	})
	require.ErrorIs(t, err, context.Canceled)
}

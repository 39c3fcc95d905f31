package ringchan

import (
	"context"
	"time"
)

// initialBackoff and maxBackoff pin the exponential backoff law the async
// adapter uses between polling attempts: 1ms, 2ms, 4ms, ... capped at
// 100ms. The core provides no wake-up signalling primitive, so Send/Recv
// are deliberately coarse: poll the non-blocking op, sleep, double, repeat.
const (
	initialBackoff = time.Millisecond
	maxBackoff     = 100 * time.Millisecond
)

// Send enqueues value, blocking the calling goroutine until it is
// published or ctx is done.
//
// Send never returns having silently dropped value: either TrySend
// eventually succeeds and Send returns nil, or ctx is cancelled between
// attempts and Send returns ctx.Err() without having published value.
//
// If the channel is never drained, Send never returns — there is no close
// primitive for the adapter to observe.
func (c *Channel[T]) Send(ctx context.Context, value T) error {
	backoff := initialBackoff
	for {
		if c.core.trySend(value) {
			return nil
		}
		if err := sleep(ctx, backoff); err != nil {
			return err
		}
		backoff = nextBackoff(backoff)
	}
}

// Recv dequeues and returns an element, blocking the calling goroutine
// until one is available or ctx is done.
//
// Recv uses the same backoff law as Send and propagates ctx cancellation
// from the sleep step.
func (c *Channel[T]) Recv(ctx context.Context) (T, error) {
	backoff := initialBackoff
	for {
		if value, ok := c.core.tryReceive(); ok {
			return value, nil
		}
		var zero T
		if err := sleep(ctx, backoff); err != nil {
			return zero, err
		}
		backoff = nextBackoff(backoff)
	}
}

func nextBackoff(d time.Duration) time.Duration {
	d *= 2
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}

// sleep waits for d or until ctx is done, whichever comes first. It stands
// in for the "host async runtime's cooperative sleep" spec.md §6 requires:
// in Go, the runtime's own scheduler is that host, so a timer plus a
// context is the idiomatic substitute for an injectable sleep interface.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

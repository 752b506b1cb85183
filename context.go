package lockingqueue

import (
	"context"
	"errors"
)

// Take blocks until an element is available or ctx is done. On success
// returns (value, nil). On cancellation returns the zero value and ctx.Err().
//
// Take is the context-flavored alternative to Pop(true, timeout): deadlines
// and cancellation come from ctx rather than a fixed duration.
func (b *Queue[T]) Take(ctx context.Context) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	b.mu.Lock()
	// Fast path
	if v, ok := b.q.Dequeue(); ok {
		b.mu.Unlock()
		return v, nil
	}
	// Wait with context cancellation. We spawn a short-lived watcher that
	// broadcasts on cancellation to wake Wait.
	for {
		done := make(chan struct{})
		go func() {
			select {
			case <-ctx.Done():
				b.mu.Lock()
				b.cv.Broadcast()
				b.mu.Unlock()
			case <-done:
			}
		}()

		b.cv.Wait() // releases and re-acquires b.mu
		close(done)

		if v, ok := b.q.Dequeue(); ok {
			b.mu.Unlock()
			return v, nil
		}
		if err := ctx.Err(); err != nil {
			b.mu.Unlock()
			var zero T
			return zero, err
		}
	}
}

// ErrCanceled is returned by Take when the context is canceled.
var ErrCanceled = context.Canceled

// ErrDeadlineExceeded is returned by Take when the context deadline expires.
var ErrDeadlineExceeded = context.DeadlineExceeded

// IsContextError reports whether err equals context.Canceled or context.DeadlineExceeded.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

package lockingqueue

import (
	"sync"
	"time"

	"github.com/romanek-adam/boost-locking-queue/fifo"
)

// Queue is a blocking, concurrency-safe FIFO built on fifo.Queue. Push wakes
// blocked Pop callers; Pop can wait for data with an optional timeout.
//
// All methods are safe for concurrent use by multiple goroutines. A Queue
// has no single owner after construction and may be shared freely between
// producers and consumers.
type Queue[T any] struct {
	mu sync.Mutex
	cv *sync.Cond
	q  *fifo.Queue[T]
}

// New creates a new empty blocking queue.
func New[T any]() *Queue[T] {
	b := &Queue[T]{q: fifo.New[T]()}
	b.cv = sync.NewCond(&b.mu)
	return b
}

// NewWithCapacity creates a new blocking queue with initial capacity.
func NewWithCapacity[T any](capacity int) *Queue[T] {
	b := &Queue[T]{q: fifo.NewWithCapacity[T](capacity)}
	b.cv = sync.NewCond(&b.mu)
	return b
}

// NewFromSlice creates a new blocking queue seeded with a copy of items;
// items[0] becomes the head. The queue is independent of the source slice.
func NewFromSlice[T any](items []T) *Queue[T] {
	b := &Queue[T]{q: fifo.NewFromSlice(items)}
	b.cv = sync.NewCond(&b.mu)
	return b
}

// Push appends v to the tail and wakes waiters. It always succeeds: capacity
// is unbounded, so Push never blocks beyond acquiring the lock.
func (b *Queue[T]) Push(v T) {
	b.mu.Lock()
	b.q.Enqueue(v)
	b.cv.Broadcast()
	b.mu.Unlock()
}

// PushAll appends items in order and returns the count added.
// Broadcasts once if any element is added.
func (b *Queue[T]) PushAll(items ...T) int {
	b.mu.Lock()
	n := b.q.EnqueueMany(items...)
	if n > 0 {
		b.cv.Broadcast()
	}
	b.mu.Unlock()
	return n
}

// Pop removes and returns the head element.
//
// With block false, an empty queue yields ErrQueueEmpty immediately and
// timeout is ignored. With block true, Pop suspends until an element
// arrives; a timeout greater than zero bounds the wait, measured from the
// start of the call, and expiry yields ErrQueueEmpty. A timeout of zero or
// less means wait indefinitely, mirroring the non-blocking mode's ownership
// of "don't wait at all".
//
// On failure the queue is left unmodified.
func (b *Queue[T]) Pop(block bool, timeout time.Duration) (T, error) {
	b.mu.Lock()
	if v, ok := b.q.Dequeue(); ok {
		b.mu.Unlock()
		return v, nil
	}
	if !block {
		b.mu.Unlock()
		var zero T
		return zero, ErrQueueEmpty
	}
	if timeout > 0 {
		return b.popDeadline(time.Now().Add(timeout))
	}
	for {
		b.cv.Wait() // releases and re-acquires b.mu
		if v, ok := b.q.Dequeue(); ok {
			b.mu.Unlock()
			return v, nil
		}
	}
}

// popDeadline continues a blocking Pop against an absolute deadline.
// Entered with b.mu held; releases it before returning.
func (b *Queue[T]) popDeadline(deadline time.Time) (T, error) {
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			b.mu.Unlock()
			var zero T
			return zero, ErrQueueEmpty
		}
		// sync.Cond has no timed wait. A short-lived watcher broadcasts
		// when the timer fires so Wait returns and the deadline is
		// re-tested; spurious wakeups simply loop with the remaining
		// budget.
		done := make(chan struct{})
		tm := time.NewTimer(remaining)
		go func() {
			select {
			case <-tm.C:
				b.mu.Lock()
				b.cv.Broadcast()
				b.mu.Unlock()
			case <-done:
			}
		}()

		b.cv.Wait()
		close(done)
		tm.Stop()

		if v, ok := b.q.Dequeue(); ok {
			b.mu.Unlock()
			return v, nil
		}
	}
}

// TryPop removes and returns the head value without blocking.
// ok is false if the queue is empty.
func (b *Queue[T]) TryPop() (v T, ok bool) {
	b.mu.Lock()
	v, ok = b.q.Dequeue()
	b.mu.Unlock()
	return
}

// Peek returns the head value without removing it. ok is false when empty.
func (b *Queue[T]) Peek() (v T, ok bool) {
	b.mu.Lock()
	v, ok = b.q.Peek()
	b.mu.Unlock()
	return
}

// Len returns the number of elements currently queued. The value is a
// snapshot: by the time the caller acts on it, concurrent pushes or pops may
// have changed it.
func (b *Queue[T]) Len() int {
	b.mu.Lock()
	n := b.q.Len()
	b.mu.Unlock()
	return n
}

// IsEmpty reports whether the queue is empty. Like Len, the result is a
// snapshot.
func (b *Queue[T]) IsEmpty() bool { return b.Len() == 0 }

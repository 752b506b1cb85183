// Package lockingqueue provides a blocking, concurrency-safe FIFO queue.
//
// The queue pairs a mutex with a condition variable signaled whenever an
// element is appended. Push never blocks (capacity is unbounded); Pop can
// fail immediately, wait indefinitely, or wait up to a timeout, selected by
// its arguments. An empty-queue miss is reported as ErrQueueEmpty rather
// than a panic, so callers handle absence explicitly.
//
// Blocking and timeout semantics:
//   - Pop(false, d) never waits; d is ignored. An empty queue yields
//     ErrQueueEmpty immediately.
//   - Pop(true, 0) waits until an element arrives. Zero or negative timeout
//     means no deadline, not "don't wait".
//   - Pop(true, d) with d > 0 waits at most d, then yields ErrQueueEmpty.
//
// Waiters re-check the queue after every wakeup, so spurious wakeups are
// harmless, and the wait primitive releases and re-acquires the lock
// atomically, so a concurrent Push cannot slip its signal between a waiter's
// emptiness check and its wait (no lost wakeups).
//
// For context-based cancellation instead of a fixed timeout, use Take.
// The plain non-blocking container underneath lives in the fifo subpackage
// and can be used on its own.
package lockingqueue

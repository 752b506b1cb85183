package fifo

import (
	"sync"
)

// Queue is a generic, concurrency-safe FIFO queue. Insertion order equals
// removal order and duplicate values are allowed. The zero value is not ready
// for use; construct via New, NewWithCapacity, or NewFromSlice.
type Queue[T any] struct {
	mu   sync.Mutex
	data []T
}

// New creates a new empty queue.
//
// All exported methods are safe for concurrent use.
func New[T any]() *Queue[T] {
	return &Queue[T]{
		data: make([]T, 0),
	}
}

// NewWithCapacity creates a new queue with the given initial capacity.
// Capacity preallocates internal storage; behavior is otherwise identical to
// New.
func NewWithCapacity[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[T]{
		data: make([]T, 0, capacity),
	}
}

// NewFromSlice creates a new queue seeded with a copy of items, preserving
// their order: items[0] becomes the head. The queue holds an independent
// copy, so later changes to items do not affect it.
func NewFromSlice[T any](items []T) *Queue[T] {
	q := &Queue[T]{
		data: make([]T, len(items)),
	}
	copy(q.data, items)
	return q
}

// Enqueue appends v to the tail. Amortized complexity: O(1).
func (q *Queue[T]) Enqueue(v T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.data = append(q.data, v)
}

// EnqueueMany appends items in order and returns the count added.
// Amortized complexity: O(k) for k items.
func (q *Queue[T]) EnqueueMany(items ...T) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.data = append(q.data, items...)
	return len(items)
}

// Dequeue removes and returns the head value.
//
// The second result is false when the queue is empty. Amortized complexity: O(1).
func (q *Queue[T]) Dequeue() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var zero T
	if len(q.data) == 0 {
		return zero, false
	}
	v := q.data[0]
	// Avoid O(n) element moves by reslicing; let GC reclaim older head when needed.
	q.data[0] = zero
	q.data = q.data[1:]
	return v, true
}

// Peek returns the head value without removing it.
// The second result is false when the queue is empty. Complexity: O(1).
func (q *Queue[T]) Peek() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var zero T
	if len(q.data) == 0 {
		return zero, false
	}
	return q.data[0], true
}

// Len returns the number of elements currently queued.
// Complexity: O(1). Safe for concurrent use.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.data)
}

// IsEmpty reports whether the queue is empty.
// Complexity: O(1). Equivalent to Len() == 0.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Clear removes all elements from the queue.
func (q *Queue[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	clear(q.data)
	q.data = q.data[:0]
}

// ToSlice returns a copy of the queue's contents in FIFO order.
// Complexity: O(n). The returned slice is independent of the queue.
func (q *Queue[T]) ToSlice() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]T, len(q.data))
	copy(out, q.data)
	return out
}

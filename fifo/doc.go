// Package fifo provides a generic unbounded FIFO queue.
//
// The queue is concurrency-safe: all exported methods use internal locking
// and may be called from multiple goroutines. It stores values of any type
// and imposes no uniqueness constraint; duplicates are kept in insertion
// order. Construct a queue with New, NewWithCapacity, or NewFromSlice (which
// seeds the queue with a copy of an existing slice).
//
// Operations never block waiting for data. For blocking semantics with
// timeouts, see the lockingqueue package in the parent directory, which
// layers a mutex and condition variable on top of this container.
package fifo

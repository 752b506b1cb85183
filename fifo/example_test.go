package fifo

import (
	"fmt"
)

// Example showing basic FIFO usage.
func Example_basic() {
	q := New[int]()
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	for !q.IsEmpty() {
		v, _ := q.Dequeue()
		fmt.Println(v)
	}
	// Output:
	// 1
	// 2
	// 3
}

// Example seeding a queue from an existing slice.
func Example_newFromSlice() {
	q := NewFromSlice([]string{"a", "b", "c"})
	fmt.Println(q.Len(), q.IsEmpty())
	v, _ := q.Dequeue()
	fmt.Println(v)
	// Output:
	// 3 false
	// a
}

// Example for EnqueueMany and ToSlice.
func Example_enqueueMany() {
	q := New[int]()
	n := q.EnqueueMany(1, 1, 2, 3, 3)
	fmt.Println(n)
	fmt.Println(q.ToSlice())
	// Output:
	// 5
	// [1 1 2 3 3]
}

// Example for Peek.
func Example_peek() {
	q := New[string]()
	q.Enqueue("x")
	q.Enqueue("y")
	v, _ := q.Peek()
	fmt.Println(v)
	// Output:
	// x
}

// Example for Clear and Len/IsEmpty.
func Example_clear() {
	q := New[int]()
	q.EnqueueMany(1, 2)
	fmt.Println(q.ToSlice())
	q.Clear()
	fmt.Println(q.Len(), q.IsEmpty())
	// Output:
	// [1 2]
	// 0 true
}

// Example using a struct type; elements need not be comparable.
func Example_structType() {
	type job struct {
		ID   int
		Tags []string
	}
	q := New[job]()
	q.Enqueue(job{ID: 1, Tags: []string{"a"}})
	q.Enqueue(job{ID: 2, Tags: []string{"b"}})
	v, _ := q.Dequeue()
	fmt.Println(v.ID, len(q.ToSlice()))
	// Output:
	// 1 1
}

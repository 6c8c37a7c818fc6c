package lists

import (
	"iter"
	"slices"
)

// Queue is a FIFO queue over a singly linked chain with head and tail
// references.
type Queue[T comparable] struct {
	sized
	head *Node[T]
	tail *Node[T]
}

func NewQueue[T comparable]() *Queue[T] {
	return &Queue[T]{}
}

func QueueOf[T comparable](values ...T) *Queue[T] {
	return QueueFrom(slices.Values(values))
}

func QueueFrom[T comparable](seq iter.Seq[T]) *Queue[T] {
	q := NewQueue[T]()
	q.EnqueueAll(seq)
	return q
}

// Enqueue adds v at the back of the queue.
func (q *Queue[T]) Enqueue(v T) {
	n := &Node[T]{Value: v}
	if q.IsEmpty() {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.size++
}

func (q *Queue[T]) EnqueueAll(seq iter.Seq[T]) {
	for v := range seq {
		q.Enqueue(v)
	}
}

func (q *Queue[T]) Extend(v any) error {
	return extend(v, q.Enqueue)
}

// Dequeue removes and returns the value at the front of the queue.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, emptyError("queue", "dequeue")
	}
	n := q.head
	q.head = n.next
	n.next = nil
	q.size--
	if q.IsEmpty() {
		// The tail still points at the detached node.
		q.tail = nil
	}
	return n.Value, nil
}

func (q *Queue[T]) First() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, emptyError("queue", "first")
	}
	return q.head.Value, nil
}

func (q *Queue[T]) Last() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, emptyError("queue", "last")
	}
	return q.tail.Value, nil
}

// All yields the values from front to back.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		walk(q.head, q.size, yield)
	}
}

func (q *Queue[T]) Equal(other *Queue[T]) bool {
	return q.size == other.size && equal(q.All(), other.All())
}

func (q *Queue[T]) String() string {
	return format("Queue", q.All())
}

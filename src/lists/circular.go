package lists

import (
	"iter"
	"slices"
)

// CircularQueue is a FIFO queue over a circularly linked chain. Only the
// tail is stored: it is nil when the queue is empty, and otherwise its
// next node is the front of the queue.
type CircularQueue[T comparable] struct {
	sized
	tail *Node[T]
}

func NewCircularQueue[T comparable]() *CircularQueue[T] {
	return &CircularQueue[T]{}
}

func CircularQueueOf[T comparable](values ...T) *CircularQueue[T] {
	return CircularQueueFrom(slices.Values(values))
}

func CircularQueueFrom[T comparable](seq iter.Seq[T]) *CircularQueue[T] {
	q := NewCircularQueue[T]()
	q.EnqueueAll(seq)
	return q
}

// Enqueue adds v behind the tail; the new node becomes the tail and
// links back to the front.
func (q *CircularQueue[T]) Enqueue(v T) {
	n := &Node[T]{Value: v}
	if q.tail == nil {
		n.next = n
	} else {
		n.next = q.tail.next
		q.tail.next = n
	}
	q.tail = n
	q.size++
}

func (q *CircularQueue[T]) EnqueueAll(seq iter.Seq[T]) {
	for v := range seq {
		q.Enqueue(v)
	}
}

func (q *CircularQueue[T]) Extend(v any) error {
	return extend(v, q.Enqueue)
}

// Dequeue removes and returns the value at the front, the node after the
// tail.
func (q *CircularQueue[T]) Dequeue() (T, error) {
	if q.tail == nil {
		var zero T
		return zero, emptyError("circular queue", "dequeue")
	}
	head := q.tail.next
	if q.size == 1 {
		q.tail = nil
	} else {
		q.tail.next = head.next
	}
	head.next = nil
	q.size--
	return head.Value, nil
}

// Rotate moves the front value to the back.
func (q *CircularQueue[T]) Rotate() error {
	if q.tail == nil {
		return emptyError("circular queue", "rotate")
	}
	q.tail = q.tail.next
	return nil
}

// First returns the value of the node after the tail.
func (q *CircularQueue[T]) First() (T, error) {
	if q.tail == nil {
		var zero T
		return zero, emptyError("circular queue", "first")
	}
	return q.tail.next.Value, nil
}

// Last returns the value of the tail.
func (q *CircularQueue[T]) Last() (T, error) {
	if q.tail == nil {
		var zero T
		return zero, emptyError("circular queue", "last")
	}
	return q.tail.Value, nil
}

// All yields exactly Len values, front to back. The walk is bounded by
// the size since the chain has no end.
func (q *CircularQueue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if q.tail != nil {
			walk(q.tail.next, q.size, yield)
		}
	}
}

func (q *CircularQueue[T]) Equal(other *CircularQueue[T]) bool {
	return q.size == other.size && equal(q.All(), other.All())
}

func (q *CircularQueue[T]) String() string {
	return format("CircularQueue", q.All())
}

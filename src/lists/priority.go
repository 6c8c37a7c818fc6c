package lists

import (
	"iter"

	"gopkg.in/dnaeon/go-priorityqueue.v1"
)

// Order selects which end of a PriorityQueue is served first.
type Order int

const (
	MinFirst Order = iota
	MaxFirst
)

// Priority lists the priority types the underlying heap accepts.
type Priority interface {
	int64 | float64
}

// PriorityQueue serves values ordered by a priority computed from each
// value when it is enqueued. Values of equal priority share a FIFO bucket
// and are served in insertion order. Priorities must not be NaN.
type PriorityQueue[T comparable, P Priority] struct {
	sized
	order    Order
	priority func(T) P
	heap     *priorityqueue.PriorityQueue[P, P]
	buckets  map[P]*Queue[T]
}

func NewPriorityQueue[T comparable, P Priority](order Order, priority func(T) P) *PriorityQueue[T, P] {
	return &PriorityQueue[T, P]{
		order:    order,
		priority: priority,
		heap:     newHeap[P](order),
		buckets:  make(map[P]*Queue[T]),
	}
}

// PriorityQueueFrom enqueues every value of seq.
func PriorityQueueFrom[T comparable, P Priority](order Order, priority func(T) P, seq iter.Seq[T]) *PriorityQueue[T, P] {
	pq := NewPriorityQueue(order, priority)
	pq.EnqueueAll(seq)
	return pq
}

func newHeap[P Priority](order Order) *priorityqueue.PriorityQueue[P, P] {
	if order == MaxFirst {
		return priorityqueue.New[P, P](priorityqueue.MaxHeap)
	}
	return priorityqueue.New[P, P](priorityqueue.MinHeap)
}

func (pq *PriorityQueue[T, P]) Enqueue(v T) {
	p := pq.priority(v)
	b, ok := pq.buckets[p]
	if !ok {
		b = NewQueue[T]()
		pq.buckets[p] = b
		pq.heap.Put(p, p)
	}
	b.Enqueue(v)
	pq.size++
}

func (pq *PriorityQueue[T, P]) EnqueueAll(seq iter.Seq[T]) {
	for v := range seq {
		pq.Enqueue(v)
	}
}

func (pq *PriorityQueue[T, P]) Extend(v any) error {
	return extend(v, pq.Enqueue)
}

// Dequeue removes and returns the value served first.
func (pq *PriorityQueue[T, P]) Dequeue() (T, error) {
	if pq.IsEmpty() {
		var zero T
		return zero, emptyError("priority queue", "dequeue")
	}
	item := pq.heap.Get()
	b := pq.buckets[item.Value]
	v, _ := b.Dequeue()
	if b.IsEmpty() {
		delete(pq.buckets, item.Value)
	} else {
		pq.heap.Put(item.Value, item.Priority)
	}
	pq.size--
	return v, nil
}

// First returns the value Dequeue would return, leaving it queued.
func (pq *PriorityQueue[T, P]) First() (T, error) {
	if pq.IsEmpty() {
		var zero T
		return zero, emptyError("priority queue", "first")
	}
	item := pq.heap.Get()
	pq.heap.Put(item.Value, item.Priority)
	return pq.buckets[item.Value].First()
}

// priorities returns the queued priorities in serving order. The heap is
// drained to list them and rebuilt.
func (pq *PriorityQueue[T, P]) priorities() []P {
	rest := newHeap[P](pq.order)
	ps := make([]P, 0, pq.heap.Len())
	for pq.heap.Len() > 0 {
		item := pq.heap.Get()
		rest.Put(item.Value, item.Priority)
		ps = append(ps, item.Value)
	}
	pq.heap = rest
	return ps
}

// All yields the values in the order they would be dequeued.
func (pq *PriorityQueue[T, P]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, p := range pq.priorities() {
			b, ok := pq.buckets[p]
			if !ok {
				continue
			}
			for v := range b.All() {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Equal reports whether both queues would serve the same values in the
// same order. Ties are served in insertion order, so queues holding equal
// values enqueued in a different order may differ.
func (pq *PriorityQueue[T, P]) Equal(other *PriorityQueue[T, P]) bool {
	return pq.size == other.size && equal(pq.All(), other.All())
}

func (pq *PriorityQueue[T, P]) String() string {
	return format("PriorityQueue", pq.All())
}

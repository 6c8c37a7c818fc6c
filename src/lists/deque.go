package lists

import (
	"iter"
	"slices"
)

// Deque is a double-ended queue over a doubly linked chain. Two sentinel
// nodes, the header and the trailer, bracket the elements: they never
// hold a value and are never removed, so every insertion and deletion is
// a splice between two existing nodes. The zero value is an empty deque
// ready to use; the sentinels are allocated on first use.
type Deque[T comparable] struct {
	sized
	header  *DoubleNode[T]
	trailer *DoubleNode[T]
}

func NewDeque[T comparable]() *Deque[T] {
	return new(Deque[T]).lazyInit()
}

// DequeOf inserts values at the back, in order.
func DequeOf[T comparable](values ...T) *Deque[T] {
	return DequeFrom(slices.Values(values))
}

func DequeFrom[T comparable](seq iter.Seq[T]) *Deque[T] {
	d := NewDeque[T]()
	d.InsertBackAll(seq)
	return d
}

func (d *Deque[T]) lazyInit() *Deque[T] {
	if d.header == nil {
		d.header = new(DoubleNode[T])
		d.trailer = new(DoubleNode[T])
		d.header.next = d.trailer
		d.trailer.prev = d.header
	}
	return d
}

func (d *Deque[T]) insertBetween(v T, left, right *DoubleNode[T]) {
	n := &DoubleNode[T]{Value: v, prev: left, next: right}
	left.next = n
	right.prev = n
	d.size++
}

func (d *Deque[T]) deleteNode(n *DoubleNode[T]) T {
	left, right := n.prev, n.next
	left.next, right.prev = right, left
	d.size--
	v := n.Value
	n.release()
	return v
}

func (d *Deque[T]) InsertFront(v T) {
	d.lazyInit()
	d.insertBetween(v, d.header, d.header.next)
}

func (d *Deque[T]) InsertBack(v T) {
	d.lazyInit()
	d.insertBetween(v, d.trailer.prev, d.trailer)
}

// InsertFrontAll inserts each value at the front, so the last value of
// seq ends up first.
func (d *Deque[T]) InsertFrontAll(seq iter.Seq[T]) {
	for v := range seq {
		d.InsertFront(v)
	}
}

func (d *Deque[T]) InsertBackAll(seq iter.Seq[T]) {
	for v := range seq {
		d.InsertBack(v)
	}
}

// Extend inserts every element of v at the back.
func (d *Deque[T]) Extend(v any) error {
	return extend(v, d.InsertBack)
}

// ExtendFront inserts every element of v at the front.
func (d *Deque[T]) ExtendFront(v any) error {
	return extend(v, d.InsertFront)
}

func (d *Deque[T]) First() (T, error) {
	if d.IsEmpty() {
		var zero T
		return zero, emptyError("deque", "first")
	}
	return d.header.next.Value, nil
}

func (d *Deque[T]) Last() (T, error) {
	if d.IsEmpty() {
		var zero T
		return zero, emptyError("deque", "last")
	}
	return d.trailer.prev.Value, nil
}

func (d *Deque[T]) DeleteFront() error {
	if d.IsEmpty() {
		return emptyError("deque", "delete front")
	}
	d.deleteNode(d.header.next)
	return nil
}

func (d *Deque[T]) DeleteBack() error {
	if d.IsEmpty() {
		return emptyError("deque", "delete back")
	}
	d.deleteNode(d.trailer.prev)
	return nil
}

// PopFront removes and returns the value at the front.
func (d *Deque[T]) PopFront() (T, error) {
	v, err := d.First()
	if err != nil {
		return v, err
	}
	return v, d.DeleteFront()
}

// PopBack removes and returns the value at the back.
func (d *Deque[T]) PopBack() (T, error) {
	v, err := d.Last()
	if err != nil {
		return v, err
	}
	return v, d.DeleteBack()
}

// All yields at most Len values from front to back, as counted when the
// iteration starts. Popping the current value while ranging is safe.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if d.header == nil {
			return
		}
		n, next := d.size, d.header.next
		for i := 0; i < n && next != d.trailer && next.prev != nil; i++ {
			cur := next
			next = cur.next
			if !yield(cur.Value) {
				return
			}
		}
	}
}

// Backward yields at most Len values from back to front.
func (d *Deque[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if d.trailer == nil {
			return
		}
		n, next := d.size, d.trailer.prev
		for i := 0; i < n && next != d.header && next.next != nil; i++ {
			cur := next
			next = cur.prev
			if !yield(cur.Value) {
				return
			}
		}
	}
}

func (d *Deque[T]) Equal(other *Deque[T]) bool {
	return d.size == other.size && equal(d.All(), other.All())
}

func (d *Deque[T]) String() string {
	return format("Deque", d.All())
}

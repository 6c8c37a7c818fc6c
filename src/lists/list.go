package lists

import (
	"iter"
	"math"
	"slices"

	"github.com/juju/errors"
	"golang.org/x/exp/constraints"
)

// List is a singly linked list with positional access. The zero value
// is an empty list ready to use.
type List[T comparable] struct {
	sized
	head *Node[T]
}

func NewList[T comparable]() *List[T] {
	return &List[T]{}
}

// ListOf returns a list holding values in order.
func ListOf[T comparable](values ...T) *List[T] {
	return ListFrom(slices.Values(values))
}

// ListFrom returns a list holding a copy of every value of seq, in
// iteration order. Passing another container's All copies its values
// into new nodes.
func ListFrom[T comparable](seq iter.Seq[T]) *List[T] {
	l := NewList[T]()
	l.AddAll(seq)
	return l
}

// Add appends v at the end of the list. The end is found by walking
// from the head.
func (l *List[T]) Add(v T) {
	n := &Node[T]{Value: v}
	if l.head == nil {
		l.head = n
	} else {
		end := l.head
		for end.next != nil {
			end = end.next
		}
		end.next = n
	}
	l.size++
}

func (l *List[T]) AddAll(seq iter.Seq[T]) {
	for v := range seq {
		l.Add(v)
	}
}

// Extend adds every element of v, see Values for the accepted shapes.
func (l *List[T]) Extend(v any) error {
	return extend(v, l.Add)
}

// At returns the node at position index, counted from zero.
func (l *List[T]) At(index int) (*Node[T], error) {
	return Index(l, index)
}

// Index returns the node of l at position index. A negative or
// fractional index is not valid; an index past the last element is out
// of range.
func Index[T comparable, I constraints.Integer | constraints.Float](l *List[T], index I) (*Node[T], error) {
	f := float64(index)
	if f < 0 || f != math.Trunc(f) {
		return nil, errors.NotValidf("list index %v", index)
	}
	if f >= float64(l.size) {
		return nil, errors.Annotatef(ErrOutOfRange, "list index %v, size %d", index, l.size)
	}
	n := l.head
	for i := int(f); i > 0; i-- {
		n = n.next
	}
	return n, nil
}

func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		walk(l.head, l.size, yield)
	}
}

// Nodes returns an iterator over the nodes of the list, head first.
func (l *List[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n) {
				return
			}
		}
	}
}

// Equal reports whether l and other hold equal values in the same order.
func (l *List[T]) Equal(other *List[T]) bool {
	return l.size == other.size && equal(l.All(), other.All())
}

func (l *List[T]) String() string {
	return format("List", l.All())
}

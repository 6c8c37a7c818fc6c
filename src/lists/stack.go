package lists

import (
	"iter"
	"slices"
)

// Stack is a LIFO stack over a singly linked chain whose head is the top.
type Stack[T comparable] struct {
	sized
	head *Node[T]
}

func NewStack[T comparable]() *Stack[T] {
	return &Stack[T]{}
}

// StackOf pushes values in order, so the last one ends on top.
func StackOf[T comparable](values ...T) *Stack[T] {
	return StackFrom(slices.Values(values))
}

func StackFrom[T comparable](seq iter.Seq[T]) *Stack[T] {
	s := NewStack[T]()
	s.PushAll(seq)
	return s
}

func (s *Stack[T]) Push(v T) {
	s.head = &Node[T]{Value: v, next: s.head}
	s.size++
}

func (s *Stack[T]) PushAll(seq iter.Seq[T]) {
	for v := range seq {
		s.Push(v)
	}
}

func (s *Stack[T]) Extend(v any) error {
	return extend(v, s.Push)
}

// Pop removes and returns the value on top of the stack.
func (s *Stack[T]) Pop() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, emptyError("stack", "pop")
	}
	n := s.head
	s.head = n.next
	n.next = nil
	s.size--
	return n.Value, nil
}

// Top returns the value on top of the stack without removing it.
func (s *Stack[T]) Top() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, emptyError("stack", "top")
	}
	return s.head.Value, nil
}

// All yields the values from top to bottom.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		walk(s.head, s.size, yield)
	}
}

func (s *Stack[T]) Equal(other *Stack[T]) bool {
	return s.size == other.size && equal(s.All(), other.All())
}

func (s *Stack[T]) String() string {
	return format("Stack", s.All())
}

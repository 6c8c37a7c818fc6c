package lists

import (
	"fmt"
	"iter"
	"strings"
)

// Node holds a value and the link to the next node of a singly linked
// chain. A node belongs to exactly one chain.
type Node[T comparable] struct {
	Value T
	next  *Node[T]
}

// Next returns the node following n, or nil at the end of the chain.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// DoubleNode is a node of a doubly linked chain.
type DoubleNode[T comparable] struct {
	Value      T
	prev, next *DoubleNode[T]
}

// release clears the value and links of a node removed from its chain so
// it holds no references into the container.
func (n *DoubleNode[T]) release() {
	var zero T
	n.Value = zero
	n.prev, n.next = nil, nil
}

// sized tracks the number of real nodes held by a container.
type sized struct {
	size int
}

// Len returns the number of elements in the container.
func (s *sized) Len() int {
	return s.size
}

// IsEmpty reports whether the container holds no elements.
func (s *sized) IsEmpty() bool {
	return s.size == 0
}

// walk yields at most n values starting from head. The bound keeps
// iteration over circular chains finite.
func walk[T comparable](head *Node[T], n int, yield func(T) bool) {
	cur := head
	for i := 0; i < n && cur != nil; i++ {
		if !yield(cur.Value) {
			return
		}
		cur = cur.next
	}
}

func equal[T comparable](a, b iter.Seq[T]) bool {
	next, stop := iter.Pull(b)
	defer stop()
	for v := range a {
		w, ok := next()
		if !ok || v != w {
			return false
		}
	}
	_, more := next()
	return !more
}

func format[T comparable](kind string, values iter.Seq[T]) string {
	s := new(strings.Builder)
	s.WriteString(kind)
	s.WriteRune('(')
	sep := ""
	for v := range values {
		fmt.Fprintf(s, "%s%v", sep, v)
		sep = ", "
	}
	s.WriteRune(')')
	return s.String()
}

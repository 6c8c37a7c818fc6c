package main

import (
	"fmt"
	"io"
	"math"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/juju/errors"
	"gonum.org/v1/gonum/mat"

	"linked_lists/src/lists"
	"linked_lists/src/lists_run/scalars"
)

var kinds = []string{"list", "stack", "queue", "circular", "deque", "priority"}

type container interface {
	Len() int
	String() string
}

// distinct drops repeated scalars, keeping the first occurrence.
func distinct(values []any) []any {
	seen := mapset.NewThreadUnsafeSet[any]()
	out := make([]any, 0, len(values))
	for _, v := range values {
		if seen.Add(v) {
			out = append(out, v)
		}
	}
	return out
}

// rank orders numbers by value ahead of every other scalar.
func rank(v any) float64 {
	switch v := v.(type) {
	case int64:
		return float64(v)
	case float64:
		return v
	}
	return math.Inf(1)
}

func describe(w io.Writer, c container) {
	fmt.Fprintf(w, "%v\nSize: %d\n", c, c.Len())
}

func peek(w io.Writer, name string, get func() (any, error)) error {
	v, err := get()
	if errors.Is(err, lists.ErrEmpty) {
		fmt.Fprintf(w, "%s: empty\n", name)
		return nil
	}
	if err != nil {
		return errors.Trace(err)
	}
	fmt.Fprintf(w, "%s: %v\n", name, v)
	return nil
}

// drain calls remove until the container reports it is empty, printing
// every removed value.
func drain(w io.Writer, remove func() (any, error)) error {
	fmt.Fprint(w, "Drained:")
	for {
		v, err := remove()
		if errors.Is(err, lists.ErrEmpty) {
			fmt.Fprintln(w)
			return nil
		}
		if err != nil {
			return errors.Trace(err)
		}
		fmt.Fprintf(w, " %v", v)
	}
}

func listAt(w io.Writer, l *lists.List[any], at string) error {
	var (
		n   *lists.Node[any]
		err error
	)
	switch idx := scalars.Parse(at).(type) {
	case int64:
		n, err = lists.Index(l, idx)
	case float64:
		n, err = lists.Index(l, idx)
	default:
		err = errors.NotValidf("list index %q", at)
	}
	if err != nil {
		return errors.Trace(err)
	}
	fmt.Fprintf(w, "At %s: %v\n", at, n.Value)
	return nil
}

// run builds a container of the given kind from values, prints it and
// empties it with its removal operation. at, when not empty, is an index
// looked up in a list.
func run(w io.Writer, kind string, values []any, at string) error {
	seq := slices.Values(values)
	if at != "" && kind != "list" {
		return errors.NotSupportedf("index lookup on %s", kind)
	}
	switch kind {
	case "list":
		l := lists.ListFrom(seq)
		describe(w, l)
		if at != "" {
			return listAt(w, l, at)
		}
		return nil
	case "stack":
		s := lists.StackFrom(seq)
		describe(w, s)
		if err := peek(w, "Top", s.Top); err != nil {
			return err
		}
		return drain(w, s.Pop)
	case "queue":
		q := lists.QueueFrom(seq)
		describe(w, q)
		if err := peek(w, "First", q.First); err != nil {
			return err
		}
		if err := peek(w, "Last", q.Last); err != nil {
			return err
		}
		return drain(w, q.Dequeue)
	case "circular":
		q := lists.CircularQueueFrom(seq)
		describe(w, q)
		if err := peek(w, "First", q.First); err != nil {
			return err
		}
		if err := peek(w, "Last", q.Last); err != nil {
			return err
		}
		return drain(w, q.Dequeue)
	case "deque":
		d := lists.DequeFrom(seq)
		describe(w, d)
		if err := peek(w, "First", d.First); err != nil {
			return err
		}
		if err := peek(w, "Last", d.Last); err != nil {
			return err
		}
		return drain(w, d.PopBack)
	case "priority":
		pq := lists.PriorityQueueFrom(lists.MinFirst, rank, seq)
		describe(w, pq)
		if err := peek(w, "First", pq.First); err != nil {
			return err
		}
		return drain(w, pq.Dequeue)
	}
	return errors.NotValidf("container kind %q", kind)
}

// search reports whether target is among the numeric scalars of values.
func search(w io.Writer, values []any, target float64) {
	nums := scalars.Numbers(values)
	if len(nums) == 0 {
		fmt.Fprintf(w, "Search %v: no numbers\n", target)
		return
	}
	slices.Sort(nums)
	v := mat.NewVecDense(len(nums), nums)
	fmt.Fprintf(w, "Search %v: %t\n", target, lists.SearchVec(v, target))
}

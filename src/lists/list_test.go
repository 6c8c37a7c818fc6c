package lists_test

import (
	"slices"

	"github.com/juju/errors"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"linked_lists/src/lists"
)

type listSuite struct{}

var _ = gc.Suite(&listSuite{})

func (s *listSuite) TestZeroValue(c *gc.C) {
	var l lists.List[string]
	c.Assert(l.IsEmpty(), jc.IsTrue)
	c.Assert(l.Len(), gc.Equals, 0)
	c.Assert(l.String(), gc.Equals, "List()")

	l.Add("new_element")
	c.Assert(l.Len(), gc.Equals, 1)
	c.Assert(l.IsEmpty(), jc.IsFalse)
}

func (s *listSuite) TestListOf(c *gc.C) {
	l := lists.ListOf(1, 2, 3, 1)
	c.Assert(l.Len(), gc.Equals, 4)
	c.Assert(slices.Collect(l.All()), jc.DeepEquals, []int{1, 2, 3, 1})
	c.Assert(l.String(), gc.Equals, "List(1, 2, 3, 1)")

	single := lists.ListOf(2)
	c.Assert(single.Len(), gc.Equals, 1)

	empty := lists.ListOf[int]()
	c.Assert(empty.IsEmpty(), jc.IsTrue)
}

func (s *listSuite) TestAddNil(c *gc.C) {
	l := lists.NewList[any]()
	l.Add(nil)
	l.Add("a")
	l.Add(10)
	l.Add(true)
	c.Assert(l.Len(), gc.Equals, 4)
	c.Assert(slices.Collect(l.All()), jc.DeepEquals, []any{nil, "a", 10, true})
}

func (s *listSuite) TestAddAppendsAtTail(c *gc.C) {
	l := lists.ListOf(1, 2)
	l.Add(3)
	l.AddAll(slices.Values([]int{5, 6, 7}))
	c.Assert(l.Len(), gc.Equals, 6)
	c.Assert(slices.Collect(l.All()), jc.DeepEquals, []int{1, 2, 3, 5, 6, 7})
}

func (s *listSuite) TestAt(c *gc.C) {
	l := lists.ListOf(1, 2, 3, 1)
	for i, expected := range []int{1, 2, 3, 1} {
		n, err := l.At(i)
		c.Assert(err, jc.ErrorIsNil)
		c.Check(n.Value, gc.Equals, expected)
	}

	n, err := l.At(1)
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(n.Next().Value, gc.Equals, 3)
	c.Assert(n.Next().Next().Next(), gc.IsNil)
}

func (s *listSuite) TestAtOutOfRange(c *gc.C) {
	l := lists.ListOf(1, 2, 3, 1)
	_, err := l.At(l.Len())
	c.Assert(err, gc.ErrorMatches, "list index 4, size 4: index out of range")
	c.Assert(errors.Is(err, lists.ErrOutOfRange), jc.IsTrue)

	_, err = lists.NewList[int]().At(0)
	c.Assert(errors.Is(err, lists.ErrOutOfRange), jc.IsTrue)
}

func (s *listSuite) TestAtNotValid(c *gc.C) {
	l := lists.ListOf(1, 2, 3, 1)
	_, err := l.At(-1)
	c.Assert(err, gc.ErrorMatches, "list index -1 not valid")
	c.Assert(errors.Is(err, errors.NotValid), jc.IsTrue)

	_, err = l.At(-10)
	c.Assert(errors.Is(err, errors.NotValid), jc.IsTrue)

	_, err = lists.Index(l, 2.5)
	c.Assert(err, gc.ErrorMatches, "list index 2.5 not valid")
	c.Assert(errors.Is(err, errors.NotValid), jc.IsTrue)
	c.Assert(errors.Is(err, lists.ErrOutOfRange), jc.IsFalse)
}

func (s *listSuite) TestIndexWholeFloat(c *gc.C) {
	l := lists.ListOf("a", "b", "c")
	n, err := lists.Index(l, 2.0)
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(n.Value, gc.Equals, "c")

	n, err = lists.Index(l, uint8(1))
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(n.Value, gc.Equals, "b")

	_, err = lists.Index(l, 3.0)
	c.Assert(errors.Is(err, lists.ErrOutOfRange), jc.IsTrue)
}

func (s *listSuite) TestNodes(c *gc.C) {
	l := lists.ListOf(1, 2, 3)
	var values []int
	for n := range l.Nodes() {
		values = append(values, n.Value)
	}
	c.Assert(values, jc.DeepEquals, []int{1, 2, 3})
}

func (s *listSuite) TestIterationRestarts(c *gc.C) {
	l := lists.ListOf(1, 2, 3)
	all := l.All()
	c.Assert(slices.Collect(all), jc.DeepEquals, []int{1, 2, 3})
	l.Add(4)
	c.Assert(slices.Collect(all), jc.DeepEquals, []int{1, 2, 3, 4})

	for v := range all {
		c.Assert(v, gc.Equals, 1)
		break
	}
}

func (s *listSuite) TestCopyFromList(c *gc.C) {
	a := lists.ListOf(1, 2, 3, 1)
	b := lists.ListFrom(a.All())
	c.Assert(b.Equal(a), jc.IsTrue)

	b.Add(9)
	first, err := b.At(0)
	c.Assert(err, jc.ErrorIsNil)
	first.Value = 100

	c.Assert(a.Len(), gc.Equals, 4)
	c.Assert(slices.Collect(a.All()), jc.DeepEquals, []int{1, 2, 3, 1})
	c.Assert(b.Equal(a), jc.IsFalse)
}

func (s *listSuite) TestEqual(c *gc.C) {
	c.Assert(lists.ListOf(1, 2).Equal(lists.ListOf(1, 2)), jc.IsTrue)
	c.Assert(lists.ListOf(1, 2).Equal(lists.ListOf(2, 1)), jc.IsFalse)
	c.Assert(lists.ListOf(1, 2).Equal(lists.ListOf(1, 2, 3)), jc.IsFalse)
	c.Assert(lists.NewList[int]().Equal(lists.ListOf[int]()), jc.IsTrue)
}

func (s *listSuite) TestExtend(c *gc.C) {
	l := lists.ListOf("x")
	err := l.Extend([]string{"a", "b"})
	c.Assert(err, jc.ErrorIsNil)

	err = l.Extend("test")
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(slices.Collect(l.All()), jc.DeepEquals, []string{"x", "a", "b", "t", "e", "s", "t"})

	err = l.Extend(lists.ListOf("y", "z"))
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(l.Len(), gc.Equals, 9)
}

func (s *listSuite) TestExtendNotIterable(c *gc.C) {
	l := lists.ListOf(1, 2, 3, 1)
	err := l.Extend(10)
	c.Assert(err, gc.ErrorMatches, `value is not iterable: 10 \(int\)`)
	c.Assert(errors.Is(err, lists.ErrNotIterable), jc.IsTrue)

	var notIterable *lists.NotIterableError
	c.Assert(errors.As(err, &notIterable), jc.IsTrue)
	c.Assert(notIterable.Value, gc.Equals, 10)
	c.Assert(l.Len(), gc.Equals, 4)
}

package lists

import (
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/mat"
)

// BinarySearch reports whether target is in sorted, which must be in
// ascending order.
func BinarySearch[S ~[]E, E constraints.Ordered](sorted S, target E) bool {
	if len(sorted) == 0 {
		return false
	}
	if len(sorted) == 1 {
		return target == sorted[0]
	}

	middle := len(sorted) / 2
	switch {
	case target == sorted[middle]:
		return true
	case target < sorted[middle]:
		return BinarySearch(sorted[:middle], target)
	default:
		return BinarySearch(sorted[middle+1:], target)
	}
}

// SearchVec reports whether target is an element of v, whose elements
// must be in ascending order.
func SearchVec(v mat.Vector, target float64) bool {
	lo, hi := 0, v.Len()
	for lo < hi {
		middle := int(uint(lo+hi) >> 1)
		x := v.AtVec(middle)
		switch {
		case x == target:
			return true
		case target < x:
			hi = middle
		default:
			lo = middle + 1
		}
	}
	return false
}

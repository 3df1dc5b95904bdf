package sortable

import (
	"github.com/amp-labs/amp-extensions/compare"
)

// Sortable is a Comparable that also defines a strict ordering.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare is a three-way comparison of two Sortable values, suitable for
// slices.SortFunc.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case b.LessThan(a):
		return 1
	default:
		return 0
	}
}

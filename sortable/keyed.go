package sortable

import (
	"cmp"
	"iter"
	"slices"

	"github.com/amp-labs/amp-extensions/assert"
	"github.com/amp-labs/amp-extensions/compare"
)

// Keyed wraps a value together with the selector that produces its ordering key.
// It is immutable once built. The zero Keyed has no selector and must not be
// compared; build instances with NewKeyed, Wrap or WrapSlice.
type Keyed[T any, K cmp.Ordered] struct {
	value    T
	selector func(T) K
}

var _ Sortable[Keyed[int, int]] = Keyed[int, int]{}

// NewKeyed wraps value with the given key selector.
// It returns an error wrapping errors.ErrInvalidArgument if selector is nil.
func NewKeyed[T any, K cmp.Ordered](value T, selector func(T) K) (Keyed[T, K], error) {
	if err := assert.Argument("selector", selector); err != nil {
		return Keyed[T, K]{}, err
	}

	return Keyed[T, K]{value: value, selector: selector}, nil
}

// Value returns the wrapped value.
func (k Keyed[T, K]) Value() T { //nolint:ireturn
	return k.value
}

// Key runs the selector against the wrapped value.
func (k Keyed[T, K]) Key() K { //nolint:ireturn
	return k.selector(k.value)
}

// CompareTo orders k against other by their keys, projecting k's value through
// k's selector and other's value through other's selector. It returns -1, 0 or +1.
// Panics if either side was not built with a selector.
func (k Keyed[T, K]) CompareTo(other Keyed[T, K]) int {
	result, err := compare.By(k.value, other.value, k.selector, other.selector)
	if err != nil {
		panic(err)
	}

	return result
}

// Equals reports whether both keys are equal.
func (k Keyed[T, K]) Equals(other Keyed[T, K]) bool {
	return k.CompareTo(other) == 0
}

// LessThan reports whether k's key is lower than other's.
func (k Keyed[T, K]) LessThan(other Keyed[T, K]) bool {
	return k.CompareTo(other) < 0
}

// Wrap lazily maps every value of seq into a Keyed sharing one selector,
// preserving order.
func Wrap[T any, K cmp.Ordered](seq iter.Seq[T], selector func(T) K) (iter.Seq[Keyed[T, K]], error) {
	if err := assert.Arguments("seq", seq, "selector", selector); err != nil {
		return nil, err
	}

	return func(yield func(Keyed[T, K]) bool) {
		for value := range seq {
			if !yield(Keyed[T, K]{value: value, selector: selector}) {
				return
			}
		}
	}, nil
}

// WrapSlice eagerly maps values into Keyed wrappers sharing one selector.
// A nil or empty slice produces an empty, non-nil result.
func WrapSlice[T any, K cmp.Ordered](values []T, selector func(T) K) ([]Keyed[T, K], error) {
	if err := assert.Argument("selector", selector); err != nil {
		return nil, err
	}

	out := make([]Keyed[T, K], 0, len(values))

	for _, value := range values {
		out = append(out, Keyed[T, K]{value: value, selector: selector})
	}

	return out, nil
}

// Unwrap returns the wrapped values in order.
func Unwrap[T any, K cmp.Ordered](keyed []Keyed[T, K]) []T {
	out := make([]T, 0, len(keyed))

	for _, k := range keyed {
		out = append(out, k.value)
	}

	return out
}

// Sort stably sorts values in place by the key selector produces.
// Elements with equal keys keep their relative order.
func Sort[T any, K cmp.Ordered](values []T, selector func(T) K) error {
	keyed, err := WrapSlice(values, selector)
	if err != nil {
		return err
	}

	slices.SortStableFunc(keyed, Keyed[T, K].CompareTo)

	copy(values, Unwrap(keyed))

	return nil
}

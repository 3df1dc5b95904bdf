package compare

import (
	"cmp"

	"github.com/amp-labs/amp-extensions/assert"
)

// EqualBy reports whether a and b are equal once projected through their selectors.
// It returns true iff selectorA(a) == selectorB(b). Each selector is invoked exactly once.
//
// An error wrapping errors.ErrInvalidArgument is returned, without invoking
// anything, if either selector is nil.
//
// Example:
//
//	same, err := compare.EqualBy(user, account,
//	    func(u User) string { return u.Email },
//	    func(a Account) string { return a.OwnerEmail })
func EqualBy[A, B any, K comparable](a A, b B, selectorA func(A) K, selectorB func(B) K) (bool, error) {
	if err := assert.Arguments("selectorA", selectorA, "selectorB", selectorB); err != nil {
		return false, err
	}

	return selectorA(a) == selectorB(b), nil
}

// EqualByValue reports whether selectorA(a) equals the value produced by value().
// Both functions are invoked exactly once.
func EqualByValue[A any, K comparable](a A, selectorA func(A) K, value func() K) (bool, error) {
	if err := assert.Arguments("selectorA", selectorA, "value", value); err != nil {
		return false, err
	}

	return selectorA(a) == value(), nil
}

// EqualByFunc is EqualBy for keys that define their own equality through the
// Comparable interface, such as structs holding slices or case-insensitive strings.
func EqualByFunc[A, B any, K Comparable[K]](a A, b B, selectorA func(A) K, selectorB func(B) K) (bool, error) {
	if err := assert.Arguments("selectorA", selectorA, "selectorB", selectorB); err != nil {
		return false, err
	}

	return selectorA(a).Equals(selectorB(b)), nil
}

// By compares a and b by the keys their selectors produce. The result is
// -1 if selectorA(a) < selectorB(b), 0 if they are equal and +1 otherwise,
// following cmp.Compare (so a NaN key sorts before every other float).
//
// An error wrapping errors.ErrInvalidArgument is returned if either selector is nil.
func By[A, B any, K cmp.Ordered](a A, b B, selectorA func(A) K, selectorB func(B) K) (int, error) {
	if err := assert.Arguments("selectorA", selectorA, "selectorB", selectorB); err != nil {
		return 0, err
	}

	return cmp.Compare(selectorA(a), selectorB(b)), nil
}

// ByValue compares selectorA(a) against the value produced by value().
func ByValue[A any, K cmp.Ordered](a A, selectorA func(A) K, value func() K) (int, error) {
	if err := assert.Arguments("selectorA", selectorA, "value", value); err != nil {
		return 0, err
	}

	return cmp.Compare(selectorA(a), value()), nil
}

// ByFunc compares the projected keys with an explicit three-way comparator.
// Use it for keys that have an ordering but are not cmp.Ordered, such as
// time.Time (time.Time.Compare) or version strings. The comparator result is
// normalized with Sign.
func ByFunc[A, B, K any](a A, b B, selectorA func(A) K, selectorB func(B) K, compare func(K, K) int) (int, error) {
	if err := assert.Arguments("selectorA", selectorA, "selectorB", selectorB, "compare", compare); err != nil {
		return 0, err
	}

	return Sign(compare(selectorA(a), selectorB(b))), nil
}

// ByValueFunc is the single-subject form of ByFunc.
func ByValueFunc[A, K any](a A, selectorA func(A) K, value func() K, compare func(K, K) int) (int, error) {
	if err := assert.Arguments("selectorA", selectorA, "value", value, "compare", compare); err != nil {
		return 0, err
	}

	return Sign(compare(selectorA(a), value())), nil
}

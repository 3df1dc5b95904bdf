// Package sortable provides orderable values: the [Sortable] interface, wrappers
// for primitive types, and [Keyed], which makes any value orderable by pairing it
// with a key selector.
//
// # Overview
//
// Sortable extends [github.com/amp-labs/amp-extensions/compare.Comparable] with a
// LessThan method, providing both equality and ordering. [Int], [Byte] and [String]
// implement it for the matching built-in types.
//
// # Keyed values
//
// Keyed pairs a subject with a selector that projects it onto an ordered key.
// Two Keyed values compare by their keys, each computed with its own selector:
//
//	byAge := func(p Person) int { return p.Age }
//
//	people, err := sortable.WrapSlice(persons, byAge)
//	if err != nil {
//	    return err
//	}
//
//	slices.SortStableFunc(people, sortable.Keyed[Person, int].CompareTo)
//
// [Sort] does the wrapping and unwrapping in one call.
//
// # Thread Safety
//
// All types in this package are immutable values and safe for concurrent reads,
// provided the selectors themselves are safe to call concurrently.
package sortable

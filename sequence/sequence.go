// Package sequence walks slices and iterators once, calling an action for every
// element, optionally with an index whose progression the caller controls.
//
// Every walk is eager and synchronous, and returns its source unchanged so
// calls can be chained:
//
//	names, err := sequence.ForEach(names, func(n string) { fmt.Println(n) })
//
// A nil slice is an empty sequence. A nil iterator, action or step function is
// rejected with an error wrapping errors.ErrInvalidArgument before any element
// is visited.
package sequence

import (
	"iter"
	"slices"

	"github.com/amp-labs/amp-extensions/assert"
)

// ForEach calls action once for each element of source, in order.
func ForEach[S ~[]T, T any](source S, action func(T)) (S, error) {
	if _, err := ForEachSeq(slices.Values(source), action); err != nil {
		return source, err
	}

	return source, nil
}

// ForEachSeq calls action once for each value yielded by source.
func ForEachSeq[T any](source iter.Seq[T], action func(T)) (iter.Seq[T], error) {
	if err := assert.Arguments("source", source, "action", action); err != nil {
		return source, err
	}

	for value := range source {
		action(value)
	}

	return source, nil
}

// ForEachIndexed calls action with every element of source and its index.
// The index starts at WithStart (default 0) and is advanced with WithStep
// (default Increment) after each call, so by default the indexes are 0, 1, 2...
func ForEachIndexed[S ~[]T, T any](source S, action func(T, int), opts ...Option) (S, error) {
	if _, err := ForEachIndexedSeq(slices.Values(source), action, opts...); err != nil {
		return source, err
	}

	return source, nil
}

// ForEachIndexedSeq is ForEachIndexed for iterators.
func ForEachIndexedSeq[T any](source iter.Seq[T], action func(T, int), opts ...Option) (iter.Seq[T], error) {
	if err := assert.Arguments("source", source, "action", action); err != nil {
		return source, err
	}

	indexed, err := Indexed(source, opts...)
	if err != nil {
		return source, err
	}

	for index, value := range indexed {
		action(value, index)
	}

	return source, nil
}

// ForIndexed walks all of source but only calls action for the elements whose
// position has caught up with a target index. The target starts at WithStart
// (default 0) and is advanced with WithStep (default Increment) every time
// action fires. The action receives the element and its position.
//
// With the defaults every element is visited. WithStart(2) and WithStep(StepBy(3))
// visit positions 2, 5, 8 and so on. A step that does not move the target past
// the current position makes every following element fire.
func ForIndexed[S ~[]T, T any](source S, action func(T, int), opts ...Option) (S, error) {
	if _, err := ForIndexedSeq(slices.Values(source), action, opts...); err != nil {
		return source, err
	}

	return source, nil
}

// ForIndexedSeq is ForIndexed for iterators.
func ForIndexedSeq[T any](source iter.Seq[T], action func(T, int), opts ...Option) (iter.Seq[T], error) {
	if err := assert.Arguments("source", source, "action", action); err != nil {
		return source, err
	}

	options, err := resolve(opts)
	if err != nil {
		return source, err
	}

	target := options.Start
	position := 0

	for value := range source {
		if position >= target {
			action(value, position)

			target = options.Step(target)
		}

		position++
	}

	return source, nil
}

// Indexed lazily pairs every value of source with a stepped index, as
// described for ForEachIndexed. The step function runs once per yielded value.
func Indexed[T any](source iter.Seq[T], opts ...Option) (iter.Seq2[int, T], error) {
	if err := assert.Argument("source", source); err != nil {
		return nil, err
	}

	options, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	return func(yield func(int, T) bool) {
		index := options.Start

		for value := range source {
			if !yield(index, value) {
				return
			}

			index = options.Step(index)
		}
	}, nil
}

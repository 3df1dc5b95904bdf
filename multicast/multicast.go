// Package multicast models a function value that fans out to an ordered list of
// targets. Invoking a Func calls every target with the same argument and collects
// every result, in the order the targets were attached.
//
// A target is either a plain function or another Func; nested values are
// flattened when the Func is invoked. Every combinator returns a new Func and
// leaves its receiver untouched, so a Func can never contain itself.
//
// Functions of several arguments are adapted with Lift2 or Lift3 and invoked with
// InvokeAll2 or InvokeAll3, which pack the arguments into a tuple.Tuple2 or tuple.Tuple3.
package multicast

import (
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/amp-labs/amp-extensions/utils"
)

// Func is an immutable, ordered collection of targets sharing the signature func(A) R.
// The zero value and a nil *Func both behave as a Func with no targets.
// InvokeAll is the exception: it rejects a nil *Func with errors.ErrInvalidArgument.
type Func[A, R any] struct {
	targets []target[A, R]
}

// target holds exactly one of fn or nested.
type target[A, R any] struct {
	fn     func(A) R
	nested *Func[A, R]
}

// New returns a Func invoking fns in order. Nil functions are skipped.
func New[A, R any](fns ...func(A) R) *Func[A, R] {
	return (*Func[A, R])(nil).Append(fns...)
}

// Combine concatenates the targets of fs, in order, into a new Func.
// Nil values are skipped.
func Combine[A, R any](fs ...*Func[A, R]) *Func[A, R] {
	out := &Func[A, R]{}

	for _, f := range fs {
		if f != nil {
			out.targets = append(out.targets, f.targets...)
		}
	}

	return out
}

// Append returns a new Func with fns attached after the existing targets.
// Nil functions are skipped.
func (f *Func[A, R]) Append(fns ...func(A) R) *Func[A, R] {
	out := f.clone(len(fns))

	for _, fn := range fns {
		if fn != nil {
			out.targets = append(out.targets, target[A, R]{fn: fn})
		}
	}

	return out
}

// Nest returns a new Func with other attached as a single nested target.
// Its own targets run, in order, at that position. A nil other is skipped.
func (f *Func[A, R]) Nest(other *Func[A, R]) *Func[A, R] {
	out := f.clone(1)

	if other != nil {
		out.targets = append(out.targets, target[A, R]{nested: other})
	}

	return out
}

// Remove returns a new, flat Func without the last target that is the same
// function as fn (see utils.SameFunction). If there is no such target the
// receiver is returned unchanged. Closures created by the same function literal,
// including every result of Lift2 or Lift3, cannot be told apart and match each other.
func (f *Func[A, R]) Remove(fn func(A) R) *Func[A, R] {
	list := f.InvocationList()

	for i := len(list) - 1; i >= 0; i-- {
		if utils.SameFunction(list[i], fn) {
			return New(slices.Delete(list, i, i+1)...)
		}
	}

	return f
}

// All yields every plain target in invocation order, descending into nested values.
func (f *Func[A, R]) All() iter.Seq[func(A) R] {
	return func(yield func(func(A) R) bool) {
		f.walk(yield)
	}
}

// InvocationList returns the flattened targets in invocation order.
func (f *Func[A, R]) InvocationList() []func(A) R {
	return slices.AppendSeq(make([]func(A) R, 0, f.Len()), f.All())
}

// Len returns the number of plain targets after flattening.
func (f *Func[A, R]) Len() int {
	if f == nil {
		return 0
	}

	count := 0

	for _, t := range f.targets {
		if t.nested != nil {
			count += t.nested.Len()
		} else {
			count++
		}
	}

	return count
}

// Empty reports whether invoking f would call nothing.
func (f *Func[A, R]) Empty() bool {
	return f.Len() == 0
}

// Invoke calls every target with arg and returns the results in invocation order.
// It never returns nil; a Func without targets yields an empty slice.
// A panicking target stops the fan-out and the panic propagates.
func (f *Func[A, R]) Invoke(arg A) []R {
	results := make([]R, 0, f.Len())

	for fn := range f.All() {
		results = append(results, fn(arg))
	}

	return results
}

// String lists the target function names, e.g. "multicast.Func[2]{main.a, main.b}".
func (f *Func[A, R]) String() string {
	var sb strings.Builder

	sb.WriteString("multicast.Func[")
	sb.WriteString(strconv.Itoa(f.Len()))
	sb.WriteString("]{")

	first := true

	for fn := range f.All() {
		if !first {
			sb.WriteString(", ")
		}

		first = false

		sb.WriteString(utils.GetFunctionName(fn))
	}

	sb.WriteString("}")

	return sb.String()
}

func (f *Func[A, R]) walk(yield func(func(A) R) bool) bool {
	if f == nil {
		return true
	}

	for _, t := range f.targets {
		if t.nested != nil {
			if !t.nested.walk(yield) {
				return false
			}

			continue
		}

		if !yield(t.fn) {
			return false
		}
	}

	return true
}

func (f *Func[A, R]) clone(extra int) *Func[A, R] {
	if f == nil {
		return &Func[A, R]{targets: make([]target[A, R], 0, extra)}
	}

	return &Func[A, R]{targets: slices.Grow(slices.Clone(f.targets), extra)}
}

package multicast

import (
	"fmt"

	"github.com/amp-labs/amp-extensions/assert"
	"github.com/amp-labs/amp-extensions/errors"
	"github.com/amp-labs/amp-extensions/logger"
	"github.com/amp-labs/amp-extensions/tuple"
)

// InvokeAll calls every target of f with arg, flattening nested values, and
// converts each result to T.
//
// All targets run before any conversion happens. If one or more results cannot
// be converted, InvokeAll returns no results and an error wrapping
// errors.ErrWrongType that reports every failing position. A nil result converts
// to the zero value when T is a pointer, interface, slice, map, channel or func.
// A nil f is rejected with errors.ErrInvalidArgument.
//
// Example:
//
//	handlers := multicast.New(
//	    func(e Event) any { return audit(e) },
//	    func(e Event) any { return notify(e) },
//	)
//
//	statuses, err := multicast.InvokeAll[Status](handlers, evt)
func InvokeAll[T, A, R any](f *Func[A, R], arg A) ([]T, error) {
	if err := assert.Argument("f", f); err != nil {
		return nil, err
	}

	results := f.Invoke(arg)
	converted := make([]T, 0, len(results))

	var errs errors.Collection

	for i, result := range results {
		value, err := assert.Type[T](result)
		if err != nil {
			errs.Add(logger.AnnotateError(fmt.Errorf("result %d: %w", i, err), "index", i))

			continue
		}

		converted = append(converted, value)
	}

	if errs.HasError() {
		return nil, logger.AnnotateError(errs.GetError(), "targets", len(results), "failed", errs.Len())
	}

	return converted, nil
}

// Lift2 adapts a two-argument function to the single tuple argument a Func expects.
// A nil fn lifts to nil, which New and Append skip.
func Lift2[A1, A2, R any](fn func(A1, A2) R) func(tuple.Tuple2[A1, A2]) R {
	if fn == nil {
		return nil
	}

	return func(args tuple.Tuple2[A1, A2]) R {
		return fn(args.Values())
	}
}

// InvokeAll2 is InvokeAll for Funcs built from Lift2-adapted functions.
func InvokeAll2[T, A1, A2, R any](f *Func[tuple.Tuple2[A1, A2], R], a1 A1, a2 A2) ([]T, error) {
	return InvokeAll[T](f, tuple.NewTuple2(a1, a2))
}

// Lift3 adapts a three-argument function to the single tuple argument a Func expects.
// A nil fn lifts to nil, which New and Append skip.
func Lift3[A1, A2, A3, R any](fn func(A1, A2, A3) R) func(tuple.Tuple3[A1, A2, A3]) R {
	if fn == nil {
		return nil
	}

	return func(args tuple.Tuple3[A1, A2, A3]) R {
		return fn(args.Values())
	}
}

// InvokeAll3 is InvokeAll for Funcs built from Lift3-adapted functions.
func InvokeAll3[T, A1, A2, A3, R any](f *Func[tuple.Tuple3[A1, A2, A3], R], a1 A1, a2 A2, a3 A3) ([]T, error) {
	return InvokeAll[T](f, tuple.NewTuple3(a1, a2, a3))
}

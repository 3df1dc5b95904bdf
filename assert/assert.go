// Package assert provides checked type assertions and argument validation.
// Failures are reported as errors wrapping the sentinels in the errors package,
// annotated with slog attributes describing what went wrong.
package assert

import (
	"fmt"
	"reflect"

	"github.com/amp-labs/amp-extensions/errors"
	"github.com/amp-labs/amp-extensions/logger"
	"github.com/amp-labs/amp-extensions/utils"
)

// Type asserts that the given value is of the expected type T.
// If the assertion fails, it returns an error wrapping errors.ErrWrongType.
//
// A nil value converts to the zero value of T when T can hold nil
// (pointers, interfaces, slices, maps, channels and functions).
//
//nolint:ireturn
func Type[T any](val any) (T, error) {
	of, ok := val.(T)
	if ok {
		return of, nil
	}

	if val == nil && nilable(reflect.TypeFor[T]()) {
		return of, nil
	}

	return of, logger.AnnotateError(
		fmt.Errorf("%w: expected type %s, but received %T", errors.ErrWrongType, reflect.TypeFor[T](), val),
		"expected_type", reflect.TypeFor[T]().String(),
		"actual_type", fmt.Sprintf("%T", val))
}

// Argument returns an error wrapping errors.ErrInvalidArgument when val is nil,
// or a typed nil (a nil func, pointer, map, slice, channel or interface).
func Argument(name string, val any) error {
	if !utils.IsNilish(val) {
		return nil
	}

	return logger.AnnotateError(
		fmt.Errorf("%w: %s must not be nil", errors.ErrInvalidArgument, name),
		"argument", name)
}

// Arguments checks name/value pairs in order and returns the first failure.
// It panics if pairs is not made of (string, any) pairs, since that is a
// programming error at the call site.
func Arguments(pairs ...any) error {
	if len(pairs)%2 != 0 {
		panic("assert.Arguments: odd number of arguments")
	}

	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("assert.Arguments: argument %d is %T, not a name", i, pairs[i]))
		}

		if err := Argument(name, pairs[i+1]); err != nil {
			return err
		}
	}

	return nil
}

func nilable(t reflect.Type) bool {
	switch t.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return true
	}

	return false
}

// Package utils holds reflection helpers for working with function values.
package utils //nolint:revive // utils is an appropriate package name for utility functions

import (
	"reflect"
	"runtime"
)

// IsNilish returns true if the value is a literal nil
// or if it points to something with a nil value.
// A nil func stored in an interface is nilish, which is how
// callers detect missing selectors passed as any.
func IsNilish(val any) bool {
	if val == nil {
		return true
	}

	valOf := reflect.ValueOf(val)

	switch valOf.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return valOf.IsNil()
	}

	return false
}

// GetFunctionName returns the name of the function passed as an argument.
// If the argument is nil, it returns "<nil>". If the argument is not a function,
// it will return "<not a function>".
func GetFunctionName(f any) string {
	if IsNilish(f) {
		return "<nil>"
	}

	valOf := reflect.ValueOf(f)
	if valOf.Kind() != reflect.Func {
		return "<not a function>"
	}

	funcPtr := runtime.FuncForPC(valOf.Pointer())
	if funcPtr == nil {
		return "<not a function>"
	}

	return funcPtr.Name()
}

// SameFunction reports whether a and b are both non-nil functions with
// the same code pointer. Go functions are not comparable with ==, so this is
// the closest available notion of identity. Closures created from the same
// literal share a code pointer and therefore compare as the same function.
func SameFunction(a, b any) bool {
	if IsNilish(a) || IsNilish(b) {
		return false
	}

	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)

	if va.Kind() != reflect.Func || vb.Kind() != reflect.Func {
		return false
	}

	return va.Type() == vb.Type() && va.Pointer() == vb.Pointer()
}

package utils //nolint:revive // utils is an appropriate package name for utility functions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func double(x int) int { return x * 2 }

func triple(x int) int { return x * 3 }

func TestIsNilish(t *testing.T) {
	t.Parallel()

	var (
		nilFunc  func(int) int
		nilPtr   *int
		nilSlice []int
		nilMap   map[string]int
		nilChan  chan int
	)

	value := 42

	tests := []struct {
		name     string
		input    any
		expected bool
	}{
		{name: "literal nil", input: nil, expected: true},
		{name: "nil func", input: nilFunc, expected: true},
		{name: "nil pointer", input: nilPtr, expected: true},
		{name: "nil slice", input: nilSlice, expected: true},
		{name: "nil map", input: nilMap, expected: true},
		{name: "nil chan", input: nilChan, expected: true},
		{name: "non-nil func", input: double, expected: false},
		{name: "non-nil pointer", input: &value, expected: false},
		{name: "empty slice", input: []int{}, expected: false},
		{name: "int", input: 0, expected: false},
		{name: "empty string", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsNilish(tt.input))
		})
	}
}

func TestGetFunctionName(t *testing.T) {
	t.Parallel()

	t.Run("returns function name for named function", func(t *testing.T) {
		t.Parallel()

		name := GetFunctionName(double)
		assert.True(t, strings.HasSuffix(name, ".double"), name)
	})

	t.Run("returns <nil> for nil function", func(t *testing.T) {
		t.Parallel()

		var f func()

		assert.Equal(t, "<nil>", GetFunctionName(f))
		assert.Equal(t, "<nil>", GetFunctionName(nil))
	})

	t.Run("returns function name for anonymous function", func(t *testing.T) {
		t.Parallel()

		fn := func() {}
		assert.Contains(t, GetFunctionName(fn), "func")
	})

	t.Run("returns <not a function> for non-function", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "<not a function>", GetFunctionName("not a function"))
	})
}

func TestSameFunction(t *testing.T) {
	t.Parallel()

	var nilFunc func(int) int

	assert.True(t, SameFunction(double, double))
	assert.False(t, SameFunction(double, triple))
	assert.False(t, SameFunction(double, nilFunc))
	assert.False(t, SameFunction(nilFunc, nilFunc))
	assert.False(t, SameFunction("double", "double"))
}

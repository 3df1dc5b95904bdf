package sortable

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimitives(t *testing.T) {
	t.Parallel()

	t.Run("Int", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Int(3).LessThan(5))
		assert.False(t, Int(5).LessThan(3))
		assert.True(t, Int(-1).Equals(-1))
		assert.Equal(t, -1, Int(1).Compare(2))
		assert.Equal(t, 0, Int(2).Compare(2))
		assert.Equal(t, 1, Int(3).Compare(2))
	})

	t.Run("Byte", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Byte('a').LessThan('b'))
		assert.True(t, Byte('z').Equals('z'))
		assert.Equal(t, 1, Byte(255).Compare(0))
	})

	t.Run("String", func(t *testing.T) {
		t.Parallel()

		assert.True(t, String("apple").LessThan("banana"))
		assert.False(t, String("b").Equals("B"))
		assert.Equal(t, -1, String("").Compare("a"))
	})
}

func TestCompare(t *testing.T) {
	t.Parallel()

	values := []String{"pear", "apple", "fig", "apple"}

	slices.SortFunc(values, Compare[String])

	assert.Equal(t, []String{"apple", "apple", "fig", "pear"}, values)
	assert.Equal(t, 0, Compare(Int(4), Int(4)))
	assert.Equal(t, -1, Compare(Int(3), Int(4)))
	assert.Equal(t, 1, Compare(Int(5), Int(4)))
}

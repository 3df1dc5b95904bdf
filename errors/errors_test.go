package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinels(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("%w: selectorA is nil", ErrInvalidArgument)

	require.ErrorIs(t, wrapped, ErrInvalidArgument)
	assert.NotErrorIs(t, wrapped, ErrWrongType)
	assert.Equal(t, "invalid argument: selectorA is nil", wrapped.Error())
}

func TestCollection(t *testing.T) {
	t.Parallel()

	t.Run("empty collection has no error", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Zero(t, c.Len())
		assert.NoError(t, c.GetError())
	})

	t.Run("single error is returned as is", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		err := fmt.Errorf("%w: index 0", ErrWrongType)

		c.Add(err)

		assert.True(t, c.HasError())
		assert.Equal(t, 1, c.Len())
		assert.Same(t, err, c.GetError()) //nolint:testifylint
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		c.Add(fmt.Errorf("%w: index 1", ErrWrongType))
		c.Add(nil)
		c.Add(fmt.Errorf("%w: index 3", ErrWrongType))

		require.Equal(t, 2, c.Len())

		err := c.GetError()
		require.Error(t, err)
		require.ErrorIs(t, err, ErrWrongType)
		assert.Contains(t, err.Error(), "index 1")
		assert.Contains(t, err.Error(), "index 3")

		var joined interface{ Unwrap() []error }

		require.ErrorAs(t, err, &joined)
		assert.Len(t, joined.Unwrap(), 2)
	})
}

package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	t.Parallel()

	t.Run("zero value", func(t *testing.T) {
		t.Parallel()

		var s Set[int64]
		assert.False(t, s.Contains(1))
		assert.Equal(t, 0, s.Len())
		s.Add(1)
		assert.True(t, s.Contains(1))
	})

	t.Run("add and remove", func(t *testing.T) {
		t.Parallel()

		s := New[int64]()
		s.Add(1, 2, 3, 3)
		assert.Equal(t, 3, s.Len())
		s.Remove(2, 4)
		assert.Equal(t, 2, s.Len())
		assert.True(t, s.Contains(1))
		assert.False(t, s.Contains(2))
		assert.ElementsMatch(t, []int64{1, 3}, s.Slice())
	})

	t.Run("clone is independent", func(t *testing.T) {
		t.Parallel()

		s := From[int64](42, 43)
		c := s.Clone()
		c.Add(99)
		assert.False(t, s.Contains(99))
		assert.True(t, c.Contains(42))
	})
}

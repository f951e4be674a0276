package erroroption

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert(t *testing.T) {
	t.Parallel()

	for _, start := range []ErrorOption[int, string]{Value[int, string](1), Empty[int, string](), Error[int]("e")} {
		o := start
		p := o.Insert(5)
		require.True(t, o.IsValue())
		assert.Equal(t, 5, *p)

		*p = 6
		assert.Equal(t, 6, o.Unwrap())
		assert.True(t, o.Err().IsNone())
	}
}

func TestGetOrInsert(t *testing.T) {
	t.Parallel()

	o := Value[int, string](1)
	assert.Equal(t, 1, *o.GetOrInsert(5))

	o = Error[int]("e")
	assert.Equal(t, 5, *o.GetOrInsert(5))
	assert.True(t, o.IsValue())

	calls := 0
	o = Empty[int, string]()
	*o.GetOrInsertWith(func() int { calls++; return 7 }) += 1
	assert.Equal(t, 8, o.Unwrap())
	o.GetOrInsertWith(func() int { calls++; return 0 })
	assert.Equal(t, 1, calls)

	o = Error[int]("e")
	assert.Zero(t, *o.GetOrInsertDefault())
	assert.Equal(t, Value[int, string](0), o)
}

func TestTake(t *testing.T) {
	t.Parallel()

	o := Error[int]("e")
	assert.Equal(t, Error[int]("e"), o.Take())
	assert.True(t, o.IsEmpty())
	assert.True(t, o.Take().IsEmpty())
}

func TestReplace(t *testing.T) {
	t.Parallel()

	o := Empty[int, string]()
	assert.Equal(t, Empty[int, string](), o.Replace(1))
	assert.Equal(t, Value[int, string](1), o.Replace(2))
	assert.Equal(t, 2, o.Unwrap())
}

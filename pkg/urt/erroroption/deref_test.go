package erroroption

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/urt/pkg/urt"
)

func TestAsDeref(t *testing.T) {
	t.Parallel()

	o := Value[urt.Box[int], string](urt.NewBox(3))
	view := AsDeref[int](&o)
	require.True(t, view.IsValue())
	assert.Equal(t, 3, *view.Unwrap())

	*AsDerefMut[int](&o).Unwrap() = 4
	assert.Equal(t, 4, *o.Unwrap().Deref())

	e := Error[urt.Box[int]]("e")
	assert.Equal(t, "e", *AsDeref[int](&e).UnwrapError())

	empty := Empty[urt.Box[int], string]()
	assert.True(t, AsDeref[int](&empty).IsEmpty())
}

func TestCopied(t *testing.T) {
	t.Parallel()

	n := 3
	assert.Equal(t, Value[int, string](3), Copied(Value[*int, string](&n)))
	assert.Equal(t, Error[int]("e"), Copied(Error[*int]("e")))
	assert.Equal(t, Empty[int, string](), Copied(Empty[*int, string]()))
	assert.Panics(t, func() { Copied(Value[*int, string](nil)) })
}

func TestCloned(t *testing.T) {
	t.Parallel()

	src := []int{1, 2}
	got := Cloned(Value[*[]int, string](&src), urt.SliceDuplicator[[]int]())
	got.Unwrap()[0] = 9
	assert.Equal(t, []int{1, 2}, src)
}

func TestFromConversions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Value[int, string](1), FromOption[int, string](urt.Some(1)))
	assert.Equal(t, Empty[int, string](), FromOption[int, string](urt.None[int]()))

	assert.Equal(t, Value[int, string](1), FromResult(urt.Success[int, string](1)))
	assert.Equal(t, Error[int]("e"), FromResult(urt.Fail[int]("e")))
}

type lookupError struct{}

func (*lookupError) Error() string { return "lookup" }

func TestFromTuple(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Value[int, error](1), FromTuple(1, nil))

	errBoom := assert.AnError
	assert.Equal(t, Error[int](errBoom), FromTuple(0, errBoom))

	var typedNil *lookupError
	assert.True(t, FromTuple(2, error(typedNil)).IsValue())

	n := 5
	assert.Equal(t, Value[int, error](5), FromPtrTuple(&n, nil))
	assert.Equal(t, Empty[int, error](), FromPtrTuple[int](nil, nil))
	assert.Equal(t, Error[int](errBoom), FromPtrTuple(&n, errBoom))
}

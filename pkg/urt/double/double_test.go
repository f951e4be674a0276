package double

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/urt/pkg/urt"
)

type celsius float64

func (c celsius) Into() string { return "celsius" }

type label string

func (l label) Into() string { return string(l) }

func TestPredicates(t *testing.T) {
	t.Parallel()

	first := First[int, string](42)
	second := Second[int]("x")

	assert.True(t, first.IsFirst())
	assert.False(t, first.IsSecond())
	assert.Equal(t, VariantFirst, first.Variant())

	assert.True(t, second.IsSecond())
	assert.False(t, second.IsFirst())
	assert.Equal(t, VariantSecond, second.Variant())

	var zero Double[int, string]
	assert.True(t, zero.IsFirst(), "zero value is First")
}

func TestIsFirstAnd_SkipsPredicateOnOtherVariant(t *testing.T) {
	t.Parallel()

	called := false
	pred := func(int) bool {
		called = true
		return true
	}

	assert.False(t, Second[int]("x").IsFirstAnd(pred))
	assert.False(t, called)

	assert.True(t, First[int, string](2).IsFirstAnd(func(v int) bool { return v%2 == 0 }))
	assert.False(t, First[int, string](3).IsFirstAnd(func(v int) bool { return v%2 == 0 }))

	assert.True(t, Second[int]("abc").IsSecondAnd(func(s string) bool { return len(s) == 3 }))
	assert.False(t, First[int, string](1).IsSecondAnd(func(string) bool {
		t.Fatalf("predicate must not run for First")
		return true
	}))
}

func TestFirstSecond_ToOption(t *testing.T) {
	t.Parallel()

	assert.Equal(t, urt.Some(42), First[int, string](42).First())
	assert.Equal(t, urt.None[string](), First[int, string](42).Second())
	assert.Equal(t, urt.Some("x"), Second[int]("x").Second())
	assert.Equal(t, urt.None[int](), Second[int]("x").First())
}

func TestAsResult(t *testing.T) {
	t.Parallel()

	assert.Equal(t, urt.Success[int, string](1), First[int, string](1).FirstAsResult())
	assert.Equal(t, urt.Fail[int]("x"), Second[int]("x").FirstAsResult())
	assert.Equal(t, urt.Success[string, int]("x"), Second[int]("x").SecondAsResult())
	assert.Equal(t, urt.Fail[string](1), First[int, string](1).SecondAsResult())

	// a success taken out and rebuilt through FromResult gives the original back
	orig := First[int, string](7)
	assert.Equal(t, orig, FromResult(orig.FirstAsResult()))
	other := Second[int]("e")
	assert.Equal(t, other, FromResult(other.FirstAsResult()))
}

func TestFirstOr_SecondOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, urt.Success[int, error](1), FirstOr(First[int, string](1), error(nil)))
	assert.Equal(t, urt.Fail[int]("missing"), FirstOr(Second[int]("x"), "missing"))
	assert.Equal(t, urt.Success[string, int]("x"), SecondOr(Second[int]("x"), 0))
	assert.Equal(t, urt.Fail[string](-1), SecondOr(First[int, string](1), -1))
}

func TestOrElse_IsLazy(t *testing.T) {
	t.Parallel()

	calls := 0
	produce := func() string {
		calls++
		return "produced"
	}

	assert.Equal(t, urt.Success[int, string](5), FirstOrElse(First[int, string](5), produce))
	assert.Equal(t, urt.Success[string, string]("x"), SecondOrElse(Second[int]("x"), produce))
	assert.Equal(t, 0, calls)

	assert.Equal(t, urt.Fail[int]("produced"), FirstOrElse(Second[int]("x"), produce))
	assert.Equal(t, urt.Fail[string]("produced"), SecondOrElse(First[int, string](1), produce))
	assert.Equal(t, 2, calls)
}

func TestFlip_IsItsOwnInverse(t *testing.T) {
	t.Parallel()

	values := []Double[int, string]{
		First[int, string](0),
		First[int, string](-5),
		Second[int](""),
		Second[int]("hello"),
	}

	for _, v := range values {
		assert.Equal(t, v, v.Flip().Flip())
		assert.Equal(t, v.Flip(), v.Switch())
	}

	assert.Equal(t, Second[string](42), First[int, string](42).Flip())
	assert.Equal(t, First[string, int]("x"), Second[int]("x").Flip())
}

func TestAsMut_WritesThroughPayload(t *testing.T) {
	t.Parallel()

	d := First[int, string](1)
	*AsMut(&d).UnwrapFirst() = 10
	assert.Equal(t, First[int, string](10), d)

	s := Second[int]("a")
	ref := AsRef(&s)
	require.True(t, ref.IsSecond())
	assert.Equal(t, "a", *ref.UnwrapSecond())

	*AsMut(&s).UnwrapSecond() += "b"
	assert.Equal(t, "ab", s.UnwrapSecond())
}

func TestUnwrap_Panics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "called `Double.UnwrapFirst()` on a `Second` value", func() {
		Second[int]("x").UnwrapFirst()
	})
	assert.PanicsWithValue(t, "called `Double.UnwrapSecond()` on a `First` value", func() {
		First[int, string](1).UnwrapSecond()
	})
	assert.PanicsWithValue(t, "need first", func() {
		Second[int]("x").ExpectFirst("need first")
	})
	assert.PanicsWithValue(t, "need second", func() {
		First[int, string](1).ExpectSecond("need second")
	})

	assert.Equal(t, 1, First[int, string](1).UnwrapFirst())
	assert.Equal(t, "x", Second[int]("x").UnwrapSecond())
	assert.Equal(t, 1, First[int, string](1).ExpectFirst("unused"))
	assert.Equal(t, "x", Second[int]("x").ExpectSecond("unused"))
}

func TestUnwrapOr_Family(t *testing.T) {
	t.Parallel()

	for _, def := range []int{-1, 0, 99} {
		assert.Equal(t, def, Second[int]("x").UnwrapFirstOr(def))
		assert.Equal(t, 7, First[int, string](7).UnwrapFirstOr(def))
	}
	assert.Equal(t, "d", First[int, string](1).UnwrapSecondOr("d"))
	assert.Equal(t, "x", Second[int]("x").UnwrapSecondOr("d"))

	assert.Equal(t, 5, Second[int]("x").UnwrapFirstOrElse(func() int { return 5 }))
	assert.Equal(t, "e", First[int, string](1).UnwrapSecondOrElse(func() string { return "e" }))

	assert.Equal(t, 0, Second[int]("x").UnwrapFirstOrDefault())
	assert.Equal(t, "", First[int, string](3).UnwrapSecondOrDefault())
	assert.Equal(t, 3, First[int, string](3).UnwrapFirstOrDefault())
}

func TestUnwrapWith_ConvertsOtherSide(t *testing.T) {
	t.Parallel()

	strlen := func(s string) int { return len(s) }
	assert.Equal(t, 5, Second[int]("hello").UnwrapFirstWith(strlen))
	assert.Equal(t, 2, First[int, string](2).UnwrapFirstWith(strlen))

	repeat := func(n int) string { return strings.Repeat("a", n) }
	assert.Equal(t, "aaa", First[int, string](3).UnwrapSecondWith(repeat))
	assert.Equal(t, "z", Second[int]("z").UnwrapSecondWith(repeat))
}

func TestUnwrapTo_UnwrapInto(t *testing.T) {
	t.Parallel()

	toLen := func(d Double[int, string]) int {
		return UnwrapTo(d, func(n int) int { return n }, func(s string) int { return len(s) })
	}
	assert.Equal(t, 4, toLen(First[int, string](4)))
	assert.Equal(t, 3, toLen(Second[int]("abc")))

	assert.Equal(t, "celsius", UnwrapInto[string](First[celsius, label](21.5)))
	assert.Equal(t, "warm", UnwrapInto[string](Second[celsius](label("warm"))))
}

func TestUnwrapUnion(t *testing.T) {
	t.Parallel()

	join := func(n int, s string) string { return strings.Repeat(s, n) }

	a := First[int, string](2)
	b := Second[int]("ab")
	assert.Equal(t, "abab", UnwrapUnion(a, b, join))
	assert.Equal(t, "abab", UnwrapUnion(b, a, join), "payloads are passed First then Second")

	assert.PanicsWithValue(t, "called `UnwrapUnion()` on `First` and `First` variants", func() {
		UnwrapUnion(a, First[int, string](3), join)
	})
	assert.PanicsWithValue(t, "called `UnwrapUnion()` on `Second` and `Second` variants", func() {
		UnwrapUnion(b, Second[int]("x"), join)
	})
}

func TestMap_Family(t *testing.T) {
	t.Parallel()

	twice := func(n int) int { return n * 2 }
	upper := strings.ToUpper

	assert.Equal(t, First[int, string](4), MapFirst(First[int, string](2), twice))
	assert.Equal(t, Second[int]("x"), MapFirst(Second[int]("x"), twice))
	assert.Equal(t, Second[int]("X"), MapSecond(Second[int]("x"), upper))
	assert.Equal(t, First[int, string](2), MapSecond(First[int, string](2), upper))

	assert.Equal(t, First[int, string](6), Map(First[int, string](3), twice, upper))
	assert.Equal(t, Second[int]("AB"), Map(Second[int]("ab"), twice, upper))
}

func TestClone_DeepCopiesPayload(t *testing.T) {
	t.Parallel()

	dup := urt.SliceDuplicator[[]int]()
	src := First[[]int, string]([]int{1, 2, 3})
	cp := src.Clone(dup, urt.Shallow[string]())

	src.UnwrapFirst()[0] = 100 // shares the source's backing array
	assert.Equal(t, []int{1, 2, 3}, cp.UnwrapFirst())

	s := Second[[]int]("keep")
	assert.Equal(t, s, s.Clone(dup, urt.Shallow[string]()))
}

func TestCloneFrom_ReusesPayloadOnSameVariant(t *testing.T) {
	t.Parallel()

	dup := urt.SliceDuplicator[[]int]()
	buf := make([]int, 1, 8)
	dst := First[[]int, string](buf)
	before := &dst.UnwrapFirst()[0]

	dst.CloneFrom(First[[]int, string]([]int{4, 5}), dup, urt.Shallow[string]())

	got := *AsRef(&dst).UnwrapFirst()
	assert.Equal(t, []int{4, 5}, got)
	assert.Equal(t, 8, cap(got))
	assert.Same(t, before, &got[0], "same-variant CloneFrom must update in place")
}

func TestCloneFrom_ReplacesOnVariantMismatch(t *testing.T) {
	t.Parallel()

	dup := urt.SliceDuplicator[[]int]()
	src := First[[]int, string]([]int{1})
	dst := Second[[]int]("old")

	dst.CloneFrom(src, dup, urt.Shallow[string]())
	require.True(t, dst.IsFirst())

	src.UnwrapFirst()[0] = 9
	assert.Equal(t, []int{1}, dst.UnwrapFirst())

	dst.CloneFrom(Second[[]int]("new"), dup, urt.Shallow[string]())
	assert.Equal(t, Second[[]int]("new"), dst)
}

func TestEqualCompare(t *testing.T) {
	t.Parallel()

	assert.True(t, Equal(First[int, string](1), First[int, string](1)))
	assert.False(t, Equal(First[int, string](1), First[int, string](2)))
	assert.False(t, Equal(First[int, int](1), Second[int](1)))

	assert.Equal(t, -1, Compare(First[int, string](100), Second[int]("a")))
	assert.Equal(t, 1, Compare(Second[int]("a"), First[int, string](100)))
	assert.Equal(t, -1, Compare(First[int, string](1), First[int, string](2)))
	assert.Equal(t, 0, Compare(Second[int]("b"), Second[int]("b")))

	seen := map[Double[int, string]]int{}
	seen[First[int, string](1)]++
	seen[First[int, string](1)]++
	seen[Second[int]("1")]++
	assert.Len(t, seen, 2)
	assert.Equal(t, 2, seen[First[int, string](1)])
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "First(42)", First[int, string](42).String())
	assert.Equal(t, "Second(x)", Second[int]("x").String())
	assert.Equal(t, "Second", VariantSecond.String())
}

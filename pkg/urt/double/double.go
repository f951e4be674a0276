package double

import (
	"fmt"

	"github.com/ib-77/urt/pkg/urt"
)

type Variant uint8

const (
	VariantFirst Variant = iota
	VariantSecond
)

func (v Variant) String() string {
	switch v {
	case VariantFirst:
		return "First"
	case VariantSecond:
		return "Second"
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// Double holds exactly one of a T (First) or a U (Second). T and U may be the
// same type. The zero value is First holding the zero T.
//
// A Double is comparable, and usable as a map key, whenever T and U are.
type Double[T, U any] struct {
	variant Variant
	first   T
	second  U
}

func First[T, U any](v T) Double[T, U] {
	return Double[T, U]{variant: VariantFirst, first: v}
}

func Second[T, U any](v U) Double[T, U] {
	return Double[T, U]{variant: VariantSecond, second: v}
}

func (d Double[T, U]) Variant() Variant {
	return d.variant
}

/////////////////////////////////////////////////////////////////////////
// Querying the contained values
/////////////////////////////////////////////////////////////////////////

func (d Double[T, U]) IsFirst() bool {
	return d.variant == VariantFirst
}

func (d Double[T, U]) IsSecond() bool {
	return d.variant == VariantSecond
}

// IsFirstAnd reports whether d is First and its payload satisfies f.
// f is not called for a Second.
func (d Double[T, U]) IsFirstAnd(f func(T) bool) bool {
	return d.variant == VariantFirst && f(d.first)
}

// IsSecondAnd reports whether d is Second and its payload satisfies f.
// f is not called for a First.
func (d Double[T, U]) IsSecondAnd(f func(U) bool) bool {
	return d.variant == VariantSecond && f(d.second)
}

/////////////////////////////////////////////////////////////////////////
// Adapters for each variant
/////////////////////////////////////////////////////////////////////////

func (d Double[T, U]) First() urt.Option[T] {
	if d.variant == VariantFirst {
		return urt.Some(d.first)
	}
	return urt.None[T]()
}

func (d Double[T, U]) Second() urt.Option[U] {
	if d.variant == VariantSecond {
		return urt.Some(d.second)
	}
	return urt.None[U]()
}

// FirstAsResult treats First as success and Second as failure.
func (d Double[T, U]) FirstAsResult() urt.Result[T, U] {
	if d.variant == VariantFirst {
		return urt.Success[T, U](d.first)
	}
	return urt.Fail[T](d.second)
}

// SecondAsResult treats Second as success and First as failure.
func (d Double[T, U]) SecondAsResult() urt.Result[U, T] {
	if d.variant == VariantSecond {
		return urt.Success[U, T](d.second)
	}
	return urt.Fail[U](d.first)
}

// Flip swaps the sides: First(v) becomes Second(v) and the other way round.
func (d Double[T, U]) Flip() Double[U, T] {
	if d.variant == VariantFirst {
		return Second[U](d.first)
	}
	return First[U, T](d.second)
}

// Switch is Flip.
func (d Double[T, U]) Switch() Double[U, T] {
	return d.Flip()
}

/////////////////////////////////////////////////////////////////////////
// Adapters for working with references
/////////////////////////////////////////////////////////////////////////

// AsRef returns a Double pointing at the payload held by d. The view is meant
// for reading; use AsMut to write through it. It is a function rather than a
// method because a method cannot instantiate Double[*T, *U].
func AsRef[T, U any](d *Double[T, U]) Double[*T, *U] {
	return AsMut(d)
}

// AsMut returns a Double pointing at the payload held by d. Writes through
// the pointer change d's payload, never its variant.
func AsMut[T, U any](d *Double[T, U]) Double[*T, *U] {
	if d.variant == VariantFirst {
		return First[*T, *U](&d.first)
	}
	return Second[*T](&d.second)
}

/////////////////////////////////////////////////////////////////////////
// Getting to contained values
/////////////////////////////////////////////////////////////////////////

func (d Double[T, U]) ExpectFirst(msg string) T {
	if d.variant != VariantFirst {
		panic(msg)
	}
	return d.first
}

func (d Double[T, U]) ExpectSecond(msg string) U {
	if d.variant != VariantSecond {
		panic(msg)
	}
	return d.second
}

// UnwrapFirst returns the First payload and panics on a Second.
func (d Double[T, U]) UnwrapFirst() T {
	if d.variant != VariantFirst {
		panic("called `Double.UnwrapFirst()` on a `Second` value")
	}
	return d.first
}

// UnwrapSecond returns the Second payload and panics on a First.
func (d Double[T, U]) UnwrapSecond() U {
	if d.variant != VariantSecond {
		panic("called `Double.UnwrapSecond()` on a `First` value")
	}
	return d.second
}

func (d Double[T, U]) UnwrapFirstOr(fallback T) T {
	if d.variant == VariantFirst {
		return d.first
	}
	return fallback
}

func (d Double[T, U]) UnwrapSecondOr(fallback U) U {
	if d.variant == VariantSecond {
		return d.second
	}
	return fallback
}

func (d Double[T, U]) UnwrapFirstOrElse(fallback func() T) T {
	if d.variant == VariantFirst {
		return d.first
	}
	return fallback()
}

func (d Double[T, U]) UnwrapSecondOrElse(fallback func() U) U {
	if d.variant == VariantSecond {
		return d.second
	}
	return fallback()
}

// UnwrapFirstWith returns the First payload or converts the Second payload with f.
func (d Double[T, U]) UnwrapFirstWith(f func(U) T) T {
	if d.variant == VariantFirst {
		return d.first
	}
	return f(d.second)
}

// UnwrapSecondWith returns the Second payload or converts the First payload with f.
func (d Double[T, U]) UnwrapSecondWith(f func(T) U) U {
	if d.variant == VariantSecond {
		return d.second
	}
	return f(d.first)
}

func (d Double[T, U]) UnwrapFirstOrDefault() T {
	var zero T
	return d.UnwrapFirstOr(zero)
}

func (d Double[T, U]) UnwrapSecondOrDefault() U {
	var zero U
	return d.UnwrapSecondOr(zero)
}

/////////////////////////////////////////////////////////////////////////
// Structural support
/////////////////////////////////////////////////////////////////////////

func (d Double[T, U]) String() string {
	if d.variant == VariantFirst {
		return fmt.Sprintf("First(%v)", d.first)
	}
	return fmt.Sprintf("Second(%v)", d.second)
}

// Clone duplicates whichever payload d holds.
func (d Double[T, U]) Clone(dt urt.Duplicator[T], du urt.Duplicator[U]) Double[T, U] {
	if d.variant == VariantFirst {
		return First[T, U](dt.Dup(d.first))
	}
	return Second[T](du.Dup(d.second))
}

// CloneFrom overwrites d with a duplicate of src. When both hold the same
// variant the existing payload is updated in place through the Duplicator's
// CloneInto; otherwise d is replaced by src.Clone.
func (d *Double[T, U]) CloneFrom(src Double[T, U], dt urt.Duplicator[T], du urt.Duplicator[U]) {
	switch {
	case d.variant == VariantFirst && src.variant == VariantFirst:
		dt.DupInto(&d.first, src.first)
	case d.variant == VariantSecond && src.variant == VariantSecond:
		du.DupInto(&d.second, src.second)
	default:
		*d = src.Clone(dt, du)
	}
}

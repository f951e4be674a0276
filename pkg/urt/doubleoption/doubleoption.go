package doubleoption

import (
	"fmt"

	"github.com/ib-77/urt/pkg/urt"
)

type Variant uint8

const (
	VariantEmpty Variant = iota
	VariantFirst
	VariantSecond
)

func (v Variant) String() string {
	switch v {
	case VariantEmpty:
		return "Empty"
	case VariantFirst:
		return "First"
	case VariantSecond:
		return "Second"
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// rank is the declaration order used by Compare: First, Second, Empty.
func (v Variant) rank() int {
	switch v {
	case VariantFirst:
		return 0
	case VariantSecond:
		return 1
	}
	return 2
}

// DoubleOption is First(T), Second(U) or Empty. The zero value is Empty.
type DoubleOption[T, U any] struct {
	variant Variant
	first   T
	second  U
}

func First[T, U any](v T) DoubleOption[T, U] {
	return DoubleOption[T, U]{variant: VariantFirst, first: v}
}

func Second[T, U any](v U) DoubleOption[T, U] {
	return DoubleOption[T, U]{variant: VariantSecond, second: v}
}

func Empty[T, U any]() DoubleOption[T, U] {
	return DoubleOption[T, U]{}
}

func (o DoubleOption[T, U]) Variant() Variant {
	return o.variant
}

func (o DoubleOption[T, U]) IsFirst() bool {
	return o.variant == VariantFirst
}

func (o DoubleOption[T, U]) IsSecond() bool {
	return o.variant == VariantSecond
}

func (o DoubleOption[T, U]) IsEmpty() bool {
	return o.variant == VariantEmpty
}

// IsFirstAnd reports whether o is First and its payload satisfies f.
func (o DoubleOption[T, U]) IsFirstAnd(f func(T) bool) bool {
	return o.variant == VariantFirst && f(o.first)
}

// IsSecondAnd reports whether o is Second and its payload satisfies f.
func (o DoubleOption[T, U]) IsSecondAnd(f func(U) bool) bool {
	return o.variant == VariantSecond && f(o.second)
}

func (o DoubleOption[T, U]) First() urt.Option[T] {
	if o.variant == VariantFirst {
		return urt.Some(o.first)
	}
	return urt.None[T]()
}

func (o DoubleOption[T, U]) Second() urt.Option[U] {
	if o.variant == VariantSecond {
		return urt.Some(o.second)
	}
	return urt.None[U]()
}

func (o DoubleOption[T, U]) UnwrapFirstOr(fallback T) T {
	if o.variant == VariantFirst {
		return o.first
	}
	return fallback
}

func (o DoubleOption[T, U]) UnwrapSecondOr(fallback U) U {
	if o.variant == VariantSecond {
		return o.second
	}
	return fallback
}

// Flip swaps First and Second; Empty stays Empty.
func (o DoubleOption[T, U]) Flip() DoubleOption[U, T] {
	switch o.variant {
	case VariantFirst:
		return Second[U](o.first)
	case VariantSecond:
		return First[U, T](o.second)
	}
	return Empty[U, T]()
}

// AsRef returns a DoubleOption pointing at o's payload, for reading.
func AsRef[T, U any](o *DoubleOption[T, U]) DoubleOption[*T, *U] {
	return AsMut(o)
}

// AsMut returns a DoubleOption pointing at o's payload. Empty maps to Empty.
func AsMut[T, U any](o *DoubleOption[T, U]) DoubleOption[*T, *U] {
	switch o.variant {
	case VariantFirst:
		return First[*T, *U](&o.first)
	case VariantSecond:
		return Second[*T](&o.second)
	}
	return Empty[*T, *U]()
}

// Take returns the current value and leaves Empty in its place.
func (o *DoubleOption[T, U]) Take() DoubleOption[T, U] {
	taken := *o
	*o = Empty[T, U]()
	return taken
}

func (o DoubleOption[T, U]) String() string {
	switch o.variant {
	case VariantFirst:
		return fmt.Sprintf("First(%v)", o.first)
	case VariantSecond:
		return fmt.Sprintf("Second(%v)", o.second)
	}
	return "Empty"
}

// Clone duplicates whichever payload o holds. Empty clones to Empty.
func (o DoubleOption[T, U]) Clone(dt urt.Duplicator[T], du urt.Duplicator[U]) DoubleOption[T, U] {
	switch o.variant {
	case VariantFirst:
		return First[T, U](dt.Dup(o.first))
	case VariantSecond:
		return Second[T](du.Dup(o.second))
	}
	return Empty[T, U]()
}

// CloneFrom overwrites o with a duplicate of src, updating the payload in
// place when both hold the same populated variant.
func (o *DoubleOption[T, U]) CloneFrom(src DoubleOption[T, U], dt urt.Duplicator[T], du urt.Duplicator[U]) {
	switch {
	case o.variant == VariantFirst && src.variant == VariantFirst:
		dt.DupInto(&o.first, src.first)
	case o.variant == VariantSecond && src.variant == VariantSecond:
		du.DupInto(&o.second, src.second)
	default:
		*o = src.Clone(dt, du)
	}
}

package erroroption

import "github.com/ib-77/urt/pkg/urt"

// Zip pairs two Values. Any other combination yields Empty, including when
// one side is an Error.
//
// Placeholder: an Error on either side is discarded rather than propagated.
// The same holds for ZipToOption, ZipWith and ZipToOptionWith; whether the
// error should win is still open.
func Zip[T, U, E any](a ErrorOption[T, E], b ErrorOption[U, E]) ErrorOption[urt.Pair[T, U], E] {
	if a.variant == VariantValue && b.variant == VariantValue {
		return Value[urt.Pair[T, U], E](urt.MakePair(a.value, b.value))
	}
	return Empty[urt.Pair[T, U], E]()
}

// ZipToOption is Zip returning an Option.
func ZipToOption[T, U, E any](a ErrorOption[T, E], b ErrorOption[U, E]) urt.Option[urt.Pair[T, U]] {
	if a.variant == VariantValue && b.variant == VariantValue {
		return urt.Some(urt.MakePair(a.value, b.value))
	}
	return urt.None[urt.Pair[T, U]]()
}

// ZipWithOption pairs a Value with a present Option payload.
func ZipWithOption[T, U, E any](a ErrorOption[T, E], b urt.Option[U]) urt.Option[urt.Pair[T, U]] {
	if v, ok := b.Get(); ok && a.variant == VariantValue {
		return urt.Some(urt.MakePair(a.value, v))
	}
	return urt.None[urt.Pair[T, U]]()
}

// ZipWith combines two Values with f; f runs only when both sides are Values.
func ZipWith[T, U, R, E any](a ErrorOption[T, E], b ErrorOption[U, E], f func(T, U) R) ErrorOption[R, E] {
	if a.variant == VariantValue && b.variant == VariantValue {
		return Value[R, E](f(a.value, b.value))
	}
	return Empty[R, E]()
}

func ZipToOptionWith[T, U, R, E any](a ErrorOption[T, E], b ErrorOption[U, E], f func(T, U) R) urt.Option[R] {
	if a.variant == VariantValue && b.variant == VariantValue {
		return urt.Some(f(a.value, b.value))
	}
	return urt.None[R]()
}

// Unzip splits a Value pair into two Values. Empty and Error both yield two
// Empties; the error payload is dropped.
func Unzip[T, U, E any](o ErrorOption[urt.Pair[T, U], E]) (ErrorOption[T, E], ErrorOption[U, E]) {
	if o.variant == VariantValue {
		return Value[T, E](o.value.First), Value[U, E](o.value.Second)
	}
	return Empty[T, E](), Empty[U, E]()
}

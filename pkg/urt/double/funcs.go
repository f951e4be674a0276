package double

import "github.com/ib-77/urt/pkg/urt"

// FromResult maps a success to First and a failure to Second.
func FromResult[T, E any](r urt.Result[T, E]) Double[T, E] {
	if r.IsSuccess() {
		return First[T, E](r.Result())
	}
	return Second[T](r.Err())
}

// FirstOr returns the First payload as a success, or err as the failure.
func FirstOr[T, U, E any](d Double[T, U], err E) urt.Result[T, E] {
	if d.variant == VariantFirst {
		return urt.Success[T, E](d.first)
	}
	return urt.Fail[T](err)
}

// SecondOr returns the Second payload as a success, or err as the failure.
func SecondOr[T, U, E any](d Double[T, U], err E) urt.Result[U, E] {
	if d.variant == VariantSecond {
		return urt.Success[U, E](d.second)
	}
	return urt.Fail[U](err)
}

// FirstOrElse is FirstOr with the failure computed by f, only when needed.
func FirstOrElse[T, U, E any](d Double[T, U], f func() E) urt.Result[T, E] {
	if d.variant == VariantFirst {
		return urt.Success[T, E](d.first)
	}
	return urt.Fail[T](f())
}

// SecondOrElse is SecondOr with the failure computed by f, only when needed.
func SecondOrElse[T, U, E any](d Double[T, U], f func() E) urt.Result[U, E] {
	if d.variant == VariantSecond {
		return urt.Success[U, E](d.second)
	}
	return urt.Fail[U](f())
}

// UnwrapTo collapses d to O with the transform matching the held variant.
func UnwrapTo[T, U, O any](d Double[T, U], f func(T) O, g func(U) O) O {
	if d.variant == VariantFirst {
		return f(d.first)
	}
	return g(d.second)
}

// UnwrapInto collapses d to O through the payloads' own Into conversions.
//
//	s := double.UnwrapInto[string](d)
func UnwrapInto[O any, T urt.Into[O], U urt.Into[O]](d Double[T, U]) O {
	if d.variant == VariantFirst {
		return d.first.Into()
	}
	return d.second.Into()
}

// UnwrapUnion combines two Doubles holding opposite variants with f, always
// passing the First payload first. It panics when both hold the same variant.
func UnwrapUnion[T, U, O any](d, other Double[T, U], f func(T, U) O) O {
	switch {
	case d.variant == VariantFirst && other.variant == VariantSecond:
		return f(d.first, other.second)
	case d.variant == VariantSecond && other.variant == VariantFirst:
		return f(other.first, d.second)
	case d.variant == VariantFirst:
		panic("called `UnwrapUnion()` on `First` and `First` variants")
	default:
		panic("called `UnwrapUnion()` on `Second` and `Second` variants")
	}
}

// MapFirst transforms a First payload and leaves a Second untouched.
func MapFirst[T, U, O any](d Double[T, U], f func(T) O) Double[O, U] {
	if d.variant == VariantFirst {
		return First[O, U](f(d.first))
	}
	return Second[O](d.second)
}

// MapSecond transforms a Second payload and leaves a First untouched.
func MapSecond[T, U, O any](d Double[T, U], f func(U) O) Double[T, O] {
	if d.variant == VariantSecond {
		return Second[T](f(d.second))
	}
	return First[T, O](d.first)
}

// Map transforms whichever payload d holds, f for First and g for Second.
func Map[T, U, O, R any](d Double[T, U], f func(T) O, g func(U) R) Double[O, R] {
	if d.variant == VariantFirst {
		return First[O, R](f(d.first))
	}
	return Second[O](g(d.second))
}

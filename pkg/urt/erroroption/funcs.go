package erroroption

import "github.com/ib-77/urt/pkg/urt"

// ValueOr returns a Value as success. Empty fails with err and an Error
// fails with err as well, dropping its own payload.
func ValueOr[T, E, O any](o ErrorOption[T, E], err O) urt.Result[T, O] {
	if o.variant == VariantValue {
		return urt.Success[T, O](o.value)
	}
	return urt.Fail[T](err)
}

// ValueOrElse is ValueOr with a lazily computed error.
func ValueOrElse[T, E, O any](o ErrorOption[T, E], err func() O) urt.Result[T, O] {
	if o.variant == VariantValue {
		return urt.Success[T, O](o.value)
	}
	return urt.Fail[T](err())
}

// Map applies f to a Value payload. Empty and Error pass through.
func Map[T, M, E any](o ErrorOption[T, E], f func(T) M) ErrorOption[M, E] {
	switch o.variant {
	case VariantValue:
		return Value[M, E](f(o.value))
	case VariantError:
		return Error[M](o.err)
	}
	return Empty[M, E]()
}

// MapOr applies f to a Value payload and returns def for Empty and Error.
func MapOr[T, M, E any](o ErrorOption[T, E], def M, f func(T) M) M {
	if o.variant == VariantValue {
		return f(o.value)
	}
	return def
}

func MapOrElse[T, M, E any](o ErrorOption[T, E], def func() M, f func(T) M) M {
	if o.variant == VariantValue {
		return f(o.value)
	}
	return def()
}

// MapOrError applies f to a Value, onError to an Error payload and onEmpty
// to Empty. Exactly one of them runs.
func MapOrError[T, M, E any](o ErrorOption[T, E], onError func(E) M, onEmpty func() M, f func(T) M) M {
	switch o.variant {
	case VariantValue:
		return f(o.value)
	case VariantError:
		return onError(o.err)
	}
	return onEmpty()
}

// MapError applies f to an Error payload. Value and Empty pass through.
func MapError[T, E, O any](o ErrorOption[T, E], f func(E) O) ErrorOption[T, O] {
	switch o.variant {
	case VariantValue:
		return Value[T, O](o.value)
	case VariantError:
		return Error[T](f(o.err))
	}
	return Empty[T, O]()
}

// And returns next when o is a Value. Empty stays Empty and an Error is
// carried over with its payload.
func And[T, M, E any](o ErrorOption[T, E], next ErrorOption[M, E]) ErrorOption[M, E] {
	switch o.variant {
	case VariantValue:
		return next
	case VariantError:
		return Error[M](o.err)
	}
	return Empty[M, E]()
}

// AndThen calls f with a Value payload and returns its result. f is never
// called for Empty or Error.
func AndThen[T, M, E any](o ErrorOption[T, E], f func(T) ErrorOption[M, E]) ErrorOption[M, E] {
	switch o.variant {
	case VariantValue:
		return f(o.value)
	case VariantError:
		return Error[M](o.err)
	}
	return Empty[M, E]()
}

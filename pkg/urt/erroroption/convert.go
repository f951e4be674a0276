package erroroption

import "github.com/ib-77/urt/pkg/urt"

// FromOption maps Some to Value and None to Empty.
func FromOption[T, E any](opt urt.Option[T]) ErrorOption[T, E] {
	if v, ok := opt.Get(); ok {
		return Value[T, E](v)
	}
	return Empty[T, E]()
}

// FromResult maps success to Value and failure to Error.
func FromResult[T, E any](r urt.Result[T, E]) ErrorOption[T, E] {
	if r.IsSuccess() {
		return Value[T, E](r.Result())
	}
	return Error[T](r.Err())
}

// FromResultOption is the inverse of ErrorOption.Result.
func FromResultOption[T, E any](r urt.Result[urt.Option[T], E]) ErrorOption[T, E] {
	if r.IsFailure() {
		return Error[T](r.Err())
	}
	return FromOption[T, E](r.Result())
}

// FromTuple adapts the usual (value, error) return pair. A non-nil err,
// typed nils excluded, becomes an Error; otherwise v becomes a Value.
func FromTuple[T any](v T, err error) ErrorOption[T, error] {
	if !urt.IsNil(err) {
		return Error[T](err)
	}
	return Value[T, error](v)
}

// FromPtrTuple adapts a (pointer, error) lookup where a nil pointer means
// "not found": err becomes an Error, nil becomes Empty, anything else a Value.
func FromPtrTuple[T any](p *T, err error) ErrorOption[T, error] {
	switch {
	case !urt.IsNil(err):
		return Error[T](err)
	case p == nil:
		return Empty[T, error]()
	}
	return Value[T, error](*p)
}

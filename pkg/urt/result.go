package urt

import "fmt"

// Result is either a success carrying T or a failure carrying E.
// Unlike Go's (T, error) pair the failure side can be any type.
type Result[T, E any] struct {
	result    T
	err       E
	isSuccess bool
}

func Success[T, E any](r T) Result[T, E] {
	return Result[T, E]{
		result:    r,
		isSuccess: true,
	}
}

func Fail[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isSuccess: false,
	}
}

// Result returns the success value, or the zero T for a failure.
func (r Result[T, E]) Result() T {
	return r.result
}

// Err returns the failure value, or the zero E for a success.
func (r Result[T, E]) Err() E {
	return r.err
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

// Get returns both sides and whether the result is a success.
func (r Result[T, E]) Get() (T, E, bool) {
	return r.result, r.err, r.isSuccess
}

func (r Result[T, E]) Ok() Option[T] {
	if r.isSuccess {
		return Some(r.result)
	}
	return None[T]()
}

func (r Result[T, E]) Failure() Option[E] {
	if r.isSuccess {
		return None[E]()
	}
	return Some(r.err)
}

func (r Result[T, E]) Unwrap() T {
	if !r.isSuccess {
		panic(PanicMessage("called `Result.Unwrap()` on a `Fail` value", r.err))
	}
	return r.result
}

func (r Result[T, E]) UnwrapErr() E {
	if r.isSuccess {
		panic(PanicMessage("called `Result.UnwrapErr()` on a `Success` value", r.result))
	}
	return r.err
}

func (r Result[T, E]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.result)
	}
	return fmt.Sprintf("Fail(%v)", r.err)
}

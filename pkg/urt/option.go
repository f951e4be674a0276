package urt

import "fmt"

// Option is a value that is either present (Some) or absent (None).
// The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// OptionFromPtr returns None for a nil pointer and Some(*p) otherwise.
func OptionFromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and whether it was present, Go's comma-ok form.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

func (o Option[T]) Unwrap() T {
	if !o.some {
		panic("called `Option.Unwrap()` on a `None` value")
	}
	return o.value
}

func (o Option[T]) UnwrapOr(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

func (o Option[T]) UnwrapOrElse(fallback func() T) T {
	if o.some {
		return o.value
	}
	return fallback()
}

// Ptr returns a pointer to a copy of the value, or nil for None.
func (o Option[T]) Ptr() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

package erroroption

import (
	"fmt"

	"github.com/ib-77/urt/pkg/urt"
)

type Variant uint8

const (
	VariantEmpty Variant = iota
	VariantValue
	VariantError
)

func (v Variant) String() string {
	switch v {
	case VariantEmpty:
		return "Empty"
	case VariantValue:
		return "Value"
	case VariantError:
		return "Error"
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// rank is the declaration order used by Compare: Value, Empty, Error.
func (v Variant) rank() int {
	switch v {
	case VariantValue:
		return 0
	case VariantEmpty:
		return 1
	}
	return 2
}

// ErrorOption is Value(T), Empty or Error(E).
//
// The zero value is Empty. An ErrorOption never changes variant in place:
// only whole-value replacement (Insert, GetOrInsert, Take, Replace or plain
// assignment) moves it to another variant. Writes through AsMut and IterMut
// touch the payload only.
//
// An ErrorOption may be an Error; do not drop it without looking.
type ErrorOption[T, E any] struct {
	variant Variant
	value   T
	err     E
}

func Value[T, E any](v T) ErrorOption[T, E] {
	return ErrorOption[T, E]{variant: VariantValue, value: v}
}

func Empty[T, E any]() ErrorOption[T, E] {
	return ErrorOption[T, E]{}
}

func Error[T, E any](err E) ErrorOption[T, E] {
	return ErrorOption[T, E]{variant: VariantError, err: err}
}

func (o ErrorOption[T, E]) Variant() Variant {
	return o.variant
}

// Querying the contained values

func (o ErrorOption[T, E]) IsValue() bool {
	return o.variant == VariantValue
}

// IsValueAnd reports whether o is a Value whose payload satisfies f.
func (o ErrorOption[T, E]) IsValueAnd(f func(T) bool) bool {
	return o.variant == VariantValue && f(o.value)
}

func (o ErrorOption[T, E]) IsEmpty() bool {
	return o.variant == VariantEmpty
}

func (o ErrorOption[T, E]) IsError() bool {
	return o.variant == VariantError
}

// IsErrorAnd reports whether o is an Error whose payload satisfies f.
func (o ErrorOption[T, E]) IsErrorAnd(f func(E) bool) bool {
	return o.variant == VariantError && f(o.err)
}

// Adapters for each variant

// AsOption keeps a Value and drops both Empty and Error, including the error payload.
func (o ErrorOption[T, E]) AsOption() urt.Option[T] {
	if o.variant == VariantValue {
		return urt.Some(o.value)
	}
	return urt.None[T]()
}

// AsResult maps Value to success and Error to failure. Empty becomes a
// success holding the zero T, which is easy to mistake for a real value;
// Result keeps the two apart.
func (o ErrorOption[T, E]) AsResult() urt.Result[T, E] {
	switch o.variant {
	case VariantValue:
		return urt.Success[T, E](o.value)
	case VariantError:
		return urt.Fail[T](o.err)
	}
	var zero T
	return urt.Success[T, E](zero)
}

// Err returns the error payload of an Error and None otherwise.
func (o ErrorOption[T, E]) Err() urt.Option[E] {
	if o.variant == VariantError {
		return urt.Some(o.err)
	}
	return urt.None[E]()
}

// ValueOrDefault returns a Value as success. Empty fails with err, while an
// Error keeps its own payload and err is ignored.
func (o ErrorOption[T, E]) ValueOrDefault(err E) urt.Result[T, E] {
	switch o.variant {
	case VariantValue:
		return urt.Success[T, E](o.value)
	case VariantError:
		return urt.Fail[T](o.err)
	}
	return urt.Fail[T](err)
}

// Result maps Value to Success(Some), Empty to Success(None) and Error to Fail.
func (o ErrorOption[T, E]) Result() urt.Result[urt.Option[T], E] {
	switch o.variant {
	case VariantValue:
		return urt.Success[urt.Option[T], E](urt.Some(o.value))
	case VariantError:
		return urt.Fail[urt.Option[T]](o.err)
	}
	return urt.Success[urt.Option[T], E](urt.None[T]())
}

// Switch swaps the Value and Error payloads; Empty stays Empty.
func (o ErrorOption[T, E]) Switch() ErrorOption[E, T] {
	switch o.variant {
	case VariantValue:
		return Error[E](o.value)
	case VariantError:
		return Value[E, T](o.err)
	}
	return Empty[E, T]()
}

// Adapters for working with references

// AsRef returns an ErrorOption pointing at o's payload, for reading.
func AsRef[T, E any](o *ErrorOption[T, E]) ErrorOption[*T, *E] {
	return AsMut(o)
}

// AsMut returns an ErrorOption pointing at o's payload.
func AsMut[T, E any](o *ErrorOption[T, E]) ErrorOption[*T, *E] {
	switch o.variant {
	case VariantValue:
		return Value[*T, *E](&o.value)
	case VariantError:
		return Error[*T](&o.err)
	}
	return Empty[*T, *E]()
}

// Getting to contained values

// Expect returns the Value payload. On an Error it panics with msg followed
// by the error payload; on Empty it panics with msg alone.
func (o ErrorOption[T, E]) Expect(msg string) T {
	switch o.variant {
	case VariantValue:
		return o.value
	case VariantError:
		panic(urt.PanicMessage(msg, o.err))
	}
	panic(msg)
}

// ExpectError returns the Error payload. On a Value it panics with msg
// followed by the value; on Empty it panics with msg alone.
func (o ErrorOption[T, E]) ExpectError(msg string) E {
	switch o.variant {
	case VariantError:
		return o.err
	case VariantValue:
		panic(urt.PanicMessage(msg, o.value))
	}
	panic(msg)
}

func (o ErrorOption[T, E]) Unwrap() T {
	switch o.variant {
	case VariantEmpty:
		panic("called `ErrorOption.Unwrap()` on an `Empty` value")
	case VariantError:
		panic("called `ErrorOption.Unwrap()` on an `Error` value")
	}
	return o.value
}

func (o ErrorOption[T, E]) UnwrapError() E {
	switch o.variant {
	case VariantEmpty:
		panic("called `ErrorOption.UnwrapError()` on an `Empty` value")
	case VariantValue:
		panic("called `ErrorOption.UnwrapError()` on a `Value` value")
	}
	return o.err
}

func (o ErrorOption[T, E]) UnwrapOr(fallback T) T {
	if o.variant == VariantValue {
		return o.value
	}
	return fallback
}

func (o ErrorOption[T, E]) UnwrapOrElse(fallback func() T) T {
	if o.variant == VariantValue {
		return o.value
	}
	return fallback()
}

func (o ErrorOption[T, E]) UnwrapOrDefault() T {
	var zero T
	return o.UnwrapOr(zero)
}

// UnwrapUnchecked returns the Value payload. The caller must already know o
// is a Value; unlike an unchecked read this still panics when it is not, at
// the cost of one tag test.
func (o ErrorOption[T, E]) UnwrapUnchecked() T {
	if o.variant != VariantValue {
		panic("called `ErrorOption.UnwrapUnchecked()` on a non-`Value` variant")
	}
	return o.value
}

// Inspect calls f with the Value payload, if any, and returns o unchanged.
func (o ErrorOption[T, E]) Inspect(f func(T)) ErrorOption[T, E] {
	if o.variant == VariantValue {
		f(o.value)
	}
	return o
}

// InspectErr calls f with the Error payload, if any, and returns o unchanged.
func (o ErrorOption[T, E]) InspectErr(f func(E)) ErrorOption[T, E] {
	if o.variant == VariantError {
		f(o.err)
	}
	return o
}

func (o ErrorOption[T, E]) String() string {
	switch o.variant {
	case VariantValue:
		return fmt.Sprintf("Value(%v)", o.value)
	case VariantError:
		return fmt.Sprintf("Error(%v)", o.err)
	}
	return "Empty"
}

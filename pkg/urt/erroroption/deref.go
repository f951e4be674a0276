package erroroption

import "github.com/ib-77/urt/pkg/urt"

// AsDeref views through a Value payload that wraps an X. The error payload
// is not dereferenced.
func AsDeref[X any, P urt.Deref[X], E any](o *ErrorOption[P, E]) ErrorOption[*X, *E] {
	return AsDerefMut[X](o)
}

// AsDerefMut is AsDeref for callers that intend to write through the view.
func AsDerefMut[X any, P urt.Deref[X], E any](o *ErrorOption[P, E]) ErrorOption[*X, *E] {
	switch o.variant {
	case VariantValue:
		return Value[*X, *E](o.value.Deref())
	case VariantError:
		return Error[*X](&o.err)
	}
	return Empty[*X, *E]()
}

// Copied turns a Value holding a pointer into a Value holding a copy of the
// pointee. A nil pointer is a contract violation and panics.
func Copied[T, E any](o ErrorOption[*T, E]) ErrorOption[T, E] {
	return Cloned(o, urt.Shallow[T]())
}

// Cloned is Copied with an explicit Duplicator for the pointee.
func Cloned[T, E any](o ErrorOption[*T, E], dup urt.Duplicator[T]) ErrorOption[T, E] {
	switch o.variant {
	case VariantValue:
		if o.value == nil {
			panic("called `Cloned()` on a `Value` holding a nil pointer")
		}
		return Value[T, E](dup.Dup(*o.value))
	case VariantError:
		return Error[T](o.err)
	}
	return Empty[T, E]()
}

package erroroption

import "github.com/ib-77/urt/pkg/urt"

// Insert stores v as a Value, whatever o held before, and returns a pointer to it.
func (o *ErrorOption[T, E]) Insert(v T) *T {
	*o = Value[T, E](v)
	return &o.value
}

// GetOrInsert stores v unless o already is a Value, then returns a pointer
// to the Value payload. An Error is overwritten.
func (o *ErrorOption[T, E]) GetOrInsert(v T) *T {
	if o.variant != VariantValue {
		*o = Value[T, E](v)
	}
	return &o.value
}

func (o *ErrorOption[T, E]) GetOrInsertDefault() *T {
	var zero T
	return o.GetOrInsert(zero)
}

// GetOrInsertWith is GetOrInsert with a lazily computed value; f runs only
// when o is not a Value.
func (o *ErrorOption[T, E]) GetOrInsertWith(f func() T) *T {
	if o.variant != VariantValue {
		*o = Value[T, E](f())
	}
	return &o.value
}

// Take returns the current content of o and leaves Empty behind.
func (o *ErrorOption[T, E]) Take() ErrorOption[T, E] {
	taken := *o
	*o = Empty[T, E]()
	return taken
}

// Replace stores v as a Value and returns the previous content of o.
func (o *ErrorOption[T, E]) Replace(v T) ErrorOption[T, E] {
	prev := *o
	*o = Value[T, E](v)
	return prev
}

// Clone duplicates whichever payload o holds. Empty clones to Empty.
func (o ErrorOption[T, E]) Clone(dt urt.Duplicator[T], de urt.Duplicator[E]) ErrorOption[T, E] {
	switch o.variant {
	case VariantValue:
		return Value[T, E](dt.Dup(o.value))
	case VariantError:
		return Error[T](de.Dup(o.err))
	}
	return Empty[T, E]()
}

// CloneFrom overwrites o with a duplicate of src, updating the payload in
// place when both hold the same populated variant.
func (o *ErrorOption[T, E]) CloneFrom(src ErrorOption[T, E], dt urt.Duplicator[T], de urt.Duplicator[E]) {
	switch {
	case o.variant == VariantValue && src.variant == VariantValue:
		dt.DupInto(&o.value, src.value)
	case o.variant == VariantError && src.variant == VariantError:
		de.DupInto(&o.err, src.err)
	default:
		*o = src.Clone(dt, de)
	}
}

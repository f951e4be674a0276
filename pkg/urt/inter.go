package urt

// Into is implemented by payloads that know how to convert themselves to O.
// double.UnwrapInto collapses a union whose both sides implement Into[O].
type Into[O any] interface {
	Into() O
}

// Deref is implemented by payloads that own another value and hand out its address.
type Deref[T any] interface {
	Deref() *T
}

package urt

// Box owns a heap allocated T. It is the pointer-like payload that
// erroroption.AsDeref borrows through.
type Box[T any] struct {
	p *T
}

func NewBox[T any](v T) Box[T] {
	return Box[T]{p: &v}
}

// Deref returns the owned value's address. A zero Box returns nil.
func (b Box[T]) Deref() *T {
	return b.p
}

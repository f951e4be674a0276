package erroroption

import "iter"

// Iter yields the Value payload of an ErrorOption at most once. It is
// double-ended, knows its exact length and, once drained, keeps reporting
// exhaustion.
type Iter[T any] struct {
	item T
	ok   bool
}

func newIter[T any](item T, ok bool) *Iter[T] {
	return &Iter[T]{item: item, ok: ok}
}

func (it *Iter[T]) Next() (T, bool) {
	item, ok := it.item, it.ok
	var zero T
	it.item, it.ok = zero, false
	return item, ok
}

// NextBack takes from the back; with at most one element it matches Next.
func (it *Iter[T]) NextBack() (T, bool) {
	return it.Next()
}

// Len is the number of items left, 0 or 1.
func (it *Iter[T]) Len() int {
	if it.ok {
		return 1
	}
	return 0
}

func (it *Iter[T]) Clone() *Iter[T] {
	c := *it
	return &c
}

// Seq drains it as a range-over-func sequence.
func (it *Iter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if v, ok := it.Next(); ok {
			yield(v)
		}
	}
}

// Iter iterates over a copy of the Value payload, leaving o as it is.
func (o *ErrorOption[T, E]) Iter() *Iter[T] {
	return newIter(o.value, o.variant == VariantValue)
}

// IterMut iterates over a pointer to the Value payload.
func (o *ErrorOption[T, E]) IterMut() *Iter[*T] {
	if o.variant != VariantValue {
		return newIter[*T](nil, false)
	}
	return newIter(&o.value, true)
}

func (o ErrorOption[T, E]) IntoIter() *Iter[T] {
	return newIter(o.value, o.variant == VariantValue)
}

// All yields the Value payload, if any:
//
//	for v := range o.All() { ... }
func (o ErrorOption[T, E]) All() iter.Seq[T] {
	return o.IntoIter().Seq()
}

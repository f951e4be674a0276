package doubleoption

func MapFirst[T, U, O any](o DoubleOption[T, U], f func(T) O) DoubleOption[O, U] {
	switch o.variant {
	case VariantFirst:
		return First[O, U](f(o.first))
	case VariantSecond:
		return Second[O](o.second)
	}
	return Empty[O, U]()
}

func MapSecond[T, U, O any](o DoubleOption[T, U], f func(U) O) DoubleOption[T, O] {
	switch o.variant {
	case VariantFirst:
		return First[T, O](o.first)
	case VariantSecond:
		return Second[T](f(o.second))
	}
	return Empty[T, O]()
}

// Map transforms whichever payload o holds; Empty stays Empty.
func Map[T, U, O, R any](o DoubleOption[T, U], f func(T) O, g func(U) R) DoubleOption[O, R] {
	switch o.variant {
	case VariantFirst:
		return First[O, R](f(o.first))
	case VariantSecond:
		return Second[O](g(o.second))
	}
	return Empty[O, R]()
}

package doubleoption

import "cmp"

func Equal[T, U comparable](a, b DoubleOption[T, U]) bool {
	return EqualFunc(a, b,
		func(x, y T) bool { return x == y },
		func(x, y U) bool { return x == y })
}

func EqualFunc[T, U any](a, b DoubleOption[T, U], eqT func(T, T) bool, eqU func(U, U) bool) bool {
	if a.variant != b.variant {
		return false
	}
	switch a.variant {
	case VariantFirst:
		return eqT(a.first, b.first)
	case VariantSecond:
		return eqU(a.second, b.second)
	}
	return true
}

// Compare orders First before Second before Empty, then by payload.
func Compare[T, U cmp.Ordered](a, b DoubleOption[T, U]) int {
	return CompareFunc(a, b, cmp.Compare[T], cmp.Compare[U])
}

func CompareFunc[T, U any](a, b DoubleOption[T, U], cmpT func(T, T) int, cmpU func(U, U) int) int {
	if c := cmp.Compare(a.variant.rank(), b.variant.rank()); c != 0 {
		return c
	}
	switch a.variant {
	case VariantFirst:
		return cmpT(a.first, b.first)
	case VariantSecond:
		return cmpU(a.second, b.second)
	}
	return 0
}

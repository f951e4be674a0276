package double

import "cmp"

func Equal[T, U comparable](a, b Double[T, U]) bool {
	return EqualFunc(a, b,
		func(x, y T) bool { return x == y },
		func(x, y U) bool { return x == y })
}

func EqualFunc[T, U any](a, b Double[T, U], eqT func(T, T) bool, eqU func(U, U) bool) bool {
	if a.variant != b.variant {
		return false
	}
	if a.variant == VariantFirst {
		return eqT(a.first, b.first)
	}
	return eqU(a.second, b.second)
}

// Compare orders First before Second, then by payload.
func Compare[T, U cmp.Ordered](a, b Double[T, U]) int {
	return CompareFunc(a, b, cmp.Compare[T], cmp.Compare[U])
}

func CompareFunc[T, U any](a, b Double[T, U], cmpT func(T, T) int, cmpU func(U, U) int) int {
	if c := cmp.Compare(a.variant, b.variant); c != 0 {
		return c
	}
	if a.variant == VariantFirst {
		return cmpT(a.first, b.first)
	}
	return cmpU(a.second, b.second)
}

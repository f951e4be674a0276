package erroroption

import "cmp"

func Equal[T, E comparable](a, b ErrorOption[T, E]) bool {
	return EqualFunc(a, b,
		func(x, y T) bool { return x == y },
		func(x, y E) bool { return x == y })
}

func EqualFunc[T, E any](a, b ErrorOption[T, E], eqT func(T, T) bool, eqE func(E, E) bool) bool {
	if a.variant != b.variant {
		return false
	}
	switch a.variant {
	case VariantValue:
		return eqT(a.value, b.value)
	case VariantError:
		return eqE(a.err, b.err)
	}
	return true
}

// Compare orders Value before Empty before Error, then by payload.
func Compare[T, E cmp.Ordered](a, b ErrorOption[T, E]) int {
	return CompareFunc(a, b, cmp.Compare[T], cmp.Compare[E])
}

func CompareFunc[T, E any](a, b ErrorOption[T, E], cmpT func(T, T) int, cmpE func(E, E) int) int {
	if c := cmp.Compare(a.variant.rank(), b.variant.rank()); c != 0 {
		return c
	}
	switch a.variant {
	case VariantValue:
		return cmpT(a.value, b.value)
	case VariantError:
		return cmpE(a.err, b.err)
	}
	return 0
}

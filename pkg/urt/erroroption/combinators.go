package erroroption

// Filter keeps a Value whose payload satisfies pred. Everything else,
// including an Error, becomes Empty.
func (o ErrorOption[T, E]) Filter(pred func(T) bool) ErrorOption[T, E] {
	if o.variant == VariantValue && pred(o.value) {
		return o
	}
	return Empty[T, E]()
}

// FilterOr is Filter with def in place of Empty.
func (o ErrorOption[T, E]) FilterOr(pred func(T) bool, def ErrorOption[T, E]) ErrorOption[T, E] {
	if o.variant == VariantValue && pred(o.value) {
		return o
	}
	return def
}

// FilterOrElse is Filter with the result of def in place of Empty.
func (o ErrorOption[T, E]) FilterOrElse(pred func(T) bool, def func() ErrorOption[T, E]) ErrorOption[T, E] {
	if o.variant == VariantValue && pred(o.value) {
		return o
	}
	return def()
}

// FilterPredicate keeps o, whatever its variant, when pred accepts it and returns Empty otherwise.
func (o ErrorOption[T, E]) FilterPredicate(pred func(ErrorOption[T, E]) bool) ErrorOption[T, E] {
	if pred(o) {
		return o
	}
	return Empty[T, E]()
}

func (o ErrorOption[T, E]) FilterPredicateOr(pred func(ErrorOption[T, E]) bool, def ErrorOption[T, E]) ErrorOption[T, E] {
	if pred(o) {
		return o
	}
	return def
}

// FilterPredicateOrElse hands a rejected o to def.
func (o ErrorOption[T, E]) FilterPredicateOrElse(
	pred func(ErrorOption[T, E]) bool,
	def func(ErrorOption[T, E]) ErrorOption[T, E],
) ErrorOption[T, E] {
	if pred(o) {
		return o
	}
	return def(o)
}

// Or returns o if it is a Value and alt otherwise. An Error in o is discarded.
func (o ErrorOption[T, E]) Or(alt ErrorOption[T, E]) ErrorOption[T, E] {
	if o.variant == VariantValue {
		return o
	}
	return alt
}

// OrElse is Or with a lazily computed alternative.
func (o ErrorOption[T, E]) OrElse(alt func() ErrorOption[T, E]) ErrorOption[T, E] {
	if o.variant == VariantValue {
		return o
	}
	return alt()
}

// Xor returns whichever of o and alt is a Value when exactly one of them is,
// and Empty otherwise. Errors on either side count as not a Value.
func (o ErrorOption[T, E]) Xor(alt ErrorOption[T, E]) ErrorOption[T, E] {
	switch {
	case o.variant == VariantValue && alt.variant != VariantValue:
		return o
	case o.variant != VariantValue && alt.variant == VariantValue:
		return alt
	}
	return Empty[T, E]()
}

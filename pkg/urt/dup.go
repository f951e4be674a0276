package urt

import (
	"maps"
	"slices"
)

// Duplicator describes how a payload is deep-copied.
//
// Clone produces an independent copy. CloneInto, when set, overwrites an
// existing destination in place and may reuse its storage; it is used by the
// CloneFrom methods when source and destination hold the same variant.
// A zero Duplicator copies by plain assignment.
type Duplicator[T any] struct {
	Clone     func(T) T
	CloneInto func(dst *T, src T)
}

// Shallow returns the assignment Duplicator, the right choice for payloads
// without internal references.
func Shallow[T any]() Duplicator[T] {
	return Duplicator[T]{}
}

func (d Duplicator[T]) Dup(v T) T {
	if d.Clone == nil {
		return v
	}
	return d.Clone(v)
}

func (d Duplicator[T]) DupInto(dst *T, src T) {
	if d.CloneInto != nil {
		d.CloneInto(dst, src)
		return
	}
	*dst = d.Dup(src)
}

// SliceDuplicator copies slices element by element; CloneInto keeps the
// destination's backing array when it is large enough.
func SliceDuplicator[S ~[]E, E any]() Duplicator[S] {
	return Duplicator[S]{
		Clone: func(s S) S {
			return slices.Clone(s)
		},
		CloneInto: func(dst *S, src S) {
			if src == nil {
				*dst = nil
				return
			}
			*dst = append((*dst)[:0], src...)
		},
	}
}

// MapDuplicator copies maps key by key; CloneInto clears and refills the destination map.
func MapDuplicator[M ~map[K]V, K comparable, V any]() Duplicator[M] {
	return Duplicator[M]{
		Clone: func(m M) M {
			return maps.Clone(m)
		},
		CloneInto: func(dst *M, src M) {
			if *dst == nil || src == nil {
				*dst = maps.Clone(src)
				return
			}
			clear(*dst)
			maps.Copy(*dst, src)
		},
	}
}

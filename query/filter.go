package query

import "cmp"

// Predicate reports whether an element should be kept.
type Predicate[T any] func(T) bool

// Filter returns the elements of items for which pred holds, in input order.
// The result is never nil; no match yields an empty slice.
func Filter[T any](items []T, pred Predicate[T]) []T {
	filtered := make([]T, 0)
	for _, item := range items {
		if pred(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// And holds when every predicate holds. With no predicates it always holds.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(item T) bool {
		for _, p := range preds {
			if !p(item) {
				return false
			}
		}
		return true
	}
}

// Or holds when at least one predicate holds.
func Or[T any](preds ...Predicate[T]) Predicate[T] {
	return func(item T) bool {
		for _, p := range preds {
			if p(item) {
				return true
			}
		}
		return false
	}
}

// Not negates a predicate.
func Not[T any](pred Predicate[T]) Predicate[T] {
	return func(item T) bool { return !pred(item) }
}

// Where builds a predicate that extracts a value with get and checks it with test.
func Where[T, V any](get func(T) V, test func(V) bool) Predicate[T] {
	return func(item T) bool { return test(get(item)) }
}

// Eq matches values equal to want.
func Eq[V comparable](want V) func(V) bool {
	return func(v V) bool { return v == want }
}

// Less matches values strictly below bound.
func Less[V cmp.Ordered](bound V) func(V) bool {
	return func(v V) bool { return v < bound }
}

// Greater matches values strictly above bound.
func Greater[V cmp.Ordered](bound V) func(V) bool {
	return func(v V) bool { return v > bound }
}

// AtLeast matches values greater than or equal to bound.
func AtLeast[V cmp.Ordered](bound V) func(V) bool {
	return func(v V) bool { return v >= bound }
}

// AtMost matches values less than or equal to bound.
func AtMost[V cmp.Ordered](bound V) func(V) bool {
	return func(v V) bool { return v <= bound }
}

// Between matches values in the closed range [lo, hi].
func Between[V cmp.Ordered](lo, hi V) func(V) bool {
	return func(v V) bool { return v >= lo && v <= hi }
}

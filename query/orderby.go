package query

import (
	"cmp"
	"slices"
)

// Comparator returns a negative number when a sorts before b, zero when they
// are equal and a positive number otherwise.
type Comparator[T any] func(a, b T) int

// Comparing builds an ascending comparator on an ordered key.
func Comparing[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}

// Reversed flips the direction of a comparator.
func Reversed[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int { return c(b, a) }
}

// ThenComparing breaks ties of c with next.
func ThenComparing[T any](c, next Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if r := c(a, b); r != 0 {
			return r
		}
		return next(a, b)
	}
}

// SortFunc returns a copy of items sorted by c. The sort is stable.
func SortFunc[T any](items []T, c Comparator[T]) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	slices.SortStableFunc(sorted, c)
	return sorted
}

// SortBy returns a copy of items in ascending key order.
func SortBy[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	return SortFunc(items, Comparing(key))
}

// SortByDesc returns a copy of items in descending key order. Elements with
// equal keys keep their input order.
func SortByDesc[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	return SortFunc(items, Reversed(Comparing(key)))
}

package query

import (
	"cmp"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Aggregator reduces a group of elements to a single value.
type Aggregator[T, R any] func(items []T) R

// Count returns the number of elements.
func Count[T any](items []T) int {
	return len(items)
}

// CountWhere returns the number of elements for which pred holds.
func CountWhere[T any](items []T, pred Predicate[T]) int {
	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}

// Min returns the smallest value selected by get, or absent for empty input.
func Min[T any, V cmp.Ordered](items []T, get func(T) V) Optional[V] {
	if len(items) == 0 {
		return None[V]()
	}
	least := get(items[0])
	for _, item := range items[1:] {
		if v := get(item); v < least {
			least = v
		}
	}
	return Some(least)
}

// Max returns the largest value selected by get, or absent for empty input.
func Max[T any, V cmp.Ordered](items []T, get func(T) V) Optional[V] {
	if len(items) == 0 {
		return None[V]()
	}
	greatest := get(items[0])
	for _, item := range items[1:] {
		if v := get(item); v > greatest {
			greatest = v
		}
	}
	return Some(greatest)
}

// Sum adds the values selected by get. The sum of no values is zero.
func Sum[T any, V Number](items []T, get func(T) V) V {
	var total V
	for _, item := range items {
		total += get(item)
	}
	return total
}

// Average returns the arithmetic mean of the values selected by get at full
// float64 precision, or absent for empty input.
func Average[T any, V Number](items []T, get func(T) V) Optional[float64] {
	if len(items) == 0 {
		return None[float64]()
	}
	total := 0.0
	for _, item := range items {
		total += float64(get(item))
	}
	return Some(total / float64(len(items)))
}

// Counting aggregates a group to its size.
func Counting[T any]() Aggregator[T, int] {
	return Count[T]
}

// Maximum aggregates a group of ordered values to its largest element.
func Maximum[V cmp.Ordered]() Aggregator[V, Optional[V]] {
	return func(items []V) Optional[V] { return Max(items, identity[V]) }
}

// Minimum aggregates a group of ordered values to its smallest element.
func Minimum[V cmp.Ordered]() Aggregator[V, Optional[V]] {
	return func(items []V) Optional[V] { return Min(items, identity[V]) }
}

// Mapping projects each element with get before handing the group to inner.
func Mapping[T, V, R any](get func(T) V, inner Aggregator[V, R]) Aggregator[T, R] {
	return func(items []T) R { return inner(Map(items, get)) }
}

// MaxOf aggregates a group to the largest value selected by get.
func MaxOf[T any, V cmp.Ordered](get func(T) V) Aggregator[T, Optional[V]] {
	return Mapping(get, Maximum[V]())
}

// MinOf aggregates a group to the smallest value selected by get.
func MinOf[T any, V cmp.Ordered](get func(T) V) Aggregator[T, Optional[V]] {
	return Mapping(get, Minimum[V]())
}

// Summing aggregates a group to the sum of the values selected by get.
func Summing[T any, V Number](get func(T) V) Aggregator[T, V] {
	return func(items []T) V { return Sum(items, get) }
}

// Averaging aggregates a group to the mean of the values selected by get.
// Groups built by GroupBy are never empty; an empty group yields NaN.
func Averaging[T any, V Number](get func(T) V) Aggregator[T, float64] {
	return func(items []T) float64 {
		return Average(items, get).OrElse(math.NaN())
	}
}

func identity[V any](v V) V { return v }

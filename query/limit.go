package query

// Limit returns the first min(n, len(items)) elements. A non-positive n
// yields an empty slice.
//
// The result shares storage with items but its capacity is clipped, so
// appending to it never writes into the input.
func Limit[T any](items []T, n int) []T {
	if n <= 0 || len(items) == 0 {
		return []T{}
	}
	if n > len(items) {
		n = len(items)
	}
	return items[:n:n]
}

// Offset drops the first n elements. An offset past the end yields an empty slice.
func Offset[T any](items []T, n int) []T {
	if len(items) == 0 {
		return []T{}
	}
	if n <= 0 {
		return items[:len(items):len(items)]
	}
	if n >= len(items) {
		return []T{}
	}
	return items[n:len(items):len(items)]
}

// Map applies fn to every element and returns the results in input order.
func Map[T, R any](items []T, fn func(T) R) []R {
	mapped := make([]R, 0, len(items))
	for _, item := range items {
		mapped = append(mapped, fn(item))
	}
	return mapped
}

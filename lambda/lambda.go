// Package lambda names the common shapes of function values and gives
// each one the method its callers use to invoke it.
//
// A plain func literal converts to any of these types:
//
//	length := lambda.Function[string, int](func(s string) int { return len(s) })
//	length.Apply("Hello") // 5
package lambda

import "cmp"

// Function maps a T to an R.
type Function[T, R any] func(T) R

// Apply calls f.
func (f Function[T, R]) Apply(v T) R { return f(v) }

// AndThen returns a Function that applies f and then g to its result.
func AndThen[T, R, V any](f Function[T, R], g Function[R, V]) Function[T, V] {
	return func(v T) V { return g(f(v)) }
}

// Predicate tests a T.
type Predicate[T any] func(T) bool

// Test calls p.
func (p Predicate[T]) Test(v T) bool { return p(v) }

// Negate returns the logical inverse of p.
func (p Predicate[T]) Negate() Predicate[T] {
	return func(v T) bool { return !p(v) }
}

// And is true when both p and other are. other is not called when p fails.
func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	return func(v T) bool { return p(v) && other(v) }
}

// Or is true when either p or other is.
func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	return func(v T) bool { return p(v) || other(v) }
}

// Consumer performs a side effect with a T.
type Consumer[T any] func(T)

// Accept calls c.
func (c Consumer[T]) Accept(v T) { c(v) }

// AndThen returns a Consumer that calls c and then next with the same value.
func (c Consumer[T]) AndThen(next Consumer[T]) Consumer[T] {
	return func(v T) {
		c(v)
		next(v)
	}
}

// Supplier produces a T on every call.
type Supplier[T any] func() T

// Get calls s.
func (s Supplier[T]) Get() T { return s() }

// BinaryOperator combines two values of the same type.
type BinaryOperator[T any] func(a, b T) T

// Apply calls op.
func (op BinaryOperator[T]) Apply(a, b T) T { return op(a, b) }

// Comparator orders two values: negative when a sorts first, zero when
// they are equal, positive otherwise.
type Comparator[T any] func(a, b T) int

// Compare calls c.
func (c Comparator[T]) Compare(a, b T) int { return c(a, b) }

// Reversed returns c with its order flipped.
func (c Comparator[T]) Reversed() Comparator[T] {
	return func(a, b T) int { return c(b, a) }
}

// ComparingBy orders values by the key extracted from each.
func ComparingBy[T any, K cmp.Ordered](key Function[T, K]) Comparator[T] {
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}

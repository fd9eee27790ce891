package query

import (
	"encoding/json"
	"fmt"
)

// Optional holds a value that may be absent, such as the maximum of an
// empty slice.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an absent value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Present reports whether a value is held.
func (o Optional[T]) Present() bool {
	return o.ok
}

// OrElse returns the value, or fallback when absent.
func (o Optional[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// IfPresent calls fn with the value when one is held.
func (o Optional[T]) IfPresent(fn func(T)) {
	if o.ok {
		fn(o.value)
	}
}

func (o Optional[T]) String() string {
	if !o.ok {
		return "absent"
	}
	return fmt.Sprint(o.value)
}

// MarshalJSON encodes an absent value as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

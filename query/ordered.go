package query

import "iter"

// Ordered is a map that remembers the order keys were first inserted.
// Group results are returned as Ordered maps so report output is
// deterministic.
type Ordered[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewOrdered returns an empty Ordered map.
func NewOrdered[K comparable, V any]() *Ordered[K, V] {
	return &Ordered[K, V]{values: make(map[K]V)}
}

// Set stores v under k. A new key is appended to the iteration order; an
// existing key keeps its position.
func (o *Ordered[K, V]) Set(k K, v V) {
	if _, exists := o.values[k]; !exists {
		o.keys = append(o.keys, k)
	}
	o.values[k] = v
}

// Get returns the value stored under k.
func (o *Ordered[K, V]) Get(k K) (V, bool) {
	if o == nil {
		var zero V
		return zero, false
	}
	v, ok := o.values[k]
	return v, ok
}

// Len returns the number of keys.
func (o *Ordered[K, V]) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *Ordered[K, V]) Keys() []K {
	if o == nil {
		return []K{}
	}
	keys := make([]K, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// All iterates key/value pairs in insertion order.
func (o *Ordered[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if o == nil {
			return
		}
		for _, k := range o.keys {
			if !yield(k, o.values[k]) {
				return
			}
		}
	}
}

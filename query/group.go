package query

// Groups maps each distinct key to the elements that share it.
type Groups[K comparable, T any] = Ordered[K, []T]

// GroupBy partitions items by key. Keys iterate in first-seen order and the
// elements inside each group keep their input order. Every group holds at
// least one element; empty input yields an empty map.
func GroupBy[T any, K comparable](items []T, key func(T) K) *Groups[K, T] {
	groups := NewOrdered[K, []T]()
	for _, item := range items {
		k := key(item)
		members, _ := groups.Get(k)
		groups.Set(k, append(members, item))
	}
	return groups
}

// GroupBy2 partitions items by outer key and then, inside each outer group,
// by inner key.
func GroupBy2[T any, K1, K2 comparable](items []T, outer func(T) K1, inner func(T) K2) *Ordered[K1, *Groups[K2, T]] {
	nested := NewOrdered[K1, *Groups[K2, T]]()
	for k, members := range GroupBy(items, outer).All() {
		nested.Set(k, GroupBy(members, inner))
	}
	return nested
}

// Fold reduces every group with agg, keeping key order.
func Fold[K comparable, T, R any](groups *Groups[K, T], agg Aggregator[T, R]) *Ordered[K, R] {
	folded := NewOrdered[K, R]()
	for k, members := range groups.All() {
		folded.Set(k, agg(members))
	}
	return folded
}

// Fold2 reduces every leaf group of a two-level grouping with agg.
func Fold2[K1, K2 comparable, T, R any](nested *Ordered[K1, *Groups[K2, T]], agg Aggregator[T, R]) *Ordered[K1, *Ordered[K2, R]] {
	folded := NewOrdered[K1, *Ordered[K2, R]]()
	for k, inner := range nested.All() {
		folded.Set(k, Fold(inner, agg))
	}
	return folded
}

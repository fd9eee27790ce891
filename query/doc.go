// Package query provides the in-memory query pipeline used by surveyq.
//
// Every operation is a pure function over a slice: the input is never
// modified and a fresh result is returned. Stages compose by plain
// function application:
//
//	top := query.Limit(
//	    query.SortByDesc(
//	        query.Filter(people, query.And(
//	            query.Where(record.Age, query.Less(25)),
//	            query.Where(record.City, query.Eq("Прага")),
//	        )),
//	        record.Salary,
//	    ),
//	    10,
//	)
//
// # Filter Operations
//
// Filter keeps the elements a Predicate accepts, in input order. Predicates
// are built from accessors with Where and combined with And, Or and Not.
// Comparison helpers (Eq, Less, Greater, AtLeast, AtMost, Between) produce
// value tests; Between is inclusive on both ends.
//
// # Sorting
//
// SortBy, SortByDesc and SortFunc are stable: elements with equal keys keep
// their relative input order. Text keys compare byte-wise, which is the
// natural lexicographic order of UTF-8 strings.
//
// # Limit, Offset and Map
//
// Limit keeps the first n elements, Offset drops them. Map projects every
// element through a function and keeps length and order.
//
// # Scalar Aggregates
//
// Count and CountWhere return plain integers. Min, Max and Average return an
// Optional that is absent for empty input; no numeric sentinel is ever
// substituted.
//
// # Grouping
//
// GroupBy partitions a slice by key into an Ordered map whose iteration
// order is the order keys were first seen. GroupBy2 nests a second level.
// Aggregation is separate from grouping: Fold and Fold2 apply an
// Aggregator (Counting, MaxOf, MinOf, Averaging, Summing, Mapping) to each
// group.
//
//	avg := query.Fold2(
//	    query.GroupBy2(people, record.City, record.Job),
//	    query.Averaging(record.Salary),
//	)
package query

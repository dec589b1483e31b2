package seq

import (
	"iter"

	"github.com/ib-77/maybe/pkg/maybe"
)

// First returns the first element of source, or Nothing when it is empty.
func First[T any](source iter.Seq[T]) maybe.Maybe[T] {
	return FirstWhere(source, func(T) bool { return true })
}

// FirstWhere returns the first element satisfying predicate. Iteration stops
// at the match.
func FirstWhere[T any](source iter.Seq[T], predicate func(T) bool) maybe.Maybe[T] {
	return FirstOfWhere(wrap(source), predicate)
}

// FirstOf returns the first element holding a value.
func FirstOf[T any](source iter.Seq[maybe.Maybe[T]]) maybe.Maybe[T] {
	return FirstOfWhere(source, func(T) bool { return true })
}

// FirstOfWhere returns the first element holding a value that satisfies
// predicate. A predicate that panics counts as not satisfied.
func FirstOfWhere[T any](source iter.Seq[maybe.Maybe[T]], predicate func(T) bool) maybe.Maybe[T] {
	for m := range source {
		if maybe.Then(m, func(v T) maybe.Maybe[bool] {
			return maybe.From(predicate(v))
		}).ValueOrDefault(false) {
			return m
		}
	}
	return maybe.Nothing[T]()
}

func wrap[T any](source iter.Seq[T]) iter.Seq[maybe.Maybe[T]] {
	return func(yield func(maybe.Maybe[T]) bool) {
		for v := range source {
			if !yield(maybe.From(v)) {
				return
			}
		}
	}
}

// Lookup returns the value stored under key, or Nothing on a miss.
func Lookup[K comparable, V any](dict map[K]V, key K) maybe.Maybe[V] {
	v, ok := dict[key]
	return maybe.FromOk(v, ok)
}

package set

import (
	"github.com/cnf/structhash"
	"golang.org/x/exp/slices"
)

// Set is a destructive, hashable set of arbitrary values. The zero value is
// not usable; create one with New.
type Set[T any] struct {
	items map[string]T
}

// New creates a Set containing vals, if any.
func New[T any](vals ...T) *Set[T] {
	s := &Set[T]{items: make(map[string]T, len(vals))}
	for _, v := range vals {
		s.Add(v)
	}
	return s
}

// hashKey computes a structural hash key for v. Values produced by grammar
// rules are plain data (tokens, pairs, reduced values) and therefore always
// hashable; a failure here indicates a client Reduce function smuggled a
// func or chan into a result, which is a programmer error.
func hashKey(v any) string {
	h, err := structhash.Hash(v, 1)
	if err != nil {
		panic("set: value is not hashable: " + err.Error())
	}
	return h
}

// Add inserts v into the set. It returns true if v was not already present.
func (s *Set[T]) Add(v T) bool {
	k := hashKey(v)
	if _, found := s.items[k]; found {
		return false
	}
	s.items[k] = v
	return true
}

// Union merges other into s, destructively, and returns s for chaining.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	if other == nil {
		return s
	}
	for k, v := range other.items {
		s.items[k] = v
	}
	return s
}

// Copy returns a shallow, independent copy of s.
func (s *Set[T]) Copy() *Set[T] {
	c := &Set[T]{items: make(map[string]T, len(s.items))}
	for k, v := range s.items {
		c.items[k] = v
	}
	return c
}

// Equals reports whether s and other contain the same values, by set
// equality — iteration order never matters.
func (s *Set[T]) Equals(other *Set[T]) bool {
	if other == nil {
		return len(s.items) == 0
	}
	if len(s.items) != len(other.items) {
		return false
	}
	for k := range s.items {
		if _, found := other.items[k]; !found {
			return false
		}
	}
	return true
}

// Size returns the number of distinct values in s.
func (s *Set[T]) Size() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Empty reports whether s has no values.
func (s *Set[T]) Empty() bool {
	return s.Size() == 0
}

// Values returns all values of s. Order is unspecified; callers that need a
// deterministic order should use SortedKeys instead.
func (s *Set[T]) Values() []T {
	vals := make([]T, 0, len(s.items))
	for _, v := range s.items {
		vals = append(vals, v)
	}
	return vals
}

// Each calls f once for every value in s. Order is unspecified.
func (s *Set[T]) Each(f func(T)) {
	for _, v := range s.items {
		f(v)
	}
}

// Map applies f to every value of s and returns a fresh set of the results,
// used to implement Reduce's derive_null rule: { f(x) | x ∈ inner-null-set }.
func (s *Set[T]) Map(f func(T) T) *Set[T] {
	out := New[T]()
	for _, v := range s.items {
		out.Add(f(v))
	}
	return out
}

// SortedKeys returns the values of s ordered by their structural hash key.
// This gives callers a stable iteration order for otherwise
// order-insensitive sets; it must never be relied upon
// by the fixed-point engine itself.
func (s *Set[T]) SortedKeys() []T {
	keys := make([]string, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	vals := make([]T, len(keys))
	for i, k := range keys {
		vals[i] = s.items[k]
	}
	return vals
}

package multiset

import (
	"iter"
	"slices"
)

// Multiset maps each distinct value to its remaining number of occurrences.
// The zero value is not usable; call New.
type Multiset[T comparable] struct {
	counts map[T]int
	// order holds every value ever added, in first-seen order.
	order []T
	seen  map[T]struct{}
	total int
}

// New returns a multiset holding one occurrence per element of values.
func New[T comparable](values ...T) *Multiset[T] {
	m := &Multiset[T]{
		counts: make(map[T]int),
		seen:   make(map[T]struct{}),
	}
	for _, v := range values {
		m.Add(v)
	}
	return m
}

// Add inserts one occurrence of v.
func (m *Multiset[T]) Add(v T) {
	if _, ok := m.seen[v]; !ok {
		m.seen[v] = struct{}{}
		m.order = append(m.order, v)
	}
	m.counts[v]++
	m.total++
}

// Delete removes one occurrence of v. It reports false when v is absent.
func (m *Multiset[T]) Delete(v T) bool {
	n := m.counts[v]
	if n == 0 {
		return false
	}
	if n == 1 {
		delete(m.counts, v)
	} else {
		m.counts[v] = n - 1
	}
	m.total--
	return true
}

// Count returns the number of occurrences of v.
func (m *Multiset[T]) Count(v T) int { return m.counts[v] }

// Size returns the total number of occurrences across all values.
func (m *Multiset[T]) Size() int { return m.total }

// Len returns the number of distinct values present.
func (m *Multiset[T]) Len() int { return len(m.counts) }

// IsEmpty reports whether no values are present.
func (m *Multiset[T]) IsEmpty() bool { return len(m.counts) == 0 }

// Clone returns an independent copy with the same counts and order.
func (m *Multiset[T]) Clone() *Multiset[T] {
	c := &Multiset[T]{
		counts: make(map[T]int, len(m.counts)),
		seen:   make(map[T]struct{}, len(m.seen)),
		order:  slices.Clone(m.order),
		total:  m.total,
	}
	for v, n := range m.counts {
		c.counts[v] = n
	}
	for v := range m.seen {
		c.seen[v] = struct{}{}
	}
	return c
}

// UniqueValues yields each distinct value present, in first-seen order.
func (m *Multiset[T]) UniqueValues() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range m.order {
			if m.counts[v] == 0 {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Values yields every occurrence, grouped by value in first-seen order.
func (m *Multiset[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range m.UniqueValues() {
			for i := 0; i < m.counts[v]; i++ {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Permutations yields every distinct arrangement of the values exactly once.
// An empty multiset yields a single empty arrangement. Each yielded slice is
// owned by the caller.
//
// The multiset must not be modified while the sequence is being consumed.
func (m *Multiset[T]) Permutations() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		prefix := make([]T, 0, m.total)
		m.permute(prefix, yield)
	}
}

func (m *Multiset[T]) permute(prefix []T, yield func([]T) bool) bool {
	if m.IsEmpty() {
		return yield(slices.Clone(prefix))
	}
	// Restored values were already seen, so order does not grow while we
	// range over it.
	for _, v := range m.order {
		if m.counts[v] == 0 {
			continue
		}
		m.Delete(v)
		more := m.permute(append(prefix, v), yield)
		m.Add(v)
		if !more {
			return false
		}
	}
	return true
}

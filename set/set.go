package set

import (
	"fmt"
	"strings"
	"sync"
)

// Set is an insertion-ordered set. Iterating the same instance twice always
// yields the same order.
type Set[T comparable] struct {
	items []T
	index map[T]int
	mu    sync.RWMutex
}

// Ensure Set satisfies set.Interface at compile-time.
var _ Interface[string] = (*Set[string])(nil)

// NewSet returns a set initialized with the provided items
func NewSet[T comparable](items ...T) Interface[T] {
	return newSet(items...)
}

func newSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{
		items: make([]T, 0, len(items)),
		index: make(map[T]int, len(items)),
	}

	for _, item := range items {
		s.add(item)
	}

	return s
}

// Add an item to the set.
func (s *Set[T]) Add(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.add(item)
}

// Remove an item from the set. Items after it keep their relative order.
func (s *Set[T]) Remove(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[item]
	if !ok {
		return false
	}

	delete(s.index, item)
	s.items = append(s.items[:i], s.items[i+1:]...)

	for j := i; j < len(s.items); j++ {
		s.index[s.items[j]] = j
	}

	return true
}

// Clears removes all items from the set.
func (s *Set[T]) Clear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.index = make(map[T]int)

	return len(s.items) == 0
}

// Contains determines whether the provided items are in the set.
func (s *Set[T]) Contains(items ...T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range items {
		if !s.contains(item) {
			return false
		}
	}

	return true
}

// Length returns the number of items in the set.
func (s *Set[T]) Length() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// ForEach iterates over items and executes the provided function against each
// item until it returns false. The function runs against a snapshot, so it may
// safely call back into the set.
func (s *Set[T]) ForEach(fn func(T) bool) {
	for _, item := range s.ToSlice() {
		if !fn(item) {
			break
		}
	}
}

// String provides a string representation of the set.
func (s *Set[T]) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]string, 0, len(s.items))

	for _, item := range s.items {
		items = append(items, fmt.Sprint(item))
	}

	return fmt.Sprintf("Set{%s}", strings.Join(items, ", "))
}

// ToSlice returns the set as a slice.
func (s *Set[T]) ToSlice() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]T, len(s.items))
	copy(items, s.items)

	return items
}

// IsSuperSet determines if every item in the provided set is in this set.
func (s *Set[T]) IsSuperSet(other Interface[T]) bool {
	return s.Contains(other.ToSlice()...)
}

// IsSubSet determines if every item in this set is in the provided set.
func (s *Set[T]) IsSubSet(other Interface[T]) bool {
	return other.Contains(s.ToSlice()...)
}

// Equal determines if the two sets are equal.
//
// Note: If both sets have the same number of items and contain the same
// items, they're equal. Order is irrelevant.
func (s *Set[T]) Equal(other Interface[T]) bool {
	items := s.ToSlice()

	if len(items) != other.Length() {
		return false
	}

	return other.Contains(items...)
}

// Union returns a new set with the items of this set followed by the items of
// the provided set that are not already present.
func (s *Set[T]) Union(other Interface[T]) Interface[T] {
	result := newSet(s.ToSlice()...)

	for _, item := range other.ToSlice() {
		result.add(item)
	}

	return result
}

// Intersect returns a new set containing only the items that exist in both
// sets.
func (s *Set[T]) Intersect(other Interface[T]) Interface[T] {
	result := newSet[T]()

	// Walk the smaller set and probe the bigger one.
	var small, big Interface[T] = s, other
	if other.Length() < s.Length() {
		small, big = other, s
	}

	for _, item := range small.ToSlice() {
		if big.Contains(item) {
			result.add(item)
		}
	}

	return result
}

// Difference returns a new set with items contained in this set that are not
// present in the provided set.
func (s *Set[T]) Difference(other Interface[T]) Interface[T] {
	result := newSet[T]()

	for _, item := range s.ToSlice() {
		if !other.Contains(item) {
			result.add(item)
		}
	}

	return result
}

// SymmetricDifference returns a new set with all items which are in either set,
// but not both.
func (s *Set[T]) SymmetricDifference(other Interface[T]) Interface[T] {
	result := newSet[T]()

	for _, item := range s.ToSlice() {
		if !other.Contains(item) {
			result.add(item)
		}
	}

	for _, item := range other.ToSlice() {
		if !s.Contains(item) {
			result.add(item)
		}
	}

	return result
}

func (s *Set[T]) add(item T) bool {
	if s.contains(item) {
		return false
	}

	s.index[item] = len(s.items)
	s.items = append(s.items, item)

	return true
}

func (s *Set[T]) contains(item T) bool {
	_, ok := s.index[item]
	return ok
}

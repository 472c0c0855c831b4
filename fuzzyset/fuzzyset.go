// Package fuzzyset implements discrete fuzzy sets: finite mappings from a
// symbol to its degree of membership.
//
// Degrees are expected to lie in [0,1] but are never checked; callers that
// store values outside that range get out-of-range results from Complement
// and from the relations built on top of the set.
package fuzzyset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rdeusser/fuzzy/set"
)

// Set is a fuzzy set over symbols of type K. Members iterate in the order
// they were first added.
type Set[K comparable] struct {
	keys    []K
	degrees map[K]float64
}

// New returns an empty fuzzy set.
func New[K comparable]() *Set[K] {
	return NewSized[K](0)
}

// NewSized returns an empty fuzzy set with room for n members.
func NewSized[K comparable](n int) *Set[K] {
	return &Set[K]{
		keys:    make([]K, 0, n),
		degrees: make(map[K]float64, n),
	}
}

// Add sets the membership degree of symbol, overwriting any previous degree.
// An overwritten symbol keeps its original position.
func (s *Set[K]) Add(symbol K, degree float64) {
	if _, ok := s.degrees[symbol]; !ok {
		s.keys = append(s.keys, symbol)
	}

	s.degrees[symbol] = degree
}

// Membership returns the degree of symbol and whether it is a member.
func (s *Set[K]) Membership(symbol K) (float64, bool) {
	degree, ok := s.degrees[symbol]
	return degree, ok
}

// ForEach calls fn for each member until fn returns false.
func (s *Set[K]) ForEach(fn func(symbol K, degree float64) bool) {
	for _, key := range s.keys {
		if !fn(key, s.degrees[key]) {
			return
		}
	}
}

// Len returns the number of members.
func (s *Set[K]) Len() int {
	return len(s.keys)
}

// Keys returns the members as a key set, in iteration order.
func (s *Set[K]) Keys() set.Interface[K] {
	return set.NewSet(s.keys...)
}

func (s *Set[K]) String() string {
	items := make([]string, 0, len(s.keys))

	for _, key := range s.keys {
		items = append(items, FormatSymbol(key)+":"+strconv.FormatFloat(s.degrees[key], 'g', -1, 64))
	}

	return fmt.Sprintf("{%s}", strings.Join(items, ", "))
}

// FormatSymbol prints runes and bytes as characters rather than numbers and
// uses String for symbols that have one.
func FormatSymbol(symbol any) string {
	switch k := symbol.(type) {
	case rune:
		return string(k)
	case byte:
		return string(rune(k))
	case fmt.Stringer:
		return k.String()
	default:
		return fmt.Sprint(k)
	}
}

// Intersection returns the members common to a and b, each with the smaller of
// its two degrees.
func Intersection[K comparable](a, b *Set[K]) *Set[K] {
	result := New[K]()

	a.ForEach(func(symbol K, degree float64) bool {
		if other, ok := b.Membership(symbol); ok {
			result.Add(symbol, math.Min(degree, other))
		}
		return true
	})

	return result
}

// Union returns the members of a and b. Symbols present in both get the larger
// of their two degrees.
func Union[K comparable](a, b *Set[K]) *Set[K] {
	result := NewSized[K](a.Len() + b.Len())

	a.ForEach(func(symbol K, degree float64) bool {
		if other, ok := b.Membership(symbol); ok {
			degree = math.Max(degree, other)
		}
		result.Add(symbol, degree)
		return true
	})

	b.ForEach(func(symbol K, degree float64) bool {
		if _, ok := a.Membership(symbol); !ok {
			result.Add(symbol, degree)
		}
		return true
	})

	return result
}

// Complement returns a set with the same members and degree 1-d for each.
func Complement[K comparable](s *Set[K]) *Set[K] {
	result := NewSized[K](s.Len())

	s.ForEach(func(symbol K, degree float64) bool {
		result.Add(symbol, 1.0-degree)
		return true
	})

	return result
}

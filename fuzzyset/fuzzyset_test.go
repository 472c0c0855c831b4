package fuzzyset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newSet(members map[rune]float64, order ...rune) *Set[rune] {
	s := NewSized[rune](len(order))
	for _, r := range order {
		s.Add(r, members[r])
	}
	return s
}

func TestAdd(t *testing.T) {
	s := New[rune]()
	assert.Equal(t, 0, s.Len())

	s.Add('a', 0.2)
	s.Add('b', 0.7)
	assert.Equal(t, 2, s.Len())

	s.Add('a', 0.9)
	assert.Equal(t, 2, s.Len())

	degree, ok := s.Membership('a')
	require.True(t, ok)
	assert.Equal(t, 0.9, degree)

	assert.Equal(t, []rune{'a', 'b'}, s.Keys().ToSlice())
}

func TestMembershipAbsent(t *testing.T) {
	s := New[string]()
	s.Add("present", 0)

	degree, ok := s.Membership("missing")
	assert.False(t, ok)
	assert.Zero(t, degree)

	degree, ok = s.Membership("present")
	assert.True(t, ok)
	assert.Zero(t, degree)
}

func TestForEach(t *testing.T) {
	s := newSet(map[rune]float64{'a': 0.2, 'b': 0.7, 'c': 0.4}, 'a', 'b', 'c')

	// Restartable: two full traversals see the same members in the same order.
	for i := 0; i < 2; i++ {
		var keys []rune
		var degrees []float64

		s.ForEach(func(symbol rune, degree float64) bool {
			keys = append(keys, symbol)
			degrees = append(degrees, degree)
			return true
		})

		assert.Equal(t, []rune{'a', 'b', 'c'}, keys)
		assert.Equal(t, []float64{0.2, 0.7, 0.4}, degrees)
	}

	var count int
	s.ForEach(func(rune, float64) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)
}

func TestKeysIsACopy(t *testing.T) {
	s := newSet(map[rune]float64{'a': 0.2}, 'a')

	keys := s.Keys()
	keys.Add('z')

	_, ok := s.Membership('z')
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestString(t *testing.T) {
	s := New[string]()
	s.Add("a", 0.2)
	s.Add("b", 1)

	assert.Equal(t, "{a:0.2, b:1}", s.String())
	assert.Equal(t, "{}", New[string]().String())

	runes := newSet(map[rune]float64{'a': 0.2, 'b': 0.7}, 'a', 'b')
	assert.Equal(t, "{a:0.2, b:0.7}", runes.String())
}

type temperature int

func (t temperature) String() string {
	return fmt.Sprintf("%d°C", int(t))
}

func TestFormatSymbol(t *testing.T) {
	testCases := []struct {
		symbol any
		want   string
	}{
		{'a', "a"},
		{byte('z'), "z"},
		{"hot", "hot"},
		{42, "42"},
		{temperature(20), "20°C"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatSymbol(tc.symbol))
		})
	}
}

func TestIntersection(t *testing.T) {
	a := newSet(map[rune]float64{'a': 0.2, 'b': 0.7, 'c': 0.4}, 'a', 'b', 'c')
	c := newSet(map[rune]float64{'a': 0.6, 'c': 0.1, 'e': 0.1}, 'a', 'c', 'e')

	got := Intersection(a, c)

	assert.Equal(t, []rune{'a', 'c'}, got.Keys().ToSlice())
	assertDegree(t, got, 'a', 0.2)
	assertDegree(t, got, 'c', 0.1)
}

func TestUnion(t *testing.T) {
	a := newSet(map[rune]float64{'a': 0.2, 'b': 0.7, 'c': 0.4}, 'a', 'b', 'c')
	c := newSet(map[rune]float64{'a': 0.6, 'c': 0.1, 'e': 0.1}, 'a', 'c', 'e')

	got := Union(a, c)

	assert.Equal(t, []rune{'a', 'b', 'c', 'e'}, got.Keys().ToSlice())
	assertDegree(t, got, 'a', 0.6)
	assertDegree(t, got, 'b', 0.7)
	assertDegree(t, got, 'c', 0.4)
	assertDegree(t, got, 'e', 0.1)
}

func TestComplement(t *testing.T) {
	a := newSet(map[rune]float64{'a': 0.25, 'b': 1, 'c': 0}, 'a', 'b', 'c')

	got := Complement(a)

	assert.Equal(t, []rune{'a', 'b', 'c'}, got.Keys().ToSlice())
	assertDegree(t, got, 'a', 0.75)
	assertDegree(t, got, 'b', 0)
	assertDegree(t, got, 'c', 1)

	// The input is untouched.
	assertDegree(t, a, 'a', 0.25)
}

func TestOperatorsOnEmptySets(t *testing.T) {
	empty := New[rune]()
	a := newSet(map[rune]float64{'a': 0.3}, 'a')

	assert.Equal(t, 0, Intersection(empty, a).Len())
	assert.Equal(t, 1, Union(empty, a).Len())
	assert.Equal(t, 0, Complement(empty).Len())
}

func assertDegree(t *testing.T, s *Set[rune], symbol rune, want float64) {
	t.Helper()

	degree, ok := s.Membership(symbol)
	if assert.True(t, ok, "missing member %q", symbol) {
		assert.InDelta(t, want, degree, 1e-9, "member %q", symbol)
	}
}

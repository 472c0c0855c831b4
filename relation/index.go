package relation

import "github.com/rdeusser/fuzzy/set"

// index maps each key of a key set to its row or column. It is built once
// from the set's iteration order and never recomputed.
type index[K comparable] struct {
	keys []K
	pos  map[K]int
}

func newIndex[K comparable](keys set.Interface[K]) *index[K] {
	x := &index[K]{
		keys: keys.ToSlice(),
	}

	x.pos = make(map[K]int, len(x.keys))
	for i, key := range x.keys {
		x.pos[key] = i
	}

	return x
}

func (x *index[K]) lookup(key K) (int, bool) {
	i, ok := x.pos[key]
	return i, ok
}

func (x *index[K]) len() int {
	return len(x.keys)
}

func (x *index[K]) slice() []K {
	out := make([]K, len(x.keys))
	copy(out, x.keys)
	return out
}

func (x *index[K]) set() set.Interface[K] {
	return set.NewSet(x.keys...)
}

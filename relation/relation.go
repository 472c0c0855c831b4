// Package relation implements binary fuzzy relations between two finite
// universes and the operators used to combine them: intersection, union,
// complement and max-min composition.
//
// A relation is a dense grid of membership degrees addressed by symbol rather
// than by position. Relations are immutable once built; every operator returns
// a new relation and never modifies its inputs, so a relation may be shared
// between goroutines without synchronization.
//
// Degrees are expected to lie in [0,1]. Nothing enforces this; out-of-range
// degrees flow through the operators unchanged.
package relation

import (
	"errors"
	"fmt"
	"math"

	"github.com/rdeusser/fuzzy/fuzzyset"
	"github.com/rdeusser/fuzzy/set"
)

// ErrShapeMismatch is returned when a matrix does not have one row per domain
// key and one column per codomain key.
var ErrShapeMismatch = errors.New("matrix shape does not match key sets")

// Relation is a fuzzy relation from a domain of K to a codomain of K.
type Relation[K comparable] struct {
	domain   *index[K]
	codomain *index[K]
	matrix   *dense
}

// New builds the relation a×b where each pair is related with the smaller of
// the two members' degrees.
func New[K comparable](a, b *fuzzyset.Set[K]) *Relation[K] {
	r := &Relation[K]{
		domain:   newIndex(a.Keys()),
		codomain: newIndex(b.Keys()),
	}

	r.matrix = newDense(r.domain.len(), r.codomain.len())

	i := 0
	a.ForEach(func(_ K, da float64) bool {
		j := 0
		b.ForEach(func(_ K, db float64) bool {
			r.matrix.set(i, j, math.Min(da, db))
			j++
			return true
		})
		i++
		return true
	})

	return r
}

// FromMatrix builds a relation from explicit degrees. Row i holds the degrees
// of the i-th domain key and column j those of the j-th codomain key, in the
// sets' iteration order. The matrix is copied.
func FromMatrix[K comparable](domain, codomain set.Interface[K], matrix [][]float64) (*Relation[K], error) {
	r := &Relation[K]{
		domain:   newIndex(domain),
		codomain: newIndex(codomain),
	}

	m, err := denseFrom(r.domain.len(), r.codomain.len(), matrix)
	if err != nil {
		return nil, err
	}

	r.matrix = m

	return r, nil
}

// build assembles a relation from indexes and a matrix computed by an
// operator. A mismatch here is a bug in the operator, not a caller error.
func build[K comparable](domain, codomain *index[K], m *dense) *Relation[K] {
	if m.rows != domain.len() || m.cols != codomain.len() {
		panic(fmt.Errorf("%dx%d matrix for %d domain and %d codomain keys: %w",
			m.rows, m.cols, domain.len(), codomain.len(), ErrShapeMismatch))
	}

	return &Relation[K]{
		domain:   domain,
		codomain: codomain,
		matrix:   m,
	}
}

// Get returns the degree relating a to b, or 0 when either key is outside
// the relation.
func (r *Relation[K]) Get(a, b K) float64 {
	i, ok := r.domain.lookup(a)
	if !ok {
		return 0.0
	}

	j, ok := r.codomain.lookup(b)
	if !ok {
		return 0.0
	}

	return r.matrix.at(i, j)
}

// Domain returns a copy of the row keys.
func (r *Relation[K]) Domain() set.Interface[K] {
	return r.domain.set()
}

// Codomain returns a copy of the column keys.
func (r *Relation[K]) Codomain() set.Interface[K] {
	return r.codomain.set()
}

// DomainKeys returns the row keys in row order.
func (r *Relation[K]) DomainKeys() []K {
	return r.domain.slice()
}

// CodomainKeys returns the column keys in column order.
func (r *Relation[K]) CodomainKeys() []K {
	return r.codomain.slice()
}

// Rows returns the number of domain keys.
func (r *Relation[K]) Rows() int {
	return r.matrix.rows
}

// Cols returns the number of codomain keys.
func (r *Relation[K]) Cols() int {
	return r.matrix.cols
}

// Row returns a copy of the degrees relating a to each codomain key, or nil
// when a is not in the domain.
func (r *Relation[K]) Row(a K) []float64 {
	i, ok := r.domain.lookup(a)
	if !ok {
		return nil
	}

	return r.matrix.row(i)
}

// Matrix returns a copy of the whole grid.
func (r *Relation[K]) Matrix() [][]float64 {
	out := make([][]float64, r.matrix.rows)
	for i := range out {
		out[i] = r.matrix.row(i)
	}
	return out
}

// ForEach calls fn for every (domain, codomain) pair in row-major order until
// fn returns false.
func (r *Relation[K]) ForEach(fn func(a, b K, degree float64) bool) {
	for i, a := range r.domain.keys {
		for j, b := range r.codomain.keys {
			if !fn(a, b, r.matrix.at(i, j)) {
				return
			}
		}
	}
}

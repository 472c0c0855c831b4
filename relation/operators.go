package relation

import (
	"math"

	"go.uber.org/zap"
)

// Intersection relates the pairs whose keys appear in both r1 and r2, each
// with the smaller of its two degrees.
func Intersection[K comparable](r1, r2 *Relation[K], opts ...Option) *Relation[K] {
	o := newOptions(opts)

	domain := newIndex(r1.Domain().Intersect(r2.Domain()))
	codomain := newIndex(r1.Codomain().Intersect(r2.Codomain()))

	o.logger.Debug("intersection",
		zap.Int("rows", domain.len()),
		zap.Int("cols", codomain.len()),
	)

	m := newDense(domain.len(), codomain.len())
	m.fill(func(i, j int) float64 {
		a, b := domain.keys[i], codomain.keys[j]
		return math.Min(r1.Get(a, b), r2.Get(a, b))
	})

	return build(domain, codomain, m)
}

// Union relates the pairs whose keys appear in either r1 or r2, each with the
// larger of its two degrees. A pair missing from one relation takes the other
// relation's degree.
func Union[K comparable](r1, r2 *Relation[K], opts ...Option) *Relation[K] {
	o := newOptions(opts)

	domain := newIndex(r1.Domain().Union(r2.Domain()))
	codomain := newIndex(r1.Codomain().Union(r2.Codomain()))

	o.logger.Debug("union",
		zap.Int("rows", domain.len()),
		zap.Int("cols", codomain.len()),
	)

	m := newDense(domain.len(), codomain.len())
	m.fill(func(i, j int) float64 {
		a, b := domain.keys[i], codomain.keys[j]
		return math.Max(r1.Get(a, b), r2.Get(a, b))
	})

	return build(domain, codomain, m)
}

// Complement relates the same pairs as r with degree 1-d. Degrees outside
// [0,1] give complements outside [0,1].
func Complement[K comparable](r *Relation[K], opts ...Option) *Relation[K] {
	o := newOptions(opts)

	o.logger.Debug("complement",
		zap.Int("rows", r.Rows()),
		zap.Int("cols", r.Cols()),
	)

	m := newDense(r.Rows(), r.Cols())
	m.fill(func(i, j int) float64 {
		return 1.0 - r.matrix.at(i, j)
	})

	// Indexes are immutable, so the result shares them with r.
	return build(r.domain, r.codomain, m)
}

// Composition chains r1 and r2 through a broker key set with the max-min
// rule. The result relates r1's domain to r2's codomain.
//
// For each a in r1's domain the chained strength is the smallest r1(a, b) over
// the broker keys b, and for each d in r2's codomain it is the smallest
// r2(b, d). The entry for (a, d) is the larger of the two. With an empty
// broker both strengths are 0.
//
// The broker is the intersection of r1's codomain and r2's domain unless
// WithBroker(BrokerUnion) is given.
func Composition[K comparable](r1, r2 *Relation[K], opts ...Option) *Relation[K] {
	o := newOptions(opts)

	broker := brokerKeys(o.broker, r1.Codomain(), r2.Domain()).ToSlice()

	o.logger.Debug("composition",
		zap.Stringer("rule", o.broker),
		zap.Int("broker", len(broker)),
		zap.Int("rows", r1.Rows()),
		zap.Int("cols", r2.Cols()),
	)

	strengthA := make([]float64, r1.Rows())
	for i, a := range r1.domain.keys {
		strengthA[i] = chain(broker, func(b K) float64 {
			return r1.Get(a, b)
		})
	}

	strengthB := make([]float64, r2.Cols())
	for j, d := range r2.codomain.keys {
		strengthB[j] = chain(broker, func(b K) float64 {
			return r2.Get(b, d)
		})
	}

	m := newDense(len(strengthA), len(strengthB))
	m.fill(func(i, j int) float64 {
		return math.Max(strengthA[i], strengthB[j])
	})

	return build(r1.domain, r2.codomain, m)
}

// chain returns the smallest degree over the broker keys, or 0 when there are
// none.
func chain[K comparable](broker []K, degree func(K) float64) float64 {
	if len(broker) == 0 {
		return 0.0
	}

	lowest := math.Inf(1)
	for _, b := range broker {
		lowest = math.Min(lowest, degree(b))
	}

	return lowest
}

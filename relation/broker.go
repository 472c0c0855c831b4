package relation

import "github.com/rdeusser/fuzzy/set"

//go:generate go run ../tools/gen-enum -type=BrokerRule -generate-flag

// BrokerRule selects the bridging key set used by Composition to chain the
// first relation's codomain to the second relation's domain.
type BrokerRule uint8

const (
	// BrokerIntersection bridges through the keys shared by both universes.
	// This is the conventional max-min composition and the default.
	BrokerIntersection BrokerRule = iota // name=intersection

	// BrokerUnion bridges through every key of either universe. Keys missing
	// from one side read as 0 there, so this rule usually drives the chained
	// strengths to 0.
	BrokerUnion // name=union
)

func brokerKeys[K comparable](rule BrokerRule, codomain, domain set.Interface[K]) set.Interface[K] {
	if rule == BrokerUnion {
		return codomain.Union(domain)
	}

	return codomain.Intersect(domain)
}

package app

import "math/rand/v2"

// Decider resolves a simulated outcome: it reports success with probability
// p.
type Decider func(p float64) bool

// RandomDecider draws from r. A nil r uses the global source.
func RandomDecider(r *rand.Rand) Decider {
	return func(p float64) bool {
		if r == nil {
			return rand.Float64() < p
		}
		return r.Float64() < p
	}
}

// SeededDecider is RandomDecider over a PCG source seeded with seed.
func SeededDecider(seed uint64) Decider {
	return RandomDecider(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Always returns a decider with a fixed outcome.
func Always(ok bool) Decider {
	return func(float64) bool { return ok }
}

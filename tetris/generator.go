package tetris

import "math/rand/v2"

// Generator produces the kind of the next piece to spawn.
type Generator interface {
	Next() Kind
}

// RandomGenerator picks each kind uniformly and independently.
type RandomGenerator struct {
	rng *rand.Rand
}

// NewRandomGenerator returns a uniform generator. A nil rng is replaced with
// a randomly seeded PCG source.
func NewRandomGenerator(rng *rand.Rand) *RandomGenerator {
	if rng == nil {
		rng = newRand()
	}
	return &RandomGenerator{rng: rng}
}

func (g *RandomGenerator) Next() Kind {
	return Kind(g.rng.IntN(KindCount))
}

// BagGenerator deals all seven kinds in a shuffled order before reshuffling,
// so every run of seven draws contains each kind exactly once.
type BagGenerator struct {
	rng *rand.Rand
	bag []Kind
}

// NewBagGenerator returns a 7-bag generator. A nil rng is replaced with a
// randomly seeded PCG source.
func NewBagGenerator(rng *rand.Rand) *BagGenerator {
	if rng == nil {
		rng = newRand()
	}
	return &BagGenerator{rng: rng}
}

func (g *BagGenerator) Next() Kind {
	if len(g.bag) == 0 {
		g.bag = Kinds()
		g.rng.Shuffle(len(g.bag), func(i, j int) {
			g.bag[i], g.bag[j] = g.bag[j], g.bag[i]
		})
	}

	kind := g.bag[0]
	g.bag = g.bag[1:]
	return kind
}

// SequenceGenerator cycles through a fixed list of kinds.
type SequenceGenerator struct {
	kinds []Kind
	index int
}

// NewSequenceGenerator returns a generator that repeats kinds in order.
func NewSequenceGenerator(kinds ...Kind) *SequenceGenerator {
	if len(kinds) == 0 {
		panic("tetris: sequence generator needs at least one kind")
	}
	return &SequenceGenerator{kinds: kinds}
}

func (g *SequenceGenerator) Next() Kind {
	kind := g.kinds[g.index%len(g.kinds)]
	g.index++
	return kind
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

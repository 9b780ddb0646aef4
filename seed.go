// Copyright (C) 2018. See AUTHORS.

package mt64

// See Knuth. The scalar initializer is the MMIX multiplier applied to the
// previous word xored with its top two bits.
const (
	f = 6364136223846793005

	arraySeed = 19650218
	arrayMul1 = 3935559000370003845
	arrayMul2 = 2862933555777941757
)

// seed fills the state from a single word and marks it exhausted so the
// first read twists.
func (g *Generator) seed(seed uint64) {
	g.state[0] = seed
	for i := 1; i < n; i++ {
		prev := g.state[i-1]
		g.state[i] = f*(prev^(prev>>62)) + uint64(i)
	}
	g.left = 0
	g.seeded = true
}

// seedArray mixes every word of seed into the state. It must not be called
// with an empty seed.
func (g *Generator) seedArray(seed []uint64) {
	g.seed(arraySeed)

	i, j := 1, 0
	k := n
	if len(seed) > k {
		k = len(seed)
	}

	for ; k > 0; k-- {
		prev := g.state[i-1]
		g.state[i] = (g.state[i] ^ ((prev ^ (prev >> 62)) * arrayMul1)) +
			seed[j] + uint64(j)
		i++
		if i >= n {
			g.state[0] = g.state[n-1]
			i = 1
		}
		j++
		if j >= len(seed) {
			j = 0
		}
	}

	for k = n - 1; k > 0; k-- {
		prev := g.state[i-1]
		g.state[i] = (g.state[i] ^ ((prev ^ (prev >> 62)) * arrayMul2)) -
			uint64(i)
		i++
		if i >= n {
			g.state[0] = g.state[n-1]
			i = 1
		}
	}

	// msb is 1, assuring a non-zero initial array
	g.state[0] = 1 << 63
}

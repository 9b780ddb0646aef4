// Copyright (C) 2018. See AUTHORS.

package mt64

import (
	"math/bits"
)

// canonicalSeed is the array seed used by mt19937-64.out.txt.
var canonicalSeed = []uint64{0x12345, 0x23456, 0x34567, 0x45678}

// canonicalOutput is the head of the published output for canonicalSeed.
var canonicalOutput = []uint64{
	7266447313870364031,
	4946485549665804864,
	16945909448695747420,
	16394063075524226720,
	4873882236456199058,
}

// refGen is a slow and straightforward rendition of the reference code that
// twists one word at a time with modular indexes. It shares no code with
// Generator so the two can check each other.
type refGen struct {
	mt  []uint64
	mti int
}

func newRefGen(seed uint64) *refGen {
	r := &refGen{mt: make([]uint64, 312)}
	r.mt[0] = seed
	for i := 1; i < 312; i++ {
		x := r.mt[i-1] ^ (r.mt[i-1] >> 62)
		_, lo := bits.Mul64(6364136223846793005, x)
		r.mt[i], _ = bits.Add64(lo, uint64(i), 0)
	}
	r.mti = 312
	return r
}

func newRefGenArray(key []uint64) *refGen {
	r := newRefGen(19650218)
	i, j := 1, 0
	k := len(key)
	if k < 312 {
		k = 312
	}
	for ; k > 0; k-- {
		x := r.mt[i-1] ^ (r.mt[i-1] >> 62)
		_, lo := bits.Mul64(x, 3935559000370003845)
		r.mt[i] = (r.mt[i] ^ lo) + key[j] + uint64(j)
		i, j = i+1, (j+1)%len(key)
		if i >= 312 {
			r.mt[0] = r.mt[311]
			i = 1
		}
	}
	for k = 311; k > 0; k-- {
		x := r.mt[i-1] ^ (r.mt[i-1] >> 62)
		_, lo := bits.Mul64(x, 2862933555777941757)
		r.mt[i], _ = bits.Sub64(r.mt[i]^lo, uint64(i), 0)
		i++
		if i >= 312 {
			r.mt[0] = r.mt[311]
			i = 1
		}
	}
	r.mt[0] = 1 << 63
	return r
}

func (r *refGen) next() uint64 {
	if r.mti >= 312 {
		for i := 0; i < 312; i++ {
			x := r.mt[i]&0xffffffff80000000 | r.mt[(i+1)%312]&0x7fffffff
			v := r.mt[(i+156)%312] ^ (x >> 1)
			if x%2 == 1 {
				v ^= 0xb5026f5aa96619e9
			}
			r.mt[i] = v
		}
		r.mti = 0
	}
	x := r.mt[r.mti]
	r.mti++
	x ^= (x >> 29) & 0x5555555555555555
	x ^= (x << 17) & 0x71d67fffeda60000
	x ^= (x << 37) & 0xfff7eee000000000
	x ^= x >> 43
	return x
}

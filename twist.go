// Copyright (C) 2018. See AUTHORS.

package mt64

const (
	n = 312 // state size in words
	m = 156 // middle word offset

	upper = 0xffffffff80000000 // most significant 33 bits
	lower = 0x000000007fffffff // least significant 31 bits
)

// mag01 is indexed by the low bit of the combined word so the twist does
// not branch.
var mag01 = [2]uint64{0, 0xb5026f5aa96619e9}

// twist regenerates every word of the state in place and marks it unread.
// the order matters: the tail of the pass reads words the head of the pass
// already rewrote.
func (g *Generator) twist() {
	s := &g.state

	var i int
	for ; i < n-m; i++ {
		y := s[i]&upper | s[i+1]&lower
		s[i] = s[i+m] ^ y>>1 ^ mag01[y&1]
	}
	for ; i < n-1; i++ {
		y := s[i]&upper | s[i+1]&lower
		s[i] = s[i+m-n] ^ y>>1 ^ mag01[y&1]
	}
	y := s[n-1]&upper | s[0]&lower
	s[n-1] = s[m-1] ^ y>>1 ^ mag01[y&1]

	g.left = n
	twists.Inc(1)
}

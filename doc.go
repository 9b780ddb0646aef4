// Copyright (C) 2018. See AUTHORS.

/*
Package mt64 implements the 64-bit Mersenne Twister (MT19937-64) as described
by Matsumoto and Nishimura. The output matches the reference implementation
word for word for both the scalar and the array seeding routines.

The generator is not cryptographically secure and holds no locks. Each
Generator should be owned by a single goroutine, or guarded by the caller.

	g := mt64.New()
	x := g.Uint64()

	seeded, err := mt64.NewFromSeed([]uint64{0x12345, 0x23456, 0x34567, 0x45678})
	if err != nil {
		// the seed was empty
	}

The zero value of a Generator is ready to use and behaves like New(). A
Generator is also a rand.Source64, so it can back a *rand.Rand.
*/
package mt64

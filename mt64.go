// Copyright (C) 2018. See AUTHORS.

package mt64

import (
	"math/rand"

	"github.com/pkg/errors"
	"github.com/spacemonkeygo/monkit/v3"
)

var (
	mon = monkit.Package()

	twists       = mon.Counter("twists")
	invalidSeeds = mon.Counter("invalid_seeds")
)

// DefaultSeed is the seed used by New. It is the default of the reference
// implementation.
const DefaultSeed = 5489

// ErrInvalidSeed is returned when an array seed has no words.
var ErrInvalidSeed = errors.New("mt64: seed must contain at least one word")

// tempering shifts and masks
const (
	uShift = 29
	uMask  = 0x5555555555555555
	sShift = 17
	sMask  = 0x71d67fffeda60000
	tShift = 37
	tMask  = 0xfff7eee000000000
	lShift = 43
)

// Make sure Generator is a rand.Source64
var _ rand.Source64 = (*Generator)(nil)

// Generator is an MT19937-64 generator. It is not safe for concurrent use.
// The zero value is the same as New().
type Generator struct {
	state  [n]uint64
	left   int // unread words at the end of state. 0 means exhausted.
	seeded bool
}

// New returns a Generator seeded with DefaultSeed.
func New() *Generator {
	return NewWithSeed(DefaultSeed)
}

// NewWithSeed returns a Generator seeded with a single word. Every seed is
// valid.
func NewWithSeed(seed uint64) *Generator {
	g := new(Generator)
	g.seed(seed)
	return g
}

// NewFromSeed returns a Generator seeded with every word in seed. It returns
// ErrInvalidSeed if seed is empty.
func NewFromSeed(seed []uint64) (*Generator, error) {
	g := new(Generator)
	if err := g.SeedArray(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// SeedUint64 reseeds the Generator with a single word.
func (g *Generator) SeedUint64(seed uint64) {
	g.seed(seed)
}

// SeedArray reseeds the Generator with every word in seed. If seed is empty
// it returns ErrInvalidSeed and the Generator is left unchanged.
func (g *Generator) SeedArray(seed []uint64) error {
	if len(seed) == 0 {
		invalidSeeds.Inc(1)
		return errors.WithStack(ErrInvalidSeed)
	}
	g.seedArray(seed)
	return nil
}

// Uint64 returns the next word of the sequence.
func (g *Generator) Uint64() uint64 {
	// this branch is taken once every n calls. it also causes the zero value
	// of a Generator to be the same as New().
	if g.left <= 0 {
		if !g.seeded {
			g.seed(DefaultSeed)
		}
		g.twist()
	}

	y := g.state[n-g.left]
	g.left--

	y ^= (y >> uShift) & uMask
	y ^= (y << sShift) & sMask
	y ^= (y << tShift) & tMask
	y ^= y >> lShift
	return y
}

// Int63 returns a positive 63 bit integer in an int64. It is the next word
// with the top bit cleared.
func (g *Generator) Int63() int64 {
	return int64(g.Uint64() & (1<<63 - 1))
}

// Seed reseeds the Generator with a single word so that it can be used as a
// rand.Source.
func (g *Generator) Seed(seed int64) {
	g.seed(uint64(seed))
}

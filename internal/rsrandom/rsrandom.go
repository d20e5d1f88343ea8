// Package rsrandom is a bit-exact port of the 48-bit linear congruential
// generator behind java.util.Random. The game server seeds it from the
// rune-date, so matching its output lets us predict daily rotations.
package rsrandom

import (
	"errors"
	"fmt"
)

const (
	multiplier = 0x5DEECE66D
	addend     = 0xB
	mask       = (int64(1) << 48) - 1
)

// ErrInvalidBound is returned when a bounded draw is asked for a non-positive bound.
var ErrInvalidBound = errors.New("bound must be positive")

// Generator holds the 48-bit state. It is not safe for concurrent use;
// callers create one per draw site.
type Generator struct {
	seed int64
}

// New seeds a generator. Any int64 is accepted and scrambled into 48 bits.
func New(seed int64) *Generator {
	return &Generator{seed: scramble(seed)}
}

func scramble(seed int64) int64 {
	return (seed ^ multiplier) & mask
}

// Next advances the state and returns its top bits as a signed 32-bit value.
// bits must be in [1, 32].
func (g *Generator) Next(bits int) int32 {
	if bits < 1 || bits > 32 {
		panic(fmt.Sprintf("rsrandom: bits out of range: %d", bits))
	}
	g.seed = (g.seed*multiplier + addend) & mask
	return int32(g.seed >> (48 - bits))
}

// NextInt returns a value over the full int32 range.
func (g *Generator) NextInt() int32 {
	return g.Next(32)
}

// NextIntn returns a value in [0, bound).
func (g *Generator) NextIntn(bound int32) (int32, error) {
	if bound <= 0 {
		return 0, fmt.Errorf("rsrandom: %w: %d", ErrInvalidBound, bound)
	}

	// Power of two: take the high bits directly.
	if bound&-bound == bound {
		return int32((int64(bound) * int64(g.Next(31))) >> 31), nil
	}

	// Reject draws from the final partial bucket near the int32 overflow.
	// The int32 sum wraps negative exactly when it overflows.
	for {
		bits := g.Next(31)
		val := bits % bound
		if bits-val+(bound-1) >= 0 {
			return val, nil
		}
	}
}


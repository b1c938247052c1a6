// Package shuffle derives a deterministic board order from a shared text seed.
//
// Two players who type the same seed must end up with the same board, on any
// machine. The generator is therefore specified bit-for-bit using only 32-bit
// integer arithmetic:
//
//  1. The seed text is folded into a 32-bit hash, one rune at a time:
//     h = (h<<5 - h) + uint32(r), wrapping on overflow (i.e. h = h*31 + r).
//  2. The hash seeds an xorshift32 stream (x ^= x<<13; x ^= x>>17; x ^= x<<5).
//     A zero hash is replaced with the constant 0x9E3779B9 since xorshift
//     has a fixed point at zero.
//  3. A Fisher-Yates pass walks from the last index down, drawing one value
//     per step and mapping it to a partner index with x mod (i+1).
//
// Floating-point or transcendental functions are deliberately avoided; they
// are not guaranteed bit-identical across platforms.
package shuffle

import (
	"errors"

	"github.com/KonarRetronex/Customaize-GuessWho/internal/character"
)

// ErrEmptySeed is returned when a caller asks for a seeded shuffle without a
// seed. An empty seed is a precondition violation, never silently substituted.
var ErrEmptySeed = errors.New("shuffle: seed must not be empty")

const zeroSeedReplacement = 0x9E3779B9

// HashSeed folds seed text into a 32-bit value. Identical text always yields
// an identical hash; differing whitespace yields a different one, by design.
func HashSeed(seed string) uint32 {
	var h uint32
	for _, r := range seed {
		h = (h << 5) - h + uint32(r)
	}
	return h
}

// stream is an xorshift32 generator.
type stream struct {
	x uint32
}

func newStream(hash uint32) *stream {
	if hash == 0 {
		hash = zeroSeedReplacement
	}
	return &stream{x: hash}
}

func (s *stream) next() uint32 {
	s.x ^= s.x << 13
	s.x ^= s.x >> 17
	s.x ^= s.x << 5
	return s.x
}

// Shuffle returns a new slice holding the entries of in permuted by the seed.
// The input slice is never mutated. Sequences of length 0 or 1 are returned
// as a copy of the input.
func Shuffle(in []character.Entry, seed string) ([]character.Entry, error) {
	if seed == "" {
		return nil, ErrEmptySeed
	}

	out := make([]character.Entry, len(in))
	copy(out, in)
	if len(out) < 2 {
		return out, nil
	}

	s := newStream(HashSeed(seed))
	for i := len(out) - 1; i > 0; i-- {
		j := int(s.next() % uint32(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

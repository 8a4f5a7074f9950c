// Package rng implements the Park-Miller minimal-standard linear congruential
// generator used by the calculator's rand command.
package rng

// Multiplier and Modulus are the Park-Miller minimal-standard LCG parameters.
const (
	Multiplier int64 = 16807
	Modulus    int64 = 2147483647 // 2^31 - 1
)

// DefaultSeed is the seed a fresh session starts from.
const DefaultSeed int64 = 420

// Stream is a Park-Miller LCG cursor over a stream of pseudo-random numbers.
type Stream struct {
	x int64
}

// NewStream creates a Stream positioned at seed.
func NewStream(seed int64) *Stream {
	return &Stream{x: seed}
}

// Next returns the current value and advances the stream.
func (s *Stream) Next() int64 {
	current := s.x
	s.x = (Multiplier * s.x) % Modulus
	return current
}

// State returns the stream's current (not yet emitted) value.
func (s *Stream) State() int64 {
	return s.x
}

package main

import (
	crand "crypto/rand"
	"encoding/binary"
)

// RandStream yields uniform values in [0,1). The engine draws from it
// on control ticks and collapse events; tests substitute a
// deterministic sequence.
type RandStream interface {
	NextUniform() float64
}

// xorshiftRand is a xorshift32 PRNG. Seed 0 is mapped to 1 to avoid
// locking up the generator.
type xorshiftRand struct {
	state uint32
}

func newXorshiftRand(seed uint32) *xorshiftRand {
	if seed == 0 {
		seed = 1
	}
	return &xorshiftRand{state: seed}
}

// newEntropyRand seeds a xorshiftRand from the OS entropy source.
func newEntropyRand() *xorshiftRand {
	var b [4]byte
	if _, err := crand.Read(b[:]); err != nil {
		return newXorshiftRand(0x9e3779b9)
	}
	return newXorshiftRand(binary.LittleEndian.Uint32(b[:]))
}

func (r *xorshiftRand) NextUniform() float64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 17
	r.state ^= r.state << 5
	// Divide by 2^32 so the result stays strictly below 1.
	return float64(r.state) / (float64(^uint32(0)) + 1)
}

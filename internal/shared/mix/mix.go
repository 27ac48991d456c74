package mix

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Golden is the SplitMix64 increment (2^64 / phi, forced odd).
const Golden = 0x9e3779b97f4a7c15

// Mix64 is the canonical SplitMix64 finalizer. It avalanches every input
// bit across the whole output word, so sequential inputs produce
// independent-looking values.
func Mix64(z uint64) uint64 {
	z ^= z >> 30
	z *= 0xbf58476d1ce4e5b9
	z ^= z >> 27
	z *= 0x94d049bb133111eb
	z ^= z >> 31
	return z
}

// Fill derives one well-mixed value per register from a single seed by
// walking the SplitMix64 stream. Register i always receives
// Mix64(seed + Golden*(i+1)), independent of len(regs).
func Fill(seed uint64, regs []uint64) {
	for i := range regs {
		seed += Golden
		regs[i] = Mix64(seed)
	}
}

// FromText turns an arbitrary string into a 64-bit seed.
func FromText(s string) uint64 {
	return xxh3.HashString(s)
}

// Entropy returns a seed drawn from the operating system entropy source.
// crypto/rand never fails on supported platforms; on the impossible error
// path a fixed sentinel keeps the caller deterministic rather than zeroed.
func Entropy() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return Golden
	}
	return binary.LittleEndian.Uint64(b[:])
}

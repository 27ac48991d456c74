package ashrand

import "github.com/Borislavv/go-ash-rand/internal/shared/mix"

// TagSplitMix64 identifies SplitMix64 in the registry.
const TagSplitMix64 = "SpMx"

// SplitMix64 is Steele, Lea and Flood's SplitMix64: a single 64-bit
// counter advanced by a golden-ratio increment, with the output produced
// by a multiplicative-xorshift finalizer of the new counter value. Every
// state is valid, the period is 2^64 and the counter structure gives
// closed-form Skip and an exact PreviousU64.
//
// This is the reference implementation of the pattern all generators in
// this package follow: deterministic seeding, one atomic state transition
// per NextU64, wrapping uint64 arithmetic throughout, and exact algebraic
// inverses wherever Skip or PreviousU64 are offered.
type SplitMix64 struct {
	fullAccess
	state uint64
}

// NewSplitMix64 returns a SplitMix64 seeded from the system entropy
// source.
func NewSplitMix64() *SplitMix64 {
	return NewSplitMix64Seeded(mix.Entropy())
}

// NewSplitMix64Seeded returns a SplitMix64 seeded with seed.
func NewSplitMix64Seeded(seed uint64) *SplitMix64 {
	g := &SplitMix64{}
	g.Seed(seed)
	return g
}

// NewSplitMix64FromState returns a SplitMix64 with its counter set to
// state verbatim.
func NewSplitMix64FromState(state uint64) *SplitMix64 {
	return &SplitMix64{state: state}
}

func (g *SplitMix64) Tag() string     { return TagSplitMix64 }
func (g *SplitMix64) StateCount() int { return 1 }

func (g *SplitMix64) SupportsSkip() bool     { return true }
func (g *SplitMix64) SupportsPrevious() bool { return true }

// Seed stores seed verbatim: every counter value is a valid state and the
// finalizer decorrelates nearby seeds on its own.
func (g *SplitMix64) Seed(seed uint64) { g.state = seed }

func (g *SplitMix64) NextU64() uint64 {
	g.state += mix.Golden
	return mix.Mix64(g.state)
}

func (g *SplitMix64) SelectState(i int) (uint64, error) {
	if err := stateIndexErr(i, 1); err != nil {
		return 0, err
	}
	return g.state, nil
}

func (g *SplitMix64) SetSelectedState(i int, v uint64) error {
	if err := stateIndexErr(i, 1); err != nil {
		return err
	}
	g.state = v
	return nil
}

// Skip moves the counter distance increments forward in O(1) and returns
// the output the last of those steps would have produced. Passing the
// two's complement of a negative count steps backward.
func (g *SplitMix64) Skip(distance uint64) (uint64, error) {
	g.state += mix.Golden * distance
	return mix.Mix64(g.state), nil
}

func (g *SplitMix64) PreviousU64() (uint64, error) {
	out := mix.Mix64(g.state)
	g.state -= mix.Golden
	return out, nil
}

func (g *SplitMix64) Copy() Generator {
	c := *g
	return &c
}

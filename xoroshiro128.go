package ashrand

import (
	"math/bits"

	"github.com/Borislavv/go-ash-rand/internal/shared/mix"
)

// TagXoroshiro128PP identifies Xoroshiro128PP in the registry.
const TagXoroshiro128PP = "XoRo"

// Xoroshiro128PP is Blackman and Vigna's xoroshiro128++: two 64-bit
// registers updated by rotate/shift/xor, with a rotated-sum output. The
// all-zero state is the one fixed point of the transition and is repaired
// at every write.
type Xoroshiro128PP struct {
	fullAccess
	noSkip
	noPrevious
	s0, s1 uint64
}

func NewXoroshiro128PP() *Xoroshiro128PP { return NewXoroshiro128PPSeeded(mix.Entropy()) }

func NewXoroshiro128PPSeeded(seed uint64) *Xoroshiro128PP {
	g := &Xoroshiro128PP{}
	g.Seed(seed)
	return g
}

func NewXoroshiro128PPFromState(s0, s1 uint64) *Xoroshiro128PP {
	g := &Xoroshiro128PP{s0: s0, s1: s1}
	g.repair()
	return g
}

func (g *Xoroshiro128PP) Tag() string     { return TagXoroshiro128PP }
func (g *Xoroshiro128PP) StateCount() int { return 2 }

func (g *Xoroshiro128PP) repair() {
	if g.s0 == 0 && g.s1 == 0 {
		g.s0 = mix.Golden
	}
}

func (g *Xoroshiro128PP) Seed(seed uint64) {
	var regs [2]uint64
	mix.Fill(seed, regs[:])
	g.s0, g.s1 = regs[0], regs[1]
	g.repair()
}

func (g *Xoroshiro128PP) NextU64() uint64 {
	s0, s1 := g.s0, g.s1
	result := bits.RotateLeft64(s0+s1, 17) + s0

	s1 ^= s0
	g.s0 = bits.RotateLeft64(s0, 49) ^ s1 ^ (s1 << 21)
	g.s1 = bits.RotateLeft64(s1, 28)

	return result
}

func (g *Xoroshiro128PP) SelectState(i int) (uint64, error) {
	if err := stateIndexErr(i, 2); err != nil {
		return 0, err
	}
	if i == 0 {
		return g.s0, nil
	}
	return g.s1, nil
}

func (g *Xoroshiro128PP) SetSelectedState(i int, v uint64) error {
	if err := stateIndexErr(i, 2); err != nil {
		return err
	}
	if i == 0 {
		g.s0 = v
	} else {
		g.s1 = v
	}
	g.repair()
	return nil
}

func (g *Xoroshiro128PP) Copy() Generator {
	c := *g
	return &c
}

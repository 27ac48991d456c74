package ashrand

import (
	"math/bits"

	"github.com/Borislavv/go-ash-rand/internal/shared/mix"
)

// TagLehmer128 identifies Lehmer128 in the registry.
const TagLehmer128 = "Lmr2"

const lehmerMul = 0xda942042e4dd58b5

// Lehmer128 is the 128-bit multiplicative congruential generator
// popularized by Lemire as lehmer64: the state is multiplied by a fixed
// odd constant mod 2^128 and the high half is the output. The state must
// stay odd for the generator to retain its full 2^126 period, so the low
// register is forced odd at every write. Register 0 is the low half,
// register 1 the high half.
type Lehmer128 struct {
	fullAccess
	noSkip
	noPrevious
	lo, hi uint64
}

func NewLehmer128() *Lehmer128 { return NewLehmer128Seeded(mix.Entropy()) }

func NewLehmer128Seeded(seed uint64) *Lehmer128 {
	g := &Lehmer128{}
	g.Seed(seed)
	return g
}

func NewLehmer128FromState(lo, hi uint64) *Lehmer128 {
	return &Lehmer128{lo: lo | 1, hi: hi}
}

func (g *Lehmer128) Tag() string     { return TagLehmer128 }
func (g *Lehmer128) StateCount() int { return 2 }

func (g *Lehmer128) Seed(seed uint64) {
	var regs [2]uint64
	mix.Fill(seed, regs[:])
	g.lo = regs[0] | 1
	g.hi = regs[1]
}

func (g *Lehmer128) NextU64() uint64 {
	hi, lo := bits.Mul64(g.lo, lehmerMul)
	hi += g.hi * lehmerMul
	g.lo, g.hi = lo, hi
	return g.hi
}

func (g *Lehmer128) SelectState(i int) (uint64, error) {
	if err := stateIndexErr(i, 2); err != nil {
		return 0, err
	}
	if i == 0 {
		return g.lo, nil
	}
	return g.hi, nil
}

func (g *Lehmer128) SetSelectedState(i int, v uint64) error {
	if err := stateIndexErr(i, 2); err != nil {
		return err
	}
	if i == 0 {
		g.lo = v | 1
	} else {
		g.hi = v
	}
	return nil
}

func (g *Lehmer128) Copy() Generator {
	c := *g
	return &c
}

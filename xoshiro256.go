package ashrand

import (
	"math/bits"

	"github.com/Borislavv/go-ash-rand/internal/shared/mix"
)

// Registry tags for the two xoshiro256 variants.
const (
	TagXoshiro256SS = "XoSS"
	TagXoshiro256PP = "XoPP"
)

// xoshiro256 holds the shared four-register state and transition of the
// xoshiro256 family; the concrete types differ only in their output
// scrambler. All-zero is the one forbidden state.
type xoshiro256 struct {
	fullAccess
	noSkip
	noPrevious
	s [4]uint64
}

func (g *xoshiro256) StateCount() int { return 4 }

func (g *xoshiro256) repair() {
	if g.s[0] == 0 && g.s[1] == 0 && g.s[2] == 0 && g.s[3] == 0 {
		g.s[0] = mix.Golden
	}
}

func (g *xoshiro256) Seed(seed uint64) {
	mix.Fill(seed, g.s[:])
	g.repair()
}

// step applies the shared transition. The output is computed by the
// caller from the pre-step registers.
func (g *xoshiro256) step() {
	t := g.s[1] << 17

	g.s[2] ^= g.s[0]
	g.s[3] ^= g.s[1]
	g.s[1] ^= g.s[2]
	g.s[0] ^= g.s[3]

	g.s[2] ^= t

	g.s[3] = bits.RotateLeft64(g.s[3], 45)
}

func (g *xoshiro256) SelectState(i int) (uint64, error) {
	if err := stateIndexErr(i, 4); err != nil {
		return 0, err
	}
	return g.s[i], nil
}

func (g *xoshiro256) SetSelectedState(i int, v uint64) error {
	if err := stateIndexErr(i, 4); err != nil {
		return err
	}
	g.s[i] = v
	g.repair()
	return nil
}

// Xoshiro256SS is Blackman and Vigna's xoshiro256**, the all-purpose
// member of the family with the starstar multiply-rotate-multiply output
// scrambler.
type Xoshiro256SS struct {
	xoshiro256
}

func NewXoshiro256SS() *Xoshiro256SS { return NewXoshiro256SSSeeded(mix.Entropy()) }

func NewXoshiro256SSSeeded(seed uint64) *Xoshiro256SS {
	g := &Xoshiro256SS{}
	g.Seed(seed)
	return g
}

func NewXoshiro256SSFromState(s0, s1, s2, s3 uint64) *Xoshiro256SS {
	g := &Xoshiro256SS{xoshiro256{s: [4]uint64{s0, s1, s2, s3}}}
	g.repair()
	return g
}

func (g *Xoshiro256SS) Tag() string { return TagXoshiro256SS }

func (g *Xoshiro256SS) NextU64() uint64 {
	result := bits.RotateLeft64(g.s[1]*5, 7) * 9
	g.step()
	return result
}

func (g *Xoshiro256SS) Copy() Generator {
	c := *g
	return &c
}

// Xoshiro256PP is xoshiro256++, trading the starstar scrambler for a
// rotated sum of the first and last registers.
type Xoshiro256PP struct {
	xoshiro256
}

func NewXoshiro256PP() *Xoshiro256PP { return NewXoshiro256PPSeeded(mix.Entropy()) }

func NewXoshiro256PPSeeded(seed uint64) *Xoshiro256PP {
	g := &Xoshiro256PP{}
	g.Seed(seed)
	return g
}

func NewXoshiro256PPFromState(s0, s1, s2, s3 uint64) *Xoshiro256PP {
	g := &Xoshiro256PP{xoshiro256{s: [4]uint64{s0, s1, s2, s3}}}
	g.repair()
	return g
}

func (g *Xoshiro256PP) Tag() string { return TagXoshiro256PP }

func (g *Xoshiro256PP) NextU64() uint64 {
	result := bits.RotateLeft64(g.s[0]+g.s[3], 23) + g.s[0]
	g.step()
	return result
}

func (g *Xoshiro256PP) Copy() Generator {
	c := *g
	return &c
}

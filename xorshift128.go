package ashrand

import "github.com/Borislavv/go-ash-rand/internal/shared/mix"

// TagXorshift128Plus identifies Xorshift128Plus in the registry.
const TagXorshift128Plus = "X128"

// Xorshift128Plus is Vigna's xorshift128+: a two-register xorshift with
// the sum of the old registers as output. Superseded in quality by the
// xoroshiro/xoshiro family but kept for stream compatibility with the
// many engines that shipped it.
type Xorshift128Plus struct {
	fullAccess
	noSkip
	noPrevious
	s0, s1 uint64
}

func NewXorshift128Plus() *Xorshift128Plus { return NewXorshift128PlusSeeded(mix.Entropy()) }

func NewXorshift128PlusSeeded(seed uint64) *Xorshift128Plus {
	g := &Xorshift128Plus{}
	g.Seed(seed)
	return g
}

func NewXorshift128PlusFromState(s0, s1 uint64) *Xorshift128Plus {
	g := &Xorshift128Plus{s0: s0, s1: s1}
	g.repair()
	return g
}

func (g *Xorshift128Plus) Tag() string     { return TagXorshift128Plus }
func (g *Xorshift128Plus) StateCount() int { return 2 }

func (g *Xorshift128Plus) repair() {
	if g.s0 == 0 && g.s1 == 0 {
		g.s0 = mix.Golden
	}
}

func (g *Xorshift128Plus) Seed(seed uint64) {
	var regs [2]uint64
	mix.Fill(seed, regs[:])
	g.s0, g.s1 = regs[0], regs[1]
	g.repair()
}

func (g *Xorshift128Plus) NextU64() uint64 {
	t, s := g.s0, g.s1
	v := t + s

	g.s0 = s
	t ^= t << 23
	g.s1 = t ^ s ^ (t >> 18) ^ (s >> 5)

	return v
}

func (g *Xorshift128Plus) SelectState(i int) (uint64, error) {
	if err := stateIndexErr(i, 2); err != nil {
		return 0, err
	}
	if i == 0 {
		return g.s0, nil
	}
	return g.s1, nil
}

func (g *Xorshift128Plus) SetSelectedState(i int, v uint64) error {
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

func (g *Xorshift128Plus) Copy() Generator {
	c := *g
	return &c
}

package ashrand

import (
	"math/bits"

	"github.com/Borislavv/go-ash-rand/internal/shared/mix"
)

// TagWyrand identifies Wyrand in the registry.
const TagWyrand = "WyRd"

const (
	wyrandIncrement = 0xa0761d6478bd642f
	wyrandXor       = 0xe7037ed1a0b428db
)

// Wyrand is Wang Yi's wyrand: a counter-based generator whose output mixes
// the counter through one 64x64 -> 128 bit multiply, folding the halves
// together. Counter structure gives O(1) Skip and exact PreviousU64.
type Wyrand struct {
	fullAccess
	state uint64
}

func NewWyrand() *Wyrand { return NewWyrandSeeded(mix.Entropy()) }

func NewWyrandSeeded(seed uint64) *Wyrand {
	g := &Wyrand{}
	g.Seed(seed)
	return g
}

func NewWyrandFromState(state uint64) *Wyrand {
	return &Wyrand{state: state}
}

func (g *Wyrand) Tag() string     { return TagWyrand }
func (g *Wyrand) StateCount() int { return 1 }

func (g *Wyrand) SupportsSkip() bool     { return true }
func (g *Wyrand) SupportsPrevious() bool { return true }

func (g *Wyrand) Seed(seed uint64) {
	var regs [1]uint64
	mix.Fill(seed, regs[:])
	g.state = regs[0]
}

func wyrandOut(s uint64) uint64 {
	hi, lo := bits.Mul64(s, s^wyrandXor)
	return hi ^ lo
}

func (g *Wyrand) NextU64() uint64 {
	g.state += wyrandIncrement
	return wyrandOut(g.state)
}

func (g *Wyrand) SelectState(i int) (uint64, error) {
	if err := stateIndexErr(i, 1); err != nil {
		return 0, err
	}
	return g.state, nil
}

func (g *Wyrand) SetSelectedState(i int, v uint64) error {
	if err := stateIndexErr(i, 1); err != nil {
		return err
	}
	g.state = v
	return nil
}

func (g *Wyrand) Skip(distance uint64) (uint64, error) {
	g.state += wyrandIncrement * distance
	return wyrandOut(g.state), nil
}

func (g *Wyrand) PreviousU64() (uint64, error) {
	out := wyrandOut(g.state)
	g.state -= wyrandIncrement
	return out, nil
}

func (g *Wyrand) Copy() Generator {
	c := *g
	return &c
}

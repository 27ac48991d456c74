package ashrand

import "github.com/Borislavv/go-ash-rand/internal/shared/mix"

// TagPCGRXSMXS identifies PCGRXSMXS in the registry.
const TagPCGRXSMXS = "PcgR"

const pcgOutMul = 0xaef17502108ef2d9

// pcgOutput is the RXS-M-XS permutation: a state-dependent random
// xorshift, a multiply by a fixed odd constant and a final xorshift.
func pcgOutput(state uint64) uint64 {
	x := (state >> ((state >> 59) + 5)) ^ state
	x *= pcgOutMul
	return (x >> 43) ^ x
}

// PCGRXSMXS is the 64-bit PCG variant with an MMIX LCG backbone and
// O'Neill's RXS-M-XS output permutation applied to the pre-step state.
// The invertible backbone carries over LCG64's exact Skip and
// PreviousU64 while the permutation scrambles the weak low LCG bits.
type PCGRXSMXS struct {
	fullAccess
	state uint64
}

func NewPCGRXSMXS() *PCGRXSMXS { return NewPCGRXSMXSSeeded(mix.Entropy()) }

func NewPCGRXSMXSSeeded(seed uint64) *PCGRXSMXS {
	g := &PCGRXSMXS{}
	g.Seed(seed)
	return g
}

func NewPCGRXSMXSFromState(state uint64) *PCGRXSMXS {
	return &PCGRXSMXS{state: state}
}

func (g *PCGRXSMXS) Tag() string     { return TagPCGRXSMXS }
func (g *PCGRXSMXS) StateCount() int { return 1 }

func (g *PCGRXSMXS) SupportsSkip() bool     { return true }
func (g *PCGRXSMXS) SupportsPrevious() bool { return true }

func (g *PCGRXSMXS) Seed(seed uint64) {
	var regs [1]uint64
	mix.Fill(seed, regs[:])
	g.state = regs[0]
}

// NextU64 permutes the old state; the choice of pre-step rather than
// post-step input is part of the PCG definition and is load-bearing for
// stream compatibility.
func (g *PCGRXSMXS) NextU64() uint64 {
	old := g.state
	g.state = old*lcgMul + lcgInc
	return pcgOutput(old)
}

func (g *PCGRXSMXS) SelectState(i int) (uint64, error) {
	if err := stateIndexErr(i, 1); err != nil {
		return 0, err
	}
	return g.state, nil
}

func (g *PCGRXSMXS) SetSelectedState(i int, v uint64) error {
	if err := stateIndexErr(i, 1); err != nil {
		return err
	}
	g.state = v
	return nil
}

// Skip jumps the backbone by distance and reports the output of the step
// that landed there, which the permutation reads from the state one step
// back.
func (g *PCGRXSMXS) Skip(distance uint64) (uint64, error) {
	g.state = lcgAdvance(g.state, distance)
	return pcgOutput(lcgRewind(g.state)), nil
}

func (g *PCGRXSMXS) PreviousU64() (uint64, error) {
	g.state = lcgRewind(g.state)
	return pcgOutput(g.state), nil
}

func (g *PCGRXSMXS) Copy() Generator {
	c := *g
	return &c
}

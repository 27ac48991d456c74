package ashrand

import "github.com/Borislavv/go-ash-rand/internal/shared/mix"

// TagLCG64 identifies LCG64 in the registry.
const TagLCG64 = "LcgK"

const (
	// Knuth's MMIX multiplier and increment.
	lcgMul = 6364136223846793005
	lcgInc = 1442695040888963407

	// lcgMulInv * lcgMul == 1 mod 2^64. Verified by a test rather than
	// trusted from inspection; a wrong inverse yields plausible-looking
	// but incorrect PreviousU64 values.
	lcgMulInv = 0xc097ef87329e28a5
)

// lcgAdvance jumps an LCG state forward by distance steps in O(log
// distance) using the usual double-and-add decomposition of
// a^d * s + c*(a^d-1)/(a-1) mod 2^64.
func lcgAdvance(state, distance uint64) uint64 {
	accMul, accInc := uint64(1), uint64(0)
	curMul, curInc := uint64(lcgMul), uint64(lcgInc)
	for distance > 0 {
		if distance&1 != 0 {
			accMul *= curMul
			accInc = accInc*curMul + curInc
		}
		curInc = (curMul + 1) * curInc
		curMul *= curMul
		distance >>= 1
	}
	return accMul*state + accInc
}

func lcgRewind(state uint64) uint64 {
	return (state - lcgInc) * lcgMulInv
}

// LCG64 is a plain 64-bit linear congruential generator with Knuth's MMIX
// constants, returning the full post-step state. The low bits have short
// periods, as with any power-of-two-modulus LCG; use one of the permuted
// or shift-register generators when output quality matters. It earns its
// keep through the cheapest state transition in the package and exact
// O(log d) Skip in both directions.
type LCG64 struct {
	fullAccess
	state uint64
}

func NewLCG64() *LCG64 { return NewLCG64Seeded(mix.Entropy()) }

func NewLCG64Seeded(seed uint64) *LCG64 {
	g := &LCG64{}
	g.Seed(seed)
	return g
}

func NewLCG64FromState(state uint64) *LCG64 {
	return &LCG64{state: state}
}

func (g *LCG64) Tag() string     { return TagLCG64 }
func (g *LCG64) StateCount() int { return 1 }

func (g *LCG64) SupportsSkip() bool     { return true }
func (g *LCG64) SupportsPrevious() bool { return true }

func (g *LCG64) Seed(seed uint64) {
	var regs [1]uint64
	mix.Fill(seed, regs[:])
	g.state = regs[0]
}

func (g *LCG64) NextU64() uint64 {
	g.state = g.state*lcgMul + lcgInc
	return g.state
}

func (g *LCG64) SelectState(i int) (uint64, error) {
	if err := stateIndexErr(i, 1); err != nil {
		return 0, err
	}
	return g.state, nil
}

func (g *LCG64) SetSelectedState(i int, v uint64) error {
	if err := stateIndexErr(i, 1); err != nil {
		return err
	}
	g.state = v
	return nil
}

func (g *LCG64) Skip(distance uint64) (uint64, error) {
	g.state = lcgAdvance(g.state, distance)
	return g.state, nil
}

func (g *LCG64) PreviousU64() (uint64, error) {
	out := g.state
	g.state = lcgRewind(g.state)
	return out, nil
}

func (g *LCG64) Copy() Generator {
	c := *g
	return &c
}

package ashrand

import (
	"math/bits"

	"github.com/Borislavv/go-ash-rand/internal/shared/mix"
)

// TagSFC64 identifies SFC64 in the registry.
const TagSFC64 = "Sfc6"

// SFC64 is Doty-Humphrey's small fast chaotic generator: three chaotic
// registers plus a counter that guarantees a minimum period of 2^64.
// Register 3 is the counter. Seeding discards twelve warmup outputs so
// weakly mixed seeds cannot leak into the stream.
type SFC64 struct {
	fullAccess
	noSkip
	noPrevious
	a, b, c, w uint64
}

func NewSFC64() *SFC64 { return NewSFC64Seeded(mix.Entropy()) }

func NewSFC64Seeded(seed uint64) *SFC64 {
	g := &SFC64{}
	g.Seed(seed)
	return g
}

func NewSFC64FromState(a, b, c, w uint64) *SFC64 {
	return &SFC64{a: a, b: b, c: c, w: w}
}

func (g *SFC64) Tag() string     { return TagSFC64 }
func (g *SFC64) StateCount() int { return 4 }

func (g *SFC64) Seed(seed uint64) {
	var regs [3]uint64
	mix.Fill(seed, regs[:])
	g.a, g.b, g.c = regs[0], regs[1], regs[2]
	g.w = 1
	for i := 0; i < 12; i++ {
		g.NextU64()
	}
}

func (g *SFC64) NextU64() uint64 {
	out := g.a + g.b + g.w
	g.w++
	g.a = g.b ^ (g.b >> 11)
	g.b = g.c + (g.c << 3)
	g.c = bits.RotateLeft64(g.c, 24) + out
	return out
}

func (g *SFC64) SelectState(i int) (uint64, error) {
	if err := stateIndexErr(i, 4); err != nil {
		return 0, err
	}
	switch i {
	case 0:
		return g.a, nil
	case 1:
		return g.b, nil
	case 2:
		return g.c, nil
	default:
		return g.w, nil
	}
}

func (g *SFC64) SetSelectedState(i int, v uint64) error {
	if err := stateIndexErr(i, 4); err != nil {
		return err
	}
	switch i {
	case 0:
		g.a = v
	case 1:
		g.b = v
	case 2:
		g.c = v
	default:
		g.w = v
	}
	return nil
}

func (g *SFC64) Copy() Generator {
	c := *g
	return &c
}

package ashrand

import (
	"math/bits"

	"github.com/Borislavv/go-ash-rand/internal/shared/mix"
)

// TagRomuTrio identifies RomuTrio in the registry.
const TagRomuTrio = "RoTr"

const romuMul = 15241094284759029579

// RomuTrio is Overton's romu trio: three registers combining one multiply
// with rotated differences. Output is the pre-step x register. The
// all-zero state is absorbing and gets repaired at every write.
type RomuTrio struct {
	fullAccess
	noSkip
	noPrevious
	x, y, z uint64
}

func NewRomuTrio() *RomuTrio { return NewRomuTrioSeeded(mix.Entropy()) }

func NewRomuTrioSeeded(seed uint64) *RomuTrio {
	g := &RomuTrio{}
	g.Seed(seed)
	return g
}

func NewRomuTrioFromState(x, y, z uint64) *RomuTrio {
	g := &RomuTrio{x: x, y: y, z: z}
	g.repair()
	return g
}

func (g *RomuTrio) Tag() string     { return TagRomuTrio }
func (g *RomuTrio) StateCount() int { return 3 }

func (g *RomuTrio) repair() {
	if g.x == 0 && g.y == 0 && g.z == 0 {
		g.x = mix.Golden
	}
}

func (g *RomuTrio) Seed(seed uint64) {
	var regs [3]uint64
	mix.Fill(seed, regs[:])
	g.x, g.y, g.z = regs[0], regs[1], regs[2]
	g.repair()
}

func (g *RomuTrio) NextU64() uint64 {
	xp, yp, zp := g.x, g.y, g.z
	g.x = romuMul * zp
	g.y = bits.RotateLeft64(yp-xp, 12)
	g.z = bits.RotateLeft64(zp-yp, 44)
	return xp
}

func (g *RomuTrio) SelectState(i int) (uint64, error) {
	if err := stateIndexErr(i, 3); err != nil {
		return 0, err
	}
	switch i {
	case 0:
		return g.x, nil
	case 1:
		return g.y, nil
	default:
		return g.z, nil
	}
}

func (g *RomuTrio) SetSelectedState(i int, v uint64) error {
	if err := stateIndexErr(i, 3); err != nil {
		return err
	}
	switch i {
	case 0:
		g.x = v
	case 1:
		g.y = v
	default:
		g.z = v
	}
	g.repair()
	return nil
}

func (g *RomuTrio) Copy() Generator {
	c := *g
	return &c
}

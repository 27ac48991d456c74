package ashrand

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func builtinGenerators(seed uint64) map[string]Generator {
	return map[string]Generator{
		"SplitMix64":      NewSplitMix64Seeded(seed),
		"Wyrand":          NewWyrandSeeded(seed),
		"LCG64":           NewLCG64Seeded(seed),
		"PCGRXSMXS":       NewPCGRXSMXSSeeded(seed),
		"Lehmer128":       NewLehmer128Seeded(seed),
		"Xoroshiro128PP":  NewXoroshiro128PPSeeded(seed),
		"Xorshift128Plus": NewXorshift128PlusSeeded(seed),
		"RomuTrio":        NewRomuTrioSeeded(seed),
		"Xoshiro256SS":    NewXoshiro256SSSeeded(seed),
		"Xoshiro256PP":    NewXoshiro256PPSeeded(seed),
		"SFC64":           NewSFC64Seeded(seed),
		"JSF64":           NewJSF64Seeded(seed),
	}
}

// TestSkip_MatchesSequentialStepping: for every generator advertising
// Skip, skipping d steps must land on the same state and value as d
// sequential NextU64 calls.
func TestSkip_MatchesSequentialStepping(t *testing.T) {
	for name, g := range builtinGenerators(12345) {
		if !g.SupportsSkip() {
			continue
		}
		t.Run(name, func(t *testing.T) {
			for _, distance := range []uint64{1, 2, 3, 17, 1000, 123456} {
				seq := g.Copy()
				var want uint64
				for i := uint64(0); i < distance; i++ {
					want = seq.NextU64()
				}

				got, err := g.Skip(distance)
				require.NoError(t, err)
				require.Equalf(t, want, got, "skip(%d) value", distance)

				// Same resulting state: the streams must stay in lockstep.
				for i := 0; i < 5; i++ {
					require.Equal(t, seq.NextU64(), g.NextU64())
				}

				g = seq // continue from a known-good state
			}
		})
	}
}

// TestPrevious_UndoesNext: NextU64 followed by PreviousU64 must yield the
// same value twice and restore the original state.
func TestPrevious_UndoesNext(t *testing.T) {
	for name, g := range builtinGenerators(98765) {
		if !g.SupportsPrevious() {
			continue
		}
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				before := g.Copy()
				want := g.NextU64()

				got, err := g.PreviousU64()
				require.NoError(t, err)
				require.Equal(t, want, got)
				require.Equal(t, before.NextU64(), g.NextU64(), "state not restored")
			}
		})
	}
}

// TestSkip_BackwardDistance: the two's complement of -1 steps one output
// back, mirroring PreviousU64's state motion.
func TestSkip_BackwardDistance(t *testing.T) {
	for name, g := range builtinGenerators(5150) {
		if !g.SupportsSkip() {
			continue
		}
		t.Run(name, func(t *testing.T) {
			first := g.NextU64()
			second := g.NextU64()

			// Undo the second step: land on the first output's state and
			// replay the second on the following call.
			got, err := g.Skip(^uint64(0))
			require.NoError(t, err)
			require.Equal(t, first, got)
			require.Equal(t, second, g.NextU64())
		})
	}
}

// TestCopy_Independent verifies a copy shares no state with its source.
func TestCopy_Independent(t *testing.T) {
	for name, g := range builtinGenerators(42) {
		t.Run(name, func(t *testing.T) {
			c := g.Copy()
			want := make([]uint64, 8)
			for i := range want {
				want[i] = g.NextU64()
			}
			// Advancing g must not have touched c.
			for i := range want {
				require.Equal(t, want[i], c.NextU64())
			}
		})
	}
}

// TestStateAccess_Roundtrip: reading every register of one generator and
// writing it into a fresh one must clone the stream.
func TestStateAccess_Roundtrip(t *testing.T) {
	fresh := builtinGenerators(0)
	for name, g := range builtinGenerators(777) {
		t.Run(name, func(t *testing.T) {
			require.True(t, g.SupportsReadAccess())
			require.True(t, g.SupportsWriteAccess())

			clone := fresh[name]
			for i := 0; i < g.StateCount(); i++ {
				v, err := g.SelectState(i)
				require.NoError(t, err)
				require.NoError(t, clone.SetSelectedState(i, v))
			}
			for i := 0; i < 20; i++ {
				require.Equal(t, g.NextU64(), clone.NextU64())
			}
		})
	}
}

// TestStateAccess_IndexOutOfRange surfaces ErrInvalidArgument rather than
// wrong data.
func TestStateAccess_IndexOutOfRange(t *testing.T) {
	for name, g := range builtinGenerators(1) {
		t.Run(name, func(t *testing.T) {
			_, err := g.SelectState(g.StateCount())
			require.ErrorIs(t, err, ErrInvalidArgument)
			_, err = g.SelectState(-1)
			require.ErrorIs(t, err, ErrInvalidArgument)
			err = g.SetSelectedState(g.StateCount(), 1)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

// TestUnsupportedOperations_Error: generators without Skip or Previous
// refuse with ErrUnsupportedOperation instead of degrading silently.
func TestUnsupportedOperations_Error(t *testing.T) {
	for name, g := range builtinGenerators(2) {
		t.Run(name, func(t *testing.T) {
			if !g.SupportsSkip() {
				_, err := g.Skip(10)
				require.ErrorIs(t, err, ErrUnsupportedOperation)
			}
			if !g.SupportsPrevious() {
				_, err := g.PreviousU64()
				require.ErrorIs(t, err, ErrUnsupportedOperation)
			}
		})
	}
}

// TestForbiddenStateRepair_AllZero: writing an all-zero register file
// into a shift-register generator must be silently repaired, never
// producing a stuck all-zero stream.
func TestForbiddenStateRepair_AllZero(t *testing.T) {
	for name, g := range builtinGenerators(3) {
		switch name {
		case "Xoroshiro128PP", "Xorshift128Plus", "RomuTrio", "Xoshiro256SS", "Xoshiro256PP", "JSF64":
		default:
			continue
		}
		t.Run(name, func(t *testing.T) {
			for i := 0; i < g.StateCount(); i++ {
				require.NoError(t, g.SetSelectedState(i, 0))
			}
			seen := map[uint64]bool{}
			for i := 0; i < 16; i++ {
				seen[g.NextU64()] = true
			}
			require.Greater(t, len(seen), 1, "stream is stuck")
		})
	}
}

// TestForbiddenStateRepair_LehmerOdd: the Lehmer128 low register must be
// forced odd on every write path.
func TestForbiddenStateRepair_LehmerOdd(t *testing.T) {
	g := NewLehmer128Seeded(9)
	require.NoError(t, g.SetSelectedState(0, 42))
	lo, err := g.SelectState(0)
	require.NoError(t, err)
	require.EqualValues(t, 1, lo&1, "low register must be odd")

	g.Seed(1234)
	lo, err = g.SelectState(0)
	require.NoError(t, err)
	require.EqualValues(t, 1, lo&1)

	fromState := NewLehmer128FromState(8, 8)
	lo, err = fromState.SelectState(0)
	require.NoError(t, err)
	require.EqualValues(t, 1, lo&1)
}

// TestLCGMultiplierInverse pins the precomputed modular inverse used by
// PreviousU64 instead of trusting it from inspection.
func TestLCGMultiplierInverse(t *testing.T) {
	mul, inv := uint64(lcgMul), uint64(lcgMulInv)
	require.Equal(t, uint64(1), mul*inv)
}

// TestSeededConstructors_DistinctStreams: different seeds should not
// collapse to one stream.
func TestSeededConstructors_DistinctStreams(t *testing.T) {
	a := builtinGenerators(100)
	b := builtinGenerators(101)
	for name := range a {
		require.NotEqual(t, a[name].NextU64(), b[name].NextU64(), name)
	}
}

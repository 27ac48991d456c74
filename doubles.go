package ashrand

import (
	"fmt"
	"math"
)

// Deterministic stand-ins for validating derivation-layer edge handling.
// None of them supports the optional contract operations; their value is
// a raw stream that is exactly predictable, not introspectable state.

// Registry tags for the test doubles.
const (
	TagKnownSeries = "KnSR"
	TagMinRandom   = "MinR"
	TagMaxRandom   = "MaxR"
)

// noOptional declines the whole optional surface in one embed.
type noOptional struct {
	noSkip
	noPrevious
}

func (noOptional) SupportsReadAccess() bool  { return false }
func (noOptional) SupportsWriteAccess() bool { return false }

func (noOptional) SelectState(int) (uint64, error) {
	return 0, fmt.Errorf("select state: %w", ErrUnsupportedOperation)
}

func (noOptional) SetSelectedState(int, uint64) error {
	return fmt.Errorf("set selected state: %w", ErrUnsupportedOperation)
}

// KnownSeriesRandom plays back a scripted series of raw draws, cycling
// when it runs out. Seed rewinds playback to the start of the series.
type KnownSeriesRandom struct {
	noOptional
	series []uint64
	next   int
	drawn  int
}

// NewKnownSeriesRandom returns a scripted generator replaying series.
func NewKnownSeriesRandom(series ...uint64) (*KnownSeriesRandom, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("known series needs at least one value: %w", ErrInvalidArgument)
	}
	buf := make([]uint64, len(series))
	copy(buf, series)
	return &KnownSeriesRandom{series: buf}, nil
}

func (g *KnownSeriesRandom) Tag() string     { return TagKnownSeries }
func (g *KnownSeriesRandom) StateCount() int { return 0 }

// Seed restarts playback and the draw counter; the scripted values
// themselves never change.
func (g *KnownSeriesRandom) Seed(uint64) { g.next, g.drawn = 0, 0 }

func (g *KnownSeriesRandom) NextU64() uint64 {
	v := g.series[g.next]
	g.next = (g.next + 1) % len(g.series)
	g.drawn++
	return v
}

// Drawn reports how many raw draws have been consumed since construction
// or the last Seed.
func (g *KnownSeriesRandom) Drawn() int { return g.drawn }

func (g *KnownSeriesRandom) Copy() Generator {
	c := *g
	c.series = make([]uint64, len(g.series))
	copy(c.series, g.series)
	return &c
}

// MinRandom always returns the smallest raw value, 0.
type MinRandom struct{ noOptional }

func NewMinRandom() *MinRandom { return &MinRandom{} }

func (g *MinRandom) Tag() string     { return TagMinRandom }
func (g *MinRandom) StateCount() int { return 0 }
func (g *MinRandom) Seed(uint64)     {}
func (g *MinRandom) NextU64() uint64 { return 0 }
func (g *MinRandom) Copy() Generator { return &MinRandom{} }

// MaxRandom always returns the largest raw value, 2^64-1.
type MaxRandom struct{ noOptional }

func NewMaxRandom() *MaxRandom { return &MaxRandom{} }

func (g *MaxRandom) Tag() string     { return TagMaxRandom }
func (g *MaxRandom) StateCount() int { return 0 }
func (g *MaxRandom) Seed(uint64)     {}
func (g *MaxRandom) NextU64() uint64 { return math.MaxUint64 }
func (g *MaxRandom) Copy() Generator { return &MaxRandom{} }

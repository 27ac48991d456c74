package ashrand

import "fmt"

// GapShuffler replays a buffer in shuffled order forever, reshuffling
// each time the buffer is exhausted. The reshuffle is restricted so the
// element yielded immediately before it can never be yielded immediately
// after it: no element repeats across a reshuffle boundary.
//
// The sequence never signals completion; consumers bound their own
// iteration. A shuffler is single-threaded, like the generator driving
// it.
type GapShuffler[T any] struct {
	g     Generator
	items []T
	index int
}

// NewGapShuffler returns a shuffler over a private copy of items, so
// later mutation of the caller's slice does not affect the sequence.
func NewGapShuffler[T any](g Generator, items []T) (*GapShuffler[T], error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("gap shuffle of empty slice: %w", ErrInvalidArgument)
	}
	buf := make([]T, len(items))
	copy(buf, items)
	return newGapShuffler(g, buf), nil
}

// NewGapShufflerInPlace returns a shuffler that owns the caller's slice
// directly. The shuffler has exclusive mutation rights for its lifetime;
// external writes to items while it is active produce undefined results.
func NewGapShufflerInPlace[T any](g Generator, items []T) (*GapShuffler[T], error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("gap shuffle of empty slice: %w", ErrInvalidArgument)
	}
	return newGapShuffler(g, items), nil
}

func newGapShuffler[T any](g Generator, buf []T) *GapShuffler[T] {
	s := &GapShuffler[T]{g: g, items: buf}
	Shuffle(g, s.items)
	return s
}

// Next pulls the next element of the infinite sequence.
func (s *GapShuffler[T]) Next() T {
	if len(s.items) == 1 {
		return s.items[0]
	}
	if s.index >= len(s.items) {
		s.reshuffle()
		s.index = 0
	}
	v := s.items[s.index]
	s.index++
	return v
}

// reshuffle runs an ascending Fisher-Yates whose final swap pairs the
// last index with a partner drawn from [1, len-1] instead of
// [0, len-1]. The element yielded last before the reshuffle sits at the
// final index and stays untouched until that final swap, which can only
// leave it at an index >= 1 - so it cannot be the next element yielded.
func (s *GapShuffler[T]) reshuffle() {
	n := len(s.items)
	for i := 1; i < n-1; i++ {
		j := Uint64N(s.g, uint64(i)+1)
		s.items[i], s.items[j] = s.items[j], s.items[i]
	}
	j := 1 + Uint64N(s.g, uint64(n-1))
	s.items[n-1], s.items[j] = s.items[j], s.items[n-1]
}

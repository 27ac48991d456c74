// Package ashrand is a library of non-cryptographic pseudo-random number
// generators behind one shared contract, plus derivation helpers that turn
// raw 64-bit output into bounded integers, floats, distributions and
// shuffles.
//
// Generators are mutable single-threaded state machines. A single instance
// must not be shared between goroutines without external locking; use one
// instance per goroutine instead.
package ashrand

// Generator is the capability contract every algorithm in this package
// satisfies. NextU64 is the sole source of randomness; everything else in
// the library is derived from it.
//
// The optional operations (state access, Skip, PreviousU64) are guarded by
// capability predicates. Calling an operation whose predicate reports
// false returns ErrUnsupportedOperation instead of a wrong value.
type Generator interface {
	// Tag returns the stable four-character discriminator of the
	// algorithm. Tags are unique across the registry and never change.
	Tag() string

	// StateCount reports how many uint64 state registers the algorithm
	// keeps. SelectState and SetSelectedState accept indexes in
	// [0, StateCount).
	StateCount() int

	SupportsReadAccess() bool
	SupportsWriteAccess() bool
	SupportsSkip() bool
	SupportsPrevious() bool

	// Seed re-initializes every state register deterministically from a
	// single value. Registers are not required to hold seed verbatim,
	// only to reach a valid well-mixed state; forbidden states (all-zero,
	// even-where-odd-required) are silently repaired.
	Seed(seed uint64)

	// NextU64 advances the state by exactly one step and returns one
	// pseudo-random 64-bit value.
	NextU64() uint64

	// SelectState returns register i. Requires SupportsReadAccess.
	SelectState(i int) (uint64, error)

	// SetSelectedState overwrites register i, repairing forbidden values
	// the same way Seed does. Requires SupportsWriteAccess.
	SetSelectedState(i int, v uint64) error

	// Skip advances the state by distance steps in better than
	// O(distance) time and returns the value the distance-th NextU64 call
	// would have produced. A distance equal to the two's complement of a
	// negative count steps backward. Requires SupportsSkip.
	Skip(distance uint64) (uint64, error)

	// PreviousU64 undoes one NextU64 step: it restores the state that
	// preceded the last call and returns the value that call produced.
	// Requires SupportsPrevious.
	PreviousU64() (uint64, error)

	// Copy returns a deep copy sharing no state with the receiver.
	Copy() Generator
}

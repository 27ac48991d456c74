package ashrand

import "fmt"

// noSkip and noPrevious supply the declined half of the optional contract
// for algorithms without a closed-form jump or step inverse. Embedding one
// of them keeps every refusal on the same error value.

type noSkip struct{}

func (noSkip) SupportsSkip() bool { return false }

func (noSkip) Skip(uint64) (uint64, error) {
	return 0, fmt.Errorf("skip: %w", ErrUnsupportedOperation)
}

type noPrevious struct{}

func (noPrevious) SupportsPrevious() bool { return false }

func (noPrevious) PreviousU64() (uint64, error) {
	return 0, fmt.Errorf("previous: %w", ErrUnsupportedOperation)
}

// fullAccess marks algorithms whose whole register file is readable and
// writable.
type fullAccess struct{}

func (fullAccess) SupportsReadAccess() bool  { return true }
func (fullAccess) SupportsWriteAccess() bool { return true }

func stateIndexErr(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("state index %d out of range [0,%d): %w", i, n, ErrInvalidArgument)
	}
	return nil
}

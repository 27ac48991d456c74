package ashrand

import "fmt"

// RandomIndex returns a uniform index in [0, n).
func RandomIndex(g Generator, n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("random index over %d items: %w", n, ErrInvalidArgument)
	}
	return int(Uint64N(g, uint64(n))), nil
}

// RandomElement returns a uniformly chosen element of items.
func RandomElement[T any](g Generator, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("random element of empty slice: %w", ErrInvalidArgument)
	}
	return items[Uint64N(g, uint64(len(items)))], nil
}

// RandomElementWhere keeps drawing uniform elements until one satisfies
// pred. It never returns if no element can satisfy the predicate; callers
// opting into the unbounded search own that risk. Use
// RandomElementWhereN for a bounded search.
func RandomElementWhere[T any](g Generator, items []T, pred func(T) bool) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("random element of empty slice: %w", ErrInvalidArgument)
	}
	for {
		v := items[Uint64N(g, uint64(len(items)))]
		if pred(v) {
			return v, nil
		}
	}
}

// RandomElementWhereN draws up to maxAttempts uniform elements and
// returns the first one satisfying pred, or ErrExhaustedAttempts once the
// budget is spent.
func RandomElementWhereN[T any](g Generator, items []T, pred func(T) bool, maxAttempts int) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("random element of empty slice: %w", ErrInvalidArgument)
	}
	if maxAttempts <= 0 {
		return zero, fmt.Errorf("max attempts %d must be positive: %w", maxAttempts, ErrInvalidArgument)
	}
	for i := 0; i < maxAttempts; i++ {
		v := items[Uint64N(g, uint64(len(items)))]
		if pred(v) {
			return v, nil
		}
	}
	return zero, fmt.Errorf("no element matched after %d attempts: %w", maxAttempts, ErrExhaustedAttempts)
}

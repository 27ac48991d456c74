package ashrand

// Shuffle permutes items in place with the Fisher-Yates algorithm:
// walking i from the last index down to 1, element i is swapped with a
// uniformly drawn partner in [0, i]. Given a uniform bound generator
// every permutation of items is equally likely. Slices of length 0 or 1
// are left untouched without consuming a draw.
func Shuffle[T any](g Generator, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := Uint64N(g, uint64(i)+1)
		items[i], items[j] = items[j], items[i]
	}
}

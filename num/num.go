// Package num implements various utility functions regarding numeric types.
package num

// IsPowerOfTwo returns whether x is a power of two.
// Returns false when x is not positive.
func IsPowerOfTwo(x int) bool {
	return x > 0 && x&(x-1) == 0
}

// Log2 returns floor(log2(x)).
// Panics when x is not positive.
func Log2(x int) int {
	if x <= 0 {
		panic("x must be positive")
	}

	r := 0
	for x > 1 {
		x >>= 1
		r++
	}
	return r
}

// BitReverseInPlace reorders v into bit-reversal order in-place.
func BitReverseInPlace[T any](v []T) {
	var bit, j int
	for i := 1; i < len(v); i++ {
		bit = len(v) >> 1
		for j >= bit {
			j -= bit
			bit >>= 1
		}
		j += bit
		if i < j {
			v[i], v[j] = v[j], v[i]
		}
	}
}

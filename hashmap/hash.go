package hashmap

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// goldenRatio is the fractional part of the golden ratio, (√5-1)/2.
const goldenRatio = 0.6180339887498949

// KeyFold reduces a key to the 32-bit accumulator fed to the bucket index.
type KeyFold func(key string) uint32

// Polynomial31 folds the key bytes with a base-31 rolling hash (Horner's rule).
// uint32 wraparound is intentional.
func Polynomial31(key string) uint32 {
	var acc uint32
	for i := 0; i < len(key); i++ {
		acc = acc*31 + uint32(key[i])
	}
	return acc
}

// XXHash folds the 64-bit xxHash digest of the key down to 32 bits.
func XXHash(key string) uint32 {
	h := xxhash.Sum64String(key)
	return uint32(h ^ h>>32)
}

// index 通过斐波那契(乘法)散列将累加值映射到[0, capacity)
func index(acc uint32, capacity int) int {
	_, frac := math.Modf(float64(acc) * goldenRatio)
	idx := int(math.Floor(frac * float64(capacity)))
	// frac*capacity can round up to capacity for very large tables
	if idx >= capacity {
		idx = capacity - 1
	}
	return idx
}

package hashmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestPolynomial31(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint32(0), Polynomial31(""))
	assert.Equal(uint32(97), Polynomial31("a"))
	assert.Equal(uint32(97*31+98), Polynomial31("ab"))
	assert.Equal(uint32(63350368), Polynomial31("Alice"))
	// wraps around instead of overflowing
	assert.Equal(Polynomial31("the quick brown fox"), Polynomial31("the quick brown fox"))
}

func TestIndex(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, index(0, 10))
	assert.Equal(6, index(1, 10))
	assert.Equal(9, index(97, 10))
	assert.Equal(18, index(97, 20))
	assert.Equal(6, index(Polynomial31("Alice"), 10))
	assert.Equal(12, index(Polynomial31("Alice"), 20))
	assert.Equal(900, index(0xffffffff, 1024))
}

func TestIndexInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		key := rapid.String().Draw(t, "key")
		capacity := rapid.IntRange(1, MaxCapacity).Draw(t, "capacity")

		for _, fold := range []KeyFold{Polynomial31, XXHash} {
			idx := index(fold(key), capacity)
			if idx < 0 || idx >= capacity {
				t.Fatalf("index %d out of [0, %d)", idx, capacity)
			}
			if again := index(fold(key), capacity); again != idx {
				t.Fatalf("index not deterministic: %d != %d", idx, again)
			}
		}
	})
}

func TestXXHash(t *testing.T) {
	assert.Equal(t, XXHash("Alice"), XXHash("Alice"))
	assert.NotEqual(t, XXHash("Alice"), XXHash("alice"))
}

package ring_test

import (
	"math/big"
	"testing"

	"github.com/sp301415/rlwe-ring/csprng"
	"github.com/sp301415/rlwe-ring/ring"
	"github.com/stretchr/testify/assert"
)

func TestReducer(t *testing.T) {
	// 2^61 - 1 is prime.
	p := big.NewInt(0).Sub(big.NewInt(0).Lsh(big.NewInt(1), 61), big.NewInt(1))
	reducer := ring.NewReducer(p)

	us := csprng.NewUniformSamplerWithSeed([]byte("reducer"))

	t.Run("MatchesMod", func(t *testing.T) {
		x := big.NewInt(0)
		want := big.NewInt(0)
		for i := 0; i < 1024; i++ {
			// Random value in (-p^2, p^2), the range of a product of
			// two reduced values.
			x.SetUint64(us.Sample() >> 4)
			x.Lsh(x, 60)
			x.Add(x, big.NewInt(0).SetUint64(us.Sample()))
			if us.Sample()%2 == 0 {
				x.Neg(x)
			}

			want.Mod(x, p)
			reducer.Reduce(x)
			assert.Equal(t, want, x)
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		x := big.NewInt(0).Mul(p, p)
		x.Lsh(x, 2)
		assert.Panics(t, func() { reducer.Reduce(x) })
	})

	t.Run("Invalid", func(t *testing.T) {
		assert.Panics(t, func() { ring.NewReducer(big.NewInt(0)) })
		assert.Panics(t, func() { ring.NewReducer(big.NewInt(-5)) })
	})
}

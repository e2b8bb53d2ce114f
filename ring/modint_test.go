package ring_test

import (
	"math/big"
	"testing"

	"github.com/sp301415/rlwe-ring/ring"
	"github.com/stretchr/testify/assert"
)

func TestModInt(t *testing.T) {
	char7 := ring.NewCharacteristicUint64(7)

	t.Run("Canonical", func(t *testing.T) {
		// Balanced representatives modulo 7 lie in [-3, 3].
		for x := int64(-20); x <= 20; x++ {
			v := ring.NewModIntInt64(x, char7).BigInt().Int64()
			assert.Equal(t, int64(0), (((x-v)%7)+7)%7)
			assert.GreaterOrEqual(t, v, int64(-3))
			assert.LessOrEqual(t, v, int64(3))
		}
	})

	t.Run("Ops", func(t *testing.T) {
		x := ring.NewModIntInt64(5, char7)
		y := ring.NewModIntInt64(6, char7)

		assert.Equal(t, int64(-3), x.Add(y).BigInt().Int64())
		assert.Equal(t, int64(-1), x.Sub(y).BigInt().Int64())
		assert.Equal(t, int64(2), x.Mul(y).BigInt().Int64())
		assert.Equal(t, int64(2), x.Neg().BigInt().Int64())
	})

	t.Run("CharZeroExact", func(t *testing.T) {
		// No reduction or wraparound ever happens over characteristic zero.
		big1 := big.NewInt(0).Lsh(big.NewInt(1), 200)
		big2 := big.NewInt(0).Lsh(big.NewInt(1), 201)

		x := ring.NewModInt(big1, ring.CharZero())
		y := ring.NewModInt(big2, ring.CharZero())

		want := big.NewInt(0).Add(big1, big2)
		assert.Equal(t, want, x.Add(y).BigInt())

		want.Sub(big1, big2)
		assert.Equal(t, want, x.Sub(y).BigInt())

		want.Mul(big1, big2)
		assert.Equal(t, want, x.Mul(y).BigInt())
	})

	t.Run("Equal", func(t *testing.T) {
		assert.True(t, ring.NewModIntInt64(10, char7).Equal(ring.NewModIntInt64(3, char7)))
		assert.False(t, ring.NewModIntInt64(10, char7).Equal(ring.NewModIntInt64(4, char7)))
		assert.False(t, ring.NewModIntInt64(3, char7).Equal(ring.NewModIntInt64(3, ring.CharZero())))
	})

	t.Run("CharacteristicMismatch", func(t *testing.T) {
		x := ring.NewModIntInt64(1, char7)
		y := ring.NewModIntInt64(1, ring.NewCharacteristicUint64(11))
		assert.Panics(t, func() { x.Add(y) })
		assert.Panics(t, func() { x.Mul(y) })
	})

	t.Run("BigIntIsCopy", func(t *testing.T) {
		x := ring.NewModIntInt64(3, char7)
		x.BigInt().SetInt64(100)
		assert.Equal(t, int64(3), x.BigInt().Int64())
	})
}

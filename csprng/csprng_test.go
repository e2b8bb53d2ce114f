package csprng_test

import (
	"io"
	"testing"

	"github.com/sp301415/rlwe-ring/csprng"
	"github.com/stretchr/testify/assert"
)

func TestUniformSampler(t *testing.T) {
	seed := []byte("rlwe-ring test seed")

	t.Run("Deterministic", func(t *testing.T) {
		s0 := csprng.NewUniformSamplerWithSeed(seed)
		s1 := csprng.NewUniformSamplerWithSeed(seed)

		for i := 0; i < 1024; i++ {
			assert.Equal(t, s0.Sample(), s1.Sample())
		}
	})

	t.Run("SampleN", func(t *testing.T) {
		s := csprng.NewUniformSamplerWithSeed(seed)
		for _, N := range []uint64{1, 2, 3, 1 << 40} {
			for i := 0; i < 128; i++ {
				assert.Less(t, s.SampleN(N), N)
			}
		}
	})

	t.Run("Read", func(t *testing.T) {
		s := csprng.NewUniformSampler()
		buf := make([]byte, 1024)
		n, err := io.ReadFull(s, buf)
		assert.NoError(t, err)
		assert.Equal(t, len(buf), n)
	})
}

func TestStreamSampler(t *testing.T) {
	s := csprng.NewStreamSampler()

	t.Run("SampleN", func(t *testing.T) {
		for _, N := range []uint64{1, 2, 3, 1 << 40} {
			for i := 0; i < 128; i++ {
				assert.Less(t, s.SampleN(N), N)
			}
		}
	})

	t.Run("Read", func(t *testing.T) {
		buf := make([]byte, 1024)
		n, err := io.ReadFull(s, buf)
		assert.NoError(t, err)
		assert.Equal(t, len(buf), n)
	})
}

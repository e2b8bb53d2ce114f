package ring

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/sp301415/rlwe-ring/csprng"
)

// UniformSampler samples uniformly random elements of a Ring.
type UniformSampler struct {
	ring *Ring

	*csprng.UniformSampler

	modBuf  []byte
	msbMask byte
}

// NewUniformSampler creates a new UniformSampler over r with a random seed.
//
// Panics when read from crypto/rand fails.
func NewUniformSampler(r *Ring) *UniformSampler {
	seed := make([]byte, 16)
	if _, err := rand.Read(seed); err != nil {
		panic(err)
	}
	return NewUniformSamplerWithSeed(r, seed)
}

// NewUniformSamplerWithSeed creates a new UniformSampler over r with a user
// supplied seed. A fixed seed gives a deterministic output stream.
func NewUniformSamplerWithSeed(r *Ring, seed []byte) *UniformSampler {
	var modBuf []byte
	var msbMask byte
	if !r.char.IsZero() {
		k := (r.char.modulus.BitLen() + 7) / 8
		b := uint(r.char.modulus.BitLen() % 8)
		if b == 0 {
			b = 8
		}
		modBuf = make([]byte, k)
		msbMask = byte((1 << b) - 1)
	}

	return &UniformSampler{
		ring: r,

		UniformSampler: csprng.NewUniformSamplerWithSeed(seed),

		modBuf:  modBuf,
		msbMask: msbMask,
	}
}

// SampleCoeff samples a uniformly random canonical coefficient.
//
// Panics when the characteristic is zero; coefficients of a
// characteristic-zero ring have no uniform distribution.
func (s *UniformSampler) SampleCoeff() ModInt {
	x := big.NewInt(0)
	s.SampleCoeffAssign(x)
	return ModInt{char: s.ring.char, value: x}
}

// SampleCoeffAssign samples a uniformly random canonical coefficient and
// assigns it to xOut.
//
// Panics when the characteristic is zero.
func (s *UniformSampler) SampleCoeffAssign(xOut *big.Int) {
	if s.ring.char.IsZero() {
		panic("cannot sample uniformly over characteristic zero")
	}

	for {
		if _, err := io.ReadFull(s, s.modBuf); err != nil {
			panic(err)
		}

		s.modBuf[0] &= s.msbMask

		xOut.SetBytes(s.modBuf)
		if xOut.Cmp(s.ring.char.modulus) < 0 {
			break
		}
	}

	if xOut.Cmp(s.ring.char.half) > 0 {
		xOut.Sub(xOut, s.ring.char.modulus)
	}
}

// SampleElement samples a uniformly random element of the ring.
//
// Panics when the characteristic is zero; use [UniformSampler.SampleElementBounded].
func (s *UniformSampler) SampleElement() Element {
	e := s.ring.NewElement()
	for i := 0; i < s.ring.degree; i++ {
		s.SampleCoeffAssign(e.coeffs[i])
	}
	return e
}

// SampleElementBounded samples an element whose coefficients are drawn
// uniformly from [-bound, bound] and then reduced to canonical form.
//
// Panics when bound is not positive.
func (s *UniformSampler) SampleElementBounded(bound *big.Int) Element {
	if bound.Sign() <= 0 {
		panic("bound must be positive")
	}

	// width = 2*bound + 1
	width := big.NewInt(0).Lsh(bound, 1)
	width.Add(width, big.NewInt(1))

	k := (width.BitLen() + 7) / 8
	b := uint(width.BitLen() % 8)
	if b == 0 {
		b = 8
	}
	buf := make([]byte, k)
	mask := byte((1 << b) - 1)

	e := s.ring.NewElement()
	for i := 0; i < s.ring.degree; i++ {
		for {
			if _, err := io.ReadFull(s, buf); err != nil {
				panic(err)
			}

			buf[0] &= mask

			e.coeffs[i].SetBytes(buf)
			if e.coeffs[i].Cmp(width) < 0 {
				break
			}
		}
		e.coeffs[i].Sub(e.coeffs[i], bound)
		s.ring.char.reduceAssign(e.coeffs[i])
	}
	return e
}

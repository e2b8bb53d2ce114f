// Package ring implements arithmetic over the cyclotomic quotient rings
// Z[X]/(X^N + 1) and (Z/pZ)[X]/(X^N + 1) for power-of-two degree N, the
// algebraic core of RLWE lattice cryptography.
package ring

import (
	"math/big"

	"github.com/sp301415/rlwe-ring/num"
)

type ringBuffer struct {
	u    *big.Int
	v    *big.Int
	vOut *big.Int
}

func newRingBuffer() ringBuffer {
	return ringBuffer{
		u:    big.NewInt(0),
		v:    big.NewInt(0),
		vOut: big.NewInt(0),
	}
}

// Ring is the cyclotomic quotient ring K[X]/(X^N + 1), where N is a power of
// two and K is the coefficient domain determined by a Characteristic:
// the integers for characteristic zero, the prime field Z/pZ otherwise.
//
// A Ring holds only precomputed tables and scratch buffers; it has no
// element state. A single Ring is not safe for concurrent use, use
// [Ring.ShallowCopy] to obtain per-goroutine copies.
type Ring struct {
	degree int
	char   Characteristic

	// NTT tables for the fast multiplication path.
	// Present only when the characteristic is a prime p with p = 1 (mod 2N).
	reducer   *Reducer
	tw        []*big.Int
	twInv     []*big.Int
	degreeInv *big.Int

	buffer ringBuffer
}

// NewRing creates a Ring with the given degree and characteristic.
//
// Panics when N is not a power of two.
func NewRing(N int, char Characteristic) *Ring {
	if !num.IsPowerOfTwo(N) {
		panic("degree must be a power of two")
	}

	r := &Ring{
		degree: N,
		char:   char,
		buffer: newRingBuffer(),
	}

	if !char.IsZero() {
		pSubOne := big.NewInt(0).Sub(char.modulus, big.NewInt(1))
		if pSubOne.Sign() > 0 && big.NewInt(0).Mod(pSubOne, big.NewInt(2*int64(N))).Sign() == 0 {
			r.initNTT()
		}
	}

	return r
}

// ShallowCopy creates a shallow copy of the Ring that is safe to use
// concurrently with the original. Precomputed tables are shared,
// scratch buffers are not.
func (r *Ring) ShallowCopy() *Ring {
	var reducer *Reducer
	if r.reducer != nil {
		reducer = r.reducer.ShallowCopy()
	}

	return &Ring{
		degree: r.degree,
		char:   r.char,

		reducer:   reducer,
		tw:        r.tw,
		twInv:     r.twInv,
		degreeInv: r.degreeInv,

		buffer: newRingBuffer(),
	}
}

// Degree returns the degree of the Ring.
func (r *Ring) Degree() int {
	return r.degree
}

// Characteristic returns the characteristic of the coefficient domain.
func (r *Ring) Characteristic() Characteristic {
	return r.char
}

// NewElement creates the zero element of the Ring.
func (r *Ring) NewElement() Element {
	coeffs := make([]*big.Int, r.degree)
	for i := 0; i < r.degree; i++ {
		coeffs[i] = big.NewInt(0)
	}
	return Element{char: r.char, coeffs: coeffs}
}

// One returns the multiplicative identity (1, 0, ..., 0) of the Ring.
func (r *Ring) One() Element {
	e := r.NewElement()
	e.coeffs[0].SetInt64(1)
	r.char.reduceAssign(e.coeffs[0])
	return e
}

// mustBeElement panics unless e is a well-formed element of r.
func (r *Ring) mustBeElement(e Element) {
	if len(e.coeffs) != r.degree {
		panic("degree mismatch")
	}
	if !e.char.Equal(r.char) {
		panic("characteristic mismatch")
	}
}

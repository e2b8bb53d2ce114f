package ring

import (
	"math/big"
	"runtime"
	"sync"
)

// Element is a member of a Ring: exactly N coefficients, each the canonical
// representative of its residue class, where coefficient i corresponds to X^i.
//
// Elements are created through a Ring and are immutable through their
// accessors; the ...Assign operations on Ring mutate the explicit output
// element only.
type Element struct {
	char   Characteristic
	coeffs []*big.Int
}

// Degree returns the number of coefficients of e.
func (e Element) Degree() int {
	return len(e.coeffs)
}

// Coeff returns the i-th coefficient of e.
func (e Element) Coeff(i int) ModInt {
	return ModInt{char: e.char, value: big.NewInt(0).Set(e.coeffs[i])}
}

// Coeffs returns a deep copy of the canonical coefficient representatives
// of e, for consumption by encoding layers.
func (e Element) Coeffs() []*big.Int {
	coeffs := make([]*big.Int, len(e.coeffs))
	for i := 0; i < len(e.coeffs); i++ {
		coeffs[i] = big.NewInt(0).Set(e.coeffs[i])
	}
	return coeffs
}

// Equal returns whether e and other are elements of the same ring with
// equal coefficients.
func (e Element) Equal(other Element) bool {
	if !e.char.Equal(other.char) || len(e.coeffs) != len(other.coeffs) {
		return false
	}
	for i := 0; i < len(e.coeffs); i++ {
		if e.coeffs[i].Cmp(other.coeffs[i]) != 0 {
			return false
		}
	}
	return true
}

// CopyFrom copies the coefficients of other into e.
//
// Panics when the degrees of e and other differ.
func (e Element) CopyFrom(other Element) Element {
	if len(e.coeffs) != len(other.coeffs) {
		panic("degree mismatch")
	}
	for i := 0; i < len(e.coeffs); i++ {
		e.coeffs[i].Set(other.coeffs[i])
	}
	return e
}

// FromVector projects v into the Ring by reducing it modulo X^N + 1.
//
// When v has at most N coordinates, coefficient i of the result is
// coordinate i, right-padded with zeros. Otherwise the coordinates are
// folded by blocks of size N using X^N = -1: coordinate i is added to
// coefficient i mod N when floor(i/N) is even, and subtracted when odd.
// Modular reduction is deferred to a single final pass per coefficient.
func (r *Ring) FromVector(v Vector) Element {
	e := r.NewElement()
	for i := 0; i < len(v.coords); i++ {
		p := i % r.degree
		if (i/r.degree)%2 == 0 {
			e.coeffs[p].Add(e.coeffs[p], v.coords[i])
		} else {
			e.coeffs[p].Sub(e.coeffs[p], v.coords[i])
		}
	}
	for i := 0; i < r.degree; i++ {
		r.char.reduceAssign(e.coeffs[i])
	}
	return e
}

// FromVectorParallel is a parallelized version of [Ring.FromVector].
// Coefficient positions are accumulated independently, so they are
// distributed over goroutines.
func (r *Ring) FromVectorParallel(v Vector) Element {
	e := r.NewElement()

	workSize := min(runtime.NumCPU(), r.degree)

	var wg sync.WaitGroup
	wg.Add(workSize)
	for w := 0; w < workSize; w++ {
		go func(w int) {
			defer wg.Done()

			for p := w; p < r.degree; p += workSize {
				acc := e.coeffs[p]
				for i := p; i < len(v.coords); i += r.degree {
					if (i/r.degree)%2 == 0 {
						acc.Add(acc, v.coords[i])
					} else {
						acc.Sub(acc, v.coords[i])
					}
				}
				r.char.reduceAssign(acc)
			}
		}(w)
	}
	wg.Wait()

	return e
}

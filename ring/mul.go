package ring

import (
	"math/big"
	"runtime"
	"sync"
)

// Mul returns the ring product eOut = e0 * e1 modulo X^N + 1.
//
// When the characteristic is an NTT-friendly prime, the product is computed
// with the number-theoretic transform in O(N log N). Otherwise it is computed
// as the full convolution of the coefficients, folded once by X^N = -1,
// with a single modular reduction per output coefficient. Both paths produce
// the same canonical output.
func (r *Ring) Mul(e0, e1 Element) Element {
	eOut := r.NewElement()
	r.MulAssign(e0, e1, eOut)
	return eOut
}

// MulAssign assigns eOut = e0 * e1 modulo X^N + 1.
func (r *Ring) MulAssign(e0, e1, eOut Element) {
	r.mustBeElement(e0)
	r.mustBeElement(e1)
	r.mustBeElement(eOut)

	if r.tw != nil {
		r.mulNTTAssign(e0, e1, eOut)
		return
	}
	r.mulNaiveAssign(e0, e1, eOut)
}

// mulNaiveAssign computes the product by schoolbook convolution.
// The raw convolution has length 2N-1, so the fold by X^N = -1 subtracts
// the single extra block from the head.
func (r *Ring) mulNaiveAssign(e0, e1, eOut Element) {
	N := r.degree

	conv := make([]*big.Int, 2*N-1)
	for k := 0; k < 2*N-1; k++ {
		conv[k] = big.NewInt(0)
	}

	prod := big.NewInt(0)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			prod.Mul(e0.coeffs[i], e1.coeffs[j])
			conv[i+j].Add(conv[i+j], prod)
		}
	}

	for k := N; k < 2*N-1; k++ {
		conv[k-N].Sub(conv[k-N], conv[k])
	}

	for i := 0; i < N; i++ {
		eOut.coeffs[i].Set(conv[i])
		r.char.reduceAssign(eOut.coeffs[i])
	}
}

// MulParallel is a parallelized version of [Ring.Mul].
// Each output coefficient of the folded convolution is an independent sum,
// so output positions are distributed over goroutines.
func (r *Ring) MulParallel(e0, e1 Element) Element {
	r.mustBeElement(e0)
	r.mustBeElement(e1)

	eOut := r.NewElement()
	N := r.degree

	workSize := min(runtime.NumCPU(), N)

	var wg sync.WaitGroup
	wg.Add(workSize)
	for w := 0; w < workSize; w++ {
		go func(w int) {
			defer wg.Done()

			prod := big.NewInt(0)
			for p := w; p < N; p += workSize {
				acc := eOut.coeffs[p]
				for i := 0; i <= p; i++ {
					prod.Mul(e0.coeffs[i], e1.coeffs[p-i])
					acc.Add(acc, prod)
				}
				for i := p + 1; i < N; i++ {
					prod.Mul(e0.coeffs[i], e1.coeffs[p+N-i])
					acc.Sub(acc, prod)
				}
				r.char.reduceAssign(acc)
			}
		}(w)
	}
	wg.Wait()

	return eOut
}

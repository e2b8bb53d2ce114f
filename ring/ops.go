package ring

import "math/big"

// Add returns eOut = e0 + e1.
func (r *Ring) Add(e0, e1 Element) Element {
	eOut := r.NewElement()
	r.AddAssign(e0, e1, eOut)
	return eOut
}

// AddAssign assigns eOut = e0 + e1.
func (r *Ring) AddAssign(e0, e1, eOut Element) {
	r.mustBeElement(e0)
	r.mustBeElement(e1)
	r.mustBeElement(eOut)

	for i := 0; i < r.degree; i++ {
		eOut.coeffs[i].Add(e0.coeffs[i], e1.coeffs[i])
		r.char.reduceAssign(eOut.coeffs[i])
	}
}

// Sub returns eOut = e0 - e1.
func (r *Ring) Sub(e0, e1 Element) Element {
	eOut := r.NewElement()
	r.SubAssign(e0, e1, eOut)
	return eOut
}

// SubAssign assigns eOut = e0 - e1.
func (r *Ring) SubAssign(e0, e1, eOut Element) {
	r.mustBeElement(e0)
	r.mustBeElement(e1)
	r.mustBeElement(eOut)

	for i := 0; i < r.degree; i++ {
		eOut.coeffs[i].Sub(e0.coeffs[i], e1.coeffs[i])
		r.char.reduceAssign(eOut.coeffs[i])
	}
}

// Neg returns eOut = -e.
func (r *Ring) Neg(e Element) Element {
	eOut := r.NewElement()
	r.NegAssign(e, eOut)
	return eOut
}

// NegAssign assigns eOut = -e.
func (r *Ring) NegAssign(e, eOut Element) {
	r.mustBeElement(e)
	r.mustBeElement(eOut)

	for i := 0; i < r.degree; i++ {
		eOut.coeffs[i].Neg(e.coeffs[i])
		r.char.reduceAssign(eOut.coeffs[i])
	}
}

// ScalarMul returns eOut = e * c.
func (r *Ring) ScalarMul(e Element, c *big.Int) Element {
	eOut := r.NewElement()
	r.ScalarMulAssign(e, c, eOut)
	return eOut
}

// ScalarMulAssign assigns eOut = e * c.
func (r *Ring) ScalarMulAssign(e Element, c *big.Int, eOut Element) {
	r.mustBeElement(e)
	r.mustBeElement(eOut)

	for i := 0; i < r.degree; i++ {
		eOut.coeffs[i].Mul(e.coeffs[i], c)
		r.char.reduceAssign(eOut.coeffs[i])
	}
}

// Hadamard returns the coefficient-wise product eOut[i] = e0[i] * e1[i].
// This is not the ring product; see [Ring.Mul].
func (r *Ring) Hadamard(e0, e1 Element) Element {
	eOut := r.NewElement()
	r.HadamardAssign(e0, e1, eOut)
	return eOut
}

// HadamardAssign assigns eOut[i] = e0[i] * e1[i].
func (r *Ring) HadamardAssign(e0, e1, eOut Element) {
	r.mustBeElement(e0)
	r.mustBeElement(e1)
	r.mustBeElement(eOut)

	for i := 0; i < r.degree; i++ {
		eOut.coeffs[i].Mul(e0.coeffs[i], e1.coeffs[i])
		r.char.reduceAssign(eOut.coeffs[i])
	}
}

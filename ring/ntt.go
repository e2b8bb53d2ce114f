package ring

import (
	"math/big"

	"github.com/sp301415/rlwe-ring/num"
)

// initNTT precomputes the negacyclic NTT tables for a prime characteristic p
// with p = 1 (mod 2N). The twiddle factors are the powers of a primitive
// 2Nth root of unity, in bit-reversed order.
func (r *Ring) initNTT() {
	p := r.char.modulus
	N := r.degree

	exp1 := big.NewInt(0).Sub(p, big.NewInt(1))
	exp1.Div(exp1, big.NewInt(2*int64(N)))
	exp2 := big.NewInt(int64(N))
	root := big.NewInt(0)
	for x := big.NewInt(2); x.Cmp(p) < 0; x.Add(x, big.NewInt(1)) {
		root.Exp(x, exp1, p)
		if big.NewInt(0).Exp(root, exp2, p).Cmp(big.NewInt(1)) != 0 {
			break
		}
	}

	tw := make([]*big.Int, N)
	twInv := make([]*big.Int, N)
	for i := 0; i < N; i++ {
		tw[i] = big.NewInt(0).Exp(root, big.NewInt(int64(i)), p)
		twInv[i] = big.NewInt(0).Exp(root, big.NewInt(int64(2*N-i)), p)
	}
	num.BitReverseInPlace(tw)
	num.BitReverseInPlace(twInv)

	r.reducer = NewReducer(p)
	r.tw = tw
	r.twInv = twInv
	r.degreeInv = big.NewInt(0).ModInverse(big.NewInt(int64(N)), p)
}

// nttInPlace computes the NTT of a bigint vector in-place.
// Inputs must lie in [0, p).
func (r *Ring) nttInPlace(coeffs []*big.Int) {
	t := r.degree
	for m := 1; m < r.degree; m <<= 1 {
		t >>= 1
		for i := 0; i < m; i++ {
			j1 := 2 * i * t
			j2 := j1 + t
			for j := j1; j < j2; j++ {
				r.buffer.u.Set(coeffs[j])
				r.buffer.v.Set(coeffs[j+t])

				r.buffer.vOut.Mul(r.buffer.v, r.tw[m+i])
				r.reducer.Reduce(r.buffer.vOut)

				coeffs[j].Add(r.buffer.u, r.buffer.vOut)
				if coeffs[j].Cmp(r.char.modulus) >= 0 {
					coeffs[j].Sub(coeffs[j], r.char.modulus)
				}

				coeffs[j+t].Sub(r.buffer.u, r.buffer.vOut)
				if coeffs[j+t].Sign() < 0 {
					coeffs[j+t].Add(coeffs[j+t], r.char.modulus)
				}
			}
		}
	}

	num.BitReverseInPlace(coeffs)
}

// invNTTInPlace computes the inverse NTT of a bigint vector in-place,
// without normalization.
func (r *Ring) invNTTInPlace(coeffs []*big.Int) {
	num.BitReverseInPlace(coeffs)

	t := 1
	for m := r.degree >> 1; m >= 1; m >>= 1 {
		for i := 0; i < m; i++ {
			j1 := 2 * i * t
			j2 := j1 + t
			for j := j1; j < j2; j++ {
				r.buffer.u.Set(coeffs[j])
				r.buffer.v.Set(coeffs[j+t])

				coeffs[j].Add(r.buffer.u, r.buffer.v)
				if coeffs[j].Cmp(r.char.modulus) >= 0 {
					coeffs[j].Sub(coeffs[j], r.char.modulus)
				}

				r.buffer.vOut.Sub(r.buffer.u, r.buffer.v)
				coeffs[j+t].Mul(r.buffer.vOut, r.twInv[m+i])
				r.reducer.Reduce(coeffs[j+t])
			}
		}
		t <<= 1
	}
}

// mulNTTAssign computes eOut = e0 * e1 through the NTT domain.
// Balanced representatives are lifted to [0, p) for the transform and
// rebalanced on the way out.
func (r *Ring) mulNTTAssign(e0, e1, eOut Element) {
	N := r.degree
	p := r.char.modulus

	u0 := make([]*big.Int, N)
	u1 := make([]*big.Int, N)
	for i := 0; i < N; i++ {
		u0[i] = big.NewInt(0).Mod(e0.coeffs[i], p)
		u1[i] = big.NewInt(0).Mod(e1.coeffs[i], p)
	}

	r.nttInPlace(u0)
	r.nttInPlace(u1)

	for i := 0; i < N; i++ {
		u0[i].Mul(u0[i], u1[i])
		r.reducer.Reduce(u0[i])
	}

	r.invNTTInPlace(u0)

	for i := 0; i < N; i++ {
		u0[i].Mul(u0[i], r.degreeInv)
		r.reducer.Reduce(u0[i])
		if u0[i].Cmp(r.char.half) > 0 {
			u0[i].Sub(u0[i], p)
		}
		eOut.coeffs[i].Set(u0[i])
	}
}

package ring

import "math/big"

// Reducer computes the Barrett reduction modulo a fixed positive modulus.
// Inputs must lie in (-2p^2, 2p^2); outputs lie in [0, p).
type Reducer struct {
	p *big.Int

	bound    *big.Int
	shift    uint
	barConst *big.Int

	quo  *big.Int
	quoP *big.Int
}

// NewReducer creates a new Reducer for the modulus p.
//
// Panics when p is not positive.
func NewReducer(p *big.Int) *Reducer {
	if p.Sign() <= 0 {
		panic("modulus must be positive")
	}

	shift := (uint(p.BitLen()) << 1) + 1
	barConst := big.NewInt(0).Lsh(big.NewInt(1), shift)
	barConst.Div(barConst, p)

	bound := big.NewInt(0).Mul(p, p)
	bound.Lsh(bound, 1)

	return &Reducer{
		p: p,

		bound:    bound,
		shift:    shift,
		barConst: barConst,

		quo:  big.NewInt(0),
		quoP: big.NewInt(0),
	}
}

// ShallowCopy creates a copy of the Reducer that is safe to use
// concurrently with the original.
func (r *Reducer) ShallowCopy() *Reducer {
	return &Reducer{
		p: r.p,

		bound:    r.bound,
		shift:    r.shift,
		barConst: r.barConst,

		quo:  big.NewInt(0),
		quoP: big.NewInt(0),
	}
}

// Modulus returns the modulus of the Reducer.
func (r *Reducer) Modulus() *big.Int {
	return big.NewInt(0).Set(r.p)
}

// Reduce reduces x modulo p in-place.
//
// Panics when x is outside (-2p^2, 2p^2).
func (r *Reducer) Reduce(x *big.Int) {
	if x.Sign() < 0 {
		x.Add(x, r.bound)
	}

	if x.Sign() < 0 || x.Cmp(r.bound) >= 0 {
		panic("input must be in the range (-2p^2, 2p^2)")
	}

	r.quo.Mul(x, r.barConst)
	r.quo.Rsh(r.quo, r.shift)
	r.quoP.Mul(r.quo, r.p)
	x.Sub(x, r.quoP)
	if x.Cmp(r.p) >= 0 {
		x.Sub(x, r.p)
	}
}

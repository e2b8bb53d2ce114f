package ring

import (
	"math/big"
)

// primalityRounds is the number of Miller-Rabin rounds used to check
// that a modulus is prime.
const primalityRounds = 20

// Characteristic is the characteristic of a coefficient domain.
// It is either zero, in which case coefficients are exact integers,
// or a prime p, in which case coefficients are elements of Z/pZ.
//
// Residues modulo p are stored in balanced form: the canonical
// representative of x is the unique r with r = x (mod p) lying in
// (floor(p/2) - p, floor(p/2)].
type Characteristic struct {
	modulus *big.Int
	half    *big.Int
}

// CharZero returns the zero characteristic.
// Rings over the zero characteristic have exact integer coefficients.
func CharZero() Characteristic {
	return Characteristic{}
}

// NewCharacteristic creates a Characteristic with prime modulus p.
//
// Panics when p is not positive or not prime.
func NewCharacteristic(p *big.Int) Characteristic {
	if p == nil || p.Sign() <= 0 {
		panic("modulus must be positive")
	}
	if !p.ProbablyPrime(primalityRounds) {
		panic("modulus must be prime")
	}

	modulus := big.NewInt(0).Set(p)
	return Characteristic{
		modulus: modulus,
		half:    big.NewInt(0).Rsh(modulus, 1),
	}
}

// NewCharacteristicUint64 creates a Characteristic with prime modulus p.
//
// Panics when p is zero or not prime.
func NewCharacteristicUint64(p uint64) Characteristic {
	return NewCharacteristic(big.NewInt(0).SetUint64(p))
}

// IsZero returns whether the characteristic is zero.
func (c Characteristic) IsZero() bool {
	return c.modulus == nil
}

// Modulus returns the modulus of the characteristic.
// Returns zero for the zero characteristic.
func (c Characteristic) Modulus() *big.Int {
	if c.modulus == nil {
		return big.NewInt(0)
	}
	return big.NewInt(0).Set(c.modulus)
}

// Equal returns whether two characteristics are equal.
func (c Characteristic) Equal(other Characteristic) bool {
	if c.IsZero() || other.IsZero() {
		return c.IsZero() && other.IsZero()
	}
	return c.modulus.Cmp(other.modulus) == 0
}

// String returns a string representation of the characteristic.
func (c Characteristic) String() string {
	if c.modulus == nil {
		return "0"
	}
	return c.modulus.String()
}

// reduceAssign reduces x in-place to the balanced canonical representative.
// For the zero characteristic this is a no-op.
func (c Characteristic) reduceAssign(x *big.Int) {
	if c.modulus == nil {
		return
	}

	x.Mod(x, c.modulus)
	if x.Cmp(c.half) > 0 {
		x.Sub(x, c.modulus)
	}
}

package ring

import "math/big"

// ModInt is an arbitrary-precision integer tagged with a Characteristic.
// Its representative is always canonical: the exact integer under the zero
// characteristic, and the balanced residue modulo p otherwise.
//
// ModInt is an immutable value; every operation returns a new ModInt.
// The zero value is not usable; use [NewModInt].
type ModInt struct {
	char  Characteristic
	value *big.Int
}

// NewModInt creates a ModInt from x, reduced to canonical form.
func NewModInt(x *big.Int, char Characteristic) ModInt {
	value := big.NewInt(0).Set(x)
	char.reduceAssign(value)
	return ModInt{char: char, value: value}
}

// NewModIntInt64 creates a ModInt from x, reduced to canonical form.
func NewModIntInt64(x int64, char Characteristic) ModInt {
	return NewModInt(big.NewInt(x), char)
}

// Characteristic returns the characteristic of x.
func (x ModInt) Characteristic() Characteristic {
	return x.char
}

// BigInt returns a copy of the canonical representative of x.
func (x ModInt) BigInt() *big.Int {
	return big.NewInt(0).Set(x.value)
}

// IsZero returns whether x is zero.
func (x ModInt) IsZero() bool {
	return x.value.Sign() == 0
}

// Equal returns whether x and y have the same characteristic and the same
// canonical representative.
func (x ModInt) Equal(y ModInt) bool {
	return x.char.Equal(y.char) && x.value.Cmp(y.value) == 0
}

// Add returns x + y.
//
// Panics when the characteristics of x and y differ.
func (x ModInt) Add(y ModInt) ModInt {
	x.mustMatch(y)

	value := big.NewInt(0).Add(x.value, y.value)
	x.char.reduceAssign(value)
	return ModInt{char: x.char, value: value}
}

// Sub returns x - y.
//
// Panics when the characteristics of x and y differ.
func (x ModInt) Sub(y ModInt) ModInt {
	x.mustMatch(y)

	value := big.NewInt(0).Sub(x.value, y.value)
	x.char.reduceAssign(value)
	return ModInt{char: x.char, value: value}
}

// Mul returns x * y.
//
// Panics when the characteristics of x and y differ.
func (x ModInt) Mul(y ModInt) ModInt {
	x.mustMatch(y)

	value := big.NewInt(0).Mul(x.value, y.value)
	x.char.reduceAssign(value)
	return ModInt{char: x.char, value: value}
}

// Neg returns -x.
func (x ModInt) Neg() ModInt {
	value := big.NewInt(0).Neg(x.value)
	x.char.reduceAssign(value)
	return ModInt{char: x.char, value: value}
}

// String returns a string representation of the canonical representative.
func (x ModInt) String() string {
	return x.value.String()
}

func (x ModInt) mustMatch(y ModInt) {
	if !x.char.Equal(y.char) {
		panic("characteristic mismatch")
	}
}

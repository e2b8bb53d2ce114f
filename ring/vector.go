package ring

import "math/big"

// Vector is an ordered sequence of arbitrary-precision integers: the
// unreduced coefficient representation of a polynomial, where entry i is the
// coefficient of X^i. Nothing is assumed about its length or the magnitude
// of its entries.
//
// A Vector is immutable; entries are deep-copied on construction and read.
type Vector struct {
	coords []*big.Int
}

// NewVector creates a Vector from big.Int coordinates.
func NewVector(coords []*big.Int) Vector {
	v := make([]*big.Int, len(coords))
	for i := 0; i < len(coords); i++ {
		v[i] = big.NewInt(0).Set(coords[i])
	}
	return Vector{coords: v}
}

// NewVectorInt64 creates a Vector from int64 coordinates.
func NewVectorInt64(coords []int64) Vector {
	v := make([]*big.Int, len(coords))
	for i := 0; i < len(coords); i++ {
		v[i] = big.NewInt(coords[i])
	}
	return Vector{coords: v}
}

// Length returns the number of coordinates of v.
func (v Vector) Length() int {
	return len(v.coords)
}

// Coord returns a copy of the i-th coordinate of v.
func (v Vector) Coord(i int) *big.Int {
	return big.NewInt(0).Set(v.coords[i])
}

// Coords returns a deep copy of the coordinates of v.
func (v Vector) Coords() []*big.Int {
	coords := make([]*big.Int, len(v.coords))
	for i := 0; i < len(v.coords); i++ {
		coords[i] = big.NewInt(0).Set(v.coords[i])
	}
	return coords
}

// Equal returns whether two vectors have the same length and coordinates.
func (v Vector) Equal(other Vector) bool {
	if len(v.coords) != len(other.coords) {
		return false
	}
	for i := 0; i < len(v.coords); i++ {
		if v.coords[i].Cmp(other.coords[i]) != 0 {
			return false
		}
	}
	return true
}

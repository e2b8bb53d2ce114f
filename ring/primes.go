package ring

import (
	"fmt"

	"github.com/sp301415/rlwe-ring/num"
	"github.com/tuneinsight/lattigo/v6/core/rlwe"
)

// NewNTTFriendlyCharacteristic generates a prime characteristic p of the
// given bit length with p = 1 (mod 2N), so that rings of degree N over it
// use the NTT multiplication path.
//
// The bit length must be at most 61.
func NewNTTFriendlyCharacteristic(N int, bits int) (Characteristic, error) {
	if !num.IsPowerOfTwo(N) {
		return Characteristic{}, fmt.Errorf("degree must be a power of two")
	}

	p, _, err := rlwe.GenModuli(num.Log2(N)+1, []int{bits}, nil)
	if err != nil {
		return Characteristic{}, err
	}

	return NewCharacteristicUint64(p[0]), nil
}

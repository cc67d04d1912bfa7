package shared

import (
	"math/bits"
)

// NumBits returns the number of significant bits of v: the minimal field
// width that can hold it.
func NumBits(v uint64) uint {
	return uint(bits.Len64(v))
}

func IsPowerOfTwo(v uint64) bool {
	return v != 0 && v&(v-1) == 0
}

// UintBE decodes b as an unsigned big-endian integer. len(b) must be at
// most 8.
func UintBE(b []byte) uint64 {
	var v uint64
	for i := 0; i < len(b); i++ {
		v <<= 8
		v |= uint64(b[i])
	}
	return v
}

// PutUintBE encodes v as an unsigned big-endian integer into b, using all
// of b.
func PutUintBE(b []byte, v uint64) {
	for i := len(b) - 1; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}

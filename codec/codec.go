// Package codec converts between fixed-width numeric values and MSB-first
// bit sequences. All widths funnel through the same bit ordering, so the
// bit queue never needs width-specific logic; only these functions know
// field widths.
package codec

import (
	"fmt"
	"math"
	"strconv"

	"github.com/sck451/BitPacker/bit"
)

// MaxWidth is the widest field the codecs support, in bits.
const MaxWidth = 64

// WidthError is returned when a requested field width is outside the
// supported range.
type WidthError struct {
	Width uint
}

func (err WidthError) Error() string {
	return fmt.Sprintf("invalid field width %d; expected: 1 to %d", err.Width, MaxWidth)
}

// RangeError is returned when a value does not fit the requested width.
type RangeError struct {
	Value string
	Width uint
}

func (err RangeError) Error() string {
	return fmt.Sprintf("value %v does not fit in %d bits", err.Value, err.Width)
}

// DecodeUint folds bits, MSB-first, into an unsigned integer. The slice
// must hold at most MaxWidth valid bits.
func DecodeUint(bits []bit.Bit) uint64 {
	var acc uint64
	for _, b := range bits {
		acc = acc<<1 | uint64(b)
	}
	return acc
}

// EncodeUint emits exactly width bits of value, MSB-first. It fails with a
// RangeError if value does not fit in width bits.
func EncodeUint(value uint64, width uint) ([]bit.Bit, error) {
	if width == 0 || width > MaxWidth {
		return nil, WidthError{Width: width}
	}
	if width < MaxWidth && value >= 1<<width {
		return nil, RangeError{Value: strconv.FormatUint(value, 10), Width: width}
	}
	out := make([]bit.Bit, width)
	for i := uint(0); i < width; i++ {
		out[i] = bit.Bit(value >> (width - 1 - i) & 1)
	}
	return out, nil
}

// DecodeInt interprets bits as a two's-complement signed integer, with the
// first bit as the sign.
func DecodeInt(bits []bit.Bit) int64 {
	width := uint(len(bits))
	value := DecodeUint(bits)
	if width == 0 || width == MaxWidth || bits[0] == bit.Zero {
		return int64(value)
	}
	// Sign bit set: recover the negative value by subtracting 2^width.
	return int64(value) - 1<<width
}

// EncodeInt emits exactly width bits of value in two's complement,
// MSB-first. It fails with a RangeError if value is outside
// [-2^(width-1), 2^(width-1)-1].
func EncodeInt(value int64, width uint) ([]bit.Bit, error) {
	if width == 0 || width > MaxWidth {
		return nil, WidthError{Width: width}
	}
	if width < MaxWidth {
		min := int64(-1) << (width - 1)
		max := int64(1)<<(width-1) - 1
		if value < min || value > max {
			return nil, RangeError{Value: strconv.FormatInt(value, 10), Width: width}
		}
	}
	// Re-base negatives into the unsigned domain of the same width. The
	// uint64 conversion adds 2^64; masking reduces that to 2^width.
	return EncodeUint(uint64(value)&mask(width), width)
}

// EncodeFloat32 emits the 32 bits of the IEEE-754 binary32 representation
// of value, big-endian, MSB-first.
func EncodeFloat32(value float32) []bit.Bit {
	bits, _ := EncodeUint(uint64(math.Float32bits(value)), 32)
	return bits
}

// EncodeFloat64 emits the 64 bits of the IEEE-754 binary64 representation
// of value, big-endian, MSB-first.
func EncodeFloat64(value float64) []bit.Bit {
	bits, _ := EncodeUint(math.Float64bits(value), 64)
	return bits
}

// DecodeFloat reinterprets bits as an IEEE-754 big-endian float of the
// given width. Width is explicit: 32 or 64, with exactly that many bits
// supplied. Inferring the width from the slice length would silently
// misbehave for any count strictly between 33 and 63.
func DecodeFloat(bits []bit.Bit, width uint) (float64, error) {
	if width != 32 && width != 64 {
		return 0, WidthError{Width: width}
	}
	if uint(len(bits)) != width {
		return 0, fmt.Errorf("decoding a %d-bit float requires exactly %d bits, given: %d", width, width, len(bits))
	}
	value := DecodeUint(bits)
	if width == 32 {
		return float64(math.Float32frombits(uint32(value))), nil
	}
	return math.Float64frombits(value), nil
}

func mask(width uint) uint64 {
	if width == MaxWidth {
		return math.MaxUint64
	}
	return 1<<width - 1
}

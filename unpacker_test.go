package bitpacker_test

import (
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	bitpacker "github.com/sck451/BitPacker"
	"github.com/sck451/BitPacker/bit"
)

func TestReadBitOrder(t *testing.T) {
	req := require.New(t)

	u := bitpacker.NewUnpacker([]byte{0b1011_0010})
	bits, err := u.ReadBits(8)
	req.NoError(err)
	req.Equal([]bit.Bit{1, 0, 1, 1, 0, 0, 1, 0}, bits)

	_, err = u.ReadBit()
	req.Equal(io.EOF, err)
}

func TestReadEOF(t *testing.T) {
	req := require.New(t)

	u := bitpacker.NewUnpacker(nil)
	_, err := u.ReadBit()
	req.Equal(io.EOF, err)

	// A single-byte stream satisfies one ReadUint8 and fails the second.
	u = bitpacker.NewUnpacker([]byte{0xAB})
	v, err := u.ReadUint8()
	req.NoError(err)
	req.Equal(uint8(0xAB), v)

	_, err = u.ReadUint8()
	req.Equal(io.EOF, err)

	// Exhaustion mid-sequence is distinguished from a clean end.
	u = bitpacker.NewUnpacker([]byte{0xAB})
	_, err = u.ReadUint16()
	req.Equal(io.ErrUnexpectedEOF, err)
}

func TestReadNotSticky(t *testing.T) {
	req := require.New(t)

	// A failed wide read consumes what it saw, but a narrower read of the
	// leftover bits still succeeds.
	u := bitpacker.NewUnpacker([]byte{0b1100_0000})
	_, err := u.ReadBits(9)
	req.Equal(io.ErrUnexpectedEOF, err)
	req.Equal(0, u.Remaining())

	u = bitpacker.NewUnpacker([]byte{0b1100_0000})
	bits, err := u.ReadBits(2)
	req.NoError(err)
	req.Equal([]bit.Bit{One, One}, bits)
	req.Equal(6, u.Remaining())
}

func TestPeek(t *testing.T) {
	req := require.New(t)

	u := bitpacker.NewUnpacker([]byte{0b1011_0010, 0xFF})

	peeked, err := u.Peek(12)
	req.NoError(err)
	req.Equal([]bit.Bit{1, 0, 1, 1, 0, 0, 1, 0, 1, 1, 1, 1}, peeked)

	// A second peek observes the same bits: nothing was consumed.
	again, err := u.Peek(12)
	req.NoError(err)
	req.Equal(peeked, again)
	req.Equal(16, u.Remaining())

	// A following read returns exactly what was peeked.
	read, err := u.ReadBits(12)
	req.NoError(err)
	req.Equal(peeked, read)
	req.Equal(4, u.Remaining())
}

func TestPeekInsufficientData(t *testing.T) {
	req := require.New(t)

	u := bitpacker.NewUnpacker([]byte{0xFF})
	_, err := u.Peek(9)
	req.Equal(io.ErrUnexpectedEOF, err)

	// The refilled bits stay readable.
	bits, err := u.ReadBits(8)
	req.NoError(err)
	req.Len(bits, 8)

	_, err = u.Peek(65)
	req.Error(err)
}

func TestRemaining(t *testing.T) {
	req := require.New(t)

	u := bitpacker.NewUnpacker([]byte{0xAA, 0xBB, 0xCC})
	req.Equal(24, u.Remaining())

	_, err := u.ReadBits(3)
	req.NoError(err)
	req.Equal(21, u.Remaining())

	_, err = u.ReadUint16()
	req.NoError(err)
	req.Equal(5, u.Remaining())
}

func TestRoundTripTypedValues(t *testing.T) {
	req := require.New(t)

	p := bitpacker.NewPacker()
	req.NoError(p.PutUint8(math.MaxUint8))
	req.NoError(p.PutUint16(0x1234))
	req.NoError(p.PutUint32(0xDEADBEEF))
	req.NoError(p.PutInt8(math.MinInt8))
	req.NoError(p.PutInt16(-1234))
	req.NoError(p.PutInt32(math.MinInt32))
	req.NoError(p.PutFloat32(math.Pi))
	req.NoError(p.PutFloat64(-math.Pi))

	u := bitpacker.NewUnpacker(p.Bytes())

	u8, err := u.ReadUint8()
	req.NoError(err)
	req.Equal(uint8(math.MaxUint8), u8)

	u16, err := u.ReadUint16()
	req.NoError(err)
	req.Equal(uint16(0x1234), u16)

	u32, err := u.ReadUint32()
	req.NoError(err)
	req.Equal(uint32(0xDEADBEEF), u32)

	i8, err := u.ReadInt8()
	req.NoError(err)
	req.Equal(int8(math.MinInt8), i8)

	i16, err := u.ReadInt16()
	req.NoError(err)
	req.Equal(int16(-1234), i16)

	i32, err := u.ReadInt32()
	req.NoError(err)
	req.Equal(int32(math.MinInt32), i32)

	f32, err := u.ReadFloat32()
	req.NoError(err)
	req.Equal(float32(math.Pi), f32)

	f64, err := u.ReadFloat64()
	req.NoError(err)
	req.Equal(-math.Pi, f64)

	_, err = u.ReadBit()
	req.Equal(io.EOF, err)
}

func TestRoundTripMixed(t *testing.T) {
	req := require.New(t)

	// Interleave single bits with typed fields so every field crosses a
	// byte boundary.
	for v := uint64(1); v < 1<<10; v++ {
		p := bitpacker.NewPacker()
		req.NoError(p.PutBit(One))
		req.NoError(p.PutBit(Zero))
		req.NoError(p.PutBit(One))
		req.NoError(p.PutUint(v, 16))
		req.NoError(p.PutInt(-int64(v), 32))
		req.NoError(p.PutBit(One))

		u := bitpacker.NewUnpacker(p.Bytes())

		b, err := u.ReadBit()
		req.NoError(err)
		req.Equal(One, b)
		b, err = u.ReadBit()
		req.NoError(err)
		req.Equal(Zero, b)
		b, err = u.ReadBit()
		req.NoError(err)
		req.Equal(One, b)

		uv, err := u.ReadUint(16)
		req.NoError(err)
		req.Equal(v, uv)

		iv, err := u.ReadInt(32)
		req.NoError(err)
		req.Equal(-int64(v), iv)

		b, err = u.ReadBit()
		req.NoError(err)
		req.Equal(One, b)
	}
}

func TestRoundTripBytes(t *testing.T) {
	req := require.New(t)

	p := bitpacker.NewPacker()
	req.NoError(p.PutBytes([]byte{1, 2, 3, 4, 255}))

	u := bitpacker.NewUnpacker(p.Bytes())
	data, err := u.ReadBytes(5)
	req.NoError(err)
	req.Equal([]byte{1, 2, 3, 4, 255}, data)

	_, err = u.ReadBytes(1)
	req.Equal(io.EOF, err)
}

func TestUnpackerCopiesInput(t *testing.T) {
	req := require.New(t)

	data := []byte{0xFF}
	u := bitpacker.NewUnpacker(data)
	data[0] = 0x00

	v, err := u.ReadUint8()
	req.NoError(err)
	req.Equal(uint8(0xFF), v)
}

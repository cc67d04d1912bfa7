package bitpacker

import (
	"fmt"
	"io"

	"github.com/sck451/BitPacker/bit"
	"github.com/sck451/BitPacker/buffer"
	"github.com/sck451/BitPacker/codec"
)

// Unpacker consumes bits and typed values from a byte sequence in the order
// they were packed. Whole bytes are pulled lazily from the byte buffer and
// exploded, MSB-first, into a transient queue; leftover bits of the most
// recently decoded byte stay queued for the next read.
//
// Every read (or peek-then-read pair) advances state monotonically; the
// stream cannot be rewound. Exhaustion is signaled per call, not sticky.
type Unpacker struct {
	buf   *buffer.Buffer
	queue bit.Queue
}

// NewUnpacker returns an Unpacker over a copy of data. The Unpacker never
// aliases caller-owned memory after construction.
func NewUnpacker(data []byte) *Unpacker {
	u := &Unpacker{buf: buffer.New()}
	u.buf.Append(data)
	return u
}

// ReadBit consumes and returns the next bit. It fails with io.EOF if no
// bits remain.
func (u *Unpacker) ReadBit() (bit.Bit, error) {
	if u.queue.Len() == 0 && !u.refill() {
		return bit.Zero, io.EOF
	}
	b, _ := u.queue.PopFront()
	return b, nil
}

// ReadBits consumes and returns the next n bits, in order. If the stream is
// exhausted before n bits are produced it fails — with io.EOF when nothing
// was available, io.ErrUnexpectedEOF otherwise — and returns no partial
// result; bits consumed before the failure stay consumed.
func (u *Unpacker) ReadBits(n int) ([]bit.Bit, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid bit count %d", n)
	}
	out := make([]bit.Bit, n)
	for i := 0; i < n; i++ {
		b, err := u.ReadBit()
		if err != nil {
			if i > 0 {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

// ReadUint consumes width bits and decodes them as an unsigned integer.
func (u *Unpacker) ReadUint(width uint) (uint64, error) {
	if width == 0 || width > codec.MaxWidth {
		return 0, codec.WidthError{Width: width}
	}
	bits, err := u.ReadBits(int(width))
	if err != nil {
		return 0, err
	}
	return codec.DecodeUint(bits), nil
}

// ReadInt consumes width bits and decodes them as a two's-complement
// signed integer.
func (u *Unpacker) ReadInt(width uint) (int64, error) {
	if width == 0 || width > codec.MaxWidth {
		return 0, codec.WidthError{Width: width}
	}
	bits, err := u.ReadBits(int(width))
	if err != nil {
		return 0, err
	}
	return codec.DecodeInt(bits), nil
}

func (u *Unpacker) ReadUint8() (uint8, error) {
	v, err := u.ReadUint(8)
	return uint8(v), err
}

func (u *Unpacker) ReadUint16() (uint16, error) {
	v, err := u.ReadUint(16)
	return uint16(v), err
}

func (u *Unpacker) ReadUint32() (uint32, error) {
	v, err := u.ReadUint(32)
	return uint32(v), err
}

func (u *Unpacker) ReadInt8() (int8, error) {
	v, err := u.ReadInt(8)
	return int8(v), err
}

func (u *Unpacker) ReadInt16() (int16, error) {
	v, err := u.ReadInt(16)
	return int16(v), err
}

func (u *Unpacker) ReadInt32() (int32, error) {
	v, err := u.ReadInt(32)
	return int32(v), err
}

// ReadFloat32 consumes 32 bits and decodes them as an IEEE-754 binary32
// big-endian float.
func (u *Unpacker) ReadFloat32() (float32, error) {
	bits, err := u.ReadBits(32)
	if err != nil {
		return 0, err
	}
	v, err := codec.DecodeFloat(bits, 32)
	return float32(v), err
}

// ReadFloat64 consumes 64 bits and decodes them as an IEEE-754 binary64
// big-endian float.
func (u *Unpacker) ReadFloat64() (float64, error) {
	bits, err := u.ReadBits(64)
	if err != nil {
		return 0, err
	}
	return codec.DecodeFloat(bits, 64)
}

// ReadBytes consumes and returns the next n bytes, in order.
func (u *Unpacker) ReadBytes(n int) ([]byte, error) {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		v, err := u.ReadUint8()
		if err != nil {
			if i > 0 && err == io.EOF {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Peek returns a copy of the next n bits without consuming them, refilling
// the queue from whole bytes as needed. It fails with io.ErrUnexpectedEOF
// if the source is exhausted before n bits accumulate. Because refilled
// bits remain queued, a following ReadBits(n) returns exactly the peeked
// sequence. n is limited to 64.
func (u *Unpacker) Peek(n int) ([]bit.Bit, error) {
	if n < 0 || n > codec.MaxWidth {
		return nil, fmt.Errorf("cannot peek %d bits; expected: 0 to %d", n, codec.MaxWidth)
	}
	for u.queue.Len() < n {
		if !u.refill() {
			return nil, io.ErrUnexpectedEOF
		}
	}
	bits, _ := u.queue.PeekFront(n)
	return bits, nil
}

// Remaining returns the number of bits left to read: the queued bits plus 8
// per unread byte.
func (u *Unpacker) Remaining() int {
	return u.queue.Len() + u.buf.Len()*8
}

// refill pulls one byte from the buffer and explodes it into 8 queued
// bits, MSB-first. It reports whether a byte was available.
func (u *Unpacker) refill() bool {
	v, err := u.buf.PopFront()
	if err != nil {
		return false
	}
	bits, _ := codec.EncodeUint(uint64(v), 8)
	for _, b := range bits {
		_ = u.queue.Push(b)
	}
	return true
}

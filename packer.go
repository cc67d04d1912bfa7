package bitpacker

import (
	"github.com/sck451/BitPacker/bit"
	"github.com/sck451/BitPacker/buffer"
	"github.com/sck451/BitPacker/codec"
	"github.com/sck451/BitPacker/config"
)

// Packer accumulates bits and typed values into a contiguous byte sequence.
// Bits are staged in a transient queue; every completed 8-bit group is
// flushed into the byte buffer as one byte.
//
// A Packer is write-only across its lifetime: there is no read-back except
// via Bytes.
type Packer struct {
	buf   *buffer.Buffer
	queue bit.Queue
}

// NewPacker returns an empty Packer with default buffer tuning.
func NewPacker() *Packer {
	return &Packer{buf: buffer.New()}
}

// NewPackerConfig returns an empty Packer whose buffer is tuned by cfg.
func NewPackerConfig(cfg *config.Config) *Packer {
	return &Packer{buf: buffer.NewSize(int(cfg.BufferCapacity), int(cfg.CompactThreshold))}
}

// PutBit appends a single bit. It fails with bit.InvalidBitError unless b
// is 0 or 1.
func (p *Packer) PutBit(b bit.Bit) error {
	if err := p.queue.Push(b); err != nil {
		return err
	}
	if p.queue.Len() == 8 {
		p.flush()
	}
	return nil
}

// PutBits appends bits in order. It fails on the first invalid bit; bits
// before the failing element remain appended.
func (p *Packer) PutBits(bits []bit.Bit) error {
	for _, b := range bits {
		if err := p.PutBit(b); err != nil {
			return err
		}
	}
	return nil
}

// PutByte appends all 8 bits of v, MSB-first.
func (p *Packer) PutByte(v byte) error {
	return p.PutUint8(v)
}

// PutBytes appends each byte of data in order.
func (p *Packer) PutBytes(data []byte) error {
	for _, v := range data {
		if err := p.PutUint8(v); err != nil {
			return err
		}
	}
	return nil
}

// PutUint appends the width-bit unsigned encoding of v, MSB-first. It
// surfaces the codec's range and width errors unchanged.
func (p *Packer) PutUint(v uint64, width uint) error {
	bits, err := codec.EncodeUint(v, width)
	if err != nil {
		return err
	}
	return p.PutBits(bits)
}

// PutInt appends the width-bit two's-complement encoding of v, MSB-first.
// It surfaces the codec's range and width errors unchanged.
func (p *Packer) PutInt(v int64, width uint) error {
	bits, err := codec.EncodeInt(v, width)
	if err != nil {
		return err
	}
	return p.PutBits(bits)
}

func (p *Packer) PutUint8(v uint8) error { return p.PutUint(uint64(v), 8) }

func (p *Packer) PutUint16(v uint16) error { return p.PutUint(uint64(v), 16) }

func (p *Packer) PutUint32(v uint32) error { return p.PutUint(uint64(v), 32) }

func (p *Packer) PutInt8(v int8) error { return p.PutInt(int64(v), 8) }

func (p *Packer) PutInt16(v int16) error { return p.PutInt(int64(v), 16) }

func (p *Packer) PutInt32(v int32) error { return p.PutInt(int64(v), 32) }

// PutFloat32 appends the IEEE-754 binary32 encoding of v, big-endian.
func (p *Packer) PutFloat32(v float32) error {
	return p.PutBits(codec.EncodeFloat32(v))
}

// PutFloat64 appends the IEEE-754 binary64 encoding of v, big-endian.
func (p *Packer) PutFloat64(v float64) error {
	return p.PutBits(codec.EncodeFloat64(v))
}

// Size returns the total number of bits stored: 8 per flushed byte plus the
// pending queue length.
func (p *Packer) Size() int {
	return p.buf.Len()*8 + p.queue.Len()
}

// Bytes finalizes the Packer and returns a copy of its contents. A partial
// trailing group is zero-padded on the right to a full byte and flushed
// first, so calling Bytes is not purely read-only; repeated calls return
// the same bytes because no pending bits remain after the first.
func (p *Packer) Bytes() []byte {
	for p.queue.Len()%8 != 0 {
		// Push cannot fail for a valid bit on a sub-capacity queue.
		_ = p.queue.Push(bit.Zero)
	}
	if p.queue.Len() == 8 {
		p.flush()
	}
	return p.buf.Snapshot()
}

// flush decodes the 8 queued bits as an unsigned byte, pushes it to the
// buffer and clears the queue.
func (p *Packer) flush() {
	var group [8]bit.Bit
	for i := range group {
		b, _ := p.queue.PopFront()
		group[i] = b
	}
	p.buf.Push(byte(codec.DecodeUint(group[:])))
}

// Package buffer provides a growable byte queue with independent read and
// write cursors, used as the backing store of both the packer and the
// unpacker.
package buffer

import (
	"io"
)

const (
	// MinCapacity is the floor capacity of a freshly allocated buffer.
	MinCapacity = 64

	// DefaultCompactThreshold is the consumed-prefix size beyond which the
	// unread region is copied back to the start of the backing storage.
	DefaultCompactThreshold = 1 << 12

	growthFactor = 2
)

// Buffer is a byte queue over explicitly managed backing storage. The write
// cursor marks the end of written data, the read cursor the start of
// unconsumed data; the logical length is the distance between them.
//
// Appending grows the backing storage geometrically when full. Popping from
// the front compacts the storage once the discarded prefix exceeds the
// compaction threshold, bounding growth of a long-lived read-heavy buffer.
//
// A Buffer is owned by exactly one Packer or Unpacker and is not safe for
// concurrent use.
type Buffer struct {
	data             []byte
	start            int // read cursor
	end              int // write cursor
	compactThreshold int
}

// New returns an empty buffer with default capacity and compaction
// threshold.
func New() *Buffer {
	return NewSize(MinCapacity, DefaultCompactThreshold)
}

// NewSize returns an empty buffer with the given initial capacity and
// compaction threshold. Values below the package floors are raised to them.
func NewSize(capacity, compactThreshold int) *Buffer {
	if capacity < MinCapacity {
		capacity = MinCapacity
	}
	if compactThreshold < MinCapacity {
		compactThreshold = MinCapacity
	}
	return &Buffer{
		data:             make([]byte, capacity),
		compactThreshold: compactThreshold,
	}
}

// Len returns the number of unread bytes.
func (b *Buffer) Len() int {
	return b.end - b.start
}

// Cap returns the size of the backing storage.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Empty indicates whether any unread bytes remain.
func (b *Buffer) Empty() bool {
	return b.start == b.end
}

// Full indicates whether the next push would require growing the backing
// storage.
func (b *Buffer) Full() bool {
	return b.end == len(b.data)
}

// Push appends a single byte, growing the backing storage if it is full.
func (b *Buffer) Push(v byte) {
	b.ensure(1)
	b.data[b.end] = v
	b.end++
}

// Append appends all of p, growing the backing storage at most once.
func (b *Buffer) Append(p []byte) {
	b.ensure(len(p))
	copy(b.data[b.end:], p)
	b.end += len(p)
}

// PopFront returns the next unread byte, advancing the read cursor, or
// io.EOF if none remain.
func (b *Buffer) PopFront() (byte, error) {
	if b.start == b.end {
		return 0, io.EOF
	}
	v := b.data[b.start]
	b.start++
	if b.start == b.end {
		// Nothing unread; the cursors can be rewound for free.
		b.start = 0
		b.end = 0
	} else if b.start >= b.compactThreshold {
		b.compact()
	}
	return v, nil
}

// Snapshot returns a copy of exactly the unread bytes. The caller owns the
// returned slice; it never aliases the backing storage.
func (b *Buffer) Snapshot() []byte {
	out := make([]byte, b.end-b.start)
	copy(out, b.data[b.start:b.end])
	return out
}

// ensure makes room for n more bytes past the write cursor.
func (b *Buffer) ensure(n int) {
	if b.end+n <= len(b.data) {
		return
	}
	if b.Len()+n <= len(b.data) {
		// Enough total room once the consumed prefix is reclaimed.
		b.compact()
		return
	}
	capacity := len(b.data)
	for capacity < b.Len()+n {
		capacity *= growthFactor
	}
	data := make([]byte, capacity)
	copy(data, b.data[b.start:b.end])
	b.end -= b.start
	b.start = 0
	b.data = data
}

// compact copies the unread region to the start of the backing storage and
// rewinds the cursors.
func (b *Buffer) compact() {
	copy(b.data, b.data[b.start:b.end])
	b.end -= b.start
	b.start = 0
}

package buffer

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushPopFront(t *testing.T) {
	req := require.New(t)

	b := New()
	req.True(b.Empty())
	req.Equal(0, b.Len())

	b.Push(0xDE)
	b.Push(0xAD)
	req.Equal(2, b.Len())

	v, err := b.PopFront()
	req.NoError(err)
	req.Equal(byte(0xDE), v)

	v, err = b.PopFront()
	req.NoError(err)
	req.Equal(byte(0xAD), v)
	req.True(b.Empty())

	_, err = b.PopFront()
	req.Equal(io.EOF, err)
}

func TestAppend(t *testing.T) {
	req := require.New(t)

	b := New()
	b.Append([]byte{1, 2, 3, 4, 255})
	req.Equal(5, b.Len())
	req.Equal([]byte{1, 2, 3, 4, 255}, b.Snapshot())
}

func TestGrowth(t *testing.T) {
	req := require.New(t)

	b := New()
	initial := b.Cap()

	for i := 0; i < initial; i++ {
		b.Push(byte(i))
	}
	req.True(b.Full())
	req.Equal(initial, b.Cap())

	// One more push forces a geometric grow.
	b.Push(0xFF)
	req.Equal(initial*2, b.Cap())
	req.Equal(initial+1, b.Len())

	snap := b.Snapshot()
	for i := 0; i < initial; i++ {
		req.Equal(byte(i), snap[i])
	}
	req.Equal(byte(0xFF), snap[initial])
}

func TestCompaction(t *testing.T) {
	req := require.New(t)

	threshold := 128
	b := NewSize(MinCapacity, threshold)

	payload := make([]byte, threshold*4)
	for i := range payload {
		payload[i] = byte(i)
	}
	b.Append(payload)
	grown := b.Cap()

	// Draining past the threshold must rewind the read cursor without
	// disturbing the unread bytes.
	for i := 0; i < threshold+1; i++ {
		v, err := b.PopFront()
		req.NoError(err)
		req.Equal(byte(i), v)
	}
	req.Equal(len(payload)-threshold-1, b.Len())
	req.Equal(grown, b.Cap())

	snap := b.Snapshot()
	for i, v := range snap {
		req.Equal(byte(threshold+1+i), v)
	}
}

func TestCursorRewindWhenDrained(t *testing.T) {
	req := require.New(t)

	b := New()
	capacity := b.Cap()

	// Fully draining the buffer repeatedly must never grow it.
	for round := 0; round < 100; round++ {
		for i := 0; i < capacity; i++ {
			b.Push(byte(i))
		}
		for i := 0; i < capacity; i++ {
			_, err := b.PopFront()
			req.NoError(err)
		}
	}
	req.Equal(capacity, b.Cap())
}

func TestSnapshotIsACopy(t *testing.T) {
	req := require.New(t)

	b := New()
	b.Append([]byte{1, 2, 3})

	snap := b.Snapshot()
	snap[0] = 99

	v, err := b.PopFront()
	req.NoError(err)
	req.Equal(byte(1), v)
}

func TestNewSizeFloors(t *testing.T) {
	req := require.New(t)

	b := NewSize(1, 1)
	req.Equal(MinCapacity, b.Cap())
}

package bit

// QueueCapacity is the most bits a Queue can hold: a 64-bit lookahead plus
// the remainder of a partially consumed refill group.
const QueueCapacity = 64 + 8

// Queue is an ordered holding area for bits not yet grouped into (or
// ungrouped from) a byte. Insertion order is encoding order. The storage is
// a fixed inline array, so a Queue never allocates.
//
// A Queue is owned by exactly one Packer or Unpacker and is not safe for
// concurrent use.
type Queue struct {
	bits  [QueueCapacity]Bit
	head  int
	count int
}

// Len returns the number of queued bits.
func (q *Queue) Len() int {
	return q.count
}

// Push validates b and appends it to the back of the queue.
func (q *Queue) Push(b Bit) error {
	if !b.Valid() {
		return InvalidBitError{Value: b}
	}
	if q.count == QueueCapacity {
		return ErrQueueFull
	}
	if q.head+q.count == QueueCapacity {
		// Out of room at the tail; slide the live region to the front.
		copy(q.bits[:], q.bits[q.head:q.head+q.count])
		q.head = 0
	}
	q.bits[q.head+q.count] = b
	q.count++
	return nil
}

// PopFront removes and returns the front bit. The second return value is
// false if the queue is empty.
func (q *Queue) PopFront() (Bit, bool) {
	if q.count == 0 {
		return Zero, false
	}
	b := q.bits[q.head]
	q.head++
	q.count--
	if q.count == 0 {
		q.head = 0
	}
	return b, true
}

// PeekFront returns a copy of the first n queued bits without removing
// them. The second return value is false if fewer than n bits are queued.
func (q *Queue) PeekFront(n int) ([]Bit, bool) {
	if n < 0 || n > q.count {
		return nil, false
	}
	out := make([]Bit, n)
	copy(out, q.bits[q.head:q.head+n])
	return out, true
}

// Reset empties the queue.
func (q *Queue) Reset() {
	q.head = 0
	q.count = 0
}

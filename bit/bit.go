// Package bit provides the single-bit value type and the transient bit
// queue which bridges sub-byte operations onto whole bytes.
package bit

import (
	"errors"
	"fmt"
)

// ErrQueueFull is returned when a push would exceed the queue's fixed
// capacity.
var ErrQueueFull = errors.New("bit queue is full")

// Bit is a single binary digit. Only Zero and One are valid values;
// any operation accepting a Bit rejects everything else before storing it.
type Bit uint8

const (
	Zero Bit = 0
	One  Bit = 1
)

// Valid indicates whether b is one of the two permitted bit values.
func (b Bit) Valid() bool {
	return b == Zero || b == One
}

// InvalidBitError is returned when a value outside {0,1} is presented
// as a Bit.
type InvalidBitError struct {
	Value Bit
}

func (err InvalidBitError) Error() string {
	return fmt.Sprintf("invalid bit value %d; expected: 0 or 1", uint8(err.Value))
}

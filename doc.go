// Package bitpacker provides bit-granular binary serialization: a Packer
// accumulates individual bits and typed values into a contiguous byte
// sequence, and an Unpacker consumes them back in the same order, including
// non-destructive lookahead.
//
// All multi-bit fields are packed contiguously, most-significant-bit first,
// with no padding between fields; if the total bit count is not a multiple
// of 8, the final byte's unused low-order bits are zero-filled. Integers are
// two's complement (signed) or plain binary (unsigned); floats are IEEE-754
// big-endian.
//
// Packer and Unpacker are single-owner mutating values: a Packer has one
// writer and an Unpacker one reader for their whole lifetime, with no
// internal synchronization. They share no state; the only channel between
// them is the opaque byte sequence handed from one to the other.
package bitpacker

// Package codec implements the primitive field encoding of the local entity
// cache: fixed-width handles, compressed 64-bit integers, length-prefixed
// strings and the expansion-flags trailer that keeps records forward
// compatible.
//
// Records are sequences of fields without any framing; the record type
// decides the field order. All fixed-width integers are little-endian.
//
//	handle        8 bytes
//	node handle   6 bytes
//	compressed64  1 length byte n (0..8) followed by n value bytes, LSB first
//	string        u32 length followed by the bytes
//	u32 / i64     4 / 8 bytes
//	expansion     8 flag bytes, each 0 or 1
//
// A Reader fails closed: any short read or unexpected expansion flag is an
// error and the caller must reject the whole record.
package codec

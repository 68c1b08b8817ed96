// Package varint implements Ion's variable-length integer family
// (VarUInt, VarInt) plus the fixed-width, context-length UInt/Int forms,
// as big-endian groups of 7 payload bits with a high-bit stop marker.
//
// The encode side is a set of append-style functions (WriteVarUint,
// WriteVarInt, WriteUint, WriteInt) that extend a caller-supplied byte
// slice, plus *To variants writing to a cursor.Sink; the decode side follows the
// reference bitstream reader's readVarUintLen/readVarIntLen (7-bit
// accumulation, stop on the high bit, explicit max-length guard against
// overflow).
package varint

import (
	"github.com/arloliu/ionum/internal/cursor"
	"github.com/arloliu/ionum/ionerr"
)

const (
	continueBit = 0x80 // high bit of a VarUInt octet / non-final VarInt octet
	signBit     = 0x40 // sign bit of a VarInt's first octet
	payloadMask = 0x7F
	firstMask   = 0x3F // 6 payload bits in a VarInt's first octet

	maxVarUintOctets = 10 // ceil(64/7): a uint64 never needs more octets
	maxVarIntOctets  = 10
)

// LenVarUint returns the exact number of octets WriteVarUint(v) would
// produce, without allocating.
func LenVarUint(v uint64) int {
	n := 1
	v >>= 7
	for v > 0 {
		n++
		v >>= 7
	}
	return n
}

// WriteVarUint appends the VarUInt encoding of v to dst, returning the
// extended slice. Zero encodes as the single octet 0x80.
func WriteVarUint(dst []byte, v uint64) []byte {
	n := LenVarUint(v)
	start := len(dst)
	for range n {
		dst = append(dst, 0)
	}
	// Fill least-significant group first, from the end backward.
	for i := n - 1; i >= 0; i-- {
		dst[start+i] = byte(v & payloadMask)
		v >>= 7
	}
	dst[start+n-1] |= continueBit
	return dst
}

// WriteVarUintTo writes the VarUInt encoding of v to sink.
func WriteVarUintTo(sink cursor.Sink, v uint64) error {
	buf := WriteVarUint(make([]byte, 0, maxVarUintOctets), v)
	_, err := sink.Write(buf)
	if err != nil {
		return ionerr.BufferTooSmallf(sink.Position(), "short write encoding varuint")
	}
	return nil
}

// ReadVarUint decodes a VarUInt from src, accumulating 7 bits at a time
// until the stop bit is seen. It fails with NumericOverflow if the value
// would exceed 64 bits before a stop bit is found, and UnexpectedEof if
// src is exhausted first.
func ReadVarUint(src cursor.Source) (uint64, error) {
	start := src.Position()
	var val uint64
	for n := 0; ; n++ {
		if n >= maxVarUintOctets {
			return 0, ionerr.Overflowf("varuint exceeds %d octets starting at offset %d", maxVarUintOctets, start)
		}
		b, err := src.ReadByte()
		if err != nil {
			return 0, ionerr.UnexpectedEOF(start)
		}
		// Overflow check: shifting in 7 more bits must not lose data.
		if val > (^uint64(0))>>7 {
			return 0, ionerr.Overflowf("varuint overflow starting at offset %d", start)
		}
		val = (val << 7) | uint64(b&payloadMask)
		if b&continueBit != 0 {
			return val, nil
		}
	}
}

// WriteVarInt appends the VarInt encoding of v to dst. The first octet
// reserves 6 payload bits plus a sign bit; subsequent octets carry 7
// payload bits each. A magnitude wider than 6 bits takes further octets;
// the first octet then holds the sign and the magnitude's top bits.
func WriteVarInt(dst []byte, v int64) []byte {
	neg := v < 0
	mag := uint64(v)
	if neg {
		mag = uint64(-v)
	}
	return writeVarIntMagnitude(dst, mag, neg)
}

// WriteVarIntNegativeZero appends the VarInt encoding of negative zero
// (0xC0), a value with no int64 representation since Go integers have no
// signed zero.
func WriteVarIntNegativeZero(dst []byte) []byte {
	return append(dst, byte(signBit|continueBit))
}

func writeVarIntMagnitude(dst []byte, mag uint64, neg bool) []byte {
	// Determine how many 7-bit groups the magnitude needs beyond the
	// first octet's 6 bits.
	rest := mag >> 6
	n := 1
	for rest > 0 {
		n++
		rest >>= 7
	}
	start := len(dst)
	for range n {
		dst = append(dst, 0)
	}
	// Fill 7-bit groups for octets after the first, least-significant
	// first, from the end backward.
	rem := mag
	for i := n - 1; i >= 1; i-- {
		dst[start+i] = byte(rem & payloadMask)
		rem >>= 7
	}
	// First octet carries the low 6 bits of whatever remains plus the
	// sign bit.
	first := byte(rem & firstMask)
	if neg {
		first |= signBit
	}
	dst[start] = first
	dst[start+n-1] |= continueBit
	return dst
}

// LenVarInt returns the exact number of octets WriteVarInt(v) would
// produce.
func LenVarInt(v int64) int {
	mag := uint64(v)
	if v < 0 {
		mag = uint64(-v)
	}
	rest := mag >> 6
	n := 1
	for rest > 0 {
		n++
		rest >>= 7
	}
	return n
}

// WriteVarIntTo writes the VarInt encoding of v to sink.
func WriteVarIntTo(sink cursor.Sink, v int64) error {
	buf := WriteVarInt(make([]byte, 0, maxVarIntOctets), v)
	_, err := sink.Write(buf)
	if err != nil {
		return ionerr.BufferTooSmallf(sink.Position(), "short write encoding varint")
	}
	return nil
}

// ReadVarInt decodes a VarInt from src. The returned negZero flag is true
// iff the encoding was the distinguished negative-zero form (sign bit
// set, zero payload, single octet); callers that care about negative
// zero (e.g. the timestamp offset field) must check it explicitly since
// the returned int64 is 0 either way.
func ReadVarInt(src cursor.Source) (v int64, negZero bool, err error) {
	start := src.Position()

	b, err := src.ReadByte()
	if err != nil {
		return 0, false, ionerr.UnexpectedEOF(start)
	}

	neg := b&signBit != 0
	mag := uint64(b & firstMask)
	stop := b&continueBit != 0

	if stop {
		if neg && mag == 0 {
			return 0, true, nil
		}
		v, ok := signedValue(mag, neg)
		if !ok {
			return 0, false, ionerr.Overflowf("varint overflow starting at offset %d", start)
		}
		return v, false, nil
	}

	for n := 1; ; n++ {
		if n >= maxVarIntOctets {
			return 0, false, ionerr.Overflowf("varint exceeds %d octets starting at offset %d", maxVarIntOctets, start)
		}
		b, err := src.ReadByte()
		if err != nil {
			return 0, false, ionerr.UnexpectedEOF(start)
		}
		if mag > (^uint64(0))>>7 {
			return 0, false, ionerr.Overflowf("varint overflow starting at offset %d", start)
		}
		mag = (mag << 7) | uint64(b&payloadMask)
		if b&continueBit != 0 {
			v, ok := signedValue(mag, neg)
			if !ok {
				return 0, false, ionerr.Overflowf("varint overflow starting at offset %d", start)
			}
			return v, false, nil
		}
	}
}

// signedValue converts a magnitude to a signed int64, reporting ok=false
// if it would overflow int64's range ([-2^63, 2^63-1]).
func signedValue(mag uint64, neg bool) (int64, bool) {
	const maxMag = uint64(1) << 63
	if neg {
		if mag > maxMag {
			return 0, false
		}
		if mag == maxMag {
			return -1 << 63, true
		}
		return -int64(mag), true
	}
	if mag >= maxMag {
		return 0, false
	}
	return int64(mag), true
}

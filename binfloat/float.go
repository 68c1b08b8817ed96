// Package binfloat implements Ion's 0- or 8-octet IEEE-754 binary64 float
// encoding: positive zero is the only value that compresses to an empty
// body, every other value (including negative zero) is eight big-endian
// octets.
//
// Pinned to endian.GetBigEndianEngine() since Ion's wire format is always
// big-endian.
package binfloat

import (
	"math"

	"github.com/arloliu/ionum/endian"
	"github.com/arloliu/ionum/internal/cursor"
	"github.com/arloliu/ionum/ionerr"
)

var wireEngine = endian.GetBigEndianEngine()

// WriteFloat appends the binary encoding of v to dst: zero octets for
// positive zero, 8 big-endian octets (the IEEE-754 bit pattern) for every
// other value including negative zero.
func WriteFloat(dst []byte, v float64) []byte {
	if v == 0 && !math.Signbit(v) {
		return dst
	}
	return wireEngine.AppendUint64(dst, math.Float64bits(v))
}

// WriteFloatTo writes the binary encoding of v to sink.
func WriteFloatTo(sink cursor.Sink, v float64) error {
	buf := WriteFloat(make([]byte, 0, 8), v)
	if len(buf) == 0 {
		return nil
	}
	_, err := sink.Write(buf)
	if err != nil {
		return ionerr.BufferTooSmallf(sink.Position(), "short write encoding float")
	}
	return nil
}

// ReadFloat decodes a float body of the given length: length 0 yields
// +0.0, length 8 reads 8 big-endian octets and reinterprets the bits; any
// other length is InvalidBinary.
func ReadFloat(src cursor.Source, length int) (float64, error) {
	start := src.Position()
	switch length {
	case 0:
		return 0.0, nil
	case 8:
		buf := make([]byte, 8)
		if err := cursor.ReadFull(src, buf); err != nil {
			return 0, ionerr.UnexpectedEOF(start)
		}
		return math.Float64frombits(wireEngine.Uint64(buf)), nil
	default:
		return 0, ionerr.InvalidBinaryf(start, "invalid float body length %d, want 0 or 8", length)
	}
}

// LenFloat returns the encoded length of v: 0 for positive zero, 8
// otherwise.
func LenFloat(v float64) int {
	if v == 0 && !math.Signbit(v) {
		return 0
	}
	return 8
}

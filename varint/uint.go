package varint

import (
	"math/big"

	"github.com/arloliu/ionum/internal/cursor"
	"github.com/arloliu/ionum/ionerr"
)

// LenUint returns the number of octets needed to encode v as a UInt. The
// surrounding type descriptor carries a zero-length body for value 0.
func LenUint(v *big.Int) int {
	if v.Sign() == 0 {
		return 0
	}
	return (v.BitLen() + 7) / 8
}

// WriteUint appends the big-endian UInt encoding of v (which must be
// non-negative) to dst, using exactly length octets.
func WriteUint(dst []byte, v *big.Int, length int) []byte {
	if length == 0 {
		return dst
	}
	start := len(dst)
	for range length {
		dst = append(dst, 0)
	}
	v.FillBytes(dst[start : start+length])
	return dst
}

// ReadUint decodes a big-endian UInt of the given length. length == 0
// decodes to +0.
func ReadUint(src cursor.Source, length int) (*big.Int, error) {
	if length == 0 {
		return new(big.Int), nil
	}
	start := src.Position()
	buf := make([]byte, length)
	if err := cursor.ReadFull(src, buf); err != nil {
		return nil, ionerr.UnexpectedEOF(start)
	}
	return new(big.Int).SetBytes(buf), nil
}

// LenInt returns the number of octets needed to encode v as an Int,
// including the extra leading zero octet required when the magnitude's
// top bit would otherwise collide with the sign bit.
func LenInt(v *big.Int) int {
	if v.Sign() == 0 {
		return 0
	}
	mag := new(big.Int).Abs(v)
	n := (mag.BitLen() + 7) / 8
	if topBitSet(mag, n) {
		n++
	}
	return n
}

func topBitSet(mag *big.Int, nBytes int) bool {
	if nBytes == 0 {
		return false
	}
	shift := uint((nBytes-1)*8 + 7)
	return mag.Bit(int(shift)) != 0
}

// WriteInt appends the big-endian Int encoding of v (sign-magnitude, sign
// in the top bit of the first octet) to dst, using exactly length octets.
// Negative zero is written when v.Sign() == 0 and isNegative is true,
// since math/big.Int cannot itself carry a signed zero.
func WriteInt(dst []byte, v *big.Int, isNegative bool, length int) []byte {
	if length == 0 {
		return dst
	}
	mag := new(big.Int).Abs(v)
	start := len(dst)
	for range length {
		dst = append(dst, 0)
	}
	mag.FillBytes(dst[start : start+length])
	if isNegative {
		dst[start] |= 0x80
	}
	return dst
}

// ReadInt decodes a big-endian Int of the given length, returning the
// signed value and whether the encoding carried a negative sign (which
// ReadInt also reports for a zero magnitude, to preserve negative zero).
// length == 0 decodes to +0.
func ReadInt(src cursor.Source, length int) (v *big.Int, isNegative bool, err error) {
	if length == 0 {
		return new(big.Int), false, nil
	}
	start := src.Position()
	buf := make([]byte, length)
	if err := cursor.ReadFull(src, buf); err != nil {
		return nil, false, ionerr.UnexpectedEOF(start)
	}

	neg := buf[0]&0x80 != 0
	buf[0] &^= 0x80
	mag := new(big.Int).SetBytes(buf)
	if neg {
		return new(big.Int).Neg(mag), true, nil
	}
	return mag, false, nil
}

package varint

import (
	"math/big"
	"testing"

	"github.com/arloliu/ionum/internal/cursor"
	"github.com/stretchr/testify/require"
)

func TestUintRoundTrip(t *testing.T) {
	require := require.New(t)

	values := []int64{0, 1, 255, 256, 65535, 1 << 40}
	for _, n := range values {
		v := big.NewInt(n)
		length := LenUint(v)
		enc := WriteUint(nil, v, length)
		require.Equal(length, len(enc))

		got, err := ReadUint(cursor.NewBytes(enc), length)
		require.NoError(err)
		require.Equal(0, v.Cmp(got))
	}
}

func TestUintZeroHasZeroLength(t *testing.T) {
	require := require.New(t)
	require.Equal(0, LenUint(big.NewInt(0)))

	got, err := ReadUint(cursor.NewBytes(nil), 0)
	require.NoError(err)
	require.Equal(0, got.Sign())
}

func TestIntRoundTrip(t *testing.T) {
	require := require.New(t)

	values := []int64{1, -1, 255, -255, 256, -256, 1 << 40, -(1 << 40)}
	for _, n := range values {
		neg := n < 0
		mag := big.NewInt(n)
		mag.Abs(mag)
		length := LenInt(mag)
		if neg {
			length = LenInt(new(big.Int).Neg(mag))
		}

		enc := WriteInt(nil, mag, neg, length)
		require.Equal(length, len(enc))

		got, isNeg, err := ReadInt(cursor.NewBytes(enc), length)
		require.NoError(err)
		require.Equal(neg, isNeg)
		require.Equal(0, mag.CmpAbs(got))
	}
}

func TestIntTopBitGetsLeadingZeroOctet(t *testing.T) {
	require := require.New(t)

	// 0xFF has its top bit set; Int must prepend a zero octet so the sign
	// bit of the first octet never collides with the magnitude.
	v := big.NewInt(0xFF)
	length := LenInt(v)
	require.Equal(2, length)

	enc := WriteInt(nil, v, false, length)
	require.Equal([]byte{0x00, 0xFF}, enc)

	got, isNeg, err := ReadInt(cursor.NewBytes(enc), length)
	require.NoError(err)
	require.False(isNeg)
	require.Equal(0, v.Cmp(got))
}

func TestIntNegativeZero(t *testing.T) {
	require := require.New(t)

	enc := WriteInt(nil, big.NewInt(0), true, 1)
	require.Equal([]byte{0x80}, enc)

	got, isNeg, err := ReadInt(cursor.NewBytes(enc), 1)
	require.NoError(err)
	require.True(isNeg)
	require.Equal(0, got.Sign())
}

func TestIntZeroLengthIsZero(t *testing.T) {
	require := require.New(t)

	got, isNeg, err := ReadInt(cursor.NewBytes(nil), 0)
	require.NoError(err)
	require.False(isNeg)
	require.Equal(0, got.Sign())
}

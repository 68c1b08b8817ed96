package varint

import (
	"math"
	"testing"

	"github.com/arloliu/ionum/internal/cursor"
	"github.com/stretchr/testify/require"
)

func TestWriteVarUintScenarios(t *testing.T) {
	require := require.New(t)

	require.Equal([]byte{0x80}, WriteVarUint(nil, 0))
	require.Equal([]byte{0x01, 0x80}, WriteVarUint(nil, 128))
}

func TestWriteVarIntScenarios(t *testing.T) {
	require := require.New(t)

	require.Equal([]byte{0xC1}, WriteVarInt(nil, -1))
	require.Equal([]byte{0x80}, WriteVarInt(nil, 0))
	require.Equal([]byte{0xC0}, WriteVarIntNegativeZero(nil))
}

func TestVarUintRoundTrip(t *testing.T) {
	require := require.New(t)

	values := []uint64{0, 1, 63, 64, 127, 128, 16383, 16384, 1 << 40, ^uint64(0)}
	for _, v := range values {
		enc := WriteVarUint(nil, v)
		require.Equal(LenVarUint(v), len(enc))

		got, err := ReadVarUint(cursor.NewBytes(enc))
		require.NoError(err)
		require.Equal(v, got)
	}
}

func TestVarIntRoundTrip(t *testing.T) {
	require := require.New(t)

	values := []int64{0, -1, 1, 63, -63, 64, -64, 1 << 40, -(1 << 40), math.MinInt64 + 1, math.MaxInt64}
	for _, v := range values {
		enc := WriteVarInt(nil, v)
		require.Equal(LenVarInt(v), len(enc))

		got, negZero, err := ReadVarInt(cursor.NewBytes(enc))
		require.NoError(err)
		require.False(negZero)
		require.Equal(v, got)
	}
}

func TestVarIntNegativeZeroRoundTrip(t *testing.T) {
	require := require.New(t)

	enc := WriteVarIntNegativeZero(nil)
	require.Equal([]byte{0xC0}, enc)

	v, negZero, err := ReadVarInt(cursor.NewBytes(enc))
	require.NoError(err)
	require.True(negZero)
	require.Equal(int64(0), v)

	posEnc := WriteVarInt(nil, 0)
	_, negZero2, err := ReadVarInt(cursor.NewBytes(posEnc))
	require.NoError(err)
	require.False(negZero2)
}

func TestReadVarUintUnexpectedEOF(t *testing.T) {
	require := require.New(t)

	_, err := ReadVarUint(cursor.NewBytes(nil))
	require.Error(err)
}

func TestReadVarUintOverflow(t *testing.T) {
	require := require.New(t)

	// 10 non-stop octets followed by a stop octet overflows 64 bits.
	enc := make([]byte, 0, 11)
	for range 10 {
		enc = append(enc, 0x7F)
	}
	enc = append(enc, 0xFF)

	_, err := ReadVarUint(cursor.NewBytes(enc))
	require.Error(err)
}

func TestWriteVarUintTo(t *testing.T) {
	require := require.New(t)

	buf := cursor.NewBuffer(4)
	require.NoError(WriteVarUintTo(buf, 128))
	require.Equal([]byte{0x01, 0x80}, buf.Bytes())
}

func TestWriteVarIntTo(t *testing.T) {
	require := require.New(t)

	buf := cursor.NewBuffer(4)
	require.NoError(WriteVarIntTo(buf, -1))
	require.Equal([]byte{0xC1}, buf.Bytes())
}

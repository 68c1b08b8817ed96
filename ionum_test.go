package ionum

import (
	"testing"

	"github.com/arloliu/ionum/timestamp"
	"github.com/stretchr/testify/require"
)

func TestAppendVarUintRoundTrip(t *testing.T) {
	require := require.New(t)

	values := []uint64{0, 1, 127, 128, 16384, ^uint64(0)}
	for _, v := range values {
		buf := AppendVarUint(nil, v)
		got, n, err := ReadVarUint(buf)
		require.NoError(err)
		require.Equal(v, got)
		require.Equal(len(buf), n)
	}
}

func TestAppendVarIntRoundTrip(t *testing.T) {
	require := require.New(t)

	values := []int64{0, -1, 1, 63, -64, 1 << 40, -(1 << 40)}
	for _, v := range values {
		buf := AppendVarInt(nil, v)
		got, negZero, n, err := ReadVarInt(buf)
		require.NoError(err)
		require.False(negZero)
		require.Equal(v, got)
		require.Equal(len(buf), n)
	}
}

func TestAppendFloatRoundTrip(t *testing.T) {
	require := require.New(t)

	values := []float64{0, 1, -1, 3.14159, 1e300}
	for _, v := range values {
		buf := AppendFloat(nil, v)
		got, err := ReadFloat(buf, len(buf))
		require.NoError(err)
		require.Equal(v, got)
	}
}

func TestDecimalParseFormatAppendRoundTrip(t *testing.T) {
	require := require.New(t)

	texts := []string{"0", "1.23", "-0.001", "123456789012345678901234567890"}
	for _, text := range texts {
		d, err := ParseDecimal(text)
		require.NoError(err)

		buf := AppendDecimal(nil, d)
		got, err := ReadDecimal(buf, len(buf))
		require.NoError(err)
		require.Equal(FormatDecimal(d), FormatDecimal(got))
	}
}

func TestTimestampParseAppendRoundTrip(t *testing.T) {
	require := require.New(t)

	ts, rest, err := ParseTimestamp("2023-06-15T10:30:00.123-04:00")
	require.NoError(err)
	require.Empty(rest)
	require.Equal(timestamp.Year|timestamp.Month|timestamp.Day|timestamp.Minute|timestamp.Second|timestamp.Fraction, ts.Precision())

	buf := AppendTimestamp(nil, ts)
	got, err := ReadTimestamp(buf, len(buf))
	require.NoError(err)
	require.Equal(FormatTimestamp(ts), FormatTimestamp(got))
}

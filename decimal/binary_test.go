package decimal

import (
	"math/big"
	"testing"

	"github.com/arloliu/ionum/internal/cursor"
	"github.com/stretchr/testify/require"
)

func TestBinaryCanonicalZeroIsEmptyBody(t *testing.T) {
	require := require.New(t)

	enc := WriteBinary(nil, Zero())
	require.Empty(enc)
	require.Equal(0, LenBinary(Zero()))

	got, err := ReadBinary(cursor.NewBytes(enc), 0)
	require.NoError(err)
	require.Equal(0, Compare(Zero(), got))
}

func TestBinaryRoundTrip(t *testing.T) {
	require := require.New(t)

	cases := []Decimal{
		FromParts(false, big.NewInt(100), -2),
		FromParts(true, big.NewInt(100), -2),
		FromParts(false, big.NewInt(0), -3),
		FromParts(false, big.NewInt(255), 0),
		FromParts(true, big.NewInt(1), 5),
	}
	for _, d := range cases {
		enc := WriteBinary(nil, d)
		require.Equal(LenBinary(d), len(enc))

		got, err := ReadBinary(cursor.NewBytes(enc), len(enc))
		require.NoError(err)
		require.Equal(0, Compare(d, got))
		require.Equal(d.IsNegative(), got.IsNegative())
	}
}

func TestBinaryNegativeZeroCoefficient(t *testing.T) {
	require := require.New(t)

	d := FromParts(true, big.NewInt(0), -3)
	enc := WriteBinary(nil, d)
	require.NotEmpty(enc)

	got, err := ReadBinary(cursor.NewBytes(enc), len(enc))
	require.NoError(err)
	require.True(got.IsNegative())
	require.True(got.IsZero())
}

func TestBinaryLargeCoefficientRoutesToNumber(t *testing.T) {
	require := require.New(t)

	huge := new(big.Int)
	huge.SetString("123456789012345678901234567890123456789", 10)
	d := FromParts(false, huge, 0)
	require.Equal(KindNumber, d.Kind())

	enc := WriteBinary(nil, d)
	got, err := ReadBinary(cursor.NewBytes(enc), len(enc))
	require.NoError(err)
	require.Equal(KindNumber, got.Kind())
	require.Equal(0, Compare(d, got))
}

package decimal

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFormatScenario(t *testing.T) {
	require := require.New(t)

	// Concrete scenario: coefficient 100, exponent -2 formats as "1.00".
	d := FromParts(false, big.NewInt(100), -2)
	require.Equal("1.00", Format(d))

	reparsed, err := Parse("1.00")
	require.NoError(err)
	require.Equal(0, Compare(d, reparsed))
	require.Equal("1.00", Format(reparsed))
}

func TestFormatCanonicalZero(t *testing.T) {
	require := require.New(t)
	require.Equal("0d0", Format(Zero()))
}

func TestFormatScientificNotation(t *testing.T) {
	require := require.New(t)

	d := FromParts(false, big.NewInt(123), 10)
	got := Format(d)
	require.Contains(got, "d")
}

func TestFormatNonFinite(t *testing.T) {
	require := require.New(t)
	require.Equal("+inf", Format(Inf(false)))
	require.Equal("-inf", Format(Inf(true)))
	require.Equal("nan", Format(NaN()))
}

func TestParseNonFinite(t *testing.T) {
	require := require.New(t)

	d, err := Parse("+inf")
	require.NoError(err)
	require.True(d.IsInf())
	require.False(d.IsNegative())

	d, err = Parse("-inf")
	require.NoError(err)
	require.True(d.IsInf())
	require.True(d.IsNegative())

	d, err = Parse("nan")
	require.NoError(err)
	require.True(d.IsNaN())
}

func TestParseExponentForms(t *testing.T) {
	require := require.New(t)

	for _, s := range []string{"1.5d2", "1.5D2", "1.5e2", "1.5E2", "1.5d+2"} {
		d, err := Parse(s)
		require.NoErrorf(err, "parsing %q", s)
		require.Equal(int32(1), d.Exponent())
		require.Equal(0, d.Coefficient().Cmp(big.NewInt(15)))
	}
}

func TestParseNegativeAndSign(t *testing.T) {
	require := require.New(t)

	d, err := Parse("-42")
	require.NoError(err)
	require.True(d.IsNegative())
	require.Equal(0, d.Coefficient().Cmp(big.NewInt(42)))

	d2, err := Parse("+42")
	require.NoError(err)
	require.False(d2.IsNegative())
}

func TestParseInvalidText(t *testing.T) {
	require := require.New(t)

	for _, s := range []string{"", "abc", "1.2.3", "1d", "-", "."} {
		_, err := Parse(s)
		require.Errorf(err, "expected error parsing %q", s)
	}
}

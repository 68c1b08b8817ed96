package timestamp

import (
	"testing"

	"github.com/arloliu/ionum/decimal"
	"github.com/stretchr/testify/require"
)

func mustTS(t *testing.T, year, month, day, hour, minute, second int, fracText string, offsetMin int, hasOffset bool) Timestamp {
	t.Helper()
	ts, err := ForYear(year)
	require.NoError(t, err)
	if month == 0 {
		return ts
	}
	ts, err = ForMonth(ts, month)
	require.NoError(t, err)
	if day == 0 {
		return ts
	}
	ts, err = ForDay(ts, day)
	require.NoError(t, err)
	if minute < 0 {
		return ts
	}
	ts, err = ForMinute(ts, hour, minute)
	require.NoError(t, err)
	if second < 0 {
		return ts
	}
	ts, err = ForSecond(ts, second)
	require.NoError(t, err)
	if fracText != "" {
		frac, ferr := decimal.Parse(fracText)
		require.NoError(t, ferr)
		ts, err = ForFraction(ts, frac)
		require.NoError(t, err)
	}
	if hasOffset || offsetMin != 0 {
		ts, err = WithOffset(ts, offsetMin, hasOffset)
		require.NoError(t, err)
	}
	return ts
}

func TestDataModelEqualRequiresMatchingPrecisionAndExponent(t *testing.T) {
	require := require.New(t)

	a := mustTS(t, 2023, 6, 15, 10, 30, 45, "0.250", 0, true)
	b := mustTS(t, 2023, 6, 15, 10, 30, 45, "0.250", 0, true)
	require.True(DataModelEqual(a, b))

	c := mustTS(t, 2023, 6, 15, 10, 30, 45, "0.2500", 0, true)
	require.False(DataModelEqual(a, c), "differing fraction exponent must break data-model equality")

	d := mustTS(t, 2023, 6, 15, -1, -1, -1, "", 0, false)
	require.False(DataModelEqual(a, d), "differing precision must break data-model equality")
}

func TestInstantEqualIgnoresFractionExponent(t *testing.T) {
	require := require.New(t)

	a := mustTS(t, 2023, 6, 15, 10, 30, 45, "0.25", 0, true)
	b := mustTS(t, 2023, 6, 15, 10, 30, 45, "0.2500", 0, true)
	require.False(DataModelEqual(a, b))
	require.True(InstantEqual(a, b))
}

func TestInstantEqualNormalizesOffset(t *testing.T) {
	require := require.New(t)

	utc := mustTS(t, 2023, 6, 15, 9, 0, 0, "", 0, true)
	offset := mustTS(t, 2023, 6, 15, 10, 0, 0, "", 60, true)
	require.True(InstantEqual(utc, offset))
	require.False(DataModelEqual(utc, offset))
}

func TestInstantEqualMissingFractionMatchesExplicitZero(t *testing.T) {
	require := require.New(t)

	noFrac := mustTS(t, 2023, 1, 1, 0, 0, 0, "", 0, true)
	zeroFrac := mustTS(t, 2023, 1, 1, 0, 0, 0, "0.0", 0, true)
	require.True(InstantEqual(noFrac, zeroFrac))

	nonZeroFrac := mustTS(t, 2023, 1, 1, 0, 0, 0, "0.5", 0, true)
	require.False(InstantEqual(noFrac, nonZeroFrac))
}

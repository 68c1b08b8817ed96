package timestamp

import (
	"testing"

	"github.com/arloliu/ionum/decimal"
	"github.com/stretchr/testify/require"
)

func TestConstructorsLayerMonotonically(t *testing.T) {
	require := require.New(t)

	ts, err := ForYear(2023)
	require.NoError(err)
	require.Equal(Year, ts.Precision())

	ts, err = ForMonth(ts, 6)
	require.NoError(err)
	require.Equal(Year|Month, ts.Precision())

	ts, err = ForDay(ts, 15)
	require.NoError(err)
	require.Equal(Year|Month|Day, ts.Precision())

	ts, err = ForMinute(ts, 10, 30)
	require.NoError(err)
	require.Equal(Year|Month|Day|Minute, ts.Precision())

	ts, err = ForSecond(ts, 45)
	require.NoError(err)
	require.Equal(Year|Month|Day|Minute|Second, ts.Precision())

	frac, err := decimal.Parse("0.250")
	require.NoError(err)
	ts, err = ForFraction(ts, frac)
	require.NoError(err)
	require.Equal(Year|Month|Day|Minute|Second|Fraction, ts.Precision())
}

func TestConstructorsRejectOutOfOrderCalls(t *testing.T) {
	require := require.New(t)

	ts, err := ForYear(2023)
	require.NoError(err)

	_, err = ForDay(ts, 1)
	require.Error(err)

	_, err = ForMinute(ts, 1, 1)
	require.Error(err)
}

func TestForYearRejectsOutOfRange(t *testing.T) {
	require := require.New(t)
	_, err := ForYear(0)
	require.Error(err)
	_, err = ForYear(10000)
	require.Error(err)
}

func TestForMonthValidatesRange(t *testing.T) {
	require := require.New(t)
	ts, _ := ForYear(2023)
	_, err := ForMonth(ts, 0)
	require.Error(err)
	_, err = ForMonth(ts, 13)
	require.Error(err)
}

func TestForDayValidatesLeapYear(t *testing.T) {
	require := require.New(t)

	ts, _ := ForYear(2024)
	ts, _ = ForMonth(ts, 2)
	_, err := ForDay(ts, 29)
	require.NoError(err)

	ts2, _ := ForYear(2023)
	ts2, _ = ForMonth(ts2, 2)
	_, err = ForDay(ts2, 29)
	require.Error(err)
}

func TestForMinuteAndSecondValidateRange(t *testing.T) {
	require := require.New(t)

	ts, _ := ForYear(2023)
	ts, _ = ForMonth(ts, 1)
	ts, _ = ForDay(ts, 1)

	_, err := ForMinute(ts, 24, 0)
	require.Error(err)
	_, err = ForMinute(ts, 0, 60)
	require.Error(err)

	ts, err = ForMinute(ts, 10, 0)
	require.NoError(err)
	_, err = ForSecond(ts, 60)
	require.Error(err)
}

func TestForFractionRejectsInvalidValues(t *testing.T) {
	require := require.New(t)

	ts := mustTimestampToSecond(t)

	neg, _ := decimal.Parse("-0.5")
	_, err := ForFraction(ts, neg)
	require.Error(err)

	tooBig, _ := decimal.Parse("1.5")
	_, err = ForFraction(ts, tooBig)
	require.Error(err)

	posExp := decimal.FromInt64(5, 1)
	_, err = ForFraction(ts, posExp)
	require.Error(err)
}

func TestWithOffsetRequiresMinutePrecision(t *testing.T) {
	require := require.New(t)

	ts, _ := ForYear(2023)
	_, err := WithOffset(ts, 0, true)
	require.Error(err)

	ts2 := mustTimestampToSecond(t)
	withOff, err := WithOffset(ts2, 90, true)
	require.NoError(err)
	require.True(withOff.HasOffset())
	require.Equal(90, withOff.OffsetMinutes())
}

func TestWithOffsetRejectsOutOfRange(t *testing.T) {
	require := require.New(t)
	ts := mustTimestampToSecond(t)
	_, err := WithOffset(ts, 1440, true)
	require.Error(err)
	_, err = WithOffset(ts, -1440, true)
	require.Error(err)
}

func mustTimestampToSecond(t *testing.T) Timestamp {
	t.Helper()
	ts, err := ForYear(2023)
	require.NoError(t, err)
	ts, err = ForMonth(ts, 6)
	require.NoError(t, err)
	ts, err = ForDay(ts, 15)
	require.NoError(t, err)
	ts, err = ForMinute(ts, 10, 30)
	require.NoError(t, err)
	ts, err = ForSecond(ts, 0)
	require.NoError(t, err)
	return ts
}

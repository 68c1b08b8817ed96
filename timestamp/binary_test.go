package timestamp

import (
	"testing"

	"github.com/arloliu/ionum/decimal"
	"github.com/arloliu/ionum/internal/cursor"
	"github.com/arloliu/ionum/varint"
	"github.com/stretchr/testify/require"
)

func TestBinaryRoundTripYearOnly(t *testing.T) {
	require := require.New(t)

	ts, err := ForYear(2023)
	require.NoError(err)

	enc := WriteBinary(nil, ts)
	got, err := ReadBinary(cursor.NewBytes(enc), len(enc))
	require.NoError(err)
	require.True(DataModelEqual(ts, got))
}

func TestBinaryRoundTripFullPrecisionWithOffset(t *testing.T) {
	require := require.New(t)

	ts, err := ForYear(2023)
	require.NoError(err)
	ts, err = ForMonth(ts, 6)
	require.NoError(err)
	ts, err = ForDay(ts, 15)
	require.NoError(err)
	ts, err = ForMinute(ts, 10, 30)
	require.NoError(err)
	ts, err = ForSecond(ts, 45)
	require.NoError(err)
	frac, err := decimal.Parse("0.250")
	require.NoError(err)
	ts, err = ForFraction(ts, frac)
	require.NoError(err)
	ts, err = WithOffset(ts, 90, true)
	require.NoError(err)

	enc := WriteBinary(nil, ts)
	got, err := ReadBinary(cursor.NewBytes(enc), len(enc))
	require.NoError(err)
	require.True(got.HasOffset())
	require.Equal(90, got.OffsetMinutes())
	require.True(InstantEqual(ts, got))
}

func TestBinaryUnknownOffsetRoundTrips(t *testing.T) {
	require := require.New(t)

	ts, err := ForYear(2023)
	require.NoError(err)
	ts, err = ForMonth(ts, 1)
	require.NoError(err)
	ts, err = ForDay(ts, 1)
	require.NoError(err)
	ts, err = ForMinute(ts, 0, 0)
	require.NoError(err)

	enc := WriteBinary(nil, ts)
	got, err := ReadBinary(cursor.NewBytes(enc), len(enc))
	require.NoError(err)
	require.False(got.HasOffset())
}

func TestBinaryOffsetFieldsRoundTripLocal(t *testing.T) {
	require := require.New(t)

	// Binary decode must read back the same local fields WriteBinary
	// wrote, not the UTC-shifted ones; only InstantEqual (not the raw
	// fields) should reflect the offset.
	ts, err := ForYear(2023)
	require.NoError(err)
	ts, err = ForMonth(ts, 1)
	require.NoError(err)
	ts, err = ForDay(ts, 1)
	require.NoError(err)
	ts, err = ForMinute(ts, 0, 15)
	require.NoError(err)
	ts, err = WithOffset(ts, 60, true)
	require.NoError(err)

	enc := WriteBinary(nil, ts)
	got, err := ReadBinary(cursor.NewBytes(enc), len(enc))
	require.NoError(err)

	require.Equal(2023, got.Year())
	require.Equal(1, got.Month())
	require.Equal(1, got.Day())
	require.Equal(0, got.Hour())
	require.Equal(15, got.Minute())
	require.Equal(60, got.OffsetMinutes())
	require.True(got.HasOffset())
	require.True(DataModelEqual(ts, got))
	require.True(InstantEqual(ts, got))
}

func TestBinaryHourWithoutMinuteIsError(t *testing.T) {
	require := require.New(t)

	// Hand-build a body carrying offset, year, month, day, and hour but
	// stopping before minute: an hour field without a minute field is
	// malformed.
	var body []byte
	body = varint.WriteVarIntNegativeZero(body)
	body = varint.WriteVarUint(body, 2023)
	body = varint.WriteVarUint(body, 1)
	body = varint.WriteVarUint(body, 1)
	body = varint.WriteVarUint(body, 10)

	_, err := ReadBinary(cursor.NewBytes(body), len(body))
	require.Error(err)
}

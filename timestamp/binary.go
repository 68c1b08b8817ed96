package timestamp

import (
	"github.com/arloliu/ionum/decimal"
	"github.com/arloliu/ionum/internal/cursor"
	"github.com/arloliu/ionum/ionerr"
	"github.com/arloliu/ionum/varint"
)

// WriteBinary appends t's wire encoding to dst: a VarInt offset, a
// VarUInt year, then optional VarUInt month/day, optional VarUInt
// hour+minute, optional VarUInt second, and an optional trailing decimal
// body for the fraction, each field present exactly as far as
// t.Precision() reaches.
func WriteBinary(dst []byte, t Timestamp) []byte {
	if t.hasOffset {
		dst = varint.WriteVarInt(dst, int64(t.offsetMinutes))
	} else {
		dst = varint.WriteVarIntNegativeZero(dst)
	}
	dst = varint.WriteVarUint(dst, uint64(t.year))
	if t.precision&Month == 0 {
		return dst
	}
	dst = varint.WriteVarUint(dst, uint64(t.month))
	if t.precision&Day == 0 {
		return dst
	}
	dst = varint.WriteVarUint(dst, uint64(t.day))
	if t.precision&Minute == 0 {
		return dst
	}
	dst = varint.WriteVarUint(dst, uint64(t.hour))
	dst = varint.WriteVarUint(dst, uint64(t.minute))
	if t.precision&Second == 0 {
		return dst
	}
	dst = varint.WriteVarUint(dst, uint64(t.second))
	if t.precision&Fraction == 0 || !t.hasFraction() {
		return dst
	}
	return decimal.WriteBinary(dst, t.frac)
}

// ReadBinary decodes a timestamp body of the given length. Fields are
// read back exactly as WriteBinary wrote them (local fields plus a
// separate display offset), so no field shifting happens on this side
// either.
func ReadBinary(src cursor.Source, length int) (Timestamp, error) {
	budget := length
	offMin, offNegZero, n, err := readVarIntField(src, budget)
	if err != nil {
		return Timestamp{}, err
	}
	budget -= n
	hasOffset := !offNegZero
	if hasOffset && (offMin <= -1440 || offMin >= 1440) {
		return Timestamp{}, ionerr.InvalidTimestampf(src.Position(), "offset %d minutes out of range", offMin)
	}

	year, n, err := readVarUintField(src, budget)
	if err != nil {
		return Timestamp{}, err
	}
	budget -= n
	t, err := ForYear(int(year))
	if err != nil {
		return Timestamp{}, err
	}
	if budget == 0 {
		return finishOffset(t, offMin, hasOffset)
	}

	month, n, err := readVarUintField(src, budget)
	if err != nil {
		return Timestamp{}, err
	}
	budget -= n
	t, err = ForMonth(t, int(month))
	if err != nil {
		return Timestamp{}, err
	}
	if budget == 0 {
		return finishOffset(t, offMin, hasOffset)
	}

	day, n, err := readVarUintField(src, budget)
	if err != nil {
		return Timestamp{}, err
	}
	budget -= n
	t, err = ForDay(t, int(day))
	if err != nil {
		return Timestamp{}, err
	}
	if budget == 0 {
		return finishOffset(t, offMin, hasOffset)
	}

	hour, n, err := readVarUintField(src, budget)
	if err != nil {
		return Timestamp{}, err
	}
	budget -= n
	if budget == 0 {
		return Timestamp{}, ionerr.InvalidTimestampf(src.Position(), "hour present without minute")
	}
	minute, n, err := readVarUintField(src, budget)
	if err != nil {
		return Timestamp{}, err
	}
	budget -= n
	t, err = ForMinute(t, int(hour), int(minute))
	if err != nil {
		return Timestamp{}, err
	}
	if budget == 0 {
		return finishOffset(t, offMin, hasOffset)
	}

	second, n, err := readVarUintField(src, budget)
	if err != nil {
		return Timestamp{}, err
	}
	budget -= n
	t, err = ForSecond(t, int(second))
	if err != nil {
		return Timestamp{}, err
	}
	if budget == 0 {
		return finishOffset(t, offMin, hasOffset)
	}

	frac, err := decimal.ReadBinary(src, budget)
	if err != nil {
		return Timestamp{}, err
	}
	if frac.IsZero() && frac.IsNegative() {
		frac = decimal.Zero()
	}
	if !frac.IsZero() && frac.Exponent() >= 0 {
		return Timestamp{}, ionerr.InvalidTimestampf(src.Position(), "fraction exponent must be negative")
	}
	t, err = ForFraction(t, frac)
	if err != nil {
		return Timestamp{}, err
	}
	return finishOffset(t, offMin, hasOffset)
}

// finishOffset attaches the decoded offset to t. The wire fields are
// already the same local fields WriteBinary wrote verbatim, so decode
// only needs to restore the offset, not shift the fields a second time.
func finishOffset(t Timestamp, offsetMinutes int, hasOffset bool) (Timestamp, error) {
	if !hasOffset || t.precision&Minute == 0 {
		return WithOffset(t, 0, hasOffset)
	}
	return WithOffset(t, offsetMinutes, true)
}

func readVarIntField(src cursor.Source, budget int) (value int, negZero bool, consumed int, err error) {
	lim := cursor.Limit(src, budget)
	v, nz, rerr := varint.ReadVarInt(lim)
	if rerr != nil {
		return 0, false, 0, rerr
	}
	return int(v), nz, lim.Consumed(budget), nil
}

func readVarUintField(src cursor.Source, budget int) (value uint64, consumed int, err error) {
	lim := cursor.Limit(src, budget)
	v, rerr := varint.ReadVarUint(lim)
	if rerr != nil {
		return 0, 0, rerr
	}
	return v, lim.Consumed(budget), nil
}

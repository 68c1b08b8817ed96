package timestamp

import "github.com/arloliu/ionum/decimal"

// DataModelEqual compares two timestamps field-for-field: equal
// precision flags, equal offset presence and value, equal per-field
// values through the common precision, and decimal-equality (not merely
// numeric-equality) of the fraction.
func DataModelEqual(a, b Timestamp) bool {
	if a.precision != b.precision {
		return false
	}
	if a.hasOffset != b.hasOffset || (a.hasOffset && a.offsetMinutes != b.offsetMinutes) {
		return false
	}
	if a.year != b.year {
		return false
	}
	if a.precision&Month != 0 && a.month != b.month {
		return false
	}
	if a.precision&Day != 0 && a.day != b.day {
		return false
	}
	if a.precision&Minute != 0 && (a.hour != b.hour || a.minute != b.minute) {
		return false
	}
	if a.precision&Second != 0 && a.second != b.second {
		return false
	}
	if a.precision&Fraction != 0 {
		if a.hasFraction() != b.hasFraction() {
			return false
		}
		if a.hasFraction() {
			if decimal.Compare(a.frac, b.frac) != 0 {
				return false
			}
			if a.frac.Exponent() != b.frac.Exponent() {
				return false
			}
		}
	}
	return true
}

// InstantEqual normalizes both timestamps to UTC and compares the
// resulting point in time, comparing
// the fraction after trimming trailing zeros (i.e. by numeric value, not
// by exponent).
func InstantEqual(a, b Timestamp) bool {
	ua := normalizeToUTC(a)
	ub := normalizeToUTC(b)

	if ua.year != ub.year || ua.month != ub.month || ua.day != ub.day {
		return false
	}
	if ua.hour != ub.hour || ua.minute != ub.minute {
		return false
	}
	aSec, aHasSec := secondValue(ua)
	bSec, bHasSec := secondValue(ub)
	if aHasSec != bHasSec {
		return false
	}
	if !aHasSec {
		return true
	}
	if aSec != bSec {
		return false
	}

	aFrac, aHasFrac := ua.frac, ua.hasFraction()
	bFrac, bHasFrac := ub.frac, ub.hasFraction()
	if !aHasFrac && !bHasFrac {
		return true
	}
	if aHasFrac != bHasFrac {
		// A missing fraction is instant-equal to an explicit zero
		// fraction; only a nonzero one makes them differ.
		present := aFrac
		if bHasFrac {
			present = bFrac
		}
		return present.IsZero()
	}
	return decimal.Compare(decimal.Reduce(aFrac), decimal.Reduce(bFrac)) == 0
}

func secondValue(t Timestamp) (int, bool) {
	if t.precision&Second == 0 {
		return 0, false
	}
	return t.second, true
}

// normalizeToUTC returns a copy of t with its offset applied and cleared,
// for instant comparison. Binary decoding does not apply it: ReadBinary
// keeps the local fields as written.
func normalizeToUTC(t Timestamp) Timestamp {
	if !t.hasOffset || t.offsetMinutes == 0 || t.precision&Minute == 0 {
		u := t
		u.hasOffset = false
		u.offsetMinutes = 0
		return u
	}
	y, mo, d, h, mi := addMinutes(t.year, t.month, t.day, t.hour, t.minute, -t.offsetMinutes)
	u := t
	u.year, u.month, u.day, u.hour, u.minute = y, mo, d, h, mi
	u.hasOffset = false
	u.offsetMinutes = 0
	return u
}

// Package timestamp implements Ion's precision-aware timestamp, whose
// precision (year through fractional seconds, plus an optional UTC
// offset) is a first-class, monotonically constructed property rather
// than inferred from zero-valued fields.
//
// The coefficient-carrying fraction field reuses decimal.Decimal, the
// same choice the reference bitstream decoder makes when it reads a
// timestamp's trailing fractional-seconds body through readDecimal
// before reinterpreting it as nanoseconds; this package keeps the
// decimal form instead of converting away from it; see binary.go.
package timestamp

import (
	"github.com/arloliu/ionum/decimal"
	"github.com/arloliu/ionum/ionerr"
)

// Precision is a bitset over the fields a Timestamp carries; the set
// flags always form a strict prefix: YEAR alone,
// YEAR|MONTH, YEAR|MONTH|DAY, and so on through FRACTION. HAS_OFFSET is
// independent of the prefix (it may or may not be set once MINUTE is
// reached) and is tracked separately by Timestamp.hasOffset.
type Precision uint8

const (
	Year Precision = 1 << iota
	Month
	Day
	Minute
	Second
	Fraction
)

// String renders the highest field the precision reaches, for debugging
// and error messages.
func (p Precision) String() string {
	switch {
	case p&Fraction != 0:
		return "Fraction"
	case p&Second != 0:
		return "Second"
	case p&Minute != 0:
		return "Minute"
	case p&Day != 0:
		return "Day"
	case p&Month != 0:
		return "Month"
	case p&Year != 0:
		return "Year"
	default:
		return "None"
	}
}

// Timestamp is the data model: calendar fields, an optional UTC offset
// in minutes, and the precision bitset that says which fields are
// meaningful. Zero value is not a valid Timestamp; use ForYear to begin
// building one.
type Timestamp struct {
	year   int
	month  int
	day    int
	hour   int
	minute int
	second int
	frac   decimal.Decimal // meaningful only when precision&Fraction != 0

	offsetMinutes int
	hasOffset     bool

	precision Precision
}

const (
	minYear = 1
	maxYear = 9999
)

// ForYear begins a new Timestamp at YEAR precision. year must be in
// [0001, 9999] per the non-goal excluding years outside that range.
func ForYear(year int) (Timestamp, error) {
	if year < minYear || year > maxYear {
		return Timestamp{}, ionerr.InvalidTimestampf(0, "year %d out of range [%d, %d]", year, minYear, maxYear)
	}
	return Timestamp{year: year, month: 1, day: 1, precision: Year}, nil
}

// ForMonth extends t to MONTH precision. t must be at exactly YEAR
// precision; month must be in [1, 12].
func ForMonth(t Timestamp, month int) (Timestamp, error) {
	if t.precision != Year {
		return Timestamp{}, ionerr.InvalidArgf("for_month requires a year-precision timestamp")
	}
	if month < 1 || month > 12 {
		return Timestamp{}, ionerr.InvalidTimestampf(0, "month %d out of range [1, 12]", month)
	}
	t.month = month
	t.precision = Year | Month
	return t, nil
}

// ForDay extends t to DAY precision. t must be at exactly YEAR|MONTH
// precision; day is validated against the calendar, leap years included.
func ForDay(t Timestamp, day int) (Timestamp, error) {
	if t.precision != Year|Month {
		return Timestamp{}, ionerr.InvalidArgf("for_day requires a year-month-precision timestamp")
	}
	maxDay := daysInMonth(t.year, t.month)
	if day < 1 || day > maxDay {
		return Timestamp{}, ionerr.InvalidTimestampf(0, "day %d out of range [1, %d] for %04d-%02d", day, maxDay, t.year, t.month)
	}
	t.day = day
	t.precision = Year | Month | Day
	return t, nil
}

// ForMinute extends t to MINUTE precision, setting hour and minute
// together since Ion has no hour-only precision. t must be at exactly
// YEAR|MONTH|DAY precision.
func ForMinute(t Timestamp, hour, minute int) (Timestamp, error) {
	if t.precision != Year|Month|Day {
		return Timestamp{}, ionerr.InvalidArgf("for_minute requires a year-month-day-precision timestamp")
	}
	if hour < 0 || hour > 23 {
		return Timestamp{}, ionerr.InvalidTimestampf(0, "hour %d out of range [0, 23]", hour)
	}
	if minute < 0 || minute > 59 {
		return Timestamp{}, ionerr.InvalidTimestampf(0, "minute %d out of range [0, 59]", minute)
	}
	t.hour = hour
	t.minute = minute
	t.precision = Year | Month | Day | Minute
	return t, nil
}

// ForSecond extends t to SECOND precision. t must be at exactly
// YEAR|MONTH|DAY|MINUTE precision; second must be in [0, 59] (leap
// seconds rejected, per the non-goal).
func ForSecond(t Timestamp, second int) (Timestamp, error) {
	if t.precision != Year|Month|Day|Minute {
		return Timestamp{}, ionerr.InvalidArgf("for_second requires a minute-precision timestamp")
	}
	if second < 0 || second > 59 {
		return Timestamp{}, ionerr.InvalidTimestampf(0, "second %d out of range [0, 59]", second)
	}
	t.second = second
	t.precision = Year | Month | Day | Minute | Second
	return t, nil
}

// ForFraction extends t to FRACTION precision with a fractional-seconds
// decimal. frac must be in [0, 1): a negative value, a value >= 1, or a
// coefficient-zero value at a non-negative exponent (which would mean
// "no fraction" rather than a genuine zero fraction) are all rejected.
// t must be at exactly YEAR|MONTH|DAY|MINUTE|SECOND precision.
func ForFraction(t Timestamp, frac decimal.Decimal) (Timestamp, error) {
	if t.precision != Year|Month|Day|Minute|Second {
		return Timestamp{}, ionerr.InvalidArgf("for_fraction requires a second-precision timestamp")
	}
	if !frac.IsFinite() {
		return Timestamp{}, ionerr.InvalidArgf("fraction must be finite")
	}
	if frac.IsNegative() {
		return Timestamp{}, ionerr.InvalidTimestampf(0, "fraction must not be negative (including negative zero)")
	}
	if frac.Exponent() >= 0 {
		return Timestamp{}, ionerr.InvalidTimestampf(0, "fraction exponent must be negative")
	}
	if decimal.Compare(frac, decimal.FromInt64(1, 0)) >= 0 {
		return Timestamp{}, ionerr.InvalidTimestampf(0, "fraction must be < 1")
	}
	t.frac = frac
	t.precision = Year | Month | Day | Minute | Second | Fraction
	return t, nil
}

// WithOffset sets the local UTC offset in minutes. t must have at least
// MINUTE precision; offsetMinutes must be in (-1440, +1440).
// Passing hasOffset=false records the offset as "unknown" (text form
// "-00:00"), which is distinct from an explicit zero offset ("Z").
func WithOffset(t Timestamp, offsetMinutes int, hasOffset bool) (Timestamp, error) {
	if t.precision&Minute == 0 {
		return Timestamp{}, ionerr.InvalidArgf("with_offset requires at least minute precision")
	}
	if hasOffset && (offsetMinutes <= -1440 || offsetMinutes >= 1440) {
		return Timestamp{}, ionerr.InvalidTimestampf(0, "offset %d minutes out of range (-1440, 1440)", offsetMinutes)
	}
	if !hasOffset {
		offsetMinutes = 0
	}
	t.offsetMinutes = offsetMinutes
	t.hasOffset = hasOffset
	return t, nil
}

// Precision reports t's precision bitset.
func (t Timestamp) Precision() Precision { return t.precision }

// HasOffset reports whether t carries a known UTC offset.
func (t Timestamp) HasOffset() bool { return t.hasOffset }

// OffsetMinutes returns t's UTC offset in minutes (0 if HasOffset is
// false).
func (t Timestamp) OffsetMinutes() int { return t.offsetMinutes }

// Year, Month, Day, Hour, Minute, Second return the corresponding
// calendar field; fields beyond t's precision hold their default (1 for
// month/day, 0 for hour/minute/second).
func (t Timestamp) Year() int   { return t.year }
func (t Timestamp) Month() int  { return t.month }
func (t Timestamp) Day() int    { return t.day }
func (t Timestamp) Hour() int   { return t.hour }
func (t Timestamp) Minute() int { return t.minute }
func (t Timestamp) Second() int { return t.second }

// Fraction returns the fractional-seconds decimal. Its zero value
// (Decimal{}) is returned when precision doesn't reach FRACTION.
func (t Timestamp) Fraction() decimal.Decimal { return t.frac }

// hasFraction reports whether the fraction field is semantically
// present: precision reaches FRACTION AND the value isn't the "zero
// coefficient at a non-negative exponent means absent" case.
func (t Timestamp) hasFraction() bool {
	if t.precision&Fraction == 0 {
		return false
	}
	return !(t.frac.IsZero() && t.frac.Exponent() >= 0)
}

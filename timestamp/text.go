package timestamp

import (
	"strconv"
	"strings"

	"github.com/arloliu/ionum/decimal"
	"github.com/arloliu/ionum/ionerr"
)

// tokenBoundary is the set of Ion-token boundary characters that
// terminate a timestamp's text form.
const tokenBoundary = " \t\n\r,\"'()[]{}/\x00"

// timestampChars is every character the canonical grammar can produce;
// Parse scans up to the first character outside this set (or a token
// boundary, whichever comes first) to find the candidate token, so a
// timestamp embedded in a larger document (e.g. followed by ",]}" in a
// list) is recognized without the caller pre-slicing it out.
const timestampChars = "0123456789-:.+TZ"

// Parse parses the timestamp at the start of text per the canonical
// grammar:
//
//	ts      := date ('T' (time offset?)?)?
//	date    := YYYY ('-' MM ('-' DD)?)?
//	time    := HH ':' MM (':' SS ('.' F+)?)?
//	offset  := 'Z' | ('+'|'-') HH ':' MM
//
// and returns it along with whatever text remains unconsumed. Parsing
// stops at end-of-input or the first Ion-token boundary character; any
// other trailing character (one that can't begin a new token and isn't
// part of the grammar) is an error.
func Parse(text string) (Timestamp, string, error) {
	token, rest := splitAtBoundary(text)
	if i := strings.IndexFunc(token, func(r rune) bool { return !strings.ContainsRune(timestampChars, r) }); i >= 0 {
		return Timestamp{}, "", ionerr.InvalidArgf("unexpected character %q in timestamp %q", token[i], text)
	}
	ts, err := parseToken(token, text)
	if err != nil {
		return Timestamp{}, "", err
	}
	return ts, rest, nil
}

func parseToken(s, text string) (Timestamp, error) {
	yearStr, s, err := take(s, 4)
	if err != nil {
		return Timestamp{}, err
	}
	year, err := parseDigits(yearStr)
	if err != nil {
		return Timestamp{}, err
	}
	t, err := ForYear(year)
	if err != nil {
		return Timestamp{}, err
	}

	if s == "" || s == "T" {
		return t, nil
	}
	if s[0] != '-' {
		return Timestamp{}, ionerr.InvalidArgf("expected '-' after year in %q", text)
	}
	s = s[1:]
	monthStr, s, err := take(s, 2)
	if err != nil {
		return Timestamp{}, err
	}
	month, err := parseDigits(monthStr)
	if err != nil {
		return Timestamp{}, err
	}
	t, err = ForMonth(t, month)
	if err != nil {
		return Timestamp{}, err
	}

	if s == "" || s == "T" {
		return t, nil
	}
	if s[0] != '-' {
		return Timestamp{}, ionerr.InvalidArgf("expected '-' after month in %q", text)
	}
	s = s[1:]
	dayStr, s, err := take(s, 2)
	if err != nil {
		return Timestamp{}, err
	}
	day, err := parseDigits(dayStr)
	if err != nil {
		return Timestamp{}, err
	}
	t, err = ForDay(t, day)
	if err != nil {
		return Timestamp{}, err
	}

	if s == "" {
		return t, nil
	}
	if s[0] != 'T' {
		return Timestamp{}, ionerr.InvalidArgf("expected 'T' after day in %q", text)
	}
	s = s[1:]
	if s == "" {
		return t, nil
	}

	hourStr, s, err := take(s, 2)
	if err != nil {
		return Timestamp{}, err
	}
	hour, err := parseDigits(hourStr)
	if err != nil {
		return Timestamp{}, err
	}
	colonStr, s, err := take(s, 1)
	if err != nil || colonStr != ":" {
		return Timestamp{}, ionerr.InvalidArgf("expected ':' after hour in %q", text)
	}
	minuteStr, s, err := take(s, 2)
	if err != nil {
		return Timestamp{}, err
	}
	minute, err := parseDigits(minuteStr)
	if err != nil {
		return Timestamp{}, err
	}
	t, err = ForMinute(t, hour, minute)
	if err != nil {
		return Timestamp{}, err
	}

	if len(s) >= 1 && s[0] == ':' {
		s = s[1:]
		secondStr, rest, err := take(s, 2)
		if err != nil {
			return Timestamp{}, err
		}
		s = rest
		second, err := parseDigits(secondStr)
		if err != nil {
			return Timestamp{}, err
		}
		t, err = ForSecond(t, second)
		if err != nil {
			return Timestamp{}, err
		}

		if len(s) >= 1 && s[0] == '.' {
			s = s[1:]
			digits := s
			for i, r := range s {
				if r < '0' || r > '9' {
					digits = s[:i]
					break
				}
			}
			if digits == "" {
				return Timestamp{}, ionerr.InvalidArgf("missing fraction digits in %q", text)
			}
			frac, err := decimal.Parse("0." + digits)
			if err != nil {
				return Timestamp{}, err
			}
			t, err = ForFraction(t, frac)
			if err != nil {
				return Timestamp{}, err
			}
			s = s[len(digits):]
		}
	}

	return parseOffset(t, s, text)
}

func parseOffset(t Timestamp, s, orig string) (Timestamp, error) {
	switch {
	case s == "":
		return t, nil
	case s == "Z":
		return WithOffset(t, 0, true)
	case len(s) == 6 && (s[0] == '+' || s[0] == '-') && s[3] == ':':
		hh, err := parseDigits(s[1:3])
		if err != nil {
			return Timestamp{}, err
		}
		mm, err := parseDigits(s[4:6])
		if err != nil {
			return Timestamp{}, err
		}
		total := hh*60 + mm
		if s[0] == '-' {
			if total == 0 {
				return WithOffset(t, 0, false) // "-00:00": unknown offset
			}
			total = -total
		}
		return WithOffset(t, total, true)
	default:
		return Timestamp{}, ionerr.InvalidArgf("invalid offset in %q", orig)
	}
}

// take returns the first n bytes of s and the remainder, failing cleanly
// instead of panicking when s is shorter than n (a malformed/truncated
// timestamp text).
func take(s string, n int) (string, string, error) {
	if len(s) < n {
		return "", "", ionerr.InvalidArgf("timestamp text truncated, expected %d more characters", n)
	}
	return s[:n], s[n:], nil
}

func splitAtBoundary(s string) (head, rest string) {
	if i := strings.IndexAny(s, tokenBoundary); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}

func parseDigits(s string) (int, error) {
	if len(s) == 0 {
		return 0, ionerr.InvalidArgf("missing digits")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ionerr.InvalidArgf("non-digit character %q", s)
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, ionerr.InvalidArgf("invalid digits %q", s)
	}
	return v, nil
}

// Format renders t with exactly as many components as t's
// precision indicates, then the offset suffix ('Z' for a zero explicit
// offset, '+HH:MM'/'-HH:MM' for a nonzero one, '-00:00' for unknown).
// The fractional-second field is rendered from the stored decimal with
// leading-zero normalization.
func Format(t Timestamp) string {
	var b strings.Builder
	pad(&b, t.year, 4)
	if t.precision&Month == 0 {
		b.WriteByte('T')
		return b.String()
	}
	b.WriteByte('-')
	pad(&b, t.month, 2)
	if t.precision&Day == 0 {
		b.WriteByte('T')
		return b.String()
	}
	b.WriteByte('-')
	pad(&b, t.day, 2)
	if t.precision&Minute == 0 {
		b.WriteByte('T')
		return b.String()
	}
	b.WriteByte('T')
	pad(&b, t.hour, 2)
	b.WriteByte(':')
	pad(&b, t.minute, 2)
	if t.precision&Second != 0 {
		b.WriteByte(':')
		pad(&b, t.second, 2)
		if t.precision&Fraction != 0 && t.hasFraction() {
			b.WriteByte('.')
			b.WriteString(formatFraction(t.frac))
		}
	}
	writeOffset(&b, t)
	return b.String()
}

func writeOffset(b *strings.Builder, t Timestamp) {
	if !t.hasOffset {
		b.WriteString("-00:00")
		return
	}
	if t.offsetMinutes == 0 {
		b.WriteByte('Z')
		return
	}
	sign := byte('+')
	m := t.offsetMinutes
	if m < 0 {
		sign = '-'
		m = -m
	}
	b.WriteByte(sign)
	pad(b, m/60, 2)
	b.WriteByte(':')
	pad(b, m%60, 2)
}

func pad(b *strings.Builder, v, width int) {
	s := strconv.Itoa(v)
	for len(s) < width {
		s = "0" + s
	}
	b.WriteString(s)
}

// formatFraction renders frac (a [0, 1) decimal) as digits after the
// decimal point, with the correct count of leading zeros: e.g. a
// coefficient of 5 at exponent -3 ("0.005") renders as "005".
func formatFraction(frac decimal.Decimal) string {
	digits := frac.Coefficient().Text(10)
	width := -int(frac.Exponent())
	if len(digits) < width {
		digits = strings.Repeat("0", width-len(digits)) + digits
	}
	return digits
}

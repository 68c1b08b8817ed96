package decimal

import (
	"math"
	"math/big"
	"strings"

	"github.com/arloliu/ionum/ionerr"
)

// Special non-finite text forms recognized in both directions.
const (
	textPosInf = "+inf"
	textNegInf = "-inf"
	textNaN    = "nan"
)

// Parse parses t per the grammar: an optional sign, digits with
// an optional '.', and an optional exponent introduced by d/D (Ion's
// native form) or e/E (accepted for interoperability), or one of the
// non-finite forms (-inf, +inf, nan). The digits are parsed once, exactly,
// into a big.Int, and FromParts makes the result a Quad when it fits
// (at most 34 significant digits) and a Number otherwise, so no precision
// is lost. An exponent outside the int32 range is NumericOverflow.
func Parse(t string) (Decimal, error) {
	switch t {
	case textPosInf:
		return Inf(false), nil
	case textNegInf:
		return Inf(true), nil
	case textNaN:
		return NaN(), nil
	}

	neg, digits, exp, err := splitDecimalText(t)
	if err != nil {
		return Decimal{}, err
	}

	mag := new(big.Int)
	if digits == "" {
		mag.SetInt64(0)
	} else if _, ok := mag.SetString(digits, 10); !ok {
		return Decimal{}, ionerr.InvalidArgf("invalid decimal digits %q", digits)
	}

	if exp < math.MinInt32 || exp > math.MaxInt32 {
		return Decimal{}, ionerr.Overflowf("decimal exponent %d out of int32 range", exp)
	}

	return FromParts(neg, mag, int32(exp)), nil
}

// splitDecimalText separates t into a sign, a digit string (with the
// decimal point removed), and an effective base-10 exponent, following
// the text grammar. It does not allocate a Decimal; Parse builds one from
// its results.
func splitDecimalText(t string) (neg bool, digits string, exp int64, err error) {
	s := t
	if s == "" {
		return false, "", 0, ionerr.InvalidArgf("empty decimal text")
	}

	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		s = s[1:]
	}

	var intPart, fracPart, expPart string
	expSign := int64(1)
	hasExp := false

	// Split off the exponent, if any.
	for i, r := range s {
		switch r {
		case 'd', 'D', 'e', 'E':
			intFrac := s[:i]
			expPart = s[i+1:]
			hasExp = true
			intPart, fracPart = splitOnDot(intFrac)
			goto exponentFound
		}
	}
	intPart, fracPart = splitOnDot(s)

exponentFound:
	if hasExp {
		if expPart == "" {
			return false, "", 0, ionerr.InvalidArgf("missing exponent digits in %q", t)
		}
		rest := expPart
		if rest[0] == '+' || rest[0] == '-' {
			if rest[0] == '-' {
				expSign = -1
			}
			rest = rest[1:]
		}
		if rest == "" || !allDigits(rest) {
			return false, "", 0, ionerr.InvalidArgf("invalid exponent in %q", t)
		}
		v, ok := parseDigitsInt64(rest)
		if !ok {
			return false, "", 0, ionerr.Overflowf("decimal exponent too large in %q", t)
		}
		exp = expSign * v
	}

	if intPart == "" && fracPart == "" {
		return false, "", 0, ionerr.InvalidArgf("no digits in %q", t)
	}
	if !allDigits(intPart) || !allDigits(fracPart) {
		return false, "", 0, ionerr.InvalidArgf("non-digit character in %q", t)
	}

	exp -= int64(len(fracPart))
	digits = intPart + fracPart
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		digits = "0"
	}

	return neg, digits, exp, nil
}

func splitOnDot(s string) (string, string) {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

func allDigits(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parseDigitsInt64(s string) (int64, bool) {
	var v int64
	for _, r := range s {
		d := int64(r - '0')
		if v > (math.MaxInt64-d)/10 {
			return 0, false
		}
		v = v*10 + d
	}
	return v, true
}

// Format renders d: "0d0" for canonical positive zero;
// otherwise the coefficient/exponent are rendered via the standard
// General Decimal Arithmetic "to-scientific-string" algorithm (the same
// plain-vs-scientific-notation choice used by decNumber/BigDecimal's
// toString), the first 'E' of a scientific result is replaced with 'd',
// and a trailing "d0" is appended if the result produced neither '.' nor
// an exponent marker (an integer-looking result that must still parse
// back as a decimal, not an Ion integer literal).
func Format(d Decimal) string {
	if d.IsNaN() {
		return textNaN
	}
	if d.IsInf() {
		if d.neg {
			return textNegInf
		}
		return textPosInf
	}
	if d.IsZero() && !d.neg && d.exp == 0 {
		return "0d0"
	}

	digits := d.coeff.Text(10)
	n := len(digits)
	exp := int(d.exp)
	adjusted := exp + n - 1

	var body string
	if exp <= 0 && adjusted >= -6 {
		// Plain notation.
		switch {
		case exp == 0:
			body = digits
		case n > -exp:
			point := n + exp
			body = digits[:point] + "." + digits[point:]
		default:
			body = "0." + strings.Repeat("0", -exp-n) + digits
		}
	} else {
		// Scientific notation.
		if n == 1 {
			body = digits + "d" + signedInt(adjusted)
		} else {
			body = digits[:1] + "." + digits[1:] + "d" + signedInt(adjusted)
		}
	}

	if d.neg {
		body = "-" + body
	}

	if !strings.ContainsAny(body, ".dD") {
		body += "d0"
	}
	return body
}

func signedInt(v int) string {
	if v >= 0 {
		return "+" + itoa32(int32(v))
	}
	return itoa32(int32(v))
}

func itoa32(v int32) string {
	neg := v < 0
	var mag int64 = int64(v)
	if neg {
		mag = -mag
	}
	if mag == 0 {
		return "0"
	}
	var buf [12]byte
	i := len(buf)
	for mag > 0 {
		i--
		buf[i] = byte('0' + mag%10)
		mag /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

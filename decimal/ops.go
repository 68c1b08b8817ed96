package decimal

import (
	"math/big"
	"strings"

	"github.com/arloliu/ionum/ionerr"
)

// ops.go implements the full decimal operator dispatch table. Because this
// package stores every representation's coefficient as a *big.Int
// regardless of Kind, the "try Quad, detect inexactness, retry as Number"
// pattern collapses to: compute once against big.Int, then let FromParts
// reclassify the result (Quad if it fits, Number otherwise) and round
// against ctx.Precision only when the digit count actually exceeds it; a
// Number overflowing ctx.Precision reports NumericOverflow.

var ten = big.NewInt(10)

func pow10(n int) *big.Int {
	if n <= 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

// signedCoeff returns d's coefficient with its sign folded in, for use in
// plain integer arithmetic once exponents are aligned.
func signedCoeff(d Decimal) *big.Int {
	v := new(big.Int).Set(d.coeff)
	if d.neg {
		v.Neg(v)
	}
	return v
}

// align scales a and b's coefficients to a common exponent (the smaller
// of the two, so both scalings are non-negative shifts) and returns the
// signed, aligned coefficients plus that common exponent.
func align(a, b Decimal) (ca, cb *big.Int, exp int32) {
	switch {
	case a.exp == b.exp:
		return signedCoeff(a), signedCoeff(b), a.exp
	case a.exp < b.exp:
		shift := int(b.exp - a.exp)
		return signedCoeff(a), new(big.Int).Mul(signedCoeff(b), pow10(shift)), a.exp
	default:
		shift := int(a.exp - b.exp)
		return new(big.Int).Mul(signedCoeff(a), pow10(shift)), signedCoeff(b), b.exp
	}
}

// fromSigned builds a finite Decimal from a signed integer coefficient
// (as produced by align/arithmetic above) and an exponent, preserving a
// signed-zero result rather than collapsing it to Decimal's canonical
// positive zero.
func fromSigned(signed *big.Int, exp int32, negZero bool) Decimal {
	neg := signed.Sign() < 0 || (signed.Sign() == 0 && negZero)
	mag := new(big.Int).Abs(signed)
	return FromParts(neg, mag, exp)
}

// roundToPrecision drops the low digits of mag until it has at most
// ctx.Precision significant digits, rounding per ctx.Rounding and setting
// ctx.Inexact if any non-zero digit was discarded. It returns the
// (possibly unchanged) magnitude and the exponent adjustment to apply.
func roundToPrecision(ctx *Context, mag *big.Int, exp int32) (*big.Int, int32) {
	if ctx == nil || ctx.Precision == 0 {
		return mag, exp
	}
	digits := DigitCount(mag)
	drop := digits - int(ctx.Precision)
	if drop <= 0 {
		return mag, exp
	}
	divisor := pow10(drop)
	quo, rem := new(big.Int).QuoRem(mag, divisor, new(big.Int))
	if rem.Sign() != 0 {
		ctx.setInexact()
		quo = applyRounding(ctx.Rounding, quo, rem, divisor, mag.Sign() < 0)
	}
	return quo, exp + int32(drop)
}

// applyRounding nudges quo (the truncated quotient) up by one per mode,
// given the remainder and divisor of the truncating division that
// produced it.
func applyRounding(mode RoundingMode, quo, rem, divisor *big.Int, wasNegative bool) *big.Int {
	switch mode {
	case RoundDown:
		return quo
	case RoundCeiling:
		if !wasNegative {
			return new(big.Int).Add(quo, big.NewInt(1))
		}
		return quo
	case RoundFloor:
		if wasNegative {
			return new(big.Int).Add(quo, big.NewInt(1))
		}
		return quo
	case RoundHalfUp, RoundHalfEven:
		twice := new(big.Int).Lsh(rem, 1)
		cmp := twice.CmpAbs(divisor)
		roundUp := cmp > 0
		if cmp == 0 {
			if mode == RoundHalfUp {
				roundUp = true
			} else {
				roundUp = quo.Bit(0) == 1
			}
		}
		if roundUp {
			return new(big.Int).Add(quo, big.NewInt(1))
		}
		return quo
	default:
		return quo
	}
}

// Compare reports the numeric ordering of a and b: -1, 0, or +1. NaN
// compares greater than every non-NaN value, and two NaNs compare equal
// (this package has no signaling/quiet distinction); infinities compare
// by sign against everything finite.
func Compare(a, b Decimal) int {
	switch {
	case a.IsNaN() && b.IsNaN():
		return 0
	case a.IsNaN():
		return 1
	case b.IsNaN():
		return -1
	}
	if a.IsInf() || b.IsInf() {
		ra, rb := infRank(a), infRank(b)
		if ra != rb {
			return cmpInt(ra, rb)
		}
		return 0
	}
	ca, cb, _ := align(a, b)
	return ca.Cmp(cb)
}

// infRank orders -inf < finite < +inf for use alongside a finite operand;
// two finite values never reach this helper.
func infRank(d Decimal) int {
	if !d.IsInf() {
		return 0
	}
	if d.neg {
		return -1
	}
	return 1
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CompareTotal implements the total-order comparison this package implements: it never
// reports "unordered", breaking numeric ties between equal-value operands
// of differing exponent so that e.g. 1.00 sorts before 1.0 and -1.0
// sorts before -1.00.
func CompareTotal(a, b Decimal) int {
	ta, tb := totalTier(a), totalTier(b)
	if ta != tb {
		return cmpInt(ta, tb)
	}
	switch ta {
	case tierNegInf, tierPosInf, tierNaN:
		return 0
	}
	v := Compare(a, b)
	if v != 0 {
		return v
	}
	// Equal value, same sign: more digits (smaller exponent) sorts first
	// for positive operands, last for negative ones.
	if a.exp == b.exp {
		return 0
	}
	if a.neg {
		return cmpInt(int(b.exp), int(a.exp))
	}
	return cmpInt(int(a.exp), int(b.exp))
}

type totalTierKind int

const (
	tierNegInf totalTierKind = iota
	tierNegFinite
	tierZero
	tierPosFinite
	tierPosInf
	tierNaN
)

func totalTier(d Decimal) totalTierKind {
	switch {
	case d.IsNaN():
		return tierNaN
	case d.IsInf():
		if d.neg {
			return tierNegInf
		}
		return tierPosInf
	case d.IsZero():
		return tierZero
	case d.neg:
		return tierNegFinite
	default:
		return tierPosFinite
	}
}

// Equals reports whether compare(a, b) yields zero.
func Equals(a, b Decimal) bool {
	return Compare(a, b) == 0
}

// Abs returns |d|, with NaN and infinity passed through sign-normalized.
func Abs(d Decimal, ctx *Context) Decimal {
	if d.IsNaN() {
		return d
	}
	if d.IsInf() {
		return Inf(false)
	}
	mag, exp := roundToPrecision(ctx, new(big.Int).Set(d.coeff), d.exp)
	return FromParts(false, mag, exp)
}

// Minus returns the additive inverse of d (unary minus, a 1-ary
// "minus"), equivalent to 0 - d but without the intermediate add.
func Minus(d Decimal, ctx *Context) Decimal {
	if d.IsNaN() || d.IsInf() {
		return CopyNegate(d)
	}
	mag, exp := roundToPrecision(ctx, new(big.Int).Set(d.coeff), d.exp)
	return FromParts(!d.neg, mag, exp)
}

// Plus returns d rounded to ctx's precision (unary plus), the identity
// operation aside from that rounding.
func Plus(d Decimal, ctx *Context) Decimal {
	if d.IsNaN() || d.IsInf() {
		return d
	}
	mag, exp := roundToPrecision(ctx, new(big.Int).Set(d.coeff), d.exp)
	return FromParts(d.neg, mag, exp)
}

// Copy returns a value-identical Decimal (a defensive deep copy of the
// coefficient, never sharing storage with d).
func Copy(d Decimal) Decimal {
	cp := d
	cp.coeff = new(big.Int).Set(d.coeff)
	return cp
}

// CopyAbs returns a copy of d with the sign cleared, without rounding.
func CopyAbs(d Decimal) Decimal {
	cp := Copy(d)
	cp.neg = false
	return cp
}

// CopyNegate returns a copy of d with the sign flipped, without rounding.
func CopyNegate(d Decimal) Decimal {
	cp := Copy(d)
	cp.neg = !cp.neg
	return cp
}

// CopySign returns a's magnitude combined with b's sign.
func CopySign(a, b Decimal) Decimal {
	cp := Copy(a)
	cp.neg = b.neg
	return cp
}

// Canonical returns d unchanged; this package never produces a
// non-canonical encoding of a given value (no redundant BCD-style
// representations), so canonicalization is the identity.
func Canonical(d Decimal) Decimal { return d }

// Reduce trims trailing zero digits from the coefficient, raising the
// exponent to compensate, without changing the represented value. A zero
// coefficient reduces to a single zero digit at exponent 0.
func Reduce(d Decimal) Decimal {
	if d.IsNaN() || d.IsInf() {
		return d
	}
	if d.IsZero() {
		return FromParts(d.neg, big.NewInt(0), 0)
	}
	mag := new(big.Int).Set(d.coeff)
	exp := d.exp
	for mag.Sign() != 0 {
		q, r := new(big.Int).QuoRem(mag, ten, new(big.Int))
		if r.Sign() != 0 {
			break
		}
		mag = q
		exp++
	}
	return FromParts(d.neg, mag, exp)
}

// ToIntegralValue rounds d to an integer (exponent 0) per ctx.Rounding
// without signaling Inexact even if digits were discarded, per the
// "to-integral-value" operator.
func ToIntegralValue(d Decimal, ctx *Context) Decimal {
	if d.IsNaN() || d.IsInf() || d.exp >= 0 {
		return d
	}
	saved := ctx.saveInexact()
	q := truncateToExponent(ctx, d.coeff, d.exp, 0)
	ctx.restoreInexact(saved)
	return FromParts(d.neg, q, 0)
}

// ToIntegralExact behaves as ToIntegralValue but leaves ctx.Inexact set
// when rounding discarded a non-zero digit, per the "to-integral-exact"
// operator.
func ToIntegralExact(d Decimal, ctx *Context) Decimal {
	if d.IsNaN() || d.IsInf() || d.exp >= 0 {
		return d
	}
	q := truncateToExponent(ctx, d.coeff, d.exp, 0)
	return FromParts(d.neg, q, 0)
}

// truncateToExponent rescales a non-negative magnitude at exponent exp to
// targetExp (which must be >= exp), rounding via ctx.Rounding and setting
// ctx.Inexact on any discarded non-zero digit.
func truncateToExponent(ctx *Context, mag *big.Int, exp, targetExp int32) *big.Int {
	if targetExp <= exp {
		return new(big.Int).Mul(mag, pow10(int(exp-targetExp)))
	}
	drop := int(targetExp - exp)
	divisor := pow10(drop)
	quo, rem := new(big.Int).QuoRem(mag, divisor, new(big.Int))
	if rem.Sign() != 0 {
		if ctx != nil {
			ctx.setInexact()
		}
		mode := RoundHalfEven
		if ctx != nil {
			mode = ctx.Rounding
		}
		quo = applyRounding(mode, quo, rem, divisor, false)
	}
	return quo
}

// Logb returns the adjusted exponent of d's leading digit as an integer
// Decimal (exponent 0): for a nonzero finite value this is
// digitCount(coeff) - 1 + exponent. Zero yields -Infinity; infinity
// yields +Infinity; NaN propagates.
func Logb(d Decimal, ctx *Context) Decimal {
	if d.IsNaN() {
		return d
	}
	if d.IsInf() {
		return Inf(false)
	}
	if d.IsZero() {
		return Inf(true)
	}
	adjusted := int64(d.exp) + int64(DigitCount(d.coeff)) - 1
	return FromInt64(adjusted, 0)
}

// Add returns a + b, promoting to the smaller of the two exponents before
// summing and rounding the sum to ctx's precision.
func Add(a, b Decimal, ctx *Context) (Decimal, error) {
	if r, ok, err := specialBinary(a, b); ok {
		return r, err
	}
	ca, cb, exp := align(a, b)
	sum := new(big.Int).Add(ca, cb)
	negZero := a.neg && b.neg
	mag, outExp := roundToPrecision(ctx, new(big.Int).Abs(sum), exp)
	return mustFit(ctx, fromSigned(signedOrZero(mag, sum.Sign() < 0, negZero), outExp, negZero))
}

func signedOrZero(mag *big.Int, neg, negZero bool) *big.Int {
	v := new(big.Int).Set(mag)
	if neg || (mag.Sign() == 0 && negZero) {
		if v.Sign() == 0 {
			return v
		}
		v.Neg(v)
	}
	return v
}

// Subtract returns a - b.
func Subtract(a, b Decimal, ctx *Context) (Decimal, error) {
	return Add(a, CopyNegate(b), ctx)
}

// Multiply returns a * b.
func Multiply(a, b Decimal, ctx *Context) (Decimal, error) {
	if !a.IsNaN() && !b.IsNaN() && (a.IsInf() || b.IsInf()) {
		if (a.IsFinite() && a.IsZero()) || (b.IsFinite() && b.IsZero()) {
			return Decimal{}, ionerr.InvalidArgf("decimal multiply of infinity by zero")
		}
		return Inf(a.neg != b.neg), nil
	}
	if r, ok, err := specialBinary(a, b); ok {
		return r, err
	}
	coeff := new(big.Int).Mul(a.coeff, b.coeff)
	exp := int64(a.exp) + int64(b.exp)
	if exp < minInt32 || exp > maxInt32 {
		return Decimal{}, ionerr.Overflowf("decimal multiply exponent overflow")
	}
	neg := a.neg != b.neg
	mag, outExp := roundToPrecision(ctx, coeff, int32(exp))
	return mustFit(ctx, FromParts(neg, mag, outExp))
}

const minInt32 = -(int64(1) << 31)
const maxInt32 = (int64(1) << 31) - 1

// Divide returns a / b rounded to ctx's precision, per the 2-ary "divide"
// operator. Division by zero reports NumericOverflow (this package has
// no separate DivisionByZero failure kind).
func Divide(a, b Decimal, ctx *Context) (Decimal, error) {
	if !a.IsNaN() && !b.IsNaN() && (a.IsInf() || b.IsInf()) {
		if a.IsInf() && b.IsInf() {
			return Decimal{}, ionerr.InvalidArgf("decimal divide of infinity by infinity")
		}
		if b.IsInf() {
			return FromParts(a.neg != b.neg, big.NewInt(0), 0), nil
		}
		return Inf(a.neg != b.neg), nil
	}
	if r, ok, err := specialBinary(a, b); ok {
		return r, err
	}
	if b.IsZero() {
		return Decimal{}, ionerr.Overflowf("decimal division by zero")
	}
	precision := 34
	if ctx != nil && ctx.Precision > 0 {
		precision = int(ctx.Precision)
	}
	// Scale the numerator so the truncating big.Int division yields at
	// least `precision` significant digits, then round.
	extra := precision + DigitCount(b.coeff) - DigitCount(a.coeff) + 2
	if extra < 0 {
		extra = 0
	}
	num := new(big.Int).Mul(a.coeff, pow10(extra))
	quo, rem := new(big.Int).QuoRem(num, b.coeff, new(big.Int))
	exp := int64(a.exp) - int64(b.exp) - int64(extra)
	if rem.Sign() != 0 && ctx != nil {
		ctx.setInexact()
	}
	neg := a.neg != b.neg
	if exp < minInt32 || exp > maxInt32 {
		return Decimal{}, ionerr.Overflowf("decimal divide exponent overflow")
	}
	mag, outExp := roundToPrecision(ctx, quo, int32(exp))
	return mustFit(ctx, FromParts(neg, mag, outExp))
}

// DivideInteger returns the integer part of a / b (truncated toward
// zero), exponent 0.
func DivideInteger(a, b Decimal, ctx *Context) (Decimal, error) {
	if !a.IsNaN() && !b.IsNaN() && (a.IsInf() || b.IsInf()) {
		if a.IsInf() && b.IsInf() {
			return Decimal{}, ionerr.InvalidArgf("decimal integer divide of infinity by infinity")
		}
		if b.IsInf() {
			return FromParts(a.neg != b.neg, big.NewInt(0), 0), nil
		}
		return Inf(a.neg != b.neg), nil
	}
	if r, ok, err := specialBinary(a, b); ok {
		return r, err
	}
	if b.IsZero() {
		return Decimal{}, ionerr.Overflowf("decimal integer division by zero")
	}
	ca, cb, _ := align(a, b)
	ca.Abs(ca)
	cb.Abs(cb)
	quo := new(big.Int).Quo(ca, cb)
	neg := a.neg != b.neg
	return FromParts(neg, quo, 0), nil
}

// Remainder returns a - (DivideInteger(a, b) * b), per the 2-ary
// "remainder" operator (sign follows a).
func Remainder(a, b Decimal, ctx *Context) (Decimal, error) {
	q, err := DivideInteger(a, b, ctx)
	if err != nil {
		return Decimal{}, err
	}
	prod, err := Multiply(q, b, ctx)
	if err != nil {
		return Decimal{}, err
	}
	return Subtract(a, prod, ctx)
}

// RemainderNear returns a - (n * b) where n is a / b rounded to the
// nearest integer, ties to even, per the 2-ary "remainder-near" operator.
func RemainderNear(a, b Decimal, ctx *Context) (Decimal, error) {
	if b.IsZero() {
		return Decimal{}, ionerr.Overflowf("decimal remainder-near by zero")
	}
	ca, cb, _ := align(a, b)
	ca.Abs(ca)
	cb.Abs(cb)
	quo, rem := new(big.Int).QuoRem(ca, cb, new(big.Int))
	twice := new(big.Int).Lsh(rem, 1)
	if cmp := twice.CmpAbs(cb); cmp > 0 || (cmp == 0 && quo.Bit(0) == 1) {
		quo.Add(quo, big.NewInt(1))
	}
	neg := a.neg != b.neg
	n := FromParts(neg, quo, 0)
	prod, err := Multiply(n, b, ctx)
	if err != nil {
		return Decimal{}, err
	}
	return Subtract(a, prod, ctx)
}

// Max returns the larger of a, b per Compare; ties return a.
func Max(a, b Decimal, ctx *Context) Decimal {
	if Compare(b, a) > 0 {
		return b
	}
	return a
}

// Min returns the smaller of a, b per Compare; ties return a.
func Min(a, b Decimal, ctx *Context) Decimal {
	if Compare(b, a) < 0 {
		return b
	}
	return a
}

// MaxMag returns whichever of a, b has the larger absolute value.
func MaxMag(a, b Decimal, ctx *Context) Decimal {
	if Compare(CopyAbs(b), CopyAbs(a)) > 0 {
		return b
	}
	return a
}

// MinMag returns whichever of a, b has the smaller absolute value.
func MinMag(a, b Decimal, ctx *Context) Decimal {
	if Compare(CopyAbs(b), CopyAbs(a)) < 0 {
		return b
	}
	return a
}

// Quantize rescales a to b's exponent, failing with NumericOverflow if
// the result would need more digits than ctx.Precision allows.
func Quantize(a, b Decimal, ctx *Context) (Decimal, error) {
	if a.IsNaN() || b.IsNaN() {
		return NaN(), nil
	}
	if a.IsInf() != b.IsInf() {
		return Decimal{}, ionerr.InvalidArgf("quantize requires both or neither operand infinite")
	}
	if a.IsInf() {
		return a, nil
	}
	mag := truncateToExponent(ctx, a.coeff, a.exp, b.exp)
	if ctx != nil && ctx.Precision > 0 && DigitCount(mag) > int(ctx.Precision) {
		return Decimal{}, ionerr.Overflowf("quantize result exceeds precision %d", ctx.Precision)
	}
	return FromParts(a.neg, mag, b.exp), nil
}

// ScaleB returns a * 10^n, where n is b's integer value (b must be a
// finite integer-valued decimal within a small range).
func ScaleB(a, b Decimal, ctx *Context) (Decimal, error) {
	if a.IsNaN() || a.IsInf() {
		return a, nil
	}
	n, ok := smallInt(b)
	if !ok {
		return Decimal{}, ionerr.InvalidArgf("scaleb operand must be a small integer decimal")
	}
	exp := int64(a.exp) + int64(n)
	if exp < minInt32 || exp > maxInt32 {
		return Decimal{}, ionerr.Overflowf("scaleb exponent overflow")
	}
	mag, outExp := roundToPrecision(ctx, new(big.Int).Set(a.coeff), int32(exp))
	return FromParts(a.neg, mag, outExp), nil
}

func smallInt(d Decimal) (int64, bool) {
	if !d.IsFinite() || d.exp < 0 {
		return 0, false
	}
	v := new(big.Int).Mul(d.coeff, pow10(int(d.exp)))
	if !v.IsInt64() {
		return 0, false
	}
	n := v.Int64()
	if d.neg {
		n = -n
	}
	return n, true
}

// digitString renders mag as a fixed-width decimal digit string of at
// least width digits (left-padded with zeros), for the digit-wise
// operators below.
func digitString(mag *big.Int, width int) string {
	s := mag.Text(10)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}

// Shift returns a with its coefficient's digits shifted left (positive
// n) or right (negative n) within a field of ctx.Precision digits,
// zero-filling vacated positions, per the 2-ary "shift" operator.
func Shift(a Decimal, n Decimal, ctx *Context) (Decimal, error) {
	shift, ok := smallInt(n)
	if !ok {
		return Decimal{}, ionerr.InvalidArgf("shift operand must be a small integer decimal")
	}
	width := 34
	if ctx != nil && ctx.Precision > 0 {
		width = int(ctx.Precision)
	}
	digits := digitString(a.coeff, width)
	if len(digits) > width {
		digits = digits[len(digits)-width:]
	}
	var shifted string
	switch {
	case shift >= 0:
		s := int(shift)
		if s >= width {
			shifted = strings.Repeat("0", width)
		} else {
			shifted = digits[s:] + strings.Repeat("0", s)
		}
	default:
		s := int(-shift)
		if s >= width {
			shifted = strings.Repeat("0", width)
		} else {
			shifted = strings.Repeat("0", s) + digits[:width-s]
		}
	}
	mag := new(big.Int)
	mag.SetString(shifted, 10)
	return FromParts(a.neg, mag, a.exp), nil
}

// Rotate returns a with its coefficient's digits rotated left (positive
// n) or right (negative n) within a field of ctx.Precision digits, per
// the 2-ary "rotate" operator.
func Rotate(a Decimal, n Decimal, ctx *Context) (Decimal, error) {
	shift, ok := smallInt(n)
	if !ok {
		return Decimal{}, ionerr.InvalidArgf("rotate operand must be a small integer decimal")
	}
	width := 34
	if ctx != nil && ctx.Precision > 0 {
		width = int(ctx.Precision)
	}
	digits := digitString(a.coeff, width)
	if len(digits) > width {
		digits = digits[len(digits)-width:]
	}
	s := int(shift) % width
	if s < 0 {
		s += width
	}
	rotated := digits[s:] + digits[:s]
	mag := new(big.Int)
	mag.SetString(rotated, 10)
	return FromParts(a.neg, mag, a.exp), nil
}

// logicalDigits validates that d is a finite, non-negative decimal whose
// coefficient digits are all 0 or 1, the "logical operand" precondition
// shared by and/or/xor/invert.
func logicalDigits(d Decimal, width int) (string, error) {
	if !d.IsFinite() || d.neg || d.exp != 0 {
		return "", ionerr.InvalidArgf("logical operand must be a non-negative integer decimal")
	}
	s := digitString(d.coeff, width)
	for _, r := range s {
		if r != '0' && r != '1' {
			return "", ionerr.InvalidArgf("logical operand digit %q is not 0 or 1", string(r))
		}
	}
	return s, nil
}

func logicalResult(bits []byte) Decimal {
	mag := new(big.Int)
	mag.SetString(string(bits), 10)
	return FromParts(false, mag, 0)
}

// And returns the digit-wise logical AND of a and b's binary-valued
// coefficients.
func And(a, b Decimal, ctx *Context) (Decimal, error) {
	width := 34
	if ctx != nil && ctx.Precision > 0 {
		width = int(ctx.Precision)
	}
	da, err := logicalDigits(a, width)
	if err != nil {
		return Decimal{}, err
	}
	db, err := logicalDigits(b, width)
	if err != nil {
		return Decimal{}, err
	}
	out := make([]byte, width)
	for i := range out {
		if da[i] == '1' && db[i] == '1' {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return logicalResult(out), nil
}

// Or returns the digit-wise logical OR of a and b.
func Or(a, b Decimal, ctx *Context) (Decimal, error) {
	width := 34
	if ctx != nil && ctx.Precision > 0 {
		width = int(ctx.Precision)
	}
	da, err := logicalDigits(a, width)
	if err != nil {
		return Decimal{}, err
	}
	db, err := logicalDigits(b, width)
	if err != nil {
		return Decimal{}, err
	}
	out := make([]byte, width)
	for i := range out {
		if da[i] == '1' || db[i] == '1' {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return logicalResult(out), nil
}

// Xor returns the digit-wise logical XOR of a and b.
func Xor(a, b Decimal, ctx *Context) (Decimal, error) {
	width := 34
	if ctx != nil && ctx.Precision > 0 {
		width = int(ctx.Precision)
	}
	da, err := logicalDigits(a, width)
	if err != nil {
		return Decimal{}, err
	}
	db, err := logicalDigits(b, width)
	if err != nil {
		return Decimal{}, err
	}
	out := make([]byte, width)
	for i := range out {
		if (da[i] == '1') != (db[i] == '1') {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return logicalResult(out), nil
}

// Invert returns the digit-wise logical complement of d's binary-valued
// coefficient, the 1-ary "invert" operator.
func Invert(d Decimal, ctx *Context) (Decimal, error) {
	width := 34
	if ctx != nil && ctx.Precision > 0 {
		width = int(ctx.Precision)
	}
	digits, err := logicalDigits(d, width)
	if err != nil {
		return Decimal{}, err
	}
	out := make([]byte, width)
	for i := range out {
		if digits[i] == '1' {
			out[i] = '0'
		} else {
			out[i] = '1'
		}
	}
	return logicalResult(out), nil
}

// FMA returns a*b + c, rounding once against the final sum rather than
// rounding the intermediate product, the 3-ary "fma" operator.
func FMA(a, b, c Decimal, ctx *Context) (Decimal, error) {
	prod, err := Multiply(a, b, nil)
	if err != nil {
		return Decimal{}, err
	}
	return Add(prod, c, ctx)
}

// specialBinary handles the NaN/Infinity cases shared by every 2-ary
// arithmetic operator, returning ok=false when both operands are finite
// and the caller should proceed with ordinary arithmetic.
func specialBinary(a, b Decimal) (Decimal, bool, error) {
	if a.IsNaN() || b.IsNaN() {
		return NaN(), true, nil
	}
	if a.IsInf() || b.IsInf() {
		if a.IsInf() && b.IsInf() && a.neg != b.neg {
			return Decimal{}, true, ionerr.InvalidArgf("infinite operands of opposite sign")
		}
		if a.IsInf() {
			return Inf(a.neg), true, nil
		}
		return Inf(b.neg), true, nil
	}
	return Decimal{}, false, nil
}

// mustFit reports NumericOverflow when ctx bounds the result's
// significant digits and the rounded result still exceeds them (the
// "Number result also inexact" failure).
func mustFit(ctx *Context, d Decimal) (Decimal, error) {
	if ctx != nil && ctx.Precision > 0 && DigitCount(d.coeff) > int(ctx.Precision) {
		return Decimal{}, ionerr.Overflowf("decimal result exceeds context precision %d", ctx.Precision)
	}
	return d, nil
}

// Package decimal implements Ion's three-way decimal representation (a
// bounded 34-digit "Quad" fast path, an arbitrary-precision owned
// "Number", and an arena-borrowed "Number"), the conversions between
// them, text parsing/formatting, binary encode/decode, and the full
// decimal operator dispatch table.
//
// The coefficient is stored as a math/big.Int magnitude in every
// representation, the same choice the reference bitstream decoder makes
// when reading a decimal's coefficient off the wire (readBigInt feeding
// NewDecimal); Quad differs from Number only in the digit/exponent bounds
// it enforces, not in the underlying storage.
package decimal

import (
	"math/big"

	"github.com/arloliu/ionum/internal/arena"
)

// Kind discriminates which of the three representations a Decimal holds.
// The discriminator always matches the active variant: constructing a
// value that doesn't fit Quad's bounds produces a Number, never a Quad
// with out-of-range fields.
type Kind uint8

const (
	KindQuad Kind = iota
	KindNumber
)

func (k Kind) String() string {
	if k == KindQuad {
		return "Quad"
	}
	return "Number"
}

// Ownership distinguishes an owned Number (lives on the heap, or is about
// to) from one borrowed from a reader's arena. Quad values have no
// ownership concept; they are always copied by value.
type Ownership uint8

const (
	OwnerHeap Ownership = iota
	OwnerArena
)

// Quad bounds: the IEEE-754-2008 decimal128 interchange format's
// coefficient digit count and unbiased exponent range.
const (
	QuadMaxDigits = 34
	QuadEmin      = -6176
	QuadEmax      = 6111
)

// Decimal is the discriminated three-way representation: Quad,
// owned Number, or borrowed Number. The coefficient is always stored as
// a non-negative magnitude; Neg carries the sign so that negative zero
// (sign set, magnitude zero) is representable, matching the wire format's
// negative-zero discipline.
type Decimal struct {
	kind    Kind
	neg     bool
	coeff   *big.Int // non-negative magnitude, never nil
	exp     int32
	owner   Ownership // meaningful only when kind == KindNumber
	special form      // formFinite unless this is an IEEE-754-2008 inf/nan
}

// form discriminates finite decimals from the two non-finite states
// decimal128 permits (our "zero" is just a finite value with a zero
// coefficient, since Decimal's coefficient already carries that case).
type form uint8

const (
	formFinite form = iota
	formInfinite
	formNaN
)

// Zero returns the canonical positive zero decimal (coefficient 0,
// exponent 0), stored as a Quad.
func Zero() Decimal {
	return Decimal{kind: KindQuad, coeff: big.NewInt(0)}
}

// Inf returns signed decimal infinity, stored as a Quad (infinities carry
// no coefficient digits to count against Quad's bound).
func Inf(neg bool) Decimal {
	return Decimal{kind: KindQuad, neg: neg, coeff: big.NewInt(0), special: formInfinite}
}

// NaN returns the (unsigned) decimal not-a-number value.
func NaN() Decimal {
	return Decimal{kind: KindQuad, coeff: big.NewInt(0), special: formNaN}
}

// IsInf reports whether d is a signed infinity.
func (d Decimal) IsInf() bool { return d.special == formInfinite }

// IsNaN reports whether d is the not-a-number value.
func (d Decimal) IsNaN() bool { return d.special == formNaN }

// IsFinite reports whether d is neither infinite nor NaN.
func (d Decimal) IsFinite() bool { return d.special == formFinite }

// FromParts builds a Decimal from a sign, non-negative magnitude, and
// exponent, choosing Quad when the magnitude's digit count and exponent
// fit Quad's bounds and Number otherwise.
// coeff is copied; the caller's big.Int is never aliased.
func FromParts(neg bool, coeff *big.Int, exp int32) Decimal {
	mag := new(big.Int).Abs(coeff)
	d := Decimal{neg: neg, coeff: mag, exp: exp}
	if fitsQuad(mag, exp) {
		d.kind = KindQuad
	} else {
		d.kind = KindNumber
		d.owner = OwnerHeap
	}
	return d
}

// FromInt64 builds a Decimal with coefficient n (any sign folded into the
// magnitude + Neg) and exponent exp.
func FromInt64(n int64, exp int32) Decimal {
	neg := n < 0
	mag := big.NewInt(n)
	mag.Abs(mag)
	return FromParts(neg, mag, exp)
}

func fitsQuad(mag *big.Int, exp int32) bool {
	if exp < QuadEmin || exp > QuadEmax {
		return false
	}
	return DigitCount(mag) <= QuadMaxDigits
}

// DigitCount returns the number of decimal digits in |mag|'s value,
// treating zero as having one digit ("0"), the rule used for sizing a
// reparsed Number by significant-digit count.
func DigitCount(mag *big.Int) int {
	if mag.Sign() == 0 {
		return 1
	}
	// big.Int has no direct decimal-digit accessor; Text(10) is the
	// straightforward, allocation-light-enough way to get an exact count
	// for values in the size range this codec deals with (coefficients
	// up to a few hundred digits at most). A bit-length estimate is a
	// legitimate alternative but must be verified bitwise-exact against
	// this method, which this package uses as the source of truth instead.
	return len(new(big.Int).Abs(mag).Text(10))
}

// Kind reports which representation this Decimal currently holds.
func (d Decimal) Kind() Kind { return d.kind }

// Sign returns -1, 0, or +1 mirroring the magnitude's sign, ignoring the
// Neg flag (use IsNegative to observe signed zero).
func (d Decimal) Sign() int { return d.coeff.Sign() }

// IsNegative reports whether the decimal's sign bit is set, including for
// negative zero.
func (d Decimal) IsNegative() bool { return d.neg }

// IsZero reports whether the coefficient is zero, regardless of sign or
// exponent.
func (d Decimal) IsZero() bool { return d.coeff.Sign() == 0 }

// Coefficient returns a copy of the non-negative magnitude.
func (d Decimal) Coefficient() *big.Int { return new(big.Int).Set(d.coeff) }

// Exponent returns the decimal exponent (value = ±coefficient * 10^exp).
func (d Decimal) Exponent() int32 { return d.exp }

// Owner reports the ownership tag; meaningless for Quad values (always
// OwnerHeap by convention, since Quad is a plain value type with no
// arena reference).
func (d Decimal) Owner() Ownership {
	if d.kind == KindQuad {
		return OwnerHeap
	}
	return d.owner
}

// AsNumber returns an equal-valued Decimal guaranteed to be KindNumber,
// implementing the Quad→Number "upgrade". A value already KindNumber is
// returned unchanged (its ownership tag is preserved).
func (d Decimal) AsNumber() Decimal {
	if d.kind == KindNumber {
		return d
	}
	return Decimal{
		kind:  KindNumber,
		neg:   d.neg,
		coeff: new(big.Int).Set(d.coeff),
		exp:   d.exp,
		owner: OwnerHeap,
	}
}

// AsQuad attempts to narrow a Number into a Quad, succeeding only if the
// value fits Quad's bounds. It returns the original Decimal unchanged and
// ok=false otherwise; callers use this only when they've independently
// established the value originated within Quad range (e.g. after
// `reduce`), since narrowing is never implicit.
func (d Decimal) AsQuad() (Decimal, bool) {
	if d.kind == KindQuad {
		return d, true
	}
	if !fitsQuad(d.coeff, d.exp) {
		return d, false
	}
	return Decimal{kind: KindQuad, neg: d.neg, coeff: new(big.Int).Set(d.coeff), exp: d.exp}, true
}

// MarkBorrowed tags a Number as borrowed from an arena, used by
// BorrowFromArena (and so by ReadBinaryFromArena) when constructing a
// value against a reader-owned arena rather than the heap.
func (d Decimal) MarkBorrowed() Decimal {
	d.owner = OwnerArena
	if d.kind == KindQuad {
		// Quad values carry no arena reference; borrowing is a no-op.
		return d
	}
	return d
}

// BorrowFromArena builds a Decimal the same way FromParts does, but when
// the value doesn't fit Quad it also charges the coefficient's backing
// bytes against a under owner (e.g. the reader currently decoding a
// run of values) and tags the result OwnerArena. The caller releases
// every value charged to owner at once via a.FreeAll(owner); any value
// it still needs past that point must go through Claim first.
func BorrowFromArena(a *arena.Arena, owner arena.Owner, neg bool, coeff *big.Int, exp int32) Decimal {
	d := FromParts(neg, coeff, exp)
	if d.kind != KindNumber || a == nil {
		return d
	}
	mag := d.coeff.Bytes()
	buf := a.AllocFor(owner, len(mag))
	copy(buf, mag)
	return d.MarkBorrowed()
}

// Claim deep-copies a borrowed Number into a heap-owned one so it can
// outlive the arena it was read against. Calling Claim on an already
// heap-owned value or on a Quad is a cheap no-op.
func (d Decimal) Claim() Decimal {
	if d.kind == KindQuad || d.owner == OwnerHeap {
		return d
	}
	return Decimal{
		kind:  KindNumber,
		neg:   d.neg,
		coeff: new(big.Int).Set(d.coeff),
		exp:   d.exp,
		owner: OwnerHeap,
	}
}

// equalValue reports whether two decimals represent the same numeric
// value and sign (coefficient normalized for trailing zeros against the
// exponent difference), used by the text/binary round-trip tests. Unlike
// Equals, which is Compare(a, b) == 0 alone, it also requires equal signs.
func equalValue(a, b Decimal) bool {
	return Compare(a, b) == 0 && a.neg == b.neg
}

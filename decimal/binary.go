package decimal

import (
	"math"
	"math/big"

	"github.com/arloliu/ionum/internal/arena"
	"github.com/arloliu/ionum/internal/cursor"
	"github.com/arloliu/ionum/ionerr"
	"github.com/arloliu/ionum/varint"
)

// WriteBinary appends d's wire encoding to dst: a VarInt exponent
// followed by the Int-formatted coefficient. The zero-length
// special case (an empty body meaning coefficient 0, exponent 0,
// positive sign) is emitted only for that exact canonical zero; any
// other zero coefficient still emits its (possibly nonzero) exponent.
// WriteBinary has no error result: it panics when d is NaN or infinite.
func WriteBinary(dst []byte, d Decimal) []byte {
	if d.IsNaN() || d.IsInf() {
		panic("decimal: cannot binary-encode a non-finite value")
	}
	if d.IsZero() && !d.neg && d.exp == 0 {
		return dst
	}
	dst = varint.WriteVarInt(dst, int64(d.exp))
	if d.IsZero() {
		if d.neg {
			dst = varint.WriteInt(dst, big.NewInt(0), true, 1)
		}
		return dst
	}
	length := varint.LenInt(d.coeff)
	return varint.WriteInt(dst, d.coeff, d.neg, length)
}

// LenBinary returns the encoded length of d in octets.
func LenBinary(d Decimal) int {
	if d.IsZero() && !d.neg && d.exp == 0 {
		return 0
	}
	n := varint.LenVarInt(int64(d.exp))
	if d.IsZero() {
		if d.neg {
			return n + 1
		}
		return n
	}
	return n + varint.LenInt(d.coeff)
}

// ReadBinary decodes a decimal body of the given length: a VarInt
// exponent consuming some prefix, then the remaining bytes as an
// Int-formatted coefficient (zero-length coefficient means 0). A body of
// length 0 decodes to positive zero with exponent 0. Every coefficient,
// whatever its length, is decoded the same way and FromParts classifies
// the result as Quad or Number.
func ReadBinary(src cursor.Source, length int) (Decimal, error) {
	return ReadBinaryFromArena(src, length, nil, nil)
}

// ReadBinaryFromArena decodes a decimal body exactly like ReadBinary, but
// a Number-sized result is built via BorrowFromArena instead of
// FromParts, charging its coefficient bytes against a under owner (the
// reader currently decoding a run of values). A nil arena behaves
// exactly like ReadBinary.
func ReadBinaryFromArena(src cursor.Source, length int, a *arena.Arena, owner arena.Owner) (Decimal, error) {
	start := src.Position()
	if length == 0 {
		return Zero(), nil
	}

	exp, _, expLen, err := readVarIntLen(src, length)
	if err != nil {
		return Decimal{}, err
	}
	if exp < math.MinInt32 || exp > math.MaxInt32 {
		return Decimal{}, ionerr.Overflowf("decimal exponent %d out of int32 range", exp)
	}
	remaining := length - expLen

	if remaining == 0 {
		return FromParts(false, big.NewInt(0), int32(exp)), nil
	}

	// Short and long coefficients decode the same way; FromParts'
	// digit-count check decides between Quad and Number.
	mag, neg, err := varint.ReadInt(src, remaining)
	if err != nil {
		return Decimal{}, ionerr.At(ionerr.UnexpectedEof, start, "decimal coefficient")
	}
	return BorrowFromArena(a, owner, neg, mag, int32(exp)), nil
}

// readVarIntLen reads a VarInt and reports how many octets it consumed,
// bounding the read to at most budget octets since the decimal body's
// exponent field shares its length budget with the coefficient that
// follows it.
func readVarIntLen(src cursor.Source, budget int) (value int64, negZero bool, consumed int, err error) {
	lr := cursor.Limit(src, budget)
	v, nz, rerr := varint.ReadVarInt(lr)
	if rerr != nil {
		return 0, false, 0, rerr
	}
	return v, nz, lr.Consumed(budget), nil
}

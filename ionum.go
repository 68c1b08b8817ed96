// Package ionum implements the numeric and temporal codecs of the Ion
// binary encoding: variable-width integers, IEEE-754 binary floats,
// arbitrary-precision decimals, and precision-aware timestamps.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the
// varint, binfloat, decimal, and timestamp packages, covering the most
// common one-shot encode/decode calls. For arena-owned decimals,
// streaming cursors, or fine-grained timestamp construction, use those
// packages directly.
//
// # Basic Usage
//
// Encoding and decoding a run of values sharing one binary buffer:
//
//	import "github.com/arloliu/ionum"
//
//	buf := ionum.AppendVarUint(nil, 42)
//	buf = ionum.AppendVarInt(buf, -7)
//	buf = ionum.AppendFloat(buf, 3.14159)
//
//	d, err := ionum.ParseDecimal("1.9999999999999999999999999999")
//	buf = ionum.AppendDecimal(buf, d)
//
//	ts, _, err := ionum.ParseTimestamp("2023-06-15T10:30:00.123-04:00")
//	buf = ionum.AppendTimestamp(buf, ts)
package ionum

import (
	"github.com/arloliu/ionum/binfloat"
	"github.com/arloliu/ionum/decimal"
	"github.com/arloliu/ionum/internal/cursor"
	"github.com/arloliu/ionum/timestamp"
	"github.com/arloliu/ionum/varint"
)

// AppendVarUint appends v's VarUInt encoding to dst and returns the
// extended slice.
func AppendVarUint(dst []byte, v uint64) []byte {
	return varint.WriteVarUint(dst, v)
}

// AppendVarInt appends v's VarInt encoding to dst and returns the
// extended slice.
func AppendVarInt(dst []byte, v int64) []byte {
	return varint.WriteVarInt(dst, v)
}

// AppendFloat appends v's IEEE-754 Ion float encoding to dst: no bytes
// for positive zero, 8 bytes for every other value.
func AppendFloat(dst []byte, v float64) []byte {
	return binfloat.WriteFloat(dst, v)
}

// ParseDecimal parses an Ion decimal text value, e.g. "1.23", "-0d5",
// "0.", or "nan".
func ParseDecimal(text string) (decimal.Decimal, error) {
	return decimal.Parse(text)
}

// FormatDecimal renders d in Ion decimal text form.
func FormatDecimal(d decimal.Decimal) string {
	return decimal.Format(d)
}

// AppendDecimal appends d's binary encoding to dst and returns the
// extended slice.
func AppendDecimal(dst []byte, d decimal.Decimal) []byte {
	return decimal.WriteBinary(dst, d)
}

// ParseTimestamp parses an Ion timestamp text value, e.g. "2023T",
// "2023-06-15T10:30:00.123-04:00". The returned string is the
// unconsumed remainder, if any.
func ParseTimestamp(text string) (timestamp.Timestamp, string, error) {
	return timestamp.Parse(text)
}

// FormatTimestamp renders t in Ion timestamp text form, with precision
// and fractional digits matching how t was constructed.
func FormatTimestamp(t timestamp.Timestamp) string {
	return timestamp.Format(t)
}

// AppendTimestamp appends t's binary encoding to dst and returns the
// extended slice.
func AppendTimestamp(dst []byte, t timestamp.Timestamp) []byte {
	return timestamp.WriteBinary(dst, t)
}

// ReadVarUint decodes a VarUInt from the front of src, returning the
// value and the number of bytes consumed.
func ReadVarUint(src []byte) (uint64, int, error) {
	c := cursor.NewBytes(src)
	v, err := varint.ReadVarUint(c)
	if err != nil {
		return 0, int(c.Position()), err
	}
	return v, int(c.Position()), nil
}

// ReadVarInt decodes a VarInt from the front of src, returning the
// value and the number of bytes consumed. negZero reports whether the
// value was the Ion-specific negative-zero encoding.
func ReadVarInt(src []byte) (v int64, negZero bool, consumed int, err error) {
	c := cursor.NewBytes(src)
	v, negZero, err = varint.ReadVarInt(c)
	return v, negZero, int(c.Position()), err
}

// ReadFloat decodes a length-byte Ion float body from src.
func ReadFloat(src []byte, length int) (float64, error) {
	return binfloat.ReadFloat(cursor.NewBytes(src), length)
}

// ReadDecimal decodes a length-byte Ion decimal body from src.
func ReadDecimal(src []byte, length int) (decimal.Decimal, error) {
	return decimal.ReadBinary(cursor.NewBytes(src), length)
}

// ReadTimestamp decodes a length-byte Ion timestamp body from src.
func ReadTimestamp(src []byte, length int) (timestamp.Timestamp, error) {
	return timestamp.ReadBinary(cursor.NewBytes(src), length)
}

package regression

import (
	"math/big"

	"github.com/arloliu/ionum/decimal"
	"github.com/arloliu/ionum/timestamp"
	"github.com/arloliu/ionum/varint"
)

// MeasureVarUint benchmarks varint.WriteVarUint across bit-lengths 1..63,
// encoding a representative value at each length and recording its
// encoded size against that bit-length.
func MeasureVarUint() *ShapeHistogram {
	h := NewShapeHistogram()
	for bits := 1; bits < 64; bits++ {
		v := uint64(1)<<uint(bits) - 1 // all-ones value at this bit-length
		enc := varint.WriteVarUint(nil, v)
		h.Record(shapeKeyForInt(bits), float64(bits), len(enc))
	}

	return h
}

// MeasureVarInt mirrors MeasureVarUint for the signed encoding, whose
// extra sign bit can push a value's encoded size a group earlier than
// the unsigned form for the same magnitude bit-length.
func MeasureVarInt() *ShapeHistogram {
	h := NewShapeHistogram()
	for bits := 1; bits < 63; bits++ {
		v := int64(1)<<uint(bits) - 1
		enc := varint.WriteVarInt(nil, v)
		h.Record(shapeKeyForInt(bits), float64(bits), len(enc))
	}

	return h
}

// MeasureDecimalPrecision benchmarks decimal.WriteBinary across
// coefficient digit counts 1..maxDigits, encoding the all-nines
// coefficient at each digit count (forcing Number once the count exceeds
// decimal.QuadMaxDigits) and recording its encoded size against the
// digit count.
func MeasureDecimalPrecision(maxDigits int) *ShapeHistogram {
	h := NewShapeHistogram()

	nines := new(big.Int)
	digit := big.NewInt(9)
	for digits := 1; digits <= maxDigits; digits++ {
		nines.Mul(nines, big.NewInt(10))
		nines.Add(nines, digit)

		d := decimal.FromParts(false, nines, 0)
		enc := decimal.WriteBinary(nil, d)
		h.Record(shapeKeyForInt(digits), float64(digits), len(enc))
	}

	return h
}

// MeasureTimestampPrecision benchmarks timestamp.WriteBinary across every
// precision level a Timestamp can reach, recording each level's encoded
// size against the number of fields carried (1 for year-only through 6
// for a fractional-second timestamp; none of them carries an offset).
func MeasureTimestampPrecision() (*ShapeHistogram, error) {
	h := NewShapeHistogram()

	levels, err := timestampsByPrecision()
	if err != nil {
		return nil, err
	}

	for i, ts := range levels {
		level := i + 1
		enc := timestamp.WriteBinary(nil, ts)
		h.Record(shapeKeyForInt(level), float64(level), len(enc))
	}

	return h, nil
}

func timestampsByPrecision() ([]timestamp.Timestamp, error) {
	ts, err := timestamp.ForYear(2023)
	if err != nil {
		return nil, err
	}
	out := []timestamp.Timestamp{ts}

	ts, err = timestamp.ForMonth(ts, 6)
	if err != nil {
		return nil, err
	}
	out = append(out, ts)

	ts, err = timestamp.ForDay(ts, 15)
	if err != nil {
		return nil, err
	}
	out = append(out, ts)

	ts, err = timestamp.ForMinute(ts, 10, 30)
	if err != nil {
		return nil, err
	}
	out = append(out, ts)

	ts, err = timestamp.ForSecond(ts, 45)
	if err != nil {
		return nil, err
	}
	out = append(out, ts)

	frac, err := decimal.Parse("0.123456")
	if err != nil {
		return nil, err
	}
	ts, err = timestamp.ForFraction(ts, frac)
	if err != nil {
		return nil, err
	}
	out = append(out, ts)

	return out, nil
}

package compress

import "fmt"

// Type identifies a compression algorithm wrapping the codec's binary
// output (a sequence of WriteBinary-encoded decimals/timestamps/varints),
// the kind of container layer a symbol table or writer would place on
// top of this core.
type Type uint8

const (
	TypeNone Type = iota
	TypeZstd
	TypeLZ4
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeZstd:
		return "zstd"
	case TypeLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// Compressor compresses a byte sequence, typically the concatenated
// binary encoding of a run of values.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor's output.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// Stats summarizes one compression operation, useful when deciding
// whether wrapping a given run of encoded values in a container is worth
// the CPU cost.
type Stats struct {
	Algorithm           Type
	OriginalSize        int64
	CompressedSize      int64
	CompressionTimeNs   int64
	DecompressionTimeNs int64
}

// Ratio is CompressedSize / OriginalSize; values below 1.0 indicate the
// container shrank.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings is the percentage reduction in size, 0-100.
func (s Stats) SpaceSavings() float64 {
	return (1.0 - s.Ratio()) * 100.0
}

var builtinCodecs = map[Type]func() Codec{
	TypeNone: func() Codec { return NewNoOpCompressor() },
	TypeZstd: func() Codec { return NewZstdCompressor() },
	TypeLZ4:  func() Codec { return NewLZ4Compressor() },
}

// NewCodec builds a Codec for the named algorithm.
func NewCodec(t Type) (Codec, error) {
	if ctor, ok := builtinCodecs[t]; ok {
		return ctor(), nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", t)
}

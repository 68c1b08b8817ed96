// Package compress provides optional compression codecs for wrapping the
// codec core's binary output — the concatenated WriteBinary encoding of
// a run of decimals, timestamps, or varints — the way a writer sitting
// on top of this core would wrap a symbol table or a large container
// before putting it on the wire.
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Algorithms
//
//   - None (TypeNone): passthrough, for data that's already small or
//     incompressible.
//   - Zstandard (TypeZstd, klauspost/compress): best compression ratio,
//     moderate speed — good for cold storage of encoded runs.
//   - LZ4 (TypeLZ4, pierrec/lz4): fast decompression, moderate ratio —
//     good when read latency dominates.
//
// NewCodec builds a Codec from a Type:
//
//	codec, err := compress.NewCodec(compress.TypeZstd)
//	compressed, err := codec.Compress(encodedRun)
//	original, err := codec.Decompress(compressed)
//
// # Thread safety
//
// All codec implementations are safe for concurrent use.
package compress

package regression

import "github.com/arloliu/ionum/internal/hash"

// Sample is one (shape, bytes-per-value) observation fed to performRegression.
type Sample struct {
	Shape         float64
	BytesPerValue float64
}

// ShapeHistogram accumulates encoded-size observations keyed by a value
// shape (a decimal's digit count, a timestamp's precision level, a
// varint's bit-length, ...), bucketing repeated observations of the same
// shape into a running average instead of keeping every sample. Buckets
// are keyed by the xxHash64 of the shape rather than a string so the
// benchmark harness can run over millions of values without allocating a
// map key per observation.
type ShapeHistogram struct {
	buckets map[uint64]*shapeBucket
}

type shapeBucket struct {
	shape      float64
	totalBytes int64
	count      int64
}

// NewShapeHistogram returns an empty histogram.
func NewShapeHistogram() *ShapeHistogram {
	return &ShapeHistogram{buckets: make(map[uint64]*shapeBucket)}
}

// Record folds one observation into the bucket for shape. shapeKey is the
// caller's hash.PointerID/hash.ID of shape's identity (callers share a key
// derivation so repeated shapes collapse into one bucket regardless of
// float64 rounding).
func (h *ShapeHistogram) Record(shapeKey uint64, shape float64, encodedBytes int) {
	b, ok := h.buckets[shapeKey]
	if !ok {
		b = &shapeBucket{shape: shape}
		h.buckets[shapeKey] = b
	}
	b.totalBytes += int64(encodedBytes)
	b.count++
}

// Samples returns one Sample per distinct shape, each carrying the mean
// bytes-per-value observed for that shape. Order is unspecified.
func (h *ShapeHistogram) Samples() []Sample {
	out := make([]Sample, 0, len(h.buckets))
	for _, b := range h.buckets {
		if b.count == 0 {
			continue
		}
		out = append(out, Sample{
			Shape:         b.shape,
			BytesPerValue: float64(b.totalBytes) / float64(b.count),
		})
	}

	return out
}

// shapeKeyForInt derives a histogram bucket key for an integer-valued
// shape (a digit count, a precision level, a bit-length) via the same
// xxHash64 primitive internal/arena uses to key owners.
func shapeKeyForInt(n int) uint64 {
	return hash.PointerID(uintptr(n))
}

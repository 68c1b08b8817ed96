package regression

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShapeHistogramRecordAveragesSameShape(t *testing.T) {
	require := require.New(t)

	h := NewShapeHistogram()
	h.Record(shapeKeyForInt(4), 4, 2)
	h.Record(shapeKeyForInt(4), 4, 4)

	samples := h.Samples()
	require.Len(samples, 1)
	require.Equal(4.0, samples[0].Shape)
	require.Equal(3.0, samples[0].BytesPerValue)
}

func TestShapeHistogramSeparatesDistinctShapes(t *testing.T) {
	require := require.New(t)

	h := NewShapeHistogram()
	h.Record(shapeKeyForInt(1), 1, 1)
	h.Record(shapeKeyForInt(2), 2, 2)

	require.Len(h.Samples(), 2)
}

func TestShapeHistogramEmpty(t *testing.T) {
	require := require.New(t)

	h := NewShapeHistogram()
	require.Empty(h.Samples())
}

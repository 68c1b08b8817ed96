package regression

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeasureVarUintProducesIncreasingSizes(t *testing.T) {
	require := require.New(t)

	h := MeasureVarUint()
	samples := h.Samples()
	require.NotEmpty(samples)

	for _, s := range samples {
		require.Greater(s.BytesPerValue, 0.0)
	}
}

func TestMeasureVarIntProducesSamples(t *testing.T) {
	require := require.New(t)

	h := MeasureVarInt()
	require.NotEmpty(h.Samples())
}

func TestMeasureDecimalPrecisionGrowsWithDigits(t *testing.T) {
	require := require.New(t)

	h := MeasureDecimalPrecision(40)
	samples := h.Samples()
	require.Len(samples, 40)
}

func TestMeasureTimestampPrecisionSixLevels(t *testing.T) {
	require := require.New(t)

	h, err := MeasureTimestampPrecision()
	require.NoError(err)
	require.Len(h.Samples(), 6)
}

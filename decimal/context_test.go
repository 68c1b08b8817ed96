package decimal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewContextAppliesOptions(t *testing.T) {
	require := require.New(t)

	ctx, err := NewContext(WithPrecision(16), WithRoundingMode(RoundHalfUp))
	require.NoError(err)
	require.Equal(uint32(16), ctx.Precision)
	require.Equal(RoundHalfUp, ctx.Rounding)
}

func TestNewContextDefaultsWithNoOptions(t *testing.T) {
	require := require.New(t)

	ctx, err := NewContext()
	require.NoError(err)
	require.Equal(DefaultContext().Precision, ctx.Precision)
	require.Equal(RoundHalfEven, ctx.Rounding)
}

package regression

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func flatResult(value float64) *Result {
	return &Result{
		BestFit: &Model{
			Type:      ModelTypePolynomial,
			Estimator: NewPolynomialEstimator(value, 0, 0),
		},
	}
}

func TestDetectFlagsDriftBeyondTolerance(t *testing.T) {
	require := require.New(t)

	baseline := flatResult(10)
	current := flatResult(11.5) // 15% higher

	drifts, err := Detect(baseline, current, []float64{1, 2, 3}, 0.05)
	require.NoError(err)
	require.Len(drifts, 3)
	require.InDelta(0.15, drifts[0].DeltaFrac, 1e-9)
}

func TestDetectIgnoresDriftWithinTolerance(t *testing.T) {
	require := require.New(t)

	baseline := flatResult(10)
	current := flatResult(10.2)

	drifts, err := Detect(baseline, current, []float64{1, 2}, 0.05)
	require.NoError(err)
	require.Empty(drifts)
}

func TestDetectRejectsNilBaseline(t *testing.T) {
	require := require.New(t)

	_, err := Detect(nil, flatResult(1), []float64{1}, 0.05)
	require.Error(err)
}

func TestDetectRejectsNegativeTolerance(t *testing.T) {
	require := require.New(t)

	_, err := Detect(flatResult(1), flatResult(1), []float64{1}, -0.1)
	require.Error(err)
}

package regression

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPerformRegressionLinearData(t *testing.T) {
	require := require.New(t)

	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}

	result, err := performRegression(x, y)
	require.NoError(err)
	require.NotNil(result.BestFit)
	require.Len(result.AllModels, 5)
	require.Greater(result.BestFit.RSquared, 0.99)
}

func TestPerformRegressionRejectsMismatchedLengths(t *testing.T) {
	require := require.New(t)

	_, err := performRegression([]float64{1, 2}, []float64{1})
	require.Error(err)
}

func TestPerformRegressionRejectsTooFewSamples(t *testing.T) {
	require := require.New(t)

	_, err := performRegression([]float64{1}, []float64{1})
	require.Error(err)
}

func TestFitPolynomialFallsBackToLinearUnderThreePoints(t *testing.T) {
	require := require.New(t)

	model := fitPolynomial([]float64{1, 2}, []float64{3, 5})
	require.Equal(ModelTypePolynomial, model.Type)
	require.Equal(0.0, model.Coefficients[2])
}

func TestSortModelsByFitOrdersDescending(t *testing.T) {
	require := require.New(t)

	models := []*Model{
		{RSquared: 0.2},
		{RSquared: 0.9},
		{RSquared: 0.5},
	}
	sortModelsByFit(models)

	require.Equal(0.9, models[0].RSquared)
	require.Equal(0.5, models[1].RSquared)
	require.Equal(0.2, models[2].RSquared)
}

func TestCalculateRSquaredPerfectFit(t *testing.T) {
	require := require.New(t)

	observed := []float64{1, 2, 3}
	require.Equal(1.0, calculateRSquared(observed, observed))
}

func TestCalculateRMSEZeroForExactMatch(t *testing.T) {
	require := require.New(t)

	observed := []float64{1, 2, 3}
	require.Equal(0.0, calculateRMSE(observed, observed))
}

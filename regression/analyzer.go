package regression

import "errors"

// Analyze fits every candidate model to samples and returns the best fit
// by R², alongside every candidate for comparison.
func Analyze(samples []Sample) (*Result, error) {
	if len(samples) == 0 {
		return nil, errors.New("no samples provided")
	}

	x := make([]float64, len(samples))
	y := make([]float64, len(samples))
	for i, s := range samples {
		x[i] = s.Shape
		y[i] = s.BytesPerValue
	}

	return performRegression(x, y)
}

// AnalyzeHistogram is a convenience wrapper around Analyze for a
// ShapeHistogram's accumulated samples.
func AnalyzeHistogram(h *ShapeHistogram) (*Result, error) {
	return Analyze(h.Samples())
}

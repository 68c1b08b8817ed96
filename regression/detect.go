package regression

import (
	"fmt"
	"math"
)

// Drift reports a single shape whose current encoded size has moved
// beyond the allowed tolerance relative to the baseline curve.
type Drift struct {
	Shape     float64
	Baseline  float64
	Current   float64
	DeltaFrac float64 // (Current - Baseline) / Baseline
}

// Detect compares current's best-fit curve against baseline's at every
// shape present in samples, reporting a Drift for each shape whose
// relative change exceeds tolerance (e.g. 0.05 for 5%). Detect is the
// regression check: run it with baseline pinned to a known-good commit's
// Result and current from the working tree to catch an encoding change
// that silently grew the wire size.
func Detect(baseline, current *Result, samples []float64, tolerance float64) ([]Drift, error) {
	if baseline == nil || baseline.BestFit == nil {
		return nil, fmt.Errorf("baseline result has no best-fit model")
	}
	if current == nil || current.BestFit == nil {
		return nil, fmt.Errorf("current result has no best-fit model")
	}
	if tolerance < 0 {
		return nil, fmt.Errorf("tolerance must be non-negative, got %f", tolerance)
	}

	var drifts []Drift
	for _, shape := range samples {
		base := baseline.BestFit.Estimator.Estimate(shape)
		cur := current.BestFit.Estimator.Estimate(shape)
		if base == 0 || math.IsInf(base, 0) || math.IsInf(cur, 0) {
			continue
		}

		delta := (cur - base) / base
		if math.Abs(delta) > tolerance {
			drifts = append(drifts, Drift{Shape: shape, Baseline: base, Current: cur, DeltaFrac: delta})
		}
	}

	return drifts, nil
}

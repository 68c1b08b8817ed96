// Package regression fits curves to the codec's measured encoded size and
// flags when a later measurement drifts away from a recorded baseline.
//
// # Measuring
//
// The bench.go harness exercises one codec at a time across its value
// shapes — bit-length for varint, coefficient digit count for decimal,
// precision level for timestamp — and records each shape's encoded size
// into a ShapeHistogram:
//
//	h := regression.MeasureVarUint()
//	samples := h.Samples()
//
// # Fitting
//
// Analyze fits five candidate curves (hyperbolic, logarithmic, power,
// exponential, quadratic polynomial) to the samples by least squares and
// ranks them by R², the fraction of variance the curve explains:
//
//	result, err := regression.Analyze(samples)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.BestFit) // e.g. Model{Type: power, R²: 0.9998, ...}
//
// # Detecting drift
//
// Detect compares a pinned baseline Result's best-fit curve against a
// fresh Result at a set of shapes, reporting every shape whose relative
// size moved beyond a tolerance:
//
//	drifts, err := regression.Detect(baseline, current, []float64{8, 16, 32, 48}, 0.05)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, d := range drifts {
//	    fmt.Printf("shape %.0f: %.2f -> %.2f (%.1f%%)\n", d.Shape, d.Baseline, d.Current, d.DeltaFrac*100)
//	}
package regression

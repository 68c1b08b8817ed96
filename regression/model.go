package regression

import "fmt"

// Model is one fitted curve: its type, coefficients, goodness-of-fit
// statistics, a human-readable formula, and the concrete Estimator.
type Model struct {
	Type         ModelType
	Coefficients []float64
	RSquared     float64 // coefficient of determination, 0-1, higher is better
	RMSE         float64 // root mean square error, lower is better
	Formula      string
	Estimator    Estimator
}

func (m *Model) String() string {
	return fmt.Sprintf("Model{Type: %s, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.Type, m.RSquared, m.RMSE, m.Formula)
}

// Result is the outcome of fitting every candidate model to one dataset.
type Result struct {
	BestFit   *Model  // highest R² among AllModels
	AllModels []*Model // ranked by R², best first
}

func (r *Result) String() string {
	if r.BestFit == nil {
		return "Result{BestFit: nil}"
	}

	return fmt.Sprintf("Result{BestFit: %s, TotalModels: %d}", r.BestFit, len(r.AllModels))
}

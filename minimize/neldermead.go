package minimize

import (
	"gonum.org/v1/gonum/optimize"
)

// number of major iterations without improvement after which the simplex
// search is considered converged
const stallIterations = 10

// NelderMead adapts the gonum simplex minimizer to the Minimizer interface.
// Settings.Step is the initial simplex size and Settings.MaxIterations the
// major iteration budget.
type NelderMead struct{}

func (NelderMead) Minimize(f Function, x0 []float64, settings Settings) Result {
	dim := f.Dim()
	full := append([]float64(nil), x0...)

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			copy(full[:dim], x)
			return eval(f, full)
		},
	}
	optSettings := &optimize.Settings{
		MajorIterations: settings.MaxIterations,
		Converger: &optimize.FunctionConverge{
			Absolute:   settings.EndTolerance,
			Relative:   settings.EndTolerance,
			Iterations: stallIterations,
		},
	}
	method := &optimize.NelderMead{SimplexSize: settings.Step}

	start := append([]float64(nil), x0[:dim]...)
	res := Result{X: append([]float64(nil), x0...), F: eval(f, x0)}

	// limits reached are reported through Status, so any returned location is usable
	out, err := optimize.Minimize(problem, start, optSettings, method)
	if out == nil {
		return res
	}
	if out.F <= res.F {
		copy(res.X[:dim], out.X)
		res.F = out.F
	}
	res.Iter = out.MajorIterations
	res.Converged = err == nil && out.Status == optimize.FunctionConvergence
	return res
}

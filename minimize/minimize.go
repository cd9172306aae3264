// Package minimize holds derivative-free local minimizers working on a
// Function of arbitrary dimension.
package minimize

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
)

// Function is an objective that can be minimized.
type Function interface {
	// Dim is the number of active coordinates of the search space
	Dim() int

	// Val evaluates the objective at x, len(x) >= Dim()
	Val(x []float64) float64
}

// The settings shared by all minimizers
type Settings struct {
	// Initial step along each coordinate direction
	Step float64 `yaml:"step"`

	// Convergence tolerance used for the first iterations
	StartTolerance float64 `yaml:"startTolerance"`

	// Convergence tolerance at which the search stops
	EndTolerance float64 `yaml:"endTolerance"`

	// Relative tolerance of each line search
	LineTolerance float64 `yaml:"lineTolerance"`

	// Maximum number of iterations
	MaxIterations int `yaml:"maxIterations"`

	// Largest move of a single line search in multiples of Step,
	// unbounded when zero
	StepGrowth float64 `yaml:"stepGrowth"`
}

// The outcome of a minimization. X is the best point found within the
// iteration budget, whether or not the search converged.
type Result struct {
	X          []float64
	F          float64
	Iter       int
	FinalDelta float64
	Converged  bool
}

// Minimizer searches for a local minimum of f starting from x0. Only the
// first f.Dim() coordinates of x0 are searched, the rest are copied to the
// result untouched.
type Minimizer interface {
	Minimize(f Function, x0 []float64, settings Settings) Result
}

const (
	MethodPowell     = "powell"
	MethodNelderMead = "nelder-mead"
)

// Methods lists the accepted minimizer names
var Methods = []string{MethodPowell, MethodNelderMead}

// New returns the minimizer registered under name, matched case-insensitively
func New(name string) (Minimizer, error) {
	switch normalize(name) {
	case MethodPowell, "":
		return Powell{}, nil
	case MethodNelderMead:
		return NelderMead{}, nil
	}
	return nil, errors.Errorf("unknown minimizer '%s', must be one of: %s", name, strings.Join(Methods, ", "))
}

// IsMethod reports whether name refers to a known minimizer
func IsMethod(name string) bool {
	_, err := New(name)
	return err == nil
}

func normalize(name string) string {
	return strings.TrimSpace(cases.Fold().String(name))
}

// eval wraps f so that a NaN never reaches the search logic
func eval(f Function, x []float64) float64 {
	v := f.Val(x)
	if math.IsNaN(v) {
		return math.Inf(1)
	}
	return v
}

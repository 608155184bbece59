package optim

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
)

// LBFGS minimizes a smooth objective with gonum's limited-memory BFGS.
// The zero value is not usable; start from NewLBFGS.
type LBFGS struct {
	MaxIterations     int
	GradientThreshold float64
	Store             int
}

// NewLBFGS returns the solver settings used when a model is fitted with
// default hyperparameters.
func NewLBFGS() *LBFGS {
	return &LBFGS{MaxIterations: 1000, GradientThreshold: 1e-6, Store: 15}
}

// Objective returns the loss at x.
type Objective func(x []float64) float64

// Gradient writes the gradient at x into grad.
type Gradient func(grad, x []float64)

// Result is the final location of a run.
type Result struct {
	X          []float64
	F          float64
	Iterations int
	Status     string
	// Err is a non-fatal solver complaint, typically a line search that could
	// not improve on an already converged point.
	Err error
}

var ErrDiverged = errors.New("optim: solver produced non-finite parameters")

// Minimize runs the solver from x0. x0 is not modified.
func (o *LBFGS) Minimize(f Objective, g Gradient, x0 []float64) (Result, error) {
	problem := optimize.Problem{
		Func: f,
		Grad: g,
	}
	settings := &optimize.Settings{
		MajorIterations:   o.MaxIterations,
		GradientThreshold: o.GradientThreshold,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-10,
			Relative:   1e-10,
			Iterations: 20,
		},
	}
	init := append([]float64(nil), x0...)
	res, err := optimize.Minimize(problem, init, settings, &optimize.LBFGS{Store: o.Store})
	if res == nil {
		return Result{}, err
	}
	if !finite(res.X) || math.IsNaN(res.F) {
		return Result{}, ErrDiverged
	}
	return Result{
		X:          res.X,
		F:          res.F,
		Iterations: res.MajorIterations,
		Status:     res.Status.String(),
		Err:        err,
	}, nil
}

func finite(x []float64) bool {
	if len(x) == 0 {
		return true
	}
	return !floats.HasNaN(x) && !math.IsInf(floats.Max(x), 1) && !math.IsInf(floats.Min(x), -1)
}

package stats

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var ErrNotFitted = errors.New("stats: scaler used before Fit")

// StandardScaler standardizes each column to zero mean and unit variance
// using the population standard deviation of the data it was fitted on.
type StandardScaler struct {
	Mean []float64
	Std  []float64
	fit  bool
}

func NewStandardScaler() *StandardScaler { return &StandardScaler{} }

func (s *StandardScaler) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 {
		return errors.New("stats: cannot fit scaler on zero rows")
	}
	s.Mean = make([]float64, c)
	s.Std = make([]float64, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, X)
		s.Mean[j], s.Std[j] = stat.PopMeanStdDev(col, nil)
		// Constant columns map to zero instead of NaN.
		if s.Std[j] == 0 {
			s.Std[j] = 1
		}
	}
	s.fit = true
	return nil
}

func (s *StandardScaler) Transform(X mat.Matrix) (*mat.Dense, error) {
	if !s.fit {
		return nil, ErrNotFitted
	}
	r, c := X.Dims()
	if c != len(s.Mean) {
		return nil, fmt.Errorf("stats: scaler fitted on %d columns, got %d", len(s.Mean), c)
	}
	if r == 0 {
		return &mat.Dense{}, nil
	}
	out := mat.NewDense(r, c, nil)
	out.Apply(func(i, j int, v float64) float64 {
		return (v - s.Mean[j]) / s.Std[j]
	}, X)
	return out, nil
}

func (s *StandardScaler) FitTransform(X mat.Matrix) (*mat.Dense, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

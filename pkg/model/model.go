package model

import (
	"gonum.org/v1/gonum/mat"
)

// Classifier is a supervised model over numeric class codes.
type Classifier interface {
	Fit(X mat.Matrix, y []float64) error
	Predict(X mat.Matrix) ([]float64, error)
}

// ProbabilisticClassifier also exposes per-class probabilities, one column
// per class in the order of Classes.
type ProbabilisticClassifier interface {
	Classifier
	PredictProba(X mat.Matrix) (*mat.Dense, error)
	Classes() []float64
}

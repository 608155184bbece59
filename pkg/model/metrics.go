package model

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func checkPair(yTrue, yPred []float64) error {
	if len(yTrue) == 0 {
		return ErrNoData
	}
	if len(yTrue) != len(yPred) {
		return &DimensionError{What: "predictions", Want: len(yTrue), Got: len(yPred)}
	}
	return nil
}

// MSE is the mean squared difference between true and predicted values.
// Class codes are treated as plain numbers.
func MSE(yTrue, yPred []float64) (float64, error) {
	if err := checkPair(yTrue, yPred); err != nil {
		return 0, err
	}
	diff := make([]float64, len(yTrue))
	floats.SubTo(diff, yTrue, yPred)
	return floats.Dot(diff, diff) / float64(len(yTrue)), nil
}

func RMSE(yTrue, yPred []float64) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	return math.Sqrt(mse), err
}

// Accuracy is the fraction of predictions exactly equal to the truth.
func Accuracy(yTrue, yPred []float64) (float64, error) {
	if err := checkPair(yTrue, yPred); err != nil {
		return 0, err
	}
	c := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			c++
		}
	}
	return float64(c) / float64(len(yTrue)), nil
}

// ConfusionMatrix counts (true, predicted) pairs. Rows and columns follow
// classes, which must be sorted; when nil the sorted union of both inputs is used and
// returned. Pairs outside classes are ignored.
func ConfusionMatrix(yTrue, yPred, classes []float64) (*mat.Dense, []float64, error) {
	if err := checkPair(yTrue, yPred); err != nil {
		return nil, nil, err
	}
	if classes == nil {
		classes = append(slices.Clone(yTrue), yPred...)
		slices.Sort(classes)
		classes = slices.Compact(classes)
	}
	if len(classes) == 0 {
		return nil, nil, ErrNoData
	}
	k := len(classes)
	cm := mat.NewDense(k, k, nil)
	for i := range yTrue {
		r, okR := slices.BinarySearch(classes, yTrue[i])
		c, okC := slices.BinarySearch(classes, yPred[i])
		if okR && okC {
			cm.Set(r, c, cm.At(r, c)+1)
		}
	}
	return cm, classes, nil
}

package model

import (
	"slices"

	"gonum.org/v1/gonum/mat"

	"penguinml/pkg/NeuralNetwork"
	"penguinml/pkg/optim"
)

// LogisticRegression is a multinomial (softmax) logistic regression without
// regularization, fitted by L-BFGS on the mean cross-entropy. Class labels
// are arbitrary float codes; Predict returns them unchanged.
type LogisticRegression struct {
	Solver *optim.LBFGS

	classes   []float64
	nFeatures int
	// coef holds one row per class: the feature weights, then the intercept.
	coef   *mat.Dense
	result optim.Result
}

// NewLogisticRegression returns a model with default solver settings.
func NewLogisticRegression() *LogisticRegression {
	return &LogisticRegression{Solver: optim.NewLBFGS()}
}

// Fit learns one weight vector per distinct label in y.
func (m *LogisticRegression) Fit(X mat.Matrix, y []float64) error {
	if isEmpty(X) {
		return ErrNoData
	}
	n, d := X.Dims()
	if len(y) != n {
		return &DimensionError{What: "labels", Want: n, Got: len(y)}
	}
	if m.Solver == nil {
		m.Solver = optim.NewLBFGS()
	}

	classes := slices.Clone(y)
	slices.Sort(classes)
	classes = slices.Compact(classes)
	k := len(classes)

	m.classes = classes
	m.nFeatures = d
	m.result = optim.Result{}
	if k == 1 {
		// Nothing to separate; every prediction is the only class seen.
		m.coef = mat.NewDense(1, d+1, nil)
		return nil
	}

	target := make([]int, n)
	for i, v := range y {
		target[i], _ = slices.BinarySearch(classes, v)
	}

	design := withIntercept(X)
	logits := mat.NewDense(n, k, nil)
	residual := mat.NewDense(n, k, nil)
	scale := 1 / float64(n)

	loss := func(x []float64) float64 {
		logits.Mul(design, mat.NewDense(k, d+1, x).T())
		var sum float64
		for i := 0; i < n; i++ {
			sum += NeuralNetwork.CrossEntropy(logits.RawRowView(i), target[i], nil)
		}
		return sum * scale
	}
	grad := func(g, x []float64) {
		logits.Mul(design, mat.NewDense(k, d+1, x).T())
		for i := 0; i < n; i++ {
			NeuralNetwork.CrossEntropy(logits.RawRowView(i), target[i], residual.RawRowView(i))
		}
		G := mat.NewDense(k, d+1, g)
		G.Mul(residual.T(), design)
		G.Scale(scale, G)
	}

	res, err := m.Solver.Minimize(loss, grad, make([]float64, k*(d+1)))
	if err != nil {
		m.coef = nil
		return err
	}
	m.result = res
	m.coef = mat.NewDense(k, d+1, slices.Clone(res.X))
	return nil
}

// PredictProba returns an n×k matrix of class probabilities, columns in
// the order of Classes.
func (m *LogisticRegression) PredictProba(X mat.Matrix) (*mat.Dense, error) {
	z, err := m.decision(X)
	if err != nil || z.IsEmpty() {
		return z, err
	}
	n, _ := z.Dims()
	for i := 0; i < n; i++ {
		row := z.RawRowView(i)
		NeuralNetwork.Softmax(row, row)
	}
	return z, nil
}

// Predict returns the most probable class code for every row of X.
func (m *LogisticRegression) Predict(X mat.Matrix) ([]float64, error) {
	z, err := m.decision(X)
	if err != nil {
		return nil, err
	}
	if z.IsEmpty() {
		return []float64{}, nil
	}
	n, _ := z.Dims()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = m.classes[NeuralNetwork.Argmax(z.RawRowView(i))]
	}
	return out, nil
}

// Classes returns the sorted class codes seen by Fit.
func (m *LogisticRegression) Classes() []float64 { return slices.Clone(m.classes) }

// Params returns a copy of the fitted coefficients, row per class, the
// intercept last in each row.
func (m *LogisticRegression) Params() *mat.Dense {
	if m.coef == nil {
		return nil
	}
	return mat.DenseCopyOf(m.coef)
}

// Result reports how the last Fit's solver run ended.
func (m *LogisticRegression) Result() optim.Result { return m.result }

func (m *LogisticRegression) decision(X mat.Matrix) (*mat.Dense, error) {
	if m.coef == nil {
		return nil, ErrNotFitted
	}
	if isEmpty(X) {
		return &mat.Dense{}, nil
	}
	_, d := X.Dims()
	if d != m.nFeatures {
		return nil, &DimensionError{What: "features", Want: m.nFeatures, Got: d}
	}
	var z mat.Dense
	z.Mul(withIntercept(X), m.coef.T())
	return &z, nil
}

// withIntercept appends a constant 1 column to X.
func withIntercept(X mat.Matrix) *mat.Dense {
	n, d := X.Dims()
	out := mat.NewDense(n, d+1, nil)
	for i := 0; i < n; i++ {
		row := out.RawRowView(i)
		for j := 0; j < d; j++ {
			row[j] = X.At(i, j)
		}
		row[d] = 1
	}
	return out
}

func isEmpty(X mat.Matrix) bool {
	if X == nil {
		return true
	}
	if d, ok := X.(*mat.Dense); ok && d.IsEmpty() {
		return true
	}
	r, c := X.Dims()
	return r == 0 || c == 0
}

var _ ProbabilisticClassifier = (*LogisticRegression)(nil)

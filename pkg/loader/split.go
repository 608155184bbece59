package loader

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrLengthMismatch = errors.New("loader: feature rows and labels differ in length")
	ErrTooFewRows     = errors.New("loader: not enough rows for both partitions")
)

// Partition is a disjoint train/test split of a feature matrix and its labels.
// TrainIndex and TestIndex hold the source row of every partition row.
type Partition struct {
	XTrain, XTest *mat.Dense
	YTrain, YTest []float64

	TrainIndex, TestIndex []int
}

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// TrainTestSplit splits X, y into train and test sets. The test set holds
// round(testRatio*n) rows and each side keeps at least one row. With shuffle
// the rows are permuted by rng (the global source when rng is nil); without
// it the last rows form the test set. The split is not stratified.
func TrainTestSplit(X mat.Matrix, y []float64, testRatio float64, shuffle bool, rng *rand.Rand) (*Partition, error) {
	n, _ := X.Dims()
	if n != len(y) {
		return nil, fmt.Errorf("%w: %d rows, %d labels", ErrLengthMismatch, n, len(y))
	}
	if !(testRatio > 0 && testRatio < 1) {
		return nil, fmt.Errorf("loader: test ratio %v outside (0, 1)", testRatio)
	}
	nTest := int(math.Round(float64(n) * testRatio))
	if nTest < 1 || n-nTest < 1 {
		return nil, fmt.Errorf("%w: %d rows at test ratio %v", ErrTooFewRows, n, testRatio)
	}

	var indices []int
	switch {
	case !shuffle:
		indices = make([]int, n)
		for i := range n {
			indices[i] = i
		}
	case rng != nil:
		indices = rng.Perm(n)
	default:
		indices = rand.Perm(n)
	}

	nTrain := n - nTest
	p := &Partition{
		TrainIndex: indices[:nTrain],
		TestIndex:  indices[nTrain:],
	}
	p.XTrain, p.YTrain = gather(X, y, p.TrainIndex)
	p.XTest, p.YTest = gather(X, y, p.TestIndex)
	return p, nil
}

func gather(X mat.Matrix, y []float64, idx []int) (*mat.Dense, []float64) {
	_, c := X.Dims()
	out := mat.NewDense(len(idx), c, nil)
	labels := make([]float64, len(idx))
	row := make([]float64, c)
	for i, src := range idx {
		mat.Row(row, src, X)
		out.SetRow(i, row)
		labels[i] = y[src]
	}
	return out, labels
}

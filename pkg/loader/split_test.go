package loader

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func dataset(n int) (*mat.Dense, []float64) {
	X := mat.NewDense(n, 2, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		X.Set(i, 0, float64(i))
		X.Set(i, 1, float64(-i))
		y[i] = float64(i%3 + 1)
	}
	return X, y
}

func TestTrainTestSplitSizes(t *testing.T) {
	for _, n := range []int{4, 10, 46, 333} {
		X, y := dataset(n)
		p, err := TrainTestSplit(X, y, 0.3, true, NewRand(1))
		require.NoError(t, err)

		nTest := int(math.Round(0.3 * float64(n)))
		assert.Len(t, p.YTest, nTest)
		assert.Len(t, p.YTrain, n-nTest)
		r, _ := p.XTest.Dims()
		assert.Equal(t, nTest, r)
		r, _ = p.XTrain.Dims()
		assert.Equal(t, n-nTest, r)
	}
}

func TestTrainTestSplitDisjointAndAligned(t *testing.T) {
	X, y := dataset(50)
	p, err := TrainTestSplit(X, y, 0.3, true, NewRand(42))
	require.NoError(t, err)

	seen := map[int]bool{}
	for _, idx := range append(append([]int{}, p.TrainIndex...), p.TestIndex...) {
		assert.False(t, seen[idx], "row %d in both partitions", idx)
		seen[idx] = true
	}
	assert.Len(t, seen, 50)

	for i, src := range p.TestIndex {
		assert.Equal(t, float64(src), p.XTest.At(i, 0))
		assert.Equal(t, float64(-src), p.XTest.At(i, 1))
		assert.Equal(t, y[src], p.YTest[i])
	}
	for i, src := range p.TrainIndex {
		assert.Equal(t, float64(src), p.XTrain.At(i, 0))
		assert.Equal(t, y[src], p.YTrain[i])
	}
}

func TestTrainTestSplitSeeded(t *testing.T) {
	X, y := dataset(30)
	a, err := TrainTestSplit(X, y, 0.3, true, NewRand(7))
	require.NoError(t, err)
	b, err := TrainTestSplit(X, y, 0.3, true, NewRand(7))
	require.NoError(t, err)
	assert.Equal(t, a.TestIndex, b.TestIndex)
	assert.True(t, mat.Equal(a.XTrain, b.XTrain))
}

func TestTrainTestSplitNoShuffle(t *testing.T) {
	X, y := dataset(10)
	p, err := TrainTestSplit(X, y, 0.3, false, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, p.TrainIndex)
	assert.Equal(t, []int{7, 8, 9}, p.TestIndex)
}

func TestTrainTestSplitErrors(t *testing.T) {
	X, y := dataset(10)

	_, err := TrainTestSplit(X, y[:9], 0.3, true, nil)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = TrainTestSplit(X, y, 0, true, nil)
	assert.Error(t, err)
	_, err = TrainTestSplit(X, y, 1, true, nil)
	assert.Error(t, err)

	X1, y1 := dataset(1)
	_, err = TrainTestSplit(X1, y1, 0.3, true, nil)
	assert.ErrorIs(t, err, ErrTooFewRows)
}

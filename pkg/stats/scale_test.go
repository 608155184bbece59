package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

func TestStandardScaler(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1, 5,
		2, 5,
		3, 5,
		4, 5,
	})
	s := NewStandardScaler()
	out, err := s.FitTransform(X)
	require.NoError(t, err)

	mean, std := stat.PopMeanStdDev(mat.Col(nil, 0, out), nil)
	assert.InDelta(t, 0, mean, 1e-12)
	assert.InDelta(t, 1, std, 1e-12)
	assert.Equal(t, []float64{0, 0, 0, 0}, mat.Col(nil, 1, out), "constant column")
	assert.InDelta(t, 2.5, s.Mean[0], 1e-12)

	// Transform reuses the training statistics.
	other, err := s.Transform(mat.NewDense(1, 2, []float64{2.5, 7}))
	require.NoError(t, err)
	assert.InDelta(t, 0, other.At(0, 0), 1e-12)
	assert.InDelta(t, 2, other.At(0, 1), 1e-12)
}

func TestStandardScalerErrors(t *testing.T) {
	s := NewStandardScaler()
	_, err := s.Transform(mat.NewDense(1, 1, nil))
	assert.ErrorIs(t, err, ErrNotFitted)

	require.NoError(t, s.Fit(mat.NewDense(2, 2, []float64{1, 2, 3, 4})))
	_, err = s.Transform(mat.NewDense(1, 3, nil))
	assert.Error(t, err)
}

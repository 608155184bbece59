package NeuralNetwork

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
)

func TestSoftmax(t *testing.T) {
	p := Softmax(nil, []float64{1, 2, 3})
	assert.InDelta(t, 1.0, floats.Sum(p), 1e-12)
	assert.Equal(t, 2, Argmax(p))

	// Large logits must not overflow.
	p = Softmax(nil, []float64{1000, 1000})
	assert.InDelta(t, 0.5, p[0], 1e-12)

	z := []float64{0, 0, 0, 0}
	Softmax(z, z)
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, z)
}

func TestCrossEntropy(t *testing.T) {
	grad := make([]float64, 2)
	loss := CrossEntropy([]float64{0, 0}, 1, grad)
	assert.InDelta(t, math.Ln2, loss, 1e-12)
	assert.InDeltaSlice(t, []float64{0.5, -0.5}, grad, 1e-12)

	loss = CrossEntropy([]float64{-800, 800}, 0, nil)
	assert.False(t, math.IsInf(loss, 0))
	assert.InDelta(t, 1600, loss, 1e-9)
}

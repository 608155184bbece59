package NeuralNetwork

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// LogSumExp returns log(sum(exp(z))) without overflowing for large z.
func LogSumExp(z []float64) float64 { return floats.LogSumExp(z) }

// Softmax writes the normalized exponentials of z into dst and returns it.
// dst may alias z; a nil dst is allocated.
func Softmax(dst, z []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(z))
	}
	lse := LogSumExp(z)
	for i, v := range z {
		dst[i] = math.Exp(v - lse)
	}
	return dst
}

// Argmax returns the index of the largest value; ties resolve to the first.
func Argmax(z []float64) int { return floats.MaxIdx(z) }

package NeuralNetwork

// CrossEntropy returns the negative log-likelihood of class k under the
// logits z, and writes dLoss/dz into grad when grad is non-nil.
// Computed through log-softmax so extreme logits stay finite.
func CrossEntropy(z []float64, k int, grad []float64) float64 {
	lse := LogSumExp(z)
	if grad != nil {
		Softmax(grad, z)
		grad[k]--
	}
	return lse - z[k]
}

package pipeline

import (
	"gonum.org/v1/gonum/mat"
)

// Transformer is a preprocessing step: fit on the training features, then
// transform both partitions.
type Transformer interface {
	Fit(X mat.Matrix) error
	Transform(X mat.Matrix) (*mat.Dense, error)
}

// Pipeline chains multiple transformers. An empty pipeline copies its input.
type Pipeline struct {
	steps []Transformer
}

func NewPipeline(steps ...Transformer) *Pipeline {
	return &Pipeline{steps: steps}
}

// Fit fits every step in order, feeding each the previous step's output.
func (p *Pipeline) Fit(X mat.Matrix) error {
	for _, step := range p.steps {
		if err := step.Fit(X); err != nil {
			return err
		}
		out, err := step.Transform(X)
		if err != nil {
			return err
		}
		X = out
	}
	return nil
}

func (p *Pipeline) Transform(X mat.Matrix) (*mat.Dense, error) {
	if len(p.steps) == 0 {
		return mat.DenseCopyOf(X), nil
	}
	var out *mat.Dense
	for _, step := range p.steps {
		var err error
		out, err = step.Transform(X)
		if err != nil {
			return nil, err
		}
		X = out
	}
	return out, nil
}

// FitTransform fits on X and returns X transformed.
func (p *Pipeline) FitTransform(X mat.Matrix) (*mat.Dense, error) {
	if err := p.Fit(X); err != nil {
		return nil, err
	}
	return p.Transform(X)
}

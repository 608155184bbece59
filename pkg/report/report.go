package report

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// WriteMetrics prints the two result lines.
func WriteMetrics(w io.Writer, mse, accuracy float64) error {
	_, err := fmt.Fprintf(w, "MSE: %v\naccuracy : %v\n", mse, accuracy)
	return err
}

// Labeler names a class code for the legend.
type Labeler interface {
	Decode(code float64) (string, bool)
}

// Axes picks the two feature columns to plot and their labels.
type Axes struct {
	X, Y           int
	XLabel, YLabel string
}

var palette = []color.RGBA{
	{R: 230, G: 97, B: 1, A: 255},
	{R: 94, G: 60, B: 153, A: 255},
	{R: 26, G: 150, B: 65, A: 255},
	{R: 64, G: 64, B: 64, A: 255},
}

// PlotPredictions scatters the rows of X on two feature axes, one series per
// predicted class, and marks misclassified rows with a cross. The format
// follows the file extension (png, svg, pdf, ...).
func PlotPredictions(path string, X mat.Matrix, yTrue, yPred []float64, axes Axes, names Labeler) error {
	n, c := X.Dims()
	if n != len(yTrue) || n != len(yPred) {
		return fmt.Errorf("report: %d rows, %d labels, %d predictions", n, len(yTrue), len(yPred))
	}
	if n == 0 {
		return errors.New("report: nothing to plot")
	}
	if axes.X < 0 || axes.X >= c || axes.Y < 0 || axes.Y >= c {
		return fmt.Errorf("report: axes (%d, %d) outside %d columns", axes.X, axes.Y, c)
	}

	p := plot.New()
	p.Title.Text = "Predicted species on the test partition"
	p.X.Label.Text = axes.XLabel
	p.Y.Label.Text = axes.YLabel

	groups := map[float64]plotter.XYs{}
	var order []float64
	var wrong plotter.XYs
	for i := 0; i < n; i++ {
		pt := plotter.XY{X: X.At(i, axes.X), Y: X.At(i, axes.Y)}
		if _, ok := groups[yPred[i]]; !ok {
			order = append(order, yPred[i])
		}
		groups[yPred[i]] = append(groups[yPred[i]], pt)
		if yPred[i] != yTrue[i] {
			wrong = append(wrong, pt)
		}
	}

	for k, code := range order {
		s, err := plotter.NewScatter(groups[code])
		if err != nil {
			return err
		}
		s.Color = palette[k%len(palette)]
		s.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add(label(names, code), s)
	}
	if len(wrong) > 0 {
		s, err := plotter.NewScatter(wrong)
		if err != nil {
			return err
		}
		s.Shape = draw.CrossGlyph{}
		s.Radius = vg.Points(5)
		p.Add(s)
		p.Legend.Add("misclassified", s)
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

func label(names Labeler, code float64) string {
	if names != nil {
		if s, ok := names.Decode(code); ok {
			return s
		}
	}
	return strconv.FormatFloat(code, 'g', -1, 64)
}

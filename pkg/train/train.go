// Package train runs the species classification experiment end to end:
// load, filter, project, convert, encode, split, fit, predict and score.
package train

import (
	"fmt"
	"math/rand/v2"

	"github.com/go-gota/gota/dataframe"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"penguinml/pkg/core"
	"penguinml/pkg/data"
	"penguinml/pkg/dataprep"
	"penguinml/pkg/loader"
	"penguinml/pkg/model"
	"penguinml/pkg/pipeline"
	"penguinml/pkg/stats"
)

// DefaultDataPath is where the dataset is read from unless configured.
const DefaultDataPath = "data/penguins_size.csv"

// DefaultTestFraction is the share of rows held out for evaluation.
const DefaultTestFraction = 0.3

// Options fully describes one run.
type Options struct {
	DataPath     string
	Schema       pipeline.Schema
	Features     []string
	Target       string
	Encoder      *dataprep.LabelEncoder
	TestFraction float64
	Shuffle      bool
	// Seed fixes the split. Nil draws a fresh seed, reported in Result.Seed.
	Seed        *uint64
	Standardize bool
}

// DefaultOptions returns the penguin setup.
func DefaultOptions() Options {
	return Options{
		DataPath:     DefaultDataPath,
		Schema:       pipeline.PenguinSchema(),
		Features:     append([]string(nil), dataprep.PenguinFeatures...),
		Target:       dataprep.PenguinTarget,
		Encoder:      dataprep.SpeciesEncoder(),
		TestFraction: DefaultTestFraction,
		Shuffle:      true,
	}
}

// Result is everything a run produced.
type Result struct {
	MSE      float64
	Accuracy float64

	Seed       uint64
	Rows       int // rows left after filtering
	Partition  *loader.Partition
	XTest      *mat.Dense // test features as seen by the model
	Prediction []float64
	Model      *model.LogisticRegression
}

// Run loads opts.DataPath and evaluates it.
func Run(opts Options, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	raw, err := data.Load(opts.DataPath, opts.Schema, logger)
	if err != nil {
		return nil, &StageError{Stage: StageLoad, Err: err}
	}
	return Evaluate(raw, opts, logger)
}

// Evaluate runs every stage after loading on an already parsed table.
func Evaluate(raw dataframe.DataFrame, opts Options, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Encoder == nil {
		opts.Encoder = dataprep.SpeciesEncoder()
	}

	filtered, err := dataprep.DropMissing(raw)
	if err != nil {
		return nil, &StageError{Stage: StageFilter, Err: err}
	}
	logger.Info("Dropped rows with missing values",
		zap.Int("before", raw.Nrow()),
		zap.Int("after", filtered.Nrow()))
	if logger.Core().Enabled(zap.DebugLevel) {
		logger.Debug("Missing cells per column", zap.Any("counts", dataprep.CountMissing(raw)))
	}

	features, target, err := dataprep.SplitFeaturesTarget(filtered, opts.Features, opts.Target)
	if err != nil {
		return nil, &StageError{Stage: StageProject, Err: err}
	}

	flat, rows, cols, err := data.Export(features)
	if err != nil {
		return nil, &StageError{Stage: StageConvert, Err: err}
	}
	X, err := core.Reflow(flat, rows, cols, data.ExportOrder)
	if err != nil {
		return nil, &StageError{Stage: StageConvert, Err: err}
	}

	y, err := opts.Encoder.EncodeSeries(target)
	if err != nil {
		return nil, &StageError{Stage: StageEncode, Err: err}
	}
	if len(y) != rows {
		return nil, &StageError{Stage: StageConvert, Err: &core.ShapeError{Rows: rows, Cols: 1, Len: len(y)}}
	}

	seed := rand.Uint64()
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	part, err := loader.TrainTestSplit(X, y, opts.TestFraction, opts.Shuffle, loader.NewRand(seed))
	if err != nil {
		return nil, &StageError{Stage: StageSplit, Err: err}
	}
	logger.Info("Split dataset",
		zap.Uint64("seed", seed),
		zap.Int("train", len(part.YTrain)),
		zap.Int("test", len(part.YTest)))

	prep := pipeline.NewPipeline()
	if opts.Standardize {
		prep = pipeline.NewPipeline(stats.NewStandardScaler())
	}
	xTrain, err := prep.FitTransform(part.XTrain)
	if err != nil {
		return nil, &StageError{Stage: StagePreprocess, Err: err}
	}
	xTest, err := prep.Transform(part.XTest)
	if err != nil {
		return nil, &StageError{Stage: StagePreprocess, Err: err}
	}

	clf := model.NewLogisticRegression()
	if err := clf.Fit(xTrain, part.YTrain); err != nil {
		return nil, &StageError{Stage: StageFit, Err: err}
	}
	fit := clf.Result()
	fields := []zap.Field{
		zap.String("status", fit.Status),
		zap.Int("iterations", fit.Iterations),
		zap.Float64("loss", fit.F),
	}
	if fit.Err != nil {
		logger.Warn("Solver stopped early", append(fields, zap.Error(fit.Err))...)
	} else {
		logger.Debug("Fitted logistic regression", fields...)
	}

	pred, err := clf.Predict(xTest)
	if err != nil {
		return nil, &StageError{Stage: StagePredict, Err: err}
	}

	mse, err := model.MSE(part.YTest, pred)
	if err != nil {
		return nil, &StageError{Stage: StageScore, Err: err}
	}
	acc, err := model.Accuracy(part.YTest, pred)
	if err != nil {
		return nil, &StageError{Stage: StageScore, Err: err}
	}
	if logger.Core().Enabled(zap.DebugLevel) {
		if cm, classes, err := model.ConfusionMatrix(part.YTest, pred, nil); err == nil {
			logger.Debug("Confusion matrix",
				zap.Float64s("classes", classes),
				zap.String("counts", fmt.Sprintf("%v", mat.Formatted(cm, mat.Squeeze()))))
		}
	}

	return &Result{
		MSE:        mse,
		Accuracy:   acc,
		Seed:       seed,
		Rows:       rows,
		Partition:  part,
		XTest:      xTest,
		Prediction: pred,
		Model:      clf,
	}, nil
}

package train

// Stage names a step of the run.
type Stage string

const (
	StageLoad       Stage = "load"
	StageFilter     Stage = "filter"
	StageProject    Stage = "project"
	StageConvert    Stage = "convert"
	StageEncode     Stage = "encode"
	StageSplit      Stage = "split"
	StagePreprocess Stage = "preprocess"
	StageFit        Stage = "fit"
	StagePredict    Stage = "predict"
	StageScore      Stage = "score"
)

// StageError is the single failure a run returns: the step that failed and
// why. No metrics accompany it.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string { return string(e.Stage) + ": " + e.Err.Error() }

func (e *StageError) Unwrap() error { return e.Err }

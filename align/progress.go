package align

// Stage identifies which per-file step a progress event refers to.
type Stage string

const (
	StageAnalyze Stage = "analyze"
	StageAlign   Stage = "align"
)

// Progress is a one-way notification emitted synchronously after each
// per-file step. Consumers that feed a UI are responsible for marshaling
// events onto their own thread.
type Progress struct {
	Stage   Stage
	File    string
	Message string
}

// ProgressFunc receives progress events during a run. The coordinator
// calls it inline between file steps, so it must not block for long.
type ProgressFunc func(Progress)

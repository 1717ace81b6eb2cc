package ports

// ProgressReporter observes pipeline progress. It is a side channel only:
// disabling it must never affect profiling results. The pipeline is
// single-threaded, so implementations need not be safe for concurrent use.
type ProgressReporter interface {
	// Begin announces the total number of steps, computed upfront from the
	// input shape (column count, active methods, diagram eligibility).
	Begin(total int)
	// Step reports completion of one sub-task within a named stage.
	Step(stage, detail string)
	// End marks the run as finished.
	End()
}

// NopReporter discards all progress events
type NopReporter struct{}

func (NopReporter) Begin(int)          {}
func (NopReporter) Step(string, string) {}
func (NopReporter) End()               {}

package describe

import (
	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
	"github.com/fade-color/ydata-profiling-zh/internal/config"
	"github.com/fade-color/ydata-profiling-zh/ports"
)

// Plan is the upfront step count for one profiling run, computed from the
// input shape before any stage executes. Reporting against a fixed plan
// keeps the progress channel purely observational.
type Plan struct {
	Summaries    int
	TableStats   int
	Correlations int
	Scatter      int
	Missing      int
	Sample       int
	Duplicates   int
	Alerts       int
	TimeIndex    int
}

// Total returns the complete step count
func (p Plan) Total() int {
	return p.Summaries + p.TableStats + p.Correlations + p.Scatter +
		p.Missing + p.Sample + p.Duplicates + p.Alerts + p.TimeIndex
}

// buildPlan counts the steps the run will take given the classified column
// types and the configuration. The stage gates used here mirror the ones
// the orchestrator applies while running.
func buildPlan(cfg *config.Settings, table *dataset.Table, types map[string]profile.ColumnType, builders []ports.MissingBuilder) Plan {
	plan := Plan{
		Summaries:  table.NumColumns(),
		TableStats: 1,
		Sample:     1,
		Duplicates: 1,
		Alerts:     1,
	}

	n := table.NumRows()
	nWithMissing, nAllMissing := missingShape(table)

	if n > 0 {
		plan.Correlations = len(cfg.ActiveCorrelations())

		intervals := 0
		hasTimeSeries := false
		for _, t := range types {
			if t.IsInterval() {
				intervals++
			}
			if t == profile.TypeTimeSeries {
				hasTimeSeries = true
			}
		}
		plan.Scatter = intervals * intervals

		for _, b := range builders {
			if cfg.MissingDiagrams[b.Name()] && missingEligible(b, nWithMissing, nAllMissing) {
				plan.Missing++
			}
		}
		if cfg.Vars.TimeSeries.Active && hasTimeSeries {
			plan.TimeIndex = 1
		}
	}

	return plan
}

// missingShape counts columns with any missing cells and columns that are
// entirely missing.
func missingShape(table *dataset.Table) (nWithMissing, nAllMissing int) {
	n := table.NumRows()
	for _, col := range table.Columns() {
		missing := col.NumMissing()
		if missing > 0 {
			nWithMissing++
		}
		if n > 0 && missing == n {
			nAllMissing++
		}
	}
	return nWithMissing, nAllMissing
}

// missingEligible gates one missing diagram on the dataset's missing shape.
// The heatmap additionally needs two columns whose missingness actually
// varies, since fully-missing columns carry no co-occurrence signal.
func missingEligible(b ports.MissingBuilder, nWithMissing, nAllMissing int) bool {
	if nWithMissing < b.MinMissing() {
		return false
	}
	if b.Name() == "heatmap" && nWithMissing-nAllMissing < 2 {
		return false
	}
	return true
}

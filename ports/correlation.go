package ports

import (
	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
	"github.com/fade-color/ydata-profiling-zh/internal/config"
)

// CorrelationCalculator computes one correlation method's matrix. A nil
// matrix with a nil error means the method does not apply to this table
// (e.g. no eligible columns). Errors are caught at the orchestrator's call
// site and converted to diagnostics; they never abort the pipeline.
type CorrelationCalculator interface {
	Name() string
	Compute(cfg *config.Settings, table *dataset.Table, summaries map[string]profile.ColumnSummary) (*profile.CorrelationMatrix, error)
}

package ports

import (
	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
	"github.com/fade-color/ydata-profiling-zh/internal/config"
)

// MissingBuilder renders one kind of missing-value diagram payload.
// MinMissing is the minimum number of columns with missing values for the
// diagram to be meaningful; the orchestrator gates on it. Build failures are
// caught at the call site and the diagram is omitted.
type MissingBuilder interface {
	Name() string
	Caption() string
	MinMissing() int
	Build(cfg *config.Settings, table *dataset.Table) (*profile.MissingDiagram, error)
}

package ports

import (
	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
	"github.com/fade-color/ydata-profiling-zh/internal/config"
)

// TypeClassifier assigns a type from the closed column-type set to a column
type TypeClassifier interface {
	Classify(cfg *config.Settings, column dataset.Column) profile.ColumnType
}

// Summarizer computes the per-column metric summaries for a whole table.
// Every returned summary must carry a "type" from the closed type set.
type Summarizer interface {
	Summarize(cfg *config.Settings, table *dataset.Table, typeset TypeClassifier) (map[string]profile.ColumnSummary, error)
}

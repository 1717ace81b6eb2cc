package correlations

import (
	"gonum.org/v1/gonum/stat"

	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
	"github.com/fade-color/ydata-profiling-zh/internal/config"
)

// Spearman computes the rank correlation matrix over interval columns
type Spearman struct{}

// NewSpearman creates the Spearman calculator
func NewSpearman() *Spearman {
	return &Spearman{}
}

// Name returns the method name
func (s *Spearman) Name() string {
	return "spearman"
}

// Compute builds the Spearman matrix: Pearson correlation of the tie-averaged
// ranks of each aligned pair.
func (s *Spearman) Compute(cfg *config.Settings, table *dataset.Table, summaries map[string]profile.ColumnSummary) (*profile.CorrelationMatrix, error) {
	columns := intervalColumns(table, summaries)
	return pairwiseMatrix(table, columns, func(x, y []float64) float64 {
		return stat.Correlation(ranks(x), ranks(y), nil)
	})
}

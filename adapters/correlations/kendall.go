package correlations

import (
	"gonum.org/v1/gonum/stat"

	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
	"github.com/fade-color/ydata-profiling-zh/internal/config"
)

// Kendall computes the rank concordance matrix over interval columns
type Kendall struct{}

// NewKendall creates the Kendall calculator
func NewKendall() *Kendall {
	return &Kendall{}
}

// Name returns the method name
func (k *Kendall) Name() string {
	return "kendall"
}

// Compute builds the Kendall tau matrix from pairwise-complete observations
func (k *Kendall) Compute(cfg *config.Settings, table *dataset.Table, summaries map[string]profile.ColumnSummary) (*profile.CorrelationMatrix, error) {
	columns := intervalColumns(table, summaries)
	return pairwiseMatrix(table, columns, func(x, y []float64) float64 {
		return stat.Kendall(x, y, nil)
	})
}

package correlations

import (
	"gonum.org/v1/gonum/stat"

	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
	"github.com/fade-color/ydata-profiling-zh/internal/config"
)

// Pearson computes the linear correlation matrix over interval columns
type Pearson struct{}

// NewPearson creates the Pearson calculator
func NewPearson() *Pearson {
	return &Pearson{}
}

// Name returns the method name
func (p *Pearson) Name() string {
	return "pearson"
}

// Compute builds the Pearson matrix from pairwise-complete observations
func (p *Pearson) Compute(cfg *config.Settings, table *dataset.Table, summaries map[string]profile.ColumnSummary) (*profile.CorrelationMatrix, error) {
	columns := intervalColumns(table, summaries)
	return pairwiseMatrix(table, columns, func(x, y []float64) float64 {
		return stat.Correlation(x, y, nil)
	})
}

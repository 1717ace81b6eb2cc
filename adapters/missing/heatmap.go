package missing

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/fade-color/ydata-profiling-zh/domain/core"
	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
	"github.com/fade-color/ydata-profiling-zh/internal/config"
)

// Heatmap builds the nullity-correlation diagram: how strongly the presence
// or absence of one column predicts the presence of another.
type Heatmap struct{}

// NewHeatmap creates the heatmap diagram builder
func NewHeatmap() *Heatmap {
	return &Heatmap{}
}

func (h *Heatmap) Name() string { return "heatmap" }

func (h *Heatmap) Caption() string {
	return "Nullity correlation: how strongly the presence or absence of one variable affects the presence of another."
}

// MinMissing: nullity correlation needs at least two partially-missing columns
func (h *Heatmap) MinMissing() int { return 2 }

// Build correlates the missing-indicator vectors of the partially-missing
// columns. Fully-present and fully-missing columns carry no nullity signal
// and are excluded; fewer than two informative columns is an input fault the
// caller downgrades to a warning.
func (h *Heatmap) Build(cfg *config.Settings, table *dataset.Table) (*profile.MissingDiagram, error) {
	rows := table.NumRows()
	var columns []string
	var indicators [][]float64
	for _, column := range table.Columns() {
		nMissing := column.NumMissing()
		if nMissing == 0 || nMissing == rows {
			continue
		}
		indicator := make([]float64, rows)
		for i, v := range column.Values {
			if v.IsMissing {
				indicator[i] = 1
			}
		}
		columns = append(columns, column.Name)
		indicators = append(indicators, indicator)
	}

	if len(columns) < 2 {
		return nil, core.ErrDegenerateInput
	}

	matrix := profile.NewCorrelationMatrix(columns)
	for i := 0; i < len(columns); i++ {
		for j := i + 1; j < len(columns); j++ {
			c := stat.Correlation(indicators[i], indicators[j], nil)
			if math.IsNaN(c) {
				c = 0
			}
			matrix.Set(i, j, c)
		}
	}

	return &profile.MissingDiagram{
		Name:    h.Name(),
		Caption: h.Caption(),
		Data:    matrix,
	}, nil
}

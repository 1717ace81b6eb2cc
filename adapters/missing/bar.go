package missing

import (
	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
	"github.com/fade-color/ydata-profiling-zh/internal/config"
)

// BarData is the per-column missing count payload
type BarData struct {
	Columns []string `json:"columns"`
	Counts  []int    `json:"counts"`
}

// Bar builds the per-column missing-count diagram
type Bar struct{}

// NewBar creates the bar diagram builder
func NewBar() *Bar {
	return &Bar{}
}

func (b *Bar) Name() string { return "bar" }

func (b *Bar) Caption() string {
	return "A simple visualization of nullity by column."
}

func (b *Bar) MinMissing() int { return 0 }

// Build counts missing cells per column
func (b *Bar) Build(cfg *config.Settings, table *dataset.Table) (*profile.MissingDiagram, error) {
	data := BarData{
		Columns: table.ColumnNames(),
		Counts:  make([]int, 0, table.NumColumns()),
	}
	for _, column := range table.Columns() {
		data.Counts = append(data.Counts, column.NumMissing())
	}
	return &profile.MissingDiagram{
		Name:    b.Name(),
		Caption: b.Caption(),
		Data:    data,
	}, nil
}

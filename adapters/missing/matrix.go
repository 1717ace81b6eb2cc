package missing

import (
	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
	"github.com/fade-color/ydata-profiling-zh/internal/config"
)

// MatrixData is the dense nullity matrix payload: true marks a present cell
type MatrixData struct {
	Columns []string `json:"columns"`
	Present [][]bool `json:"present"`
}

// Matrix builds the data-dense nullity matrix diagram
type Matrix struct{}

// NewMatrix creates the matrix diagram builder
func NewMatrix() *Matrix {
	return &Matrix{}
}

func (m *Matrix) Name() string { return "matrix" }

func (m *Matrix) Caption() string {
	return "Nullity matrix: a data-dense display that lets you quickly spot patterns in data completeness."
}

func (m *Matrix) MinMissing() int { return 0 }

// Build produces one presence row per dataset row
func (m *Matrix) Build(cfg *config.Settings, table *dataset.Table) (*profile.MissingDiagram, error) {
	columns := table.Columns()
	rows := table.NumRows()
	present := make([][]bool, rows)
	for i := 0; i < rows; i++ {
		present[i] = make([]bool, len(columns))
		for j, column := range columns {
			present[i][j] = !column.Values[i].IsMissing
		}
	}
	return &profile.MissingDiagram{
		Name:    m.Name(),
		Caption: m.Caption(),
		Data: MatrixData{
			Columns: table.ColumnNames(),
			Present: present,
		},
	}, nil
}

package describe

import (
	"math"

	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
)

// collectScatter builds the aligned point clouds for every ordered pair of
// interval columns, including a column against itself. A point is kept only
// when both cells are finite numbers.
func collectScatter(table *dataset.Table, types map[string]profile.ColumnType) map[string]map[string]*profile.ScatterData {
	interval := make([]string, 0, table.NumColumns())
	for _, name := range table.ColumnNames() {
		if types[name].IsInterval() {
			interval = append(interval, name)
		}
	}
	if len(interval) == 0 {
		return map[string]map[string]*profile.ScatterData{}
	}

	result := make(map[string]map[string]*profile.ScatterData, len(interval))
	for _, xName := range interval {
		xCol, _ := table.Column(xName)
		result[xName] = make(map[string]*profile.ScatterData, len(interval))
		for _, yName := range interval {
			yCol, _ := table.Column(yName)
			result[xName][yName] = scatterPair(xCol, yCol)
		}
	}
	return result
}

func scatterPair(xCol, yCol dataset.Column) *profile.ScatterData {
	data := &profile.ScatterData{
		X: make([]float64, 0, len(xCol.Values)),
		Y: make([]float64, 0, len(yCol.Values)),
	}
	for i := range xCol.Values {
		xv, yv := xCol.Values[i], yCol.Values[i]
		if !xv.IsNumeric() || !yv.IsNumeric() {
			continue
		}
		x, y := xv.AsFloat64(), yv.AsFloat64()
		if math.IsInf(x, 0) || math.IsInf(y, 0) || math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		data.X = append(data.X, x)
		data.Y = append(data.Y, y)
	}
	return data
}

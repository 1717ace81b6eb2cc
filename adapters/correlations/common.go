package correlations

import (
	"math"
	"sort"

	"github.com/fade-color/ydata-profiling-zh/domain/core"
	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
)

// minPairObservations is the smallest aligned sample a coefficient is
// computed from; smaller overlaps contribute a zero coefficient.
const minPairObservations = 3

// intervalColumns returns the table's interval-typed column names in order
func intervalColumns(table *dataset.Table, summaries map[string]profile.ColumnSummary) []string {
	var cols []string
	for _, name := range table.ColumnNames() {
		if summary, ok := summaries[name]; ok && summary.Type().IsInterval() {
			cols = append(cols, name)
		}
	}
	return cols
}

// nominalColumns returns the categorical and boolean column names in order
func nominalColumns(table *dataset.Table, summaries map[string]profile.ColumnSummary) []string {
	var cols []string
	for _, name := range table.ColumnNames() {
		summary, ok := summaries[name]
		if !ok {
			continue
		}
		if t := summary.Type(); t == profile.TypeCategorical || t == profile.TypeBoolean {
			cols = append(cols, name)
		}
	}
	return cols
}

// alignPair collects the rows where both columns hold finite numeric values
func alignPair(a, b dataset.Column) (x, y []float64) {
	n := len(a.Values)
	if len(b.Values) < n {
		n = len(b.Values)
	}
	for i := 0; i < n; i++ {
		va, vb := a.Values[i], b.Values[i]
		if !va.IsNumeric() || !vb.IsNumeric() {
			continue
		}
		fa, fb := va.AsFloat64(), vb.AsFloat64()
		if math.IsInf(fa, 0) || math.IsInf(fb, 0) {
			continue
		}
		x = append(x, fa)
		y = append(y, fb)
	}
	return x, y
}

// pairwiseMatrix builds the symmetric matrix over columns by applying coef to
// each aligned column pair. Degenerate pairs contribute a zero coefficient.
func pairwiseMatrix(table *dataset.Table, columns []string, coef func(x, y []float64) float64) (*profile.CorrelationMatrix, error) {
	if len(columns) < 2 {
		return nil, nil
	}

	matrix := profile.NewCorrelationMatrix(columns)
	degenerate := true
	for i := 0; i < len(columns); i++ {
		colI, _ := table.Column(columns[i])
		for j := i + 1; j < len(columns); j++ {
			colJ, _ := table.Column(columns[j])
			x, y := alignPair(colI, colJ)
			if len(x) < minPairObservations {
				matrix.Set(i, j, 0)
				continue
			}
			degenerate = false
			c := coef(x, y)
			if math.IsNaN(c) {
				c = 0
			}
			matrix.Set(i, j, clamp(c))
		}
	}
	if degenerate {
		return nil, core.ErrDegenerateInput
	}
	return matrix, nil
}

// ranks converts values to ranks, averaging ties
func ranks(data []float64) []float64 {
	n := len(data)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return data[idx[a]] < data[idx[b]] })

	out := make([]float64, n)
	i := 0
	for i < n {
		j := i + 1
		for j < n && data[idx[j]] == data[idx[i]] {
			j++
		}
		avgRank := float64(i+1) + float64(j-i-1)/2.0
		for k := i; k < j; k++ {
			out[idx[k]] = avgRank
		}
		i = j
	}
	return out
}

// clamp bounds a coefficient to [-1, 1] against floating point drift
func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

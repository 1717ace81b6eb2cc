package correlations

import (
	"math"

	"github.com/fade-color/ydata-profiling-zh/domain/core"
	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
	"github.com/fade-color/ydata-profiling-zh/internal/config"
)

// maxCramersCategories caps the contingency table size; columns beyond it
// make the chi-squared statistic meaningless and the computation fails.
const maxCramersCategories = 1000

// Cramers computes Cramér's V association matrix over categorical and
// boolean columns
type Cramers struct{}

// NewCramers creates the Cramér's V calculator
func NewCramers() *Cramers {
	return &Cramers{}
}

// Name returns the method name
func (c *Cramers) Name() string {
	return "cramers"
}

// Compute builds the V matrix from pairwise contingency tables
func (c *Cramers) Compute(cfg *config.Settings, table *dataset.Table, summaries map[string]profile.ColumnSummary) (*profile.CorrelationMatrix, error) {
	columns := nominalColumns(table, summaries)
	if len(columns) < 2 {
		return nil, nil
	}

	matrix := profile.NewCorrelationMatrix(columns)
	for i := 0; i < len(columns); i++ {
		colI, _ := table.Column(columns[i])
		for j := i + 1; j < len(columns); j++ {
			colJ, _ := table.Column(columns[j])
			v, err := cramersV(colI, colJ)
			if err != nil {
				return nil, core.NewColumnError(columns[i], err)
			}
			matrix.Set(i, j, v)
		}
	}
	return matrix, nil
}

// cramersV computes the bias-uncorrected Cramér's V for one column pair
func cramersV(a, b dataset.Column) (float64, error) {
	contingency, n := contingencyTable(a, b)
	if n < minPairObservations {
		return 0, nil
	}
	rows := len(contingency)
	if rows < 1 {
		return 0, nil
	}
	cols := 0
	for _, row := range contingency {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if rows > maxCramersCategories || cols > maxCramersCategories {
		return 0, core.ErrDegenerateInput
	}
	if rows < 2 || cols < 2 {
		// One of the columns is constant on the aligned rows
		return 0, nil
	}

	chi2 := chiSquaredStatistic(contingency, rows, cols, n)
	minDim := math.Min(float64(rows-1), float64(cols-1))
	return clamp(math.Sqrt(chi2 / (float64(n) * minDim))), nil
}

// contingencyTable cross-tabulates the aligned non-missing values of a and b
func contingencyTable(a, b dataset.Column) ([][]int, int) {
	rowIdx := make(map[string]int)
	colIdx := make(map[string]int)
	type cell struct{ r, c int }
	cells := make(map[cell]int)

	n := len(a.Values)
	if len(b.Values) < n {
		n = len(b.Values)
	}
	total := 0
	for i := 0; i < n; i++ {
		va, vb := a.Values[i], b.Values[i]
		if va.IsMissing || vb.IsMissing {
			continue
		}
		ra, ok := rowIdx[va.String()]
		if !ok {
			ra = len(rowIdx)
			rowIdx[va.String()] = ra
		}
		cb, ok := colIdx[vb.String()]
		if !ok {
			cb = len(colIdx)
			colIdx[vb.String()] = cb
		}
		cells[cell{ra, cb}]++
		total++
	}

	out := make([][]int, len(rowIdx))
	for r := range out {
		out[r] = make([]int, len(colIdx))
	}
	for c, count := range cells {
		out[c.r][c.c] = count
	}
	return out, total
}

// chiSquaredStatistic computes the chi-squared statistic of a contingency table
func chiSquaredStatistic(table [][]int, rows, cols, total int) float64 {
	rowTotals := make([]int, rows)
	colTotals := make([]int, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			rowTotals[r] += table[r][c]
			colTotals[c] += table[r][c]
		}
	}

	chi2 := 0.0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			expected := float64(rowTotals[r]*colTotals[c]) / float64(total)
			if expected > 0 {
				d := float64(table[r][c]) - expected
				chi2 += d * d / expected
			}
		}
	}
	return chi2
}

package correlations

import (
	"math"
	"sort"

	"github.com/fade-color/ydata-profiling-zh/domain/core"
	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
	"github.com/fade-color/ydata-profiling-zh/internal/config"
)

// phikBins is the quantile bin count interval columns are discretized into
const phikBins = 10

// PhiK approximates the phi-k coefficient over interval and nominal columns:
// interval columns are discretized into quantile bins and each pair is scored
// by the Cramér's V of the resulting contingency table. This keeps the
// mixed-type reach of phi-k without its full bivariate-normal inversion.
type PhiK struct{}

// NewPhiK creates the phi-k calculator
func NewPhiK() *PhiK {
	return &PhiK{}
}

// Name returns the method name
func (p *PhiK) Name() string {
	return "phi_k"
}

// Compute builds the phi-k matrix over interval plus nominal columns
func (p *PhiK) Compute(cfg *config.Settings, table *dataset.Table, summaries map[string]profile.ColumnSummary) (*profile.CorrelationMatrix, error) {
	columns := append(intervalColumns(table, summaries), nominalColumns(table, summaries)...)
	if len(columns) < 2 {
		return nil, nil
	}

	// Discretize once per column
	discretized := make(map[string]dataset.Column, len(columns))
	for _, name := range columns {
		col, _ := table.Column(name)
		if summaries[name].Type().IsInterval() {
			var err error
			col, err = discretize(col)
			if err != nil {
				return nil, core.NewColumnError(name, err)
			}
		}
		discretized[name] = col
	}

	matrix := profile.NewCorrelationMatrix(columns)
	for i := 0; i < len(columns); i++ {
		for j := i + 1; j < len(columns); j++ {
			v, err := cramersV(discretized[columns[i]], discretized[columns[j]])
			if err != nil {
				return nil, core.NewColumnError(columns[i], err)
			}
			matrix.Set(i, j, v)
		}
	}
	return matrix, nil
}

// discretize maps a numeric column onto quantile bin labels, keeping row
// positions so pairs still align.
func discretize(col dataset.Column) (dataset.Column, error) {
	var finite []float64
	for _, v := range col.Values {
		if v.IsNumeric() && !math.IsInf(v.AsFloat64(), 0) {
			finite = append(finite, v.AsFloat64())
		}
	}
	if len(finite) == 0 {
		return dataset.Column{}, core.ErrDegenerateInput
	}

	edges := quantileEdges(finite, phikBins)
	out := dataset.Column{Name: col.Name, Values: make([]dataset.Value, len(col.Values))}
	for i, v := range col.Values {
		if !v.IsNumeric() || math.IsInf(v.AsFloat64(), 0) {
			out.Values[i] = dataset.NewMissingValue()
			continue
		}
		out.Values[i] = dataset.NewNumericValue(float64(binOf(v.AsFloat64(), edges)))
	}
	return out, nil
}

// quantileEdges returns the interior bin edges for equal-frequency binning
func quantileEdges(values []float64, bins int) []float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	edges := make([]float64, 0, bins-1)
	for b := 1; b < bins; b++ {
		idx := (len(sorted) * b) / bins
		if idx >= len(sorted) {
			idx = len(sorted) - 1
		}
		edges = append(edges, sorted[idx])
	}
	return edges
}

func binOf(v float64, edges []float64) int {
	bin := 0
	for _, edge := range edges {
		if v >= edge {
			bin++
		}
	}
	return bin
}

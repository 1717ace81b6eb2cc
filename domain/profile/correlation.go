package profile

import "math"

// CorrelationMatrix is a symmetric square matrix over a fixed column order,
// one per active correlation method.
type CorrelationMatrix struct {
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// NewCorrelationMatrix allocates an identity-diagonal matrix over columns
func NewCorrelationMatrix(columns []string) *CorrelationMatrix {
	n := len(columns)
	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
		values[i][i] = 1.0
	}
	cols := make([]string, n)
	copy(cols, columns)
	return &CorrelationMatrix{Columns: cols, Values: values}
}

// Size returns the matrix dimension
func (m *CorrelationMatrix) Size() int {
	if m == nil {
		return 0
	}
	return len(m.Columns)
}

// IsEmpty reports whether the matrix has no columns
func (m *CorrelationMatrix) IsEmpty() bool {
	return m.Size() == 0
}

// At returns the coefficient for the (i, j) pair
func (m *CorrelationMatrix) At(i, j int) float64 {
	return m.Values[i][j]
}

// Set assigns the coefficient symmetrically
func (m *CorrelationMatrix) Set(i, j int, v float64) {
	m.Values[i][j] = v
	m.Values[j][i] = v
}

// Abs returns the absolute coefficient for the (i, j) pair
func (m *CorrelationMatrix) Abs(i, j int) float64 {
	return math.Abs(m.Values[i][j])
}

package profile

import "math"

// ColumnType is the closed set of analyzable column types
type ColumnType string

const (
	TypeNumeric     ColumnType = "Numeric"
	TypeCategorical ColumnType = "Categorical"
	TypeBoolean     ColumnType = "Boolean"
	TypeDateTime    ColumnType = "DateTime"
	TypeTimeSeries  ColumnType = "TimeSeries"
	TypeText        ColumnType = "Text"
	TypeUnsupported ColumnType = "Unsupported"
)

// AllColumnTypes lists every member of the closed type set. Rule dispatch
// tables are checked against this list for exhaustiveness.
var AllColumnTypes = []ColumnType{
	TypeNumeric,
	TypeCategorical,
	TypeBoolean,
	TypeDateTime,
	TypeTimeSeries,
	TypeText,
	TypeUnsupported,
}

// IsInterval reports whether the type supports ordering and distance,
// making the column eligible for correlation and scatter analysis.
func (t ColumnType) IsInterval() bool {
	return t == TypeNumeric || t == TypeTimeSeries
}

// ColumnSummary maps metric names to computed values for one column.
// Every summary carries "type", "n", "n_missing" and "p_missing"; the
// remaining keys vary by column type. Summaries are produced once by the
// summarizer and are read-only afterwards.
type ColumnSummary map[string]interface{}

// Type returns the column type tag, or TypeUnsupported when absent
func (s ColumnSummary) Type() ColumnType {
	if t, ok := s["type"].(ColumnType); ok {
		return t
	}
	if t, ok := s["type"].(string); ok {
		return ColumnType(t)
	}
	return TypeUnsupported
}

// Has reports whether the metric is present
func (s ColumnSummary) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Float returns the metric as a float64. The second result is false when the
// metric is absent, not numeric, or NaN, so callers can treat all three as
// "rule does not apply".
func (s ColumnSummary) Float(key string) (float64, bool) {
	v, ok := s[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) {
			return 0, false
		}
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// Int returns the metric as an int
func (s ColumnSummary) Int(key string) (int, bool) {
	v, ok := s[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if math.IsNaN(n) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

// Bool returns the metric as a bool
func (s ColumnSummary) Bool(key string) (bool, bool) {
	v, ok := s[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

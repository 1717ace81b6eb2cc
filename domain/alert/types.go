package alert

import (
	"sort"
	"strings"
)

// Type identifies one kind of data-quality alert. The set is closed;
// renderers key grouping and captions off the symbolic name.
type Type string

const (
	Constant        Type = "CONSTANT"
	ConstantLength  Type = "CONSTANT_LENGTH"
	Duplicates      Type = "DUPLICATES"
	Empty           Type = "EMPTY"
	HighCardinality Type = "HIGH_CARDINALITY"
	HighCorrelation Type = "HIGH_CORRELATION"
	Imbalance       Type = "IMBALANCE"
	Infinite        Type = "INFINITE"
	Missing         Type = "MISSING"
	NonStationary   Type = "NON_STATIONARY"
	Rejected        Type = "REJECTED"
	Seasonal        Type = "SEASONAL"
	Skewed          Type = "SKEWED"
	TypeDate        Type = "TYPE_DATE"
	Uniform         Type = "UNIFORM"
	Unique          Type = "UNIQUE"
	Unsupported     Type = "UNSUPPORTED"
	Zeros           Type = "ZEROS"
)

// Name returns the symbolic name used for canonical ordering
func (t Type) Name() string {
	return string(t)
}

// Title returns the human-readable form of the type name, e.g.
// "High Correlation" for HIGH_CORRELATION.
func (t Type) Title() string {
	words := strings.Split(strings.ToLower(string(t)), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// fields maps each alert type to the summary keys the alert highlights for
// UI emphasis. Types absent from the map highlight nothing.
var fields = map[Type][]string{
	Constant:        {"n_distinct"},
	ConstantLength:  {"min_length", "max_length"},
	Duplicates:      {"n_duplicates"},
	Empty:           {"n"},
	HighCardinality: {"n_distinct"},
	Imbalance:       {"imbalance"},
	Infinite:        {"n_infinite", "p_infinite"},
	Missing:         {"n_missing", "p_missing"},
	Skewed:          {"skewness"},
	Unique:          {"n_distinct", "p_distinct", "n_unique", "p_unique"},
	Zeros:           {"n_zeros", "p_zeros"},
}

// Alert is one flagged anomaly or observation about a column or the whole
// dataset. It is immutable after construction: the engine assembles the
// fully-populated record in one step.
type Alert struct {
	Type    Type                   `json:"alert_type"`
	Column  string                 `json:"column_name,omitempty"` // empty for dataset-scope alerts
	Values  map[string]interface{} `json:"values,omitempty"`
	Fields  []string               `json:"fields,omitempty"`
	IsEmpty bool                   `json:"is_empty"`
}

// New builds an alert with the type's canonical highlighted fields
func New(t Type, column string, values map[string]interface{}) Alert {
	return Alert{
		Type:   t,
		Column: column,
		Values: values,
		Fields: fields[t],
	}
}

// SortCanonical stable-sorts alerts by the type's symbolic name so renderers
// group same-kind alerts deterministically across runs.
func SortCanonical(alerts []Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Type.Name() < alerts[j].Type.Name()
	})
}

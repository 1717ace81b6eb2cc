package dataset

import (
	"fmt"
	"strings"
)

// Column is a named, ordered series of cell values
type Column struct {
	Name   string  `json:"name"`
	Values []Value `json:"values"`
}

// NumMissing returns the number of missing cells in the column
func (c Column) NumMissing() int {
	n := 0
	for _, v := range c.Values {
		if v.IsMissing {
			n++
		}
	}
	return n
}

// Floats returns the non-missing numeric values in order
func (c Column) Floats() []float64 {
	out := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		if v.IsNumeric() {
			out = append(out, v.AsFloat64())
		}
	}
	return out
}

// Table is a column-ordered tabular dataset. Columns share the same length.
type Table struct {
	columns []Column
	byName  map[string]int
}

// NewTable builds a table from columns, padding short columns with missing
// cells so every column has the same length. Duplicate column names are
// disambiguated with a numeric suffix so summaries stay addressable by name.
func NewTable(columns []Column) *Table {
	maxLen := 0
	for _, c := range columns {
		if len(c.Values) > maxLen {
			maxLen = len(c.Values)
		}
	}

	byName := make(map[string]int, len(columns))
	out := make([]Column, len(columns))
	for i, c := range columns {
		name := c.Name
		if _, taken := byName[name]; taken {
			for suffix := 1; ; suffix++ {
				candidate := fmt.Sprintf("%s_%d", c.Name, suffix)
				if _, dup := byName[candidate]; !dup {
					name = candidate
					break
				}
			}
		}
		values := c.Values
		for len(values) < maxLen {
			values = append(values, NewMissingValue())
		}
		out[i] = Column{Name: name, Values: values}
		byName[name] = i
	}

	return &Table{columns: out, byName: byName}
}

// NumRows returns the row count
func (t *Table) NumRows() int {
	if len(t.columns) == 0 {
		return 0
	}
	return len(t.columns[0].Values)
}

// NumColumns returns the column count
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// ColumnNames returns the column names in table order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the named column
func (t *Table) Column(name string) (Column, bool) {
	idx, ok := t.byName[name]
	if !ok {
		return Column{}, false
	}
	return t.columns[idx], true
}

// Columns returns all columns in table order
func (t *Table) Columns() []Column {
	return t.columns
}

// Row returns row i as a column-name keyed map of exported values
func (t *Table) Row(i int) map[string]interface{} {
	row := make(map[string]interface{}, len(t.columns))
	for _, c := range t.columns {
		row[c.Name] = c.Values[i].Export()
	}
	return row
}

// RowKey builds a deterministic fingerprint of row i restricted to the given
// columns; identical fingerprints identify duplicate rows.
func (t *Table) RowKey(i int, columns []string) string {
	var b strings.Builder
	for _, name := range columns {
		idx, ok := t.byName[name]
		if !ok {
			continue
		}
		b.WriteString(t.columns[idx].Values[i].String())
		b.WriteByte('\x1f')
	}
	return b.String()
}

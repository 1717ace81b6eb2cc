// Package testkit provides synthetic dataset builders shared across tests
package testkit

import (
	"fmt"
	"math"
	"time"

	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
)

// NumericColumn builds a column from float values; NaN cells become missing
func NumericColumn(name string, values ...float64) dataset.Column {
	cells := make([]dataset.Value, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			cells[i] = dataset.NewMissingValue()
			continue
		}
		cells[i] = dataset.NewNumericValue(v)
	}
	return dataset.Column{Name: name, Values: cells}
}

// StringColumn builds a column from strings; empty strings become missing
func StringColumn(name string, values ...string) dataset.Column {
	cells := make([]dataset.Value, len(values))
	for i, v := range values {
		if v == "" {
			cells[i] = dataset.NewMissingValue()
			continue
		}
		cells[i] = dataset.NewStringValue(v)
	}
	return dataset.Column{Name: name, Values: cells}
}

// BoolColumn builds a boolean column
func BoolColumn(name string, values ...bool) dataset.Column {
	cells := make([]dataset.Value, len(values))
	for i, v := range values {
		cells[i] = dataset.NewBooleanValue(v)
	}
	return dataset.Column{Name: name, Values: cells}
}

// TimestampColumn builds a datetime column of daily steps from start
func TimestampColumn(name string, start time.Time, n int) dataset.Column {
	cells := make([]dataset.Value, n)
	for i := 0; i < n; i++ {
		cells[i] = dataset.NewTimestampValue(start.AddDate(0, 0, i))
	}
	return dataset.Column{Name: name, Values: cells}
}

// MissingColumn builds a column of n missing cells
func MissingColumn(name string, n int) dataset.Column {
	cells := make([]dataset.Value, n)
	for i := range cells {
		cells[i] = dataset.NewMissingValue()
	}
	return dataset.Column{Name: name, Values: cells}
}

// Sequence returns 0..n-1 as floats
func Sequence(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// Repeat returns value repeated n times
func Repeat(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Labels returns n distinct string labels with the given prefix
func Labels(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return out
}

// Table builds a table from columns
func Table(columns ...dataset.Column) *dataset.Table {
	return dataset.NewTable(columns)
}

package summarize

import (
	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
	"github.com/fade-color/ydata-profiling-zh/internal/config"
	"github.com/fade-color/ydata-profiling-zh/internal/errors"
	"github.com/fade-color/ydata-profiling-zh/ports"
)

// Summarizer computes per-column metric summaries
type Summarizer struct{}

// NewSummarizer creates the default summarizer
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Summarize profiles every column of the table. Each summary carries a
// "type" tag from the closed type set plus the type-specific metrics the
// alert rules consume.
func (s *Summarizer) Summarize(cfg *config.Settings, table *dataset.Table, typeset ports.TypeClassifier) (map[string]profile.ColumnSummary, error) {
	if table == nil {
		return nil, errors.InvalidInput("summarize requires a table")
	}

	summaries := make(map[string]profile.ColumnSummary, table.NumColumns())
	for _, column := range table.Columns() {
		colType := typeset.Classify(cfg, column)
		summaries[column.Name] = s.summarizeColumn(cfg, column, colType)
	}
	return summaries, nil
}

// summarizeColumn builds one column's summary, dispatching on the type tag
func (s *Summarizer) summarizeColumn(cfg *config.Settings, column dataset.Column, colType profile.ColumnType) profile.ColumnSummary {
	n := len(column.Values)
	nMissing := column.NumMissing()
	count := n - nMissing

	summary := profile.ColumnSummary{
		"type":        colType,
		"n":           n,
		"count":       count,
		"n_missing":   nMissing,
		"p_missing":   ratio(nMissing, n),
		"memory_size": columnMemory(column),
	}

	if colType == profile.TypeUnsupported {
		return summary
	}

	describeDistinct(summary, column)

	switch colType {
	case profile.TypeNumeric:
		describeNumeric(summary, column)
	case profile.TypeTimeSeries:
		describeNumeric(summary, column)
		describeTimeSeries(cfg, summary, column)
	case profile.TypeCategorical:
		describeCategorical(summary, column)
	case profile.TypeText:
		describeLengths(summary, column)
	case profile.TypeBoolean:
		describeBoolean(summary, column)
	case profile.TypeDateTime:
		describeDateTime(summary, column)
	}

	return summary
}

// describeDistinct adds the distinct/unique counts shared by all supported types
func describeDistinct(summary profile.ColumnSummary, column dataset.Column) {
	counts := make(map[string]int)
	for _, v := range column.Values {
		if v.IsMissing {
			continue
		}
		counts[v.String()]++
	}

	nUnique := 0
	for _, c := range counts {
		if c == 1 {
			nUnique++
		}
	}

	count, _ := summary.Int("count")
	summary["n_distinct"] = len(counts)
	summary["p_distinct"] = ratio(len(counts), count)
	summary["n_unique"] = nUnique
	summary["p_unique"] = ratio(nUnique, count)
}

// columnMemory approximates the column footprint: one word per cell plus
// string payload bytes.
func columnMemory(column dataset.Column) int64 {
	var size int64
	for _, v := range column.Values {
		size += 8
		if v.StringVal != nil {
			size += int64(len(*v.StringVal))
		}
	}
	return size
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

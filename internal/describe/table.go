package describe

import (
	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
)

// computeTableStats derives the dataset-wide aggregates from the table and
// the classified column types. Duplicate metrics are merged in later by the
// duplicates stage.
func computeTableStats(table *dataset.Table, types map[string]profile.ColumnType) profile.TableStats {
	stats := profile.TableStats{
		N:          table.NumRows(),
		NVar:       table.NumColumns(),
		MemorySize: estimateMemory(table),
		Types:      make(map[profile.ColumnType]int),
	}

	for _, col := range table.Columns() {
		stats.Types[types[col.Name]]++

		missing := col.NumMissing()
		stats.NCellsMissing += missing
		if missing > 0 {
			stats.NVarsWithMissing++
		}
		if stats.N > 0 && missing == stats.N {
			stats.NVarsAllMissing++
		}
	}

	if cells := stats.N * stats.NVar; cells > 0 {
		stats.PCellsMissing = float64(stats.NCellsMissing) / float64(cells)
	}
	return stats
}

// estimateMemory approximates the in-memory footprint of the table. Scalar
// cells cost one machine word; string cells add their byte length.
func estimateMemory(table *dataset.Table) int64 {
	var size int64
	for _, col := range table.Columns() {
		for _, v := range col.Values {
			size += 8
			if v.StringVal != nil {
				size += int64(len(*v.StringVal))
			}
		}
	}
	return size
}

package describe

import (
	"sort"

	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
	"github.com/fade-color/ydata-profiling-zh/internal/config"
)

// collectDuplicates finds repeated rows and returns the most frequent ones
// along with the duplicate metrics. Rows are fingerprinted over the
// analyzable columns only, so an unsupported column cannot mask an otherwise
// duplicated row. A row occurring k times counts as k-1 duplicates.
func collectDuplicates(
	cfg *config.Settings,
	table *dataset.Table,
	types map[string]profile.ColumnType,
) ([]profile.DuplicateRow, int, float64) {
	n := table.NumRows()
	if n == 0 {
		return nil, 0, 0
	}

	supported := make([]string, 0, table.NumColumns())
	for _, name := range table.ColumnNames() {
		if types[name] != profile.TypeUnsupported {
			supported = append(supported, name)
		}
	}
	if len(supported) == 0 {
		return nil, 0, 0
	}

	type group struct {
		first int
		count int
	}
	groups := make(map[string]*group)
	order := make([]string, 0, n)
	for i := 0; i < n; i++ {
		key := table.RowKey(i, supported)
		g, ok := groups[key]
		if !ok {
			groups[key] = &group{first: i, count: 1}
			order = append(order, key)
			continue
		}
		g.count++
	}

	nDuplicates := 0
	duplicated := make([]string, 0, len(order))
	for _, key := range order {
		if g := groups[key]; g.count > 1 {
			nDuplicates += g.count - 1
			duplicated = append(duplicated, key)
		}
	}

	sort.SliceStable(duplicated, func(a, b int) bool {
		return groups[duplicated[a]].count > groups[duplicated[b]].count
	})
	if len(duplicated) > cfg.Duplicates.Head {
		duplicated = duplicated[:cfg.Duplicates.Head]
	}

	rows := make([]profile.DuplicateRow, 0, len(duplicated))
	for _, key := range duplicated {
		g := groups[key]
		row := make(map[string]interface{}, len(supported))
		full := table.Row(g.first)
		for _, name := range supported {
			row[name] = full[name]
		}
		rows = append(rows, profile.DuplicateRow{Count: g.count, Row: row})
	}

	return rows, nDuplicates, float64(nDuplicates) / float64(n)
}

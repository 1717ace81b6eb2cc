// Package alerts turns computed summaries into the dataset's alert list.
// Rules inspect summaries without mutating them; each finding becomes one
// immutable alert record assembled here in a single step.
package alerts

import (
	"github.com/fade-color/ydata-profiling-zh/domain/alert"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
	"github.com/fade-color/ydata-profiling-zh/internal/config"
)

// Assemble runs every alert rule and returns the canonical alert list:
// table-level checks, per-column checks in the given column order, then
// consolidated correlation alerts, stably sorted by alert kind. A column
// alert's payload is the column's own summary, so descriptions can cite the
// metrics that triggered it. An empty dataset reports EMPTY alone; column
// rules never run against zero rows.
func Assemble(
	cfg *config.Settings,
	stats profile.TableStats,
	columns []string,
	summaries map[string]profile.ColumnSummary,
	correlations map[string]*profile.CorrelationMatrix,
) ([]alert.Alert, error) {
	result := CheckTable(stats)

	if stats.N > 0 {
		for _, col := range columns {
			summary, ok := summaries[col]
			if !ok {
				continue
			}
			for _, kind := range checkColumn(cfg, summary) {
				result = append(result, alert.New(kind, col, map[string]interface{}(summary)))
			}
		}
	}

	corrAlerts, err := correlationAlerts(cfg, correlations)
	if err != nil {
		return nil, err
	}
	result = append(result, corrAlerts...)

	alert.SortCanonical(result)
	return result, nil
}

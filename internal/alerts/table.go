package alerts

import (
	"github.com/fade-color/ydata-profiling-zh/domain/alert"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
)

// CheckTable evaluates the dataset-level rules. Table alerts carry no column
// name and take the table statistics as their payload.
func CheckTable(stats profile.TableStats) []alert.Alert {
	var result []alert.Alert

	if alertValue(float64(stats.NDuplicates), true) {
		result = append(result, alert.New(alert.Duplicates, "", stats.Values()))
	}
	if stats.N == 0 {
		result = append(result, alert.New(alert.Empty, "", stats.Values()))
	}

	return result
}

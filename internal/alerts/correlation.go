package alerts

import (
	"math"
	"sort"

	"github.com/fade-color/ydata-profiling-zh/domain/alert"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
	"github.com/fade-color/ydata-profiling-zh/internal/config"
)

// CheckCorrelation maps each column to the partners whose absolute
// coefficient with it reaches the threshold (inclusive). The diagonal never
// counts and NaN coefficients never fire. Columns with no strong partner are
// absent from the result.
func CheckCorrelation(matrix *profile.CorrelationMatrix, threshold float64) map[string][]string {
	result := make(map[string][]string)
	if matrix == nil || matrix.IsEmpty() {
		return result
	}

	for i, col := range matrix.Columns {
		var partners []string
		for j, other := range matrix.Columns {
			if i == j {
				continue
			}
			coeff := matrix.At(i, j)
			if math.IsNaN(coeff) {
				continue
			}
			if math.Abs(coeff) >= threshold {
				partners = append(partners, other)
			}
		}
		if len(partners) > 0 {
			result[col] = partners
		}
	}
	return result
}

// correlationAlerts consolidates high-correlation findings across every
// computed method into at most one alert per column. Partner sets union
// across methods; the payload records the overall view rather than any
// single method's coefficients.
func correlationAlerts(cfg *config.Settings, correlations map[string]*profile.CorrelationMatrix) ([]alert.Alert, error) {
	partnersByColumn := make(map[string]map[string]struct{})

	methods := make([]string, 0, len(correlations))
	for name := range correlations {
		methods = append(methods, name)
	}
	sort.Strings(methods)

	for _, name := range methods {
		settings, err := cfg.Correlation(name)
		if err != nil {
			return nil, err
		}
		if !settings.WarnHighCorrelations {
			continue
		}
		for col, partners := range CheckCorrelation(correlations[name], settings.Threshold) {
			set, ok := partnersByColumn[col]
			if !ok {
				set = make(map[string]struct{})
				partnersByColumn[col] = set
			}
			for _, p := range partners {
				set[p] = struct{}{}
			}
		}
	}

	columns := make([]string, 0, len(partnersByColumn))
	for col := range partnersByColumn {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	result := make([]alert.Alert, 0, len(columns))
	for _, col := range columns {
		partners := make([]string, 0, len(partnersByColumn[col]))
		for p := range partnersByColumn[col] {
			partners = append(partners, p)
		}
		sort.Strings(partners)
		result = append(result, alert.New(alert.HighCorrelation, col, map[string]interface{}{
			"corr":   "overall",
			"fields": partners,
		}))
	}
	return result, nil
}

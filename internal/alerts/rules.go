package alerts

import (
	"math"

	"github.com/fade-color/ydata-profiling-zh/domain/alert"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
	"github.com/fade-color/ydata-profiling-zh/internal/config"
)

// deMinimis is the fixed cutoff below which a proportion-based condition is
// not worth flagging; it keeps floating-point noise out of the alert list.
const deMinimis = 0.01

// ruleFunc decides which alert kinds one column's summary triggers. Rules
// are pure: they read the summary and the configured thresholds, and a
// missing metric means the rule does not apply.
type ruleFunc func(cfg *config.Settings, summary profile.ColumnSummary) []alert.Type

// typeRules is the total dispatch table over the closed column-type set.
// A nil entry means the type adds nothing beyond the generic and supported
// rules. Exhaustiveness over profile.AllColumnTypes is asserted in tests.
var typeRules = map[profile.ColumnType]ruleFunc{
	profile.TypeNumeric:     numericAlerts,
	profile.TypeTimeSeries:  timeseriesAlerts,
	profile.TypeCategorical: categoricalAlerts,
	profile.TypeBoolean:     booleanAlerts,
	profile.TypeDateTime:    nil,
	profile.TypeText:        nil,
	profile.TypeUnsupported: unsupportedAlerts,
}

// checkColumn evaluates every applicable rule for one column summary
func checkColumn(cfg *config.Settings, summary profile.ColumnSummary) []alert.Type {
	types := genericAlerts(summary)

	colType := summary.Type()
	if colType == profile.TypeUnsupported {
		return append(types, unsupportedAlerts(cfg, summary)...)
	}

	types = append(types, supportedAlerts(summary)...)
	if rule := typeRules[colType]; rule != nil {
		types = append(types, rule(cfg, summary)...)
	}
	return types
}

// genericAlerts applies to every column type
func genericAlerts(summary profile.ColumnSummary) []alert.Type {
	var types []alert.Type
	if alertValue(summary.Float("p_missing")) {
		types = append(types, alert.Missing)
	}
	return types
}

// supportedAlerts applies to every type the engine can analyze
func supportedAlerts(summary profile.ColumnSummary) []alert.Type {
	var types []alert.Type
	nDistinct, ok := summary.Int("n_distinct")
	if !ok {
		return types
	}
	if n, ok := summary.Int("n"); ok && nDistinct == n {
		types = append(types, alert.Unique)
	}
	if nDistinct == 1 {
		types = append(types, alert.Constant)
	}
	return types
}

// unsupportedAlerts fires unconditionally: a column the engine cannot
// analyze is also excluded from further analysis.
func unsupportedAlerts(cfg *config.Settings, summary profile.ColumnSummary) []alert.Type {
	return []alert.Type{alert.Unsupported, alert.Rejected}
}

func numericAlerts(cfg *config.Settings, summary profile.ColumnSummary) []alert.Type {
	var types []alert.Type

	if skewness, ok := summary.Float("skewness"); ok && skewnessAlert(skewness, cfg.Vars.Num.SkewnessThreshold) {
		types = append(types, alert.Skewed)
	}
	if alertValue(summary.Float("p_infinite")) {
		types = append(types, alert.Infinite)
	}
	if alertValue(summary.Float("p_zeros")) {
		types = append(types, alert.Zeros)
	}
	if pValue, ok := chiSquaredPValue(summary); ok && pValue > cfg.Vars.Num.ChiSquaredThreshold {
		types = append(types, alert.Uniform)
	}

	return types
}

func timeseriesAlerts(cfg *config.Settings, summary profile.ColumnSummary) []alert.Type {
	types := numericAlerts(cfg, summary)

	if stationary, ok := summary.Bool("stationary"); ok && !stationary {
		types = append(types, alert.NonStationary)
	}
	if seasonal, ok := summary.Bool("seasonal"); ok && seasonal {
		types = append(types, alert.Seasonal)
	}

	return types
}

func categoricalAlerts(cfg *config.Settings, summary profile.ColumnSummary) []alert.Type {
	var types []alert.Type

	if nDistinct, ok := summary.Int("n_distinct"); ok && nDistinct > cfg.Vars.Cat.CardinalityThreshold {
		types = append(types, alert.HighCardinality)
	}
	if pValue, ok := chiSquaredPValue(summary); ok && pValue > cfg.Vars.Cat.ChiSquaredThreshold {
		types = append(types, alert.Uniform)
	}
	if warn, ok := summary.Bool("date_warning"); ok && warn {
		types = append(types, alert.TypeDate)
	}
	if summary.Has("composition") {
		minLength, okMin := summary.Int("min_length")
		maxLength, okMax := summary.Int("max_length")
		if okMin && okMax && minLength == maxLength {
			types = append(types, alert.ConstantLength)
		}
	}
	if imbalance, ok := summary.Float("imbalance"); ok && imbalance > cfg.Vars.Cat.ImbalanceThreshold {
		types = append(types, alert.Imbalance)
	}

	return types
}

func booleanAlerts(cfg *config.Settings, summary profile.ColumnSummary) []alert.Type {
	var types []alert.Type
	if imbalance, ok := summary.Float("imbalance"); ok && imbalance > cfg.Vars.Bool.ImbalanceThreshold {
		types = append(types, alert.Imbalance)
	}
	return types
}

// alertValue is the de-minimis check: a defined, positive proportion above
// the cutoff.
func alertValue(value float64, ok bool) bool {
	return ok && !math.IsNaN(value) && value > deMinimis
}

// skewnessAlert is sign-symmetric: strongly negative skew flags too
func skewnessAlert(value, threshold float64) bool {
	return !math.IsNaN(value) && (value < -threshold || value > threshold)
}

// chiSquaredPValue reads the uniformity test result, tolerating both the
// default summarizer's map shape and loosely-typed substitutes.
func chiSquaredPValue(summary profile.ColumnSummary) (float64, bool) {
	raw, ok := summary["chi_squared"]
	if !ok {
		return 0, false
	}
	switch chi := raw.(type) {
	case map[string]float64:
		pValue, ok := chi["pvalue"]
		return pValue, ok
	case map[string]interface{}:
		pValue, ok := chi["pvalue"].(float64)
		return pValue, ok
	}
	return 0, false
}

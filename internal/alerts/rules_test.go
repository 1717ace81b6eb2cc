package alerts

import (
	"testing"

	"github.com/fade-color/ydata-profiling-zh/domain/alert"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
	"github.com/fade-color/ydata-profiling-zh/internal/config"
)

func hasType(types []alert.Type, want alert.Type) bool {
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}

func numericSummary(extra map[string]interface{}) profile.ColumnSummary {
	s := profile.ColumnSummary{
		"type":       profile.TypeNumeric,
		"n":          100,
		"n_missing":  0,
		"p_missing":  0.0,
		"n_distinct": 50,
	}
	for k, v := range extra {
		s[k] = v
	}
	return s
}

func TestMissingAlertDeMinimis(t *testing.T) {
	cfg := config.Default()

	below := numericSummary(map[string]interface{}{"p_missing": 0.009})
	if hasType(checkColumn(cfg, below), alert.Missing) {
		t.Error("p_missing 0.009 is below the cutoff and must not fire")
	}

	above := numericSummary(map[string]interface{}{"p_missing": 0.011})
	if !hasType(checkColumn(cfg, above), alert.Missing) {
		t.Error("p_missing 0.011 must fire")
	}
}

func TestSkewnessAlertIsSignSymmetric(t *testing.T) {
	cfg := config.Default()

	for _, skew := range []float64{25, -25} {
		s := numericSummary(map[string]interface{}{"skewness": skew})
		if !hasType(checkColumn(cfg, s), alert.Skewed) {
			t.Errorf("skewness %v must fire", skew)
		}
	}
	mild := numericSummary(map[string]interface{}{"skewness": 5.0})
	if hasType(checkColumn(cfg, mild), alert.Skewed) {
		t.Error("skewness 5 is within threshold")
	}
}

func TestConstantAndUniqueAlerts(t *testing.T) {
	cfg := config.Default()

	constant := numericSummary(map[string]interface{}{"n_distinct": 1})
	if !hasType(checkColumn(cfg, constant), alert.Constant) {
		t.Error("single distinct value must flag CONSTANT")
	}

	unique := numericSummary(map[string]interface{}{"n_distinct": 100})
	if !hasType(checkColumn(cfg, unique), alert.Unique) {
		t.Error("all-distinct column must flag UNIQUE")
	}

	// Single row: one value is both constant and unique
	single := profile.ColumnSummary{
		"type":       profile.TypeNumeric,
		"n":          1,
		"n_distinct": 1,
	}
	types := checkColumn(cfg, single)
	if !hasType(types, alert.Constant) || !hasType(types, alert.Unique) {
		t.Errorf("n=1 column must flag both CONSTANT and UNIQUE, got %v", types)
	}
}

func TestUniformAlertUsesChiSquaredPValue(t *testing.T) {
	cfg := config.Default()

	uniform := numericSummary(map[string]interface{}{
		"chi_squared": map[string]float64{"statistic": 0.1, "pvalue": 0.9995},
	})
	if !hasType(checkColumn(cfg, uniform), alert.Uniform) {
		t.Error("pvalue above threshold must flag UNIFORM")
	}

	nonUniform := numericSummary(map[string]interface{}{
		"chi_squared": map[string]float64{"statistic": 80, "pvalue": 0.01},
	})
	if hasType(checkColumn(cfg, nonUniform), alert.Uniform) {
		t.Error("low pvalue must not flag UNIFORM")
	}
}

func TestCategoricalAlerts(t *testing.T) {
	cfg := config.Default()

	s := profile.ColumnSummary{
		"type":        profile.TypeCategorical,
		"n":           200,
		"n_distinct":  60,
		"imbalance":   0.7,
		"composition": true,
		"min_length":  4,
		"max_length":  4,
		"date_warning": true,
	}
	types := checkColumn(cfg, s)

	for _, want := range []alert.Type{alert.HighCardinality, alert.Imbalance, alert.ConstantLength, alert.TypeDate} {
		if !hasType(types, want) {
			t.Errorf("expected %s in %v", want, types)
		}
	}

	varied := profile.ColumnSummary{
		"type":        profile.TypeCategorical,
		"n":           200,
		"n_distinct":  3,
		"composition": true,
		"min_length":  2,
		"max_length":  9,
	}
	if hasType(checkColumn(cfg, varied), alert.ConstantLength) {
		t.Error("varied lengths must not flag CONSTANT_LENGTH")
	}
}

func TestBooleanImbalanceUsesOwnThreshold(t *testing.T) {
	cfg := config.Default()

	// 0.7 is above the categorical threshold but below the boolean one
	s := profile.ColumnSummary{
		"type":       profile.TypeBoolean,
		"n":          100,
		"n_distinct": 2,
		"imbalance":  0.7,
	}
	if hasType(checkColumn(cfg, s), alert.Imbalance) {
		t.Error("boolean imbalance 0.7 is under the 0.8 threshold")
	}

	s["imbalance"] = 0.9
	if !hasType(checkColumn(cfg, s), alert.Imbalance) {
		t.Error("boolean imbalance 0.9 must fire")
	}
}

func TestTimeSeriesAlerts(t *testing.T) {
	cfg := config.Default()

	s := profile.ColumnSummary{
		"type":       profile.TypeTimeSeries,
		"n":          100,
		"n_distinct": 90,
		"stationary": false,
		"seasonal":   true,
	}
	types := checkColumn(cfg, s)
	if !hasType(types, alert.NonStationary) {
		t.Errorf("non-stationary series must flag NON_STATIONARY, got %v", types)
	}
	if !hasType(types, alert.Seasonal) {
		t.Errorf("seasonal series must flag SEASONAL, got %v", types)
	}
}

func TestUnsupportedColumnIsRejected(t *testing.T) {
	cfg := config.Default()

	s := profile.ColumnSummary{
		"type":      profile.TypeUnsupported,
		"n":         10,
		"p_missing": 1.0,
	}
	types := checkColumn(cfg, s)
	if !hasType(types, alert.Unsupported) || !hasType(types, alert.Rejected) {
		t.Errorf("unsupported column must flag UNSUPPORTED and REJECTED, got %v", types)
	}
	// Still reports generic missingness, but never the supported-only kinds
	if !hasType(types, alert.Missing) {
		t.Errorf("missingness applies to every column, got %v", types)
	}
	if hasType(types, alert.Constant) || hasType(types, alert.Unique) {
		t.Errorf("supported-only rules must not run, got %v", types)
	}
}

func TestRuleDispatchCoversEveryColumnType(t *testing.T) {
	for _, colType := range profile.AllColumnTypes {
		if _, ok := typeRules[colType]; !ok {
			t.Errorf("no rule dispatch entry for column type %s", colType)
		}
	}
}

func TestMissingMetricMeansRuleDoesNotApply(t *testing.T) {
	cfg := config.Default()

	// A numeric summary with no optional metrics triggers nothing
	s := profile.ColumnSummary{
		"type":       profile.TypeNumeric,
		"n":          100,
		"n_distinct": 50,
	}
	if types := checkColumn(cfg, s); len(types) != 0 {
		t.Errorf("bare summary should trigger no alerts, got %v", types)
	}
}

package alerts

import (
	"reflect"
	"testing"

	"github.com/fade-color/ydata-profiling-zh/domain/alert"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
	"github.com/fade-color/ydata-profiling-zh/internal/config"
)

func matrixOf(columns []string, pairs map[[2]int]float64) *profile.CorrelationMatrix {
	m := profile.NewCorrelationMatrix(columns)
	for pair, coeff := range pairs {
		m.Set(pair[0], pair[1], coeff)
	}
	return m
}

func TestCheckCorrelationExcludesDiagonal(t *testing.T) {
	m := matrixOf([]string{"a", "b"}, nil)
	// Diagonal is identity but must never count as a finding
	if got := CheckCorrelation(m, 0.9); len(got) != 0 {
		t.Errorf("identity diagonal produced findings: %v", got)
	}

	if got := CheckCorrelation(nil, 0.9); len(got) != 0 {
		t.Errorf("nil matrix must yield an empty map, got %v", got)
	}
	if got := CheckCorrelation(profile.NewCorrelationMatrix(nil), 0.9); len(got) != 0 {
		t.Errorf("empty matrix must yield an empty map, got %v", got)
	}
}

func TestCheckCorrelationThreshold(t *testing.T) {
	m := matrixOf([]string{"a", "b", "c"}, map[[2]int]float64{
		{0, 1}: 0.95,
		{0, 2}: -0.92,
		{1, 2}: 0.3,
	})

	got := CheckCorrelation(m, 0.9)
	want := map[string][]string{
		"a": {"b", "c"},
		"b": {"a"},
		"c": {"a"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CheckCorrelation = %v, want %v", got, want)
	}
}

func TestCheckCorrelationThresholdIsInclusive(t *testing.T) {
	m := matrixOf([]string{"a", "b", "c"}, map[[2]int]float64{
		{0, 1}: 0.9,
		{0, 2}: -0.9,
		{1, 2}: 0.8999,
	})

	got := CheckCorrelation(m, 0.9)
	want := map[string][]string{
		"a": {"b", "c"},
		"b": {"a"},
		"c": {"a"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("coefficient exactly at the threshold must count: got %v, want %v", got, want)
	}
}

func TestCorrelationAlertsUnionAcrossMethods(t *testing.T) {
	cfg := config.Default()
	corrs := map[string]*profile.CorrelationMatrix{
		"pearson": matrixOf([]string{"a", "b", "c"}, map[[2]int]float64{
			{0, 1}: 0.95,
		}),
		"spearman": matrixOf([]string{"a", "b", "c"}, map[[2]int]float64{
			{0, 2}: 0.93,
		}),
	}

	got, err := correlationAlerts(cfg, corrs)
	if err != nil {
		t.Fatalf("correlationAlerts: %v", err)
	}

	byColumn := make(map[string]alert.Alert)
	for _, a := range got {
		if a.Type != alert.HighCorrelation {
			t.Fatalf("unexpected alert type %s", a.Type)
		}
		if _, dup := byColumn[a.Column]; dup {
			t.Fatalf("column %s has more than one correlation alert", a.Column)
		}
		byColumn[a.Column] = a
	}

	a, ok := byColumn["a"]
	if !ok {
		t.Fatal("column a should be flagged")
	}
	partners, _ := a.Values["fields"].([]string)
	if !reflect.DeepEqual(partners, []string{"b", "c"}) {
		t.Errorf("partners for a = %v, want [b c] unioned across methods", partners)
	}
	if a.Values["corr"] != "overall" {
		t.Errorf("corr = %v, want overall", a.Values["corr"])
	}
}

func TestCorrelationAlertsIdempotentAcrossMethods(t *testing.T) {
	cfg := config.Default()
	same := map[[2]int]float64{{0, 1}: 0.95}
	corrs := map[string]*profile.CorrelationMatrix{
		"pearson":  matrixOf([]string{"a", "b"}, same),
		"spearman": matrixOf([]string{"a", "b"}, same),
	}

	got, err := correlationAlerts(cfg, corrs)
	if err != nil {
		t.Fatalf("correlationAlerts: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want one alert per column, got %d", len(got))
	}
	partners, _ := got[0].Values["fields"].([]string)
	if len(partners) != 1 {
		t.Errorf("same finding in two methods must not duplicate partners: %v", partners)
	}
}

func TestCorrelationAlertsRespectWarnFlag(t *testing.T) {
	cfg := config.Default()
	pearson := cfg.Correlations["pearson"]
	pearson.WarnHighCorrelations = false
	cfg.Correlations["pearson"] = pearson

	corrs := map[string]*profile.CorrelationMatrix{
		"pearson": matrixOf([]string{"a", "b"}, map[[2]int]float64{{0, 1}: 0.99}),
	}
	got, err := correlationAlerts(cfg, corrs)
	if err != nil {
		t.Fatalf("correlationAlerts: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("warn-disabled method must produce no alerts, got %v", got)
	}
}

func TestCorrelationAlertsMissingSettingsFatal(t *testing.T) {
	cfg := config.Default()
	corrs := map[string]*profile.CorrelationMatrix{
		"biweight": matrixOf([]string{"a", "b"}, nil),
	}
	if _, err := correlationAlerts(cfg, corrs); err == nil {
		t.Error("a computed method without settings must be a hard error")
	}
}

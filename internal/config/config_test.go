package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultThresholds(t *testing.T) {
	s := Default()

	if s.Vars.Num.SkewnessThreshold != 20 {
		t.Errorf("skewness threshold = %v, want 20", s.Vars.Num.SkewnessThreshold)
	}
	if s.Vars.Cat.CardinalityThreshold != 50 {
		t.Errorf("cardinality threshold = %v, want 50", s.Vars.Cat.CardinalityThreshold)
	}
	if s.Vars.Cat.ImbalanceThreshold != 0.5 {
		t.Errorf("cat imbalance threshold = %v, want 0.5", s.Vars.Cat.ImbalanceThreshold)
	}
	if s.Vars.Bool.ImbalanceThreshold != 0.8 {
		t.Errorf("bool imbalance threshold = %v, want 0.8", s.Vars.Bool.ImbalanceThreshold)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestActiveCorrelationsSorted(t *testing.T) {
	s := Default()
	got := s.ActiveCorrelations()
	want := []string{"cramers", "pearson", "spearman"}
	if len(got) != len(want) {
		t.Fatalf("ActiveCorrelations = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ActiveCorrelations[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCorrelationMissingEntryFails(t *testing.T) {
	s := Default()
	if _, err := s.Correlation("pearson"); err != nil {
		t.Errorf("pearson settings should exist: %v", err)
	}
	if _, err := s.Correlation("biweight"); err == nil {
		t.Error("unknown method must return an error, not a default")
	}
}

func TestValidateRejectsBadThresholds(t *testing.T) {
	s := Default()
	s.Vars.Num.SkewnessThreshold = -1
	if err := s.Validate(); err == nil {
		t.Error("negative skewness threshold should fail validation")
	}

	s = Default()
	corr := s.Correlations["pearson"]
	corr.Threshold = 1.5
	s.Correlations["pearson"] = corr
	if err := s.Validate(); err == nil {
		t.Error("out-of-range correlation threshold should fail validation")
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	s := Default()
	s.Title = "quarterly report"

	out, err := s.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	var back Settings
	if err := yaml.Unmarshal([]byte(out), &back); err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if back.Title != "quarterly report" {
		t.Errorf("title = %q after round trip", back.Title)
	}
	if back.Correlations["pearson"].Threshold != 0.9 {
		t.Errorf("pearson threshold = %v after round trip", back.Correlations["pearson"].Threshold)
	}
	if !back.MissingDiagrams["heatmap"] {
		t.Error("heatmap flag lost in round trip")
	}
}

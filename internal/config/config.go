package config

import (
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/fade-color/ydata-profiling-zh/domain/core"
	"github.com/fade-color/ydata-profiling-zh/internal/errors"
)

// Settings is the complete profiling configuration. It is serializable to
// YAML; the serialized form is embedded in the result's reproduction metadata.
type Settings struct {
	Title           string                         `yaml:"title"`
	ProgressBar     bool                           `yaml:"progress_bar"`
	Vars            VarSettings                    `yaml:"vars"`
	Correlations    map[string]CorrelationSettings `yaml:"correlations"`
	MissingDiagrams map[string]bool                `yaml:"missing_diagrams"`
	Samples         SampleSettings                 `yaml:"samples"`
	Duplicates      DuplicateSettings              `yaml:"duplicates"`
}

// VarSettings groups the per-type alert thresholds
type VarSettings struct {
	Num        NumSettings        `yaml:"num"`
	Cat        CatSettings        `yaml:"cat"`
	Bool       BoolSettings       `yaml:"bool"`
	TimeSeries TimeSeriesSettings `yaml:"timeseries"`
}

// NumSettings holds numeric column thresholds
type NumSettings struct {
	SkewnessThreshold   float64 `yaml:"skewness_threshold"`
	ChiSquaredThreshold float64 `yaml:"chi_squared_threshold"`
}

// CatSettings holds categorical column thresholds
type CatSettings struct {
	CardinalityThreshold int     `yaml:"cardinality_threshold"`
	ImbalanceThreshold   float64 `yaml:"imbalance_threshold"`
	ChiSquaredThreshold  float64 `yaml:"chi_squared_threshold"`
}

// BoolSettings holds boolean column thresholds
type BoolSettings struct {
	ImbalanceThreshold float64 `yaml:"imbalance_threshold"`
}

// TimeSeriesSettings controls time-series mode
type TimeSeriesSettings struct {
	Active          bool    `yaml:"active"`
	Autocorrelation float64 `yaml:"autocorrelation"`
}

// CorrelationSettings configures one correlation method
type CorrelationSettings struct {
	Calculate            bool    `yaml:"calculate"`
	WarnHighCorrelations bool    `yaml:"warn_high_correlations"`
	Threshold            float64 `yaml:"threshold"`
}

// SampleSettings controls how many head/tail rows the sample stage keeps
type SampleSettings struct {
	Head int `yaml:"head"`
	Tail int `yaml:"tail"`
}

// DuplicateSettings controls duplicate-row reporting
type DuplicateSettings struct {
	Head int `yaml:"head"` // how many duplicated rows to keep in the result
}

// Default returns the default profiling settings
func Default() *Settings {
	return &Settings{
		Title:       "Profiling Report",
		ProgressBar: false,
		Vars: VarSettings{
			Num: NumSettings{
				SkewnessThreshold:   20,
				ChiSquaredThreshold: 0.999,
			},
			Cat: CatSettings{
				CardinalityThreshold: 50,
				ImbalanceThreshold:   0.5,
				ChiSquaredThreshold:  0.999,
			},
			Bool: BoolSettings{
				ImbalanceThreshold: 0.8,
			},
			TimeSeries: TimeSeriesSettings{
				Active:          false,
				Autocorrelation: 0.7,
			},
		},
		Correlations: map[string]CorrelationSettings{
			"pearson":  {Calculate: true, WarnHighCorrelations: true, Threshold: 0.9},
			"spearman": {Calculate: true, WarnHighCorrelations: true, Threshold: 0.9},
			"kendall":  {Calculate: false, WarnHighCorrelations: true, Threshold: 0.9},
			"cramers":  {Calculate: true, WarnHighCorrelations: true, Threshold: 0.9},
			"phi_k":    {Calculate: false, WarnHighCorrelations: true, Threshold: 0.9},
		},
		MissingDiagrams: map[string]bool{
			"bar":     true,
			"matrix":  true,
			"heatmap": true,
		},
		Samples:    SampleSettings{Head: 10, Tail: 10},
		Duplicates: DuplicateSettings{Head: 10},
	}
}

// Load builds settings from defaults plus environment overrides
func Load() (*Settings, error) {
	s := Default()
	s.Title = getEnvOrDefault("PROFILE_TITLE", s.Title)
	s.ProgressBar = getEnvBoolOrDefault("PROFILE_PROGRESS", s.ProgressBar)
	s.Vars.Num.SkewnessThreshold = getEnvFloatOrDefault("PROFILE_SKEWNESS_THRESHOLD", s.Vars.Num.SkewnessThreshold)
	s.Vars.Cat.CardinalityThreshold = getEnvIntOrDefault("PROFILE_CARDINALITY_THRESHOLD", s.Vars.Cat.CardinalityThreshold)
	s.Vars.TimeSeries.Active = getEnvBoolOrDefault("PROFILE_TIMESERIES", s.Vars.TimeSeries.Active)

	if err := s.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return s, nil
}

// Validate checks threshold sanity
func (s *Settings) Validate() error {
	if s.Vars.Num.SkewnessThreshold < 0 {
		return errors.ConfigInvalid("skewness threshold must be non-negative")
	}
	for name, corr := range s.Correlations {
		if corr.Threshold < 0 || corr.Threshold > 1 {
			return errors.ConfigInvalid("correlation threshold for " + name + " must be in [0,1]")
		}
	}
	return nil
}

// Correlation returns the settings for one correlation method. A missing
// entry is a configuration fault, not a soft default: required threshold
// lookups must fail loudly.
func (s *Settings) Correlation(name string) (CorrelationSettings, error) {
	corr, ok := s.Correlations[name]
	if !ok {
		return CorrelationSettings{}, core.NewConfigError("correlations", "no settings for method "+name)
	}
	return corr, nil
}

// ActiveCorrelations returns the names of methods with calculation enabled,
// sorted for deterministic pipeline order.
func (s *Settings) ActiveCorrelations() []string {
	names := make([]string, 0, len(s.Correlations))
	for name, corr := range s.Correlations {
		if corr.Calculate {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Serialize renders the settings as YAML for reproduction metadata
func (s *Settings) Serialize() (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize settings")
	}
	return string(out), nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

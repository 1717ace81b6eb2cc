package summarize

import (
	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
	"github.com/fade-color/ydata-profiling-zh/internal/config"
)

// Type inference thresholds: the share of non-missing cells that must carry
// a storage type before the column is classified as that type.
const (
	numericShare   = 0.8
	booleanShare   = 0.9
	timestampShare = 0.8
	// A string column this distinct and this long is free text, not categories
	textDistinctShare = 0.9
	textMeanLength    = 30.0
)

// Classifier assigns each column a type from the closed column-type set
type Classifier struct{}

// NewClassifier creates the default type classifier
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify infers the column type from its coerced cell types
func (c *Classifier) Classify(cfg *config.Settings, column dataset.Column) profile.ColumnType {
	var numeric, boolean, timestamp, str, valid int
	totalLen := 0
	for _, v := range column.Values {
		if v.IsMissing {
			continue
		}
		valid++
		switch {
		case v.IsNumeric():
			numeric++
		case v.IsBoolean():
			boolean++
		case v.IsTimestamp():
			timestamp++
		case v.IsString():
			str++
			totalLen += len(v.AsString())
		}
	}

	if valid == 0 {
		return profile.TypeUnsupported
	}

	total := float64(valid)
	switch {
	case float64(boolean)/total >= booleanShare:
		return profile.TypeBoolean
	case float64(numeric)/total >= numericShare:
		if c.isTimeSeries(cfg, column) {
			return profile.TypeTimeSeries
		}
		return profile.TypeNumeric
	case float64(timestamp)/total >= timestampShare:
		return profile.TypeDateTime
	case str > 0 && float64(str)/total >= 0.5:
		if c.isText(column, str, totalLen) {
			return profile.TypeText
		}
		return profile.TypeCategorical
	}

	return profile.TypeUnsupported
}

// isTimeSeries gates numeric columns into TimeSeries when time-series mode
// is active and the series is autocorrelated enough to carry an ordering.
func (c *Classifier) isTimeSeries(cfg *config.Settings, column dataset.Column) bool {
	if !cfg.Vars.TimeSeries.Active {
		return false
	}
	values := column.Floats()
	if len(values) < 8 {
		return false
	}
	return autocorrelation(values, 1) >= cfg.Vars.TimeSeries.Autocorrelation
}

// isText separates free text from categories: nearly all-distinct long strings
func (c *Classifier) isText(column dataset.Column, strCount, totalLen int) bool {
	if strCount == 0 {
		return false
	}
	distinct := make(map[string]struct{}, strCount)
	for _, v := range column.Values {
		if v.IsString() {
			distinct[v.AsString()] = struct{}{}
		}
	}
	distinctShare := float64(len(distinct)) / float64(strCount)
	meanLength := float64(totalLen) / float64(strCount)
	return distinctShare >= textDistinctShare && meanLength >= textMeanLength
}

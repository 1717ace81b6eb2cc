package tabular

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
)

// TypeCoercer converts raw cell strings into typed dataset values with
// deterministic rules
type TypeCoercer struct{}

// NewTypeCoercer creates a coercer with the default rules
func NewTypeCoercer() *TypeCoercer {
	return &TypeCoercer{}
}

// missingTokens are raw strings that always coerce to a missing cell
var missingTokens = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
	"none": true,
}

// timestampFormats are tried in order when parsing timestamps
var timestampFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
	"02-Jan-2006",
}

// CoerceValue deterministically converts a raw cell to a typed Value
func (c *TypeCoercer) CoerceValue(raw string) dataset.Value {
	cleanVal := strings.TrimSpace(raw)
	if missingTokens[strings.ToLower(cleanVal)] {
		return dataset.NewMissingValue()
	}

	// Numeric first (most restrictive)
	if v, ok := c.tryParseNumeric(cleanVal); ok {
		return v
	}

	if v, ok := c.tryParseBoolean(cleanVal); ok {
		return v
	}

	if v, ok := c.tryParseTimestamp(cleanVal); ok {
		return v
	}

	return dataset.NewStringValue(cleanVal)
}

// tryParseNumeric attempts to parse as numeric. Thousands separators are
// stripped; infinities are accepted as numeric cells so the profiler can
// count them.
func (c *TypeCoercer) tryParseNumeric(cleanVal string) (dataset.Value, bool) {
	if cleanVal == "" {
		return dataset.Value{}, false
	}

	switch strings.ToLower(cleanVal) {
	case "inf", "+inf", "infinity", "+infinity":
		return dataset.NewNumericValue(math.Inf(1)), true
	case "-inf", "-infinity":
		return dataset.NewNumericValue(math.Inf(-1)), true
	}

	// Parentheses mark negatives in accounting exports: (123) -> -123
	isNegative := false
	if strings.HasPrefix(cleanVal, "(") && strings.HasSuffix(cleanVal, ")") {
		cleanVal = strings.TrimSuffix(strings.TrimPrefix(cleanVal, "("), ")")
		isNegative = true
	}

	cleanVal = strings.ReplaceAll(cleanVal, ",", "")
	if isNegative {
		cleanVal = "-" + cleanVal
	}

	if val, err := strconv.ParseFloat(cleanVal, 64); err == nil && !math.IsNaN(val) {
		return dataset.NewNumericValue(val), true
	}

	return dataset.Value{}, false
}

// tryParseBoolean attempts to parse as boolean with strict rules
func (c *TypeCoercer) tryParseBoolean(cleanVal string) (dataset.Value, bool) {
	switch strings.ToLower(cleanVal) {
	case "true", "yes", "y", "on":
		return dataset.NewBooleanValue(true), true
	case "false", "no", "n", "off":
		return dataset.NewBooleanValue(false), true
	}
	return dataset.Value{}, false
}

// tryParseTimestamp attempts to parse as timestamp with multiple formats
func (c *TypeCoercer) tryParseTimestamp(cleanVal string) (dataset.Value, bool) {
	if cleanVal == "" {
		return dataset.Value{}, false
	}
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, cleanVal); err == nil {
			return dataset.NewTimestampValue(t), true
		}
	}
	return dataset.Value{}, false
}

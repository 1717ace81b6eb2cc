package profile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnSummaryAccessors(t *testing.T) {
	s := ColumnSummary{
		"type":      TypeNumeric,
		"n":         10,
		"p_missing": 0.2,
		"skewness":  math.NaN(),
		"seasonal":  true,
	}

	assert.Equal(t, TypeNumeric, s.Type())

	n, ok := s.Int("n")
	require.True(t, ok)
	assert.Equal(t, 10, n)

	p, ok := s.Float("p_missing")
	require.True(t, ok)
	assert.Equal(t, 0.2, p)

	// NaN reads as absent so rules can treat it as not applicable
	_, ok = s.Float("skewness")
	assert.False(t, ok)

	seasonal, ok := s.Bool("seasonal")
	require.True(t, ok)
	assert.True(t, seasonal)

	_, ok = s.Float("no_such_metric")
	assert.False(t, ok)
}

func TestColumnSummaryTypeFallback(t *testing.T) {
	assert.Equal(t, TypeUnsupported, ColumnSummary{}.Type())
	assert.Equal(t, TypeBoolean, ColumnSummary{"type": "Boolean"}.Type())
}

func TestIsInterval(t *testing.T) {
	assert.True(t, TypeNumeric.IsInterval())
	assert.True(t, TypeTimeSeries.IsInterval())
	assert.False(t, TypeCategorical.IsInterval())
	assert.False(t, TypeDateTime.IsInterval())
}

package summarize

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
)

// extraDateFormats are date layouts the cell coercer does not try; a
// categorical column whose values all parse with one of these (or are already
// timestamps) gets the date warning.
var extraDateFormats = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"02.01.2006",
	"2006.01.02",
}

// describeCategorical adds category counts, composition, imbalance, the
// uniformity test and the date warning.
func describeCategorical(summary profile.ColumnSummary, column dataset.Column) {
	counts := make(map[string]int)
	for _, v := range column.Values {
		if v.IsMissing {
			continue
		}
		counts[v.String()]++
	}
	if len(counts) == 0 {
		return
	}

	describeLengths(summary, column)
	summary["imbalance"] = imbalanceScore(counts)

	if chi, ok := chiSquaredCounts(counts); ok {
		summary["chi_squared"] = chi
	}

	if dateWarning(column) {
		summary["date_warning"] = true
	}
}

// describeLengths adds the string length composition block
func describeLengths(summary profile.ColumnSummary, column dataset.Column) {
	minLen, maxLen, totalLen, n := -1, -1, 0, 0
	for _, v := range column.Values {
		if !v.IsString() {
			continue
		}
		l := len([]rune(v.AsString()))
		if minLen == -1 || l < minLen {
			minLen = l
		}
		if l > maxLen {
			maxLen = l
		}
		totalLen += l
		n++
	}
	if n == 0 {
		return
	}
	summary["composition"] = true
	summary["min_length"] = minLen
	summary["max_length"] = maxLen
	summary["mean_length"] = float64(totalLen) / float64(n)
}

// describeBoolean adds value counts and the imbalance score
func describeBoolean(summary profile.ColumnSummary, column dataset.Column) {
	counts := make(map[string]int)
	for _, v := range column.Values {
		if v.IsBoolean() {
			counts[v.String()]++
		}
	}
	if len(counts) == 0 {
		return
	}
	summary["value_counts"] = counts
	summary["imbalance"] = imbalanceScore(counts)
}

// imbalanceScore measures how far the category frequencies are from uniform:
// 1 - H/Hmax, where H is the Shannon entropy of the observed counts. A single
// category scores 0 so CONSTANT, not IMBALANCE, covers that case.
func imbalanceScore(counts map[string]int) float64 {
	k := len(counts)
	if k <= 1 {
		return 0
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	entropy := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return 1 - entropy/math.Log2(float64(k))
}

// chiSquaredCounts tests the observed category counts against a uniform
// expectation.
func chiSquaredCounts(counts map[string]int) (map[string]float64, bool) {
	k := len(counts)
	if k < 2 {
		return nil, false
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	expected := float64(total) / float64(k)
	statistic := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		statistic += d * d / expected
	}

	dist := distuv.ChiSquared{K: float64(k - 1)}
	pValue := 1 - dist.CDF(statistic)

	return map[string]float64{
		"statistic": statistic,
		"pvalue":    pValue,
	}, true
}

// dateWarning reports whether every non-missing cell is date-like even though
// the column was typed categorical.
func dateWarning(column dataset.Column) bool {
	checked := 0
	for _, v := range column.Values {
		if v.IsMissing {
			continue
		}
		if v.IsTimestamp() {
			checked++
			continue
		}
		if !v.IsString() {
			return false
		}
		if !parsesAsDate(v.AsString()) {
			return false
		}
		checked++
	}
	return checked > 0
}

func parsesAsDate(s string) bool {
	for _, format := range extraDateFormats {
		if _, err := time.Parse(format, s); err == nil {
			return true
		}
	}
	return false
}

package summarize

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
	"github.com/fade-color/ydata-profiling-zh/internal/config"
)

// seasonalityLagCap bounds the lag scan when searching for a seasonal period
const seasonalityLagCap = 50

// describeTimeSeries adds the stationarity and seasonality block on top of
// the numeric metrics.
func describeTimeSeries(cfg *config.Settings, summary profile.ColumnSummary, column dataset.Column) {
	values := column.Floats()
	finite := values[:0:0]
	for _, v := range values {
		if !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}

	summary["autocorrelation"] = autocorrelation(finite, 1)
	summary["stationary"] = isStationary(finite)

	seasonal, period := findSeasonality(finite, cfg.Vars.TimeSeries.Autocorrelation)
	summary["seasonal"] = seasonal
	if seasonal {
		summary["period"] = period
	}
}

// autocorrelation computes the lag-k autocorrelation coefficient
func autocorrelation(values []float64, lag int) float64 {
	n := len(values)
	if n <= lag || lag < 1 {
		return 0
	}
	mean, _ := stats.Mean(values)

	var num, den float64
	for i := 0; i < n; i++ {
		d := values[i] - mean
		den += d * d
		if i+lag < n {
			num += d * (values[i+lag] - mean)
		}
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// isStationary runs a simple split test: the two halves of a stationary
// series should agree on mean and variance.
func isStationary(values []float64) bool {
	n := len(values)
	if n < 8 {
		return true
	}

	first := values[:n/2]
	second := values[n/2:]

	stdAll, _ := stats.StandardDeviationSample(values)
	mean1, _ := stats.Mean(first)
	mean2, _ := stats.Mean(second)
	var1, _ := stats.VarS(first)
	var2, _ := stats.VarS(second)

	if stdAll == 0 {
		return true
	}

	// Mean drift beyond half a standard deviation fails the test
	if math.Abs(mean1-mean2) > 0.5*stdAll {
		return false
	}

	// Variance ratio outside [1/4, 4] fails the test
	if var1 > 0 && var2 > 0 {
		ratio := var1 / var2
		if ratio < 0.25 || ratio > 4 {
			return false
		}
	}

	return true
}

// findSeasonality scans lags for an autocorrelation peak, returning the
// first qualifying lag as the period estimate.
func findSeasonality(values []float64, threshold float64) (bool, int) {
	n := len(values)
	maxLag := n / 2
	if maxLag > seasonalityLagCap {
		maxLag = seasonalityLagCap
	}
	for lag := 2; lag <= maxLag; lag++ {
		if autocorrelation(values, lag) >= threshold {
			return true, lag
		}
	}
	return false, 0
}

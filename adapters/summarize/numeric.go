package summarize

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
)

// chiSquaredBins is the histogram width for the uniformity goodness-of-fit test
const chiSquaredBins = 10

// describeNumeric adds the numeric metric block: moments, quantiles, zero and
// infinity counts, and the chi-squared uniformity p-value.
func describeNumeric(summary profile.ColumnSummary, column dataset.Column) {
	var finite []float64
	nInfinite := 0
	nZeros := 0
	for _, v := range column.Values {
		if !v.IsNumeric() {
			continue
		}
		f := v.AsFloat64()
		if math.IsInf(f, 0) {
			nInfinite++
			continue
		}
		if f == 0 {
			nZeros++
		}
		finite = append(finite, f)
	}

	n, _ := summary.Int("n")
	summary["n_infinite"] = nInfinite
	summary["p_infinite"] = ratio(nInfinite, n)
	summary["n_zeros"] = nZeros
	summary["p_zeros"] = ratio(nZeros, n)

	if len(finite) == 0 {
		return
	}

	mean, _ := stats.Mean(finite)
	std, _ := stats.StandardDeviationSample(finite)
	minVal, _ := stats.Min(finite)
	maxVal, _ := stats.Max(finite)
	median, _ := stats.Median(finite)
	q25, _ := stats.Percentile(finite, 25)
	q75, _ := stats.Percentile(finite, 75)

	summary["mean"] = mean
	summary["std"] = std
	summary["min"] = minVal
	summary["max"] = maxVal
	summary["median"] = median
	summary["q25"] = q25
	summary["q75"] = q75
	summary["skewness"] = sampleSkewness(finite, mean, std)
	summary["kurtosis"] = sampleKurtosis(finite, mean, std)

	if chi, ok := chiSquaredUniform(finite, minVal, maxVal); ok {
		summary["chi_squared"] = chi
	}
}

// describeDateTime adds the observed time range
func describeDateTime(summary profile.ColumnSummary, column dataset.Column) {
	var minT, maxT int64
	first := true
	for _, v := range column.Values {
		if !v.IsTimestamp() {
			continue
		}
		u := v.AsTime().Unix()
		if first {
			minT, maxT = u, u
			first = false
			continue
		}
		if u < minT {
			minT = u
		}
		if u > maxT {
			maxT = u
		}
	}
	if first {
		return
	}
	summary["min"] = float64(minT)
	summary["max"] = float64(maxT)
	summary["range"] = float64(maxT - minT)
}

// sampleSkewness computes the adjusted Fisher-Pearson coefficient of skewness
func sampleSkewness(data []float64, mean, std float64) float64 {
	if len(data) < 3 || std == 0 {
		return 0
	}
	n := float64(len(data))
	sum := 0.0
	for _, x := range data {
		d := (x - mean) / std
		sum += d * d * d
	}
	return (sum / n) * math.Sqrt(n*(n-1)) / (n - 2)
}

// sampleKurtosis computes sample kurtosis (not excess)
func sampleKurtosis(data []float64, mean, std float64) float64 {
	if len(data) < 4 || std == 0 {
		return 0
	}
	n := float64(len(data))
	sum := 0.0
	for _, x := range data {
		d := (x - mean) / std
		sum += d * d * d * d
	}
	return sum / n
}

// chiSquaredUniform runs a goodness-of-fit test of the values against a
// uniform distribution over equal-width bins. A high p-value means the test
// failed to reject uniformity.
func chiSquaredUniform(data []float64, minVal, maxVal float64) (map[string]float64, bool) {
	if len(data) < chiSquaredBins || maxVal <= minVal {
		return nil, false
	}

	observed := make([]float64, chiSquaredBins)
	width := (maxVal - minVal) / chiSquaredBins
	for _, x := range data {
		bin := int((x - minVal) / width)
		if bin >= chiSquaredBins {
			bin = chiSquaredBins - 1
		}
		observed[bin]++
	}

	expected := float64(len(data)) / chiSquaredBins
	statistic := 0.0
	for _, obs := range observed {
		d := obs - expected
		statistic += d * d / expected
	}

	dist := distuv.ChiSquared{K: float64(chiSquaredBins - 1)}
	pValue := 1 - dist.CDF(statistic)

	return map[string]float64{
		"statistic": statistic,
		"pvalue":    pValue,
	}, true
}

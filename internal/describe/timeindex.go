package describe

import (
	"sort"
	"time"

	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
)

// analyzeTimeIndex summarizes the dataset's time axis when time-series mode
// is active. The first datetime column in table order serves as the index;
// without one the series are assumed evenly spaced over the row index.
func analyzeTimeIndex(table *dataset.Table, types map[string]profile.ColumnType) *profile.TimeIndexAnalysis {
	nSeries := 0
	indexColumn := ""
	for _, name := range table.ColumnNames() {
		switch types[name] {
		case profile.TypeTimeSeries:
			nSeries++
		case profile.TypeDateTime:
			if indexColumn == "" {
				indexColumn = name
			}
		}
	}
	if nSeries == 0 {
		return nil
	}

	analysis := &profile.TimeIndexAnalysis{
		NSeries: nSeries,
		Length:  table.NumRows(),
	}
	if indexColumn == "" {
		return analysis
	}

	col, _ := table.Column(indexColumn)
	times := make([]time.Time, 0, len(col.Values))
	for _, v := range col.Values {
		if v.IsTimestamp() {
			times = append(times, v.AsTime())
		}
	}
	if len(times) < 2 {
		return analysis
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	analysis.StartDate = times[0].Format(time.RFC3339)
	analysis.EndDate = times[len(times)-1].Format(time.RFC3339)

	gaps := make([]float64, 0, len(times)-1)
	for i := 1; i < len(times); i++ {
		gaps = append(gaps, times[i].Sub(times[i-1]).Seconds())
	}
	sort.Float64s(gaps)
	analysis.Period = gaps[len(gaps)/2]
	analysis.Frequency = frequencyLabel(analysis.Period)
	return analysis
}

// frequencyLabel names common sampling periods; irregular spacing gets none
func frequencyLabel(periodSeconds float64) string {
	switch periodSeconds {
	case 1:
		return "S"
	case 60:
		return "T"
	case 3600:
		return "H"
	case 86400:
		return "D"
	case 7 * 86400:
		return "W"
	}
	return ""
}

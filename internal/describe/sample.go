package describe

import (
	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
	"github.com/fade-color/ydata-profiling-zh/internal/config"
)

// collectSample extracts the head and tail rows for the report. Head and
// tail windows are taken independently, so on small tables they overlap.
func collectSample(cfg *config.Settings, table *dataset.Table) profile.Sample {
	n := table.NumRows()

	head := cfg.Samples.Head
	if head > n {
		head = n
	}
	tail := cfg.Samples.Tail
	if tail > n {
		tail = n
	}

	sample := profile.Sample{
		Head: make([]map[string]interface{}, 0, head),
		Tail: make([]map[string]interface{}, 0, tail),
	}
	for i := 0; i < head; i++ {
		sample.Head = append(sample.Head, table.Row(i))
	}
	for i := n - tail; i < n; i++ {
		sample.Tail = append(sample.Tail, table.Row(i))
	}
	return sample
}

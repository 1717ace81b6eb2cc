package correlations

import (
	"github.com/fade-color/ydata-profiling-zh/ports"
)

// Default returns every built-in correlation calculator keyed by method name.
// Which methods actually run is decided by the configuration.
func Default() map[string]ports.CorrelationCalculator {
	calculators := []ports.CorrelationCalculator{
		NewPearson(),
		NewSpearman(),
		NewKendall(),
		NewCramers(),
		NewPhiK(),
	}
	byName := make(map[string]ports.CorrelationCalculator, len(calculators))
	for _, c := range calculators {
		byName[c.Name()] = c
	}
	return byName
}

package missing

import (
	"github.com/fade-color/ydata-profiling-zh/ports"
)

// Default returns the built-in missing-value diagram builders in render order
func Default() []ports.MissingBuilder {
	return []ports.MissingBuilder{
		NewBar(),
		NewMatrix(),
		NewHeatmap(),
	}
}

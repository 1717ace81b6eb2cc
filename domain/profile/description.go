package profile

import (
	"time"

	"github.com/fade-color/ydata-profiling-zh/domain/alert"
	"github.com/fade-color/ydata-profiling-zh/domain/core"
)

// Version is the tool version embedded in reproduction metadata
const Version = "0.3.0"

// Analysis captures run metadata for one profiling pass
type Analysis struct {
	ID        core.ProfileID `json:"id"`
	Title     string         `json:"title"`
	DateStart core.Timestamp `json:"date_start"`
	DateEnd   core.Timestamp `json:"date_end"`
}

// Duration returns the elapsed profiling time
func (a Analysis) Duration() time.Duration {
	return a.DateEnd.Sub(a.DateStart)
}

// Sample holds representative rows from the head and tail of the dataset
type Sample struct {
	Head []map[string]interface{} `json:"head"`
	Tail []map[string]interface{} `json:"tail"`
}

// DuplicateRow is one duplicated row with its occurrence count
type DuplicateRow struct {
	Count int                    `json:"count"`
	Row   map[string]interface{} `json:"row"`
}

// MissingDiagram is one rendered missing-value diagram payload
type MissingDiagram struct {
	Name    string      `json:"name"`
	Caption string      `json:"caption"`
	Data    interface{} `json:"data"`
}

// ScatterData holds the aligned point cloud for one interval column pair
type ScatterData struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// TimeIndexAnalysis summarizes the time index when time-series mode is on
type TimeIndexAnalysis struct {
	NSeries   int     `json:"n_series"`
	Length    int     `json:"length"`
	StartDate string  `json:"start_date,omitempty"`
	EndDate   string  `json:"end_date,omitempty"`
	Period    float64 `json:"period,omitempty"`
	Frequency string  `json:"frequency,omitempty"`
}

// Package carries reproduction metadata: tool version plus serialized config
type Package struct {
	Version string `json:"version"`
	Config  string `json:"config"`
}

// Diagnostic records one degraded-but-continued sub-task failure. The
// orchestrator returns the full list alongside the Description instead of
// pushing warnings through a process-wide sink.
type Diagnostic struct {
	Stage   string `json:"stage"`
	Subject string `json:"subject"`
	Err     error  `json:"-"`
	Message string `json:"message"`
}

// Description is the complete, immutable result of one profiling run
type Description struct {
	Analysis          Analysis                           `json:"analysis"`
	Table             TableStats                         `json:"table"`
	Variables         map[string]ColumnSummary           `json:"variables"`
	ColumnOrder       []string                           `json:"column_order"`
	Correlations      map[string]*CorrelationMatrix      `json:"correlations"`
	Scatter           map[string]map[string]*ScatterData `json:"scatter"`
	Missing           map[string]*MissingDiagram         `json:"missing"`
	Alerts            []alert.Alert                      `json:"alerts"`
	Sample            Sample                             `json:"sample"`
	Duplicates        []DuplicateRow                     `json:"duplicates"`
	TimeIndexAnalysis *TimeIndexAnalysis                 `json:"time_index_analysis,omitempty"`
	Package           Package                            `json:"package"`
}

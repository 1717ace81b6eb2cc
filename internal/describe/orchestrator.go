// Package describe runs the profiling pipeline: classify, summarize,
// correlate, diagram, sample, deduplicate, alert. Stages run strictly in
// order on a single goroutine; per-method and per-diagram failures degrade
// to diagnostics instead of aborting the run.
package describe

import (
	"fmt"

	"github.com/fade-color/ydata-profiling-zh/adapters/correlations"
	"github.com/fade-color/ydata-profiling-zh/adapters/missing"
	"github.com/fade-color/ydata-profiling-zh/domain/core"
	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
	"github.com/fade-color/ydata-profiling-zh/internal"
	"github.com/fade-color/ydata-profiling-zh/internal/alerts"
	"github.com/fade-color/ydata-profiling-zh/internal/config"
	"github.com/fade-color/ydata-profiling-zh/internal/errors"
	"github.com/fade-color/ydata-profiling-zh/ports"
)

// Orchestrator drives one profiling run end to end
type Orchestrator struct {
	cfg         *config.Settings
	summarizer  ports.Summarizer
	classifier  ports.TypeClassifier
	calculators map[string]ports.CorrelationCalculator
	builders    []ports.MissingBuilder
	reporter    ports.ProgressReporter
	logger      *internal.Logger
}

// NewOrchestrator creates an orchestrator with the built-in correlation
// calculators and missing-diagram builders wired in.
func NewOrchestrator(cfg *config.Settings, summarizer ports.Summarizer, classifier ports.TypeClassifier) *Orchestrator {
	return &Orchestrator{
		cfg:         cfg,
		summarizer:  summarizer,
		classifier:  classifier,
		calculators: correlations.Default(),
		builders:    missing.Default(),
		reporter:    ports.NopReporter{},
		logger:      internal.DefaultLogger,
	}
}

// WithCalculators replaces the correlation calculators
func (o *Orchestrator) WithCalculators(calculators map[string]ports.CorrelationCalculator) *Orchestrator {
	o.calculators = calculators
	return o
}

// WithMissingBuilders replaces the missing-diagram builders
func (o *Orchestrator) WithMissingBuilders(builders []ports.MissingBuilder) *Orchestrator {
	o.builders = builders
	return o
}

// WithReporter attaches a progress reporter
func (o *Orchestrator) WithReporter(reporter ports.ProgressReporter) *Orchestrator {
	o.reporter = reporter
	return o
}

// WithLogger replaces the logger
func (o *Orchestrator) WithLogger(logger *internal.Logger) *Orchestrator {
	o.logger = logger
	return o
}

// Describe profiles the table and returns the complete description plus the
// diagnostics accumulated from degraded sub-tasks. A non-nil error means
// the run could not produce a result at all; diagnostics accompany even a
// successful run.
func (o *Orchestrator) Describe(table *dataset.Table) (*profile.Description, []profile.Diagnostic, error) {
	if table == nil {
		return nil, nil, core.ErrNoDataset
	}
	if table.NumColumns() == 0 {
		return nil, nil, core.ErrEmptyDataset
	}

	dateStart := core.Now()
	var diags []profile.Diagnostic

	columnOrder := table.ColumnNames()
	types := make(map[string]profile.ColumnType, len(columnOrder))
	for _, col := range table.Columns() {
		types[col.Name] = o.classifier.Classify(o.cfg, col)
	}

	plan := buildPlan(o.cfg, table, types, o.builders)
	reporter := o.reporter
	if !o.cfg.ProgressBar {
		reporter = ports.NopReporter{}
	}
	reporter.Begin(plan.Total())
	defer reporter.End()

	summaries, err := o.summarizer.Summarize(o.cfg, table, o.classifier)
	if err != nil {
		return nil, diags, errors.Wrap(err, "summarize failed")
	}
	for _, name := range columnOrder {
		reporter.Step("summarize", name)
	}

	stats := computeTableStats(table, types)
	reporter.Step("table", "")

	n := table.NumRows()

	corrs := make(map[string]*profile.CorrelationMatrix)
	if n > 0 {
		for _, name := range o.cfg.ActiveCorrelations() {
			o.computeCorrelation(name, table, summaries, corrs, &diags)
			reporter.Step("correlations", name)
		}
	}

	var scatter map[string]map[string]*profile.ScatterData
	if n > 0 {
		scatter = collectScatter(table, types)
		if plan.Scatter > 0 {
			for i := 0; i < plan.Scatter; i++ {
				reporter.Step("scatter", "")
			}
		}
	}
	if scatter == nil {
		scatter = map[string]map[string]*profile.ScatterData{}
	}

	diagrams := make(map[string]*profile.MissingDiagram)
	if n > 0 {
		nWithMissing, nAllMissing := missingShape(table)
		for _, b := range o.builders {
			if !o.cfg.MissingDiagrams[b.Name()] || !missingEligible(b, nWithMissing, nAllMissing) {
				continue
			}
			diagram, err := b.Build(o.cfg, table)
			if err != nil {
				o.degrade(&diags, "missing", b.Name(), err)
			} else if diagram != nil {
				diagrams[b.Name()] = diagram
			}
			reporter.Step("missing", b.Name())
		}
	}

	sample := collectSample(o.cfg, table)
	reporter.Step("sample", "")

	duplicates, nDuplicates, pDuplicates := collectDuplicates(o.cfg, table, types)
	stats.MergeDuplicateMetrics(nDuplicates, pDuplicates)
	reporter.Step("duplicates", "")

	alertList, err := alerts.Assemble(o.cfg, stats, columnOrder, summaries, corrs)
	if err != nil {
		return nil, diags, errors.Wrap(err, "alert assembly failed")
	}
	reporter.Step("alerts", "")

	var timeIndex *profile.TimeIndexAnalysis
	if n > 0 && o.cfg.Vars.TimeSeries.Active {
		timeIndex = analyzeTimeIndex(table, types)
		if plan.TimeIndex > 0 {
			reporter.Step("timeindex", "")
		}
	}

	serialized, err := o.cfg.Serialize()
	if err != nil {
		return nil, diags, err
	}

	return &profile.Description{
		Analysis: profile.Analysis{
			ID:        core.ProfileID(core.NewID()),
			Title:     o.cfg.Title,
			DateStart: dateStart,
			DateEnd:   core.Now(),
		},
		Table:             stats,
		Variables:         summaries,
		ColumnOrder:       columnOrder,
		Correlations:      corrs,
		Scatter:           scatter,
		Missing:           diagrams,
		Alerts:            alertList,
		Sample:            sample,
		Duplicates:        duplicates,
		TimeIndexAnalysis: timeIndex,
		Package: profile.Package{
			Version: profile.Version,
			Config:  serialized,
		},
	}, diags, nil
}

// computeCorrelation runs one method, recording a diagnostic and omitting
// the matrix on failure. An unknown method name or a nil matrix leaves the
// method out silently the way an inapplicable method would.
func (o *Orchestrator) computeCorrelation(
	name string,
	table *dataset.Table,
	summaries map[string]profile.ColumnSummary,
	corrs map[string]*profile.CorrelationMatrix,
	diags *[]profile.Diagnostic,
) {
	calc, ok := o.calculators[name]
	if !ok {
		o.degrade(diags, "correlations", name, core.NewCorrelationError(name, core.ErrUnknownCorrelation))
		return
	}
	matrix, err := calc.Compute(o.cfg, table, summaries)
	if err != nil {
		o.degrade(diags, "correlations", name, core.NewCorrelationError(name, err))
		return
	}
	if matrix != nil && !matrix.IsEmpty() {
		corrs[name] = matrix
	}
}

// degrade logs a sub-task failure and records it as a diagnostic
func (o *Orchestrator) degrade(diags *[]profile.Diagnostic, stage, subject string, err error) {
	o.logger.Warn("%s: %s failed: %v (continuing without it)", stage, subject, err)
	*diags = append(*diags, profile.Diagnostic{
		Stage:   stage,
		Subject: subject,
		Err:     err,
		Message: fmt.Sprintf("%s %s skipped: %v", stage, subject, err),
	})
}

package describe

import (
	"errors"
	"math"
	"testing"

	"github.com/fade-color/ydata-profiling-zh/adapters/correlations"
	"github.com/fade-color/ydata-profiling-zh/adapters/summarize"
	"github.com/fade-color/ydata-profiling-zh/domain/alert"
	"github.com/fade-color/ydata-profiling-zh/domain/core"
	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
	"github.com/fade-color/ydata-profiling-zh/domain/profile"
	"github.com/fade-color/ydata-profiling-zh/internal/config"
	"github.com/fade-color/ydata-profiling-zh/internal/testkit"
	"github.com/fade-color/ydata-profiling-zh/ports"
)

func newTestOrchestrator(cfg *config.Settings) *Orchestrator {
	return NewOrchestrator(cfg, summarize.NewSummarizer(), summarize.NewClassifier())
}

func hasAlert(alerts []alert.Alert, kind alert.Type, column string) bool {
	for _, a := range alerts {
		if a.Type == kind && a.Column == column {
			return true
		}
	}
	return false
}

func TestDescribeFullPipeline(t *testing.T) {
	cfg := config.Default()
	table := testkit.Table(
		testkit.NumericColumn("id", testkit.Sequence(20)...),
		testkit.StringColumn("grade", "a", "b", "a", "b", "a", "b", "a", "b", "a", "b",
			"a", "b", "a", "b", "a", "b", "a", "b", "a", "b"),
		testkit.BoolColumn("active", true, true, true, true, true, true, true, true, true, true,
			true, true, true, true, true, true, true, true, true, false),
	)

	desc, diags, err := newTestOrchestrator(cfg).Describe(table)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}

	if desc.Table.N != 20 || desc.Table.NVar != 3 {
		t.Errorf("table stats = %+v", desc.Table)
	}
	if len(desc.Variables) != 3 {
		t.Fatalf("want 3 summaries, got %d", len(desc.Variables))
	}
	if got := desc.ColumnOrder; len(got) != 3 || got[0] != "id" || got[1] != "grade" || got[2] != "active" {
		t.Errorf("ColumnOrder = %v", got)
	}

	if desc.Variables["id"].Type() != profile.TypeNumeric {
		t.Errorf("id type = %s", desc.Variables["id"].Type())
	}
	if desc.Variables["grade"].Type() != profile.TypeCategorical {
		t.Errorf("grade type = %s", desc.Variables["grade"].Type())
	}
	if desc.Variables["active"].Type() != profile.TypeBoolean {
		t.Errorf("active type = %s", desc.Variables["active"].Type())
	}

	if !hasAlert(desc.Alerts, alert.Unique, "id") {
		t.Errorf("sequence column should flag UNIQUE, alerts = %v", desc.Alerts)
	}

	if len(desc.Sample.Head) != 10 || len(desc.Sample.Tail) != 10 {
		t.Errorf("sample sizes = %d head, %d tail", len(desc.Sample.Head), len(desc.Sample.Tail))
	}
	if desc.Package.Version != profile.Version {
		t.Errorf("package version = %q", desc.Package.Version)
	}
	if desc.Package.Config == "" {
		t.Error("serialized config missing from reproduction metadata")
	}

	// One interval column still gets its self-scatter
	if desc.Scatter["id"]["id"] == nil {
		t.Error("self-scatter for id missing")
	}
	if desc.Analysis.Duration() < 0 {
		t.Error("negative duration")
	}
}

func TestDescribeNilAndEmptyInput(t *testing.T) {
	cfg := config.Default()
	o := newTestOrchestrator(cfg)

	if _, _, err := o.Describe(nil); !errors.Is(err, core.ErrNoDataset) {
		t.Errorf("nil table: err = %v, want ErrNoDataset", err)
	}
	if _, _, err := o.Describe(dataset.NewTable(nil)); !errors.Is(err, core.ErrEmptyDataset) {
		t.Errorf("no columns: err = %v, want ErrEmptyDataset", err)
	}
}

func TestDescribeZeroRowsFlagsEmpty(t *testing.T) {
	cfg := config.Default()
	table := testkit.Table(
		dataset.Column{Name: "a"},
		dataset.Column{Name: "b"},
	)

	desc, _, err := newTestOrchestrator(cfg).Describe(table)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if len(desc.Alerts) != 1 || desc.Alerts[0].Type != alert.Empty {
		t.Errorf("zero-row table must yield exactly one EMPTY alert, got %v", desc.Alerts)
	}
	if len(desc.Correlations) != 0 {
		t.Errorf("no correlations expected on empty data, got %v", desc.Correlations)
	}
	if len(desc.Missing) != 0 {
		t.Errorf("no missing diagrams expected on empty data, got %v", desc.Missing)
	}
}

func TestDescribeHeatmapGating(t *testing.T) {
	cfg := config.Default()

	// One partially-missing column: bar and matrix render, heatmap does not
	one := testkit.Table(
		testkit.NumericColumn("a", 1, math.NaN(), 3, 4, 5),
		testkit.NumericColumn("b", 1, 2, 3, 4, 5),
		testkit.NumericColumn("c", 5, 4, 3, 2, 1),
	)
	desc, _, err := newTestOrchestrator(cfg).Describe(one)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if desc.Missing["bar"] == nil || desc.Missing["matrix"] == nil {
		t.Errorf("bar and matrix should always render, got %v", desc.Missing)
	}
	if desc.Missing["heatmap"] != nil {
		t.Error("heatmap needs two partially-missing columns")
	}

	// Two partially-missing columns plus one fully-missing: heatmap renders
	two := testkit.Table(
		testkit.NumericColumn("a", 1, math.NaN(), 3, 4, 5),
		testkit.NumericColumn("b", math.NaN(), 2, 3, math.NaN(), 5),
		testkit.MissingColumn("gone", 5),
	)
	desc, _, err = newTestOrchestrator(cfg).Describe(two)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if desc.Missing["heatmap"] == nil {
		t.Errorf("heatmap expected, got %v", desc.Missing)
	}
}

func TestDescribeHighCorrelationEndToEnd(t *testing.T) {
	cfg := config.Default()
	table := testkit.Table(
		testkit.NumericColumn("x", 1, 2, 3, 4, 5, 6, 7, 8, 9, 10),
		testkit.NumericColumn("y", 2, 4, 6, 8, 10, 12, 14, 16, 18, 20),
	)

	desc, _, err := newTestOrchestrator(cfg).Describe(table)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	for _, col := range []string{"x", "y"} {
		if !hasAlert(desc.Alerts, alert.HighCorrelation, col) {
			t.Errorf("column %s should carry a HIGH_CORRELATION alert, got %v", col, desc.Alerts)
		}
	}
	for _, a := range desc.Alerts {
		if a.Type == alert.HighCorrelation && a.Values["corr"] != "overall" {
			t.Errorf("consolidated alert corr = %v, want overall", a.Values["corr"])
		}
	}
}

func TestDescribeHighCardinalityEndToEnd(t *testing.T) {
	cfg := config.Default()
	table := testkit.Table(
		testkit.StringColumn("code", testkit.Labels("code-", 60)...),
	)

	desc, _, err := newTestOrchestrator(cfg).Describe(table)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if !hasAlert(desc.Alerts, alert.HighCardinality, "code") {
		t.Errorf("60 distinct categories should flag HIGH_CARDINALITY, got %v", desc.Alerts)
	}
	if !hasAlert(desc.Alerts, alert.Unique, "code") {
		t.Errorf("all-distinct column should flag UNIQUE, got %v", desc.Alerts)
	}
}

// failingCalculator always errors to exercise the degrade path
type failingCalculator struct{}

func (failingCalculator) Name() string { return "pearson" }

func (failingCalculator) Compute(*config.Settings, *dataset.Table, map[string]profile.ColumnSummary) (*profile.CorrelationMatrix, error) {
	return nil, errors.New("singular matrix")
}

func TestDescribeCorrelationFailureDegrades(t *testing.T) {
	cfg := config.Default()
	for name, corr := range cfg.Correlations {
		corr.Calculate = name == "pearson" || name == "spearman"
		cfg.Correlations[name] = corr
	}
	table := testkit.Table(
		testkit.NumericColumn("x", testkit.Sequence(10)...),
		testkit.NumericColumn("y", testkit.Sequence(10)...),
	)

	o := newTestOrchestrator(cfg).WithCalculators(map[string]ports.CorrelationCalculator{
		"pearson":  failingCalculator{},
		"spearman": correlations.NewSpearman(),
	})

	desc, diags, err := o.Describe(table)
	if err != nil {
		t.Fatalf("a failing method must not abort the run: %v", err)
	}
	if _, ok := desc.Correlations["pearson"]; ok {
		t.Error("failed method must be omitted from results")
	}
	if _, ok := desc.Correlations["spearman"]; !ok {
		t.Error("other methods must be unaffected by the failure")
	}

	found := false
	for _, d := range diags {
		if d.Stage == "correlations" && d.Subject == "pearson" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a pearson diagnostic, got %v", diags)
	}
}

// recordingReporter captures progress events for inspection
type recordingReporter struct {
	total int
	steps int
	ended bool
}

func (r *recordingReporter) Begin(total int)     { r.total = total }
func (r *recordingReporter) Step(string, string) { r.steps++ }
func (r *recordingReporter) End()                { r.ended = true }

func TestDescribeProgressPlanMatchesSteps(t *testing.T) {
	cfg := config.Default()
	cfg.ProgressBar = true
	table := testkit.Table(
		testkit.NumericColumn("x", testkit.Sequence(12)...),
		testkit.NumericColumn("y", 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1),
		testkit.StringColumn("label", testkit.Labels("v", 12)...),
	)

	rec := &recordingReporter{}
	_, _, err := newTestOrchestrator(cfg).WithReporter(rec).Describe(table)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}

	if rec.total == 0 {
		t.Fatal("Begin never called with a plan total")
	}
	if rec.steps != rec.total {
		t.Errorf("steps reported = %d, planned = %d", rec.steps, rec.total)
	}
	if !rec.ended {
		t.Error("End never called")
	}
}

func TestDescribeProgressDisabledByDefault(t *testing.T) {
	cfg := config.Default()
	table := testkit.Table(testkit.NumericColumn("x", testkit.Sequence(5)...))

	rec := &recordingReporter{}
	_, _, err := newTestOrchestrator(cfg).WithReporter(rec).Describe(table)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if rec.steps != 0 || rec.ended {
		t.Error("reporter must stay silent when progress is disabled")
	}
}

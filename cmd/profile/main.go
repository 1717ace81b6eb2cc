package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/fade-color/ydata-profiling-zh/adapters/summarize"
	"github.com/fade-color/ydata-profiling-zh/adapters/tabular"
	"github.com/fade-color/ydata-profiling-zh/internal"
	"github.com/fade-color/ydata-profiling-zh/internal/config"
	"github.com/fade-color/ydata-profiling-zh/internal/describe"
)

func main() {
	if err := godotenv.Load(); err != nil {
		internal.DefaultLogger.Debug("no .env file found, using system environment")
	}

	input := flag.String("input", "", "path to the CSV or XLSX file to profile")
	output := flag.String("output", "", "write the JSON description here instead of stdout")
	title := flag.String("title", "", "report title (overrides PROFILE_TITLE)")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: profile -input data.csv [-output report.json] [-title name]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		internal.DefaultLogger.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	if *title != "" {
		cfg.Title = *title
	}

	table, err := tabular.NewDataReader(*input).Read()
	if err != nil {
		internal.DefaultLogger.Error("failed to read %s: %v", *input, err)
		os.Exit(1)
	}

	orchestrator := describe.NewOrchestrator(cfg, summarize.NewSummarizer(), summarize.NewClassifier())
	if cfg.ProgressBar {
		orchestrator.WithReporter(newStderrReporter())
	}

	description, diags, err := orchestrator.Describe(table)
	if err != nil {
		internal.DefaultLogger.Error("profiling failed: %v", err)
		os.Exit(1)
	}
	for _, d := range diags {
		internal.DefaultLogger.Warn("%s", d.Message)
	}

	out, err := json.MarshalIndent(description, "", "  ")
	if err != nil {
		internal.DefaultLogger.Error("failed to encode description: %v", err)
		os.Exit(1)
	}

	if *output == "" {
		fmt.Println(string(out))
		return
	}
	if err := os.WriteFile(*output, out, 0o644); err != nil {
		internal.DefaultLogger.Error("failed to write %s: %v", *output, err)
		os.Exit(1)
	}
	internal.DefaultLogger.Info("description written to %s (%d alerts)", *output, len(description.Alerts))
}

// stderrReporter prints one line per completed pipeline step
type stderrReporter struct {
	total int
	done  int
}

func newStderrReporter() *stderrReporter {
	return &stderrReporter{}
}

func (r *stderrReporter) Begin(total int) {
	r.total = total
	r.done = 0
}

func (r *stderrReporter) Step(stage, detail string) {
	r.done++
	if detail != "" {
		fmt.Fprintf(os.Stderr, "[%d/%d] %s: %s\n", r.done, r.total, stage, detail)
		return
	}
	fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", r.done, r.total, stage)
}

func (r *stderrReporter) End() {
	fmt.Fprintf(os.Stderr, "done (%d steps)\n", r.done)
}

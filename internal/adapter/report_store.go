package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/buildmatrix/internal/model"
)

// ReportStore exports the report of a finished run.
type ReportStore interface {
	SaveReport(path m.Path, report m.Report) error
}

// LocalReportStore writes reports as YAML files.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

type reportYAML struct {
	RunID       string       `yaml:"run_id"`
	Started     time.Time    `yaml:"started"`
	Finished    time.Time    `yaml:"finished"`
	Passthrough []string     `yaml:"passthrough,omitempty"`
	Options     []optionYAML `yaml:"options"`
	Summary     summaryYAML  `yaml:"summary"`
	Results     []resultYAML `yaml:"results"`
}

type optionYAML struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values"`
}

type summaryYAML struct {
	Total    int `yaml:"total"`
	Passed   int `yaml:"passed"`
	Failed   int `yaml:"failed"`
	ExitCode int `yaml:"exit_code"`
}

type resultYAML struct {
	Index         int    `yaml:"index"`
	Configuration string `yaml:"configuration"`
	Outcome       string `yaml:"outcome"`
	ExitCode      int    `yaml:"exit_code"`
	Duration      string `yaml:"duration"`
	Output        string `yaml:"output,omitempty"`
}

// SaveReport writes the report to path, creating parent directories.
// Output is kept only for failed runs.
func (rs *LocalReportStore) SaveReport(path m.Path, report m.Report) error {
	doc := toReportYAML(report)

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

func toReportYAML(report m.Report) reportYAML {
	doc := reportYAML{
		RunID:       report.RunID,
		Started:     report.Started,
		Finished:    report.Finished,
		Passthrough: report.Passthrough,
		Options:     make([]optionYAML, 0, len(report.Options)),
		Results:     make([]resultYAML, 0, len(report.Results)),
		Summary: summaryYAML{
			Total:    len(report.Results),
			ExitCode: report.ExitCode,
		},
	}

	for _, opt := range report.Options {
		values := opt.Values
		if values == nil {
			values = []string{}
		}

		doc.Options = append(doc.Options, optionYAML{Name: opt.Name, Values: values})
	}

	for _, r := range report.Results {
		switch r.Outcome {
		case m.Passed:
			doc.Summary.Passed++
		case m.Failed:
			doc.Summary.Failed++
		}

		entry := resultYAML{
			Index:         r.Index,
			Configuration: r.Rendering,
			Outcome:       string(r.Outcome),
			ExitCode:      r.ExitCode,
			Duration:      r.Duration.Round(time.Millisecond).String(),
		}
		if r.Outcome == m.Failed {
			entry.Output = r.Output
		}

		doc.Results = append(doc.Results, entry)
	}

	return doc
}

package execution

import (
	"context"
	"fmt"
	"path/filepath"

	"dtr/internal/config"
	"dtr/internal/domain"
)

// ReportOptions control a single ReportGenerator invocation
type ReportOptions struct {
	ProjectFolder    string
	ProjectName      string
	Assembly         string
	CoverageFileName string
}

// Reporter invokes the external coverage report generator
type Reporter struct {
	config *config.Config
	runner ProcessRunner
}

// NewReporter creates a new Reporter
func NewReporter(cfg *config.Config, runner ProcessRunner) *Reporter {
	return &Reporter{config: cfg, runner: runner}
}

// BuildArgs assembles the ReportGenerator argument list. The assembly
// filter uses the tool's inclusion-prefix convention (+Name).
func (r *Reporter) BuildArgs(opts ReportOptions) []string {
	coverageFile := opts.CoverageFileName
	if coverageFile == "" {
		coverageFile = r.config.CoverageFileName
	}

	return []string{
		fmt.Sprintf("-reports:%s", filepath.Join(opts.ProjectFolder, coverageFile)),
		fmt.Sprintf("-targetdir:%s", filepath.Join(opts.ProjectFolder, r.config.ReportDir)),
		fmt.Sprintf("-title:%s", opts.ProjectName),
		fmt.Sprintf("-assemblyFilters:+%s", opts.Assembly),
	}
}

// Run executes ReportGenerator. Unlike the test runner, a non-zero exit
// here is a hard failure: report generation is the terminal, user-facing
// output of the pipeline.
func (r *Reporter) Run(ctx context.Context, opts ReportOptions) error {
	code, err := r.runner.Run(ctx, opts.ProjectFolder, r.config.ReportGeneratorPath, r.BuildArgs(opts)...)
	if err != nil || code != 0 {
		return &domain.ChildProcessError{Tool: r.config.ReportGeneratorPath, ExitCode: code, Err: err}
	}
	return nil
}

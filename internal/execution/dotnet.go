package execution

import (
	"context"
	"fmt"
	"path/filepath"

	"dtr/internal/config"
	"dtr/internal/domain"
)

// TestOptions control a single dotnet test invocation
type TestOptions struct {
	Filter          string
	Configuration   string
	CollectCoverage bool
	ListTests       bool
}

// Tester invokes the external test runner for one project
type Tester struct {
	config *config.Config
	runner ProcessRunner
}

// NewTester creates a new Tester
func NewTester(cfg *config.Config, runner ProcessRunner) *Tester {
	return &Tester{config: cfg, runner: runner}
}

// BuildArgs assembles the dotnet test argument list. Order matters:
// project path, logger, list-only, configuration, filter, collector.
func (t *Tester) BuildArgs(projectPath string, opts TestOptions) []string {
	args := []string{
		"test",
		projectPath,
		"--logger", fmt.Sprintf("trx;LogFileName=%s", t.config.LogFileName),
	}

	if opts.ListTests {
		args = append(args, "--list-tests")
	}
	if opts.Configuration != "" {
		args = append(args, "--configuration", opts.Configuration)
	}
	if opts.Filter != "" {
		args = append(args, "--filter", fmt.Sprintf("FullyQualifiedName~%s", opts.Filter))
	}
	if opts.CollectCoverage {
		args = append(args,
			"--collect", "XPlat Code Coverage",
			"--",
			fmt.Sprintf("DataCollectionRunSettings.DataCollectors.DataCollector.Configuration.Format=%s", t.config.CoverageFormat),
		)
	}

	return args
}

// Run executes dotnet test for the given project. A non-zero exit from
// the test runner is not an error here: downstream stages tolerate a
// missing or empty result file, so only a start failure is surfaced.
func (t *Tester) Run(ctx context.Context, projectPath string, opts TestOptions) (int, error) {
	abs, err := filepath.Abs(projectPath)
	if err != nil {
		abs = projectPath
	}

	code, runErr := t.runner.Run(ctx, filepath.Dir(abs), t.config.DotnetPath, t.BuildArgs(abs, opts)...)
	if runErr != nil && code < 0 {
		return code, &domain.ChildProcessError{Tool: t.config.DotnetPath, ExitCode: code, Err: runErr}
	}
	return code, nil
}

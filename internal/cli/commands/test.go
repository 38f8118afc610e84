package commands

import (
	"os"

	"dtr/internal/config"
	"dtr/internal/domain"
	"dtr/internal/execution"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// TestCommand handles the run-test-command command: a single test-runner
// invocation without the surrounding pipeline.
type TestCommand struct {
	config *config.Config
	tester *execution.Tester
}

// NewTestCommand creates a new TestCommand
func NewTestCommand(cfg *config.Config, tester *execution.Tester) *TestCommand {
	return &TestCommand{config: cfg, tester: tester}
}

// Execute runs the command
func (tc *TestCommand) Execute(cmd *cobra.Command, args []string) error {
	projectPath := tc.config.Flags.ProjectPath
	if projectPath == "" {
		return domain.MissingPath("--project-path")
	}
	if _, err := os.Stat(projectPath); err != nil {
		return domain.MissingPath(projectPath)
	}

	opts := execution.TestOptions{
		Filter:          tc.config.Flags.Filter,
		Configuration:   tc.config.Configuration,
		CollectCoverage: tc.config.Flags.CollectCoverage,
		ListTests:       tc.config.Flags.ListTests,
	}

	code, err := tc.tester.Run(cmd.Context(), projectPath, opts)
	if err != nil {
		return err
	}
	if code != 0 {
		color.Yellow("Test runner exited with code %d", code)
	}
	return nil
}

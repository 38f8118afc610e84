package commands

import (
	"os"

	"dtr/internal/config"
	"dtr/internal/domain"
	"dtr/internal/execution"

	"github.com/spf13/cobra"
)

// ReportCommand handles the generate-report command
type ReportCommand struct {
	config   *config.Config
	reporter *execution.Reporter
}

// NewReportCommand creates a new ReportCommand
func NewReportCommand(cfg *config.Config, reporter *execution.Reporter) *ReportCommand {
	return &ReportCommand{config: cfg, reporter: reporter}
}

// Execute runs the command
func (rc *ReportCommand) Execute(cmd *cobra.Command, args []string) error {
	flags := rc.config.Flags
	if flags.ProjectFolder == "" {
		return domain.MissingPath("--project-folder")
	}
	if _, err := os.Stat(flags.ProjectFolder); err != nil {
		return domain.MissingPath(flags.ProjectFolder)
	}

	return rc.reporter.Run(cmd.Context(), execution.ReportOptions{
		ProjectFolder:    flags.ProjectFolder,
		ProjectName:      flags.ProjectName,
		Assembly:         flags.Assembly,
		CoverageFileName: flags.CoverageFileName,
	})
}

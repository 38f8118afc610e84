package commands

import (
	"os"

	"dtr/internal/config"
	"dtr/internal/coverage"
	"dtr/internal/domain"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// CopyCommand handles the copy-coverage command
type CopyCommand struct {
	config *config.Config
	copier *coverage.Copier
}

// NewCopyCommand creates a new CopyCommand
func NewCopyCommand(cfg *config.Config, copier *coverage.Copier) *CopyCommand {
	return &CopyCommand{config: cfg, copier: copier}
}

// Execute runs the command
func (cc *CopyCommand) Execute(cmd *cobra.Command, args []string) error {
	folder := cc.config.Flags.ProjectFolder
	if folder == "" {
		return domain.MissingPath("--project-folder")
	}
	if _, err := os.Stat(folder); err != nil {
		return domain.MissingPath(folder)
	}

	copied, err := cc.copier.Copy(folder, cc.config.CoverageFileName)
	if err != nil {
		return err
	}

	if len(copied) == 0 {
		color.Yellow("No coverage artifact found under %s", folder)
		return nil
	}
	for _, dest := range copied {
		color.Green("Copied %s", dest)
	}
	return nil
}

package commands

import (
	"os"

	"dtr/internal/config"
	"dtr/internal/coverage"
	"dtr/internal/domain"

	"github.com/spf13/cobra"
)

// CleanCommand handles the clean-coverage command
type CleanCommand struct {
	config  *config.Config
	cleaner *coverage.Cleaner
}

// NewCleanCommand creates a new CleanCommand
func NewCleanCommand(cfg *config.Config, cleaner *coverage.Cleaner) *CleanCommand {
	return &CleanCommand{config: cfg, cleaner: cleaner}
}

// Execute runs the command
func (cc *CleanCommand) Execute(cmd *cobra.Command, args []string) error {
	folder := cc.config.Flags.ProjectFolder
	if folder == "" {
		return domain.MissingPath("--project-folder")
	}
	if _, err := os.Stat(folder); err != nil {
		return domain.MissingPath(folder)
	}

	return cc.cleaner.Clean(folder, cc.config.Flags.DryRun)
}

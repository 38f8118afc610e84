package commands

import (
	"dtr/internal/config"
	"dtr/internal/discovery"
	"dtr/internal/domain"
	"dtr/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// DiscoverCommand handles the discover-projects command
type DiscoverCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	selector  ui.Selector
	formatter *ui.Formatter
}

// NewDiscoverCommand creates a new DiscoverCommand
func NewDiscoverCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	selector ui.Selector,
	formatter *ui.Formatter,
) *DiscoverCommand {
	return &DiscoverCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		selector:  selector,
		formatter: formatter,
	}
}

// Execute runs the command
func (dc *DiscoverCommand) Execute(cmd *cobra.Command, args []string) error {
	projects, err := discoverProjects(dc.config, dc.scanner, dc.filter, dc.selector)
	if err != nil {
		return err
	}

	if len(projects) == 0 {
		color.Yellow("No test projects found")
		return nil
	}

	dc.formatter.PrintProjectList(projects, ".")
	return nil
}

// discoverProjects scans the working directory, applies the name filter
// and reduces the set via the selector. Shared by run-tests and
// discover-projects.
func discoverProjects(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	selector ui.Selector,
) ([]domain.Project, error) {
	projects, err := scanner.Scan(".")
	if err != nil {
		return nil, err
	}

	projects = filter.FilterByName(projects, cfg.Flags.ProjectNameFilter)

	return selector.Select(projects)
}

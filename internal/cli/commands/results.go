package commands

import (
	"dtr/internal/config"
	"dtr/internal/trx"
	"dtr/internal/ui"

	"github.com/spf13/cobra"
)

// ResultsCommand handles the show-results command
type ResultsCommand struct {
	config    *config.Config
	parser    *trx.Parser
	formatter *ui.Formatter
}

// NewResultsCommand creates a new ResultsCommand
func NewResultsCommand(cfg *config.Config, parser *trx.Parser, formatter *ui.Formatter) *ResultsCommand {
	return &ResultsCommand{config: cfg, parser: parser, formatter: formatter}
}

// Execute runs the command
func (rc *ResultsCommand) Execute(cmd *cobra.Command, args []string) error {
	records, err := rc.parser.Parse(rc.config.GetResultsPath())
	if err != nil {
		return err
	}

	rc.formatter.PrintResults(records)
	return nil
}

package commands

import (
	"dtr/internal/cli"
	"dtr/internal/config"
	"dtr/internal/coverage"
	"dtr/internal/discovery"
	"dtr/internal/execution"
	"dtr/internal/trx"
	"dtr/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	Discover *DiscoverCommand
	Clean    *CleanCommand
	Test     *TestCommand
	Results  *ResultsCommand
	Copy     *CopyCommand
	Report   *ReportCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner(cfg.ProjectSuffix, cfg.FoldersToIgnore)
	filter := discovery.NewFilter()
	selector := ui.NewModeSelector(cfg)
	runner := execution.NewExecRunner()
	tester := execution.NewTester(cfg, runner)
	reporter := execution.NewReporter(cfg, runner)
	cleaner := coverage.NewCleaner(cfg)
	copier := coverage.NewCopier(cfg)
	parser := trx.NewParser()
	formatter := ui.NewFormatter()

	return &Commands{
		Run:      NewRunCommand(cfg, scanner, filter, selector, cleaner, tester, parser, copier, reporter, formatter),
		Discover: NewDiscoverCommand(cfg, scanner, filter, selector, formatter),
		Clean:    NewCleanCommand(cfg, cleaner),
		Test:     NewTestCommand(cfg, tester),
		Results:  NewResultsCommand(cfg, parser, formatter),
		Copy:     NewCopyCommand(cfg, copier),
		Report:   NewReportCommand(cfg, reporter),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Update config with flags after parsing
	syncFlags := func(cmd *cobra.Command, args []string) error {
		cfg.Apply(flags.ToConfigFlags())
		return nil
	}

	// Run command: full pipeline
	runCmd := &cobra.Command{
		Use:     "run-tests",
		Short:   "Run the full test and coverage pipeline",
		Long:    "Discover test projects, run their tests with coverage collection and generate a coverage report per project",
		RunE:    c.Run.Execute,
		PreRunE: syncFlags,
	}
	runCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Run only tests whose fully qualified name contains this string")
	runCmd.Flags().BoolVar(&flags.ListTests, "list-tests", false, "List test cases instead of executing them")
	runCmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", false, "Pick the projects to run interactively")
	runCmd.Flags().StringVarP(&flags.ProjectNameFilter, "project-name-filter", "n", "", "Filter projects by name pattern (supports wildcards, e.g. '*Api*')")
	runCmd.Flags().StringVar(&flags.FoldersToIgnore, "folders-to-ignore", "", "Comma-separated folder names excluded from discovery (default bin,obj)")
	runCmd.Flags().BoolVar(&flags.ListTestResults, "list-test-results", false, "Print the parsed result table after each test run")
	runCmd.Flags().StringVarP(&flags.Configuration, "configuration", "c", "", "Build configuration passed to the test runner")
	runCmd.Flags().BoolVar(&flags.CollectCoverage, "collect-coverage", true, "Collect code coverage during the test run")
	runCmd.Flags().StringVar(&flags.ReportGeneratorPath, "report-generator-path", "", "Path to the ReportGenerator executable")
	rootCmd.AddCommand(runCmd)

	// Discover command
	discoverCmd := &cobra.Command{
		Use:     "discover-projects",
		Short:   "List discovered test projects",
		Long:    "Scan the working directory tree for test project files without running anything",
		RunE:    c.Discover.Execute,
		PreRunE: syncFlags,
	}
	discoverCmd.Flags().StringVarP(&flags.ProjectNameFilter, "project-name-filter", "n", "", "Filter projects by name pattern (supports wildcards, e.g. '*Api*')")
	discoverCmd.Flags().StringVar(&flags.FoldersToIgnore, "folders-to-ignore", "", "Comma-separated folder names excluded from discovery (default bin,obj)")
	discoverCmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", false, "Pick projects interactively and print only the selection")
	rootCmd.AddCommand(discoverCmd)

	// Clean command
	cleanCmd := &cobra.Command{
		Use:     "clean-coverage",
		Short:   "Delete a project's TestResults directory",
		RunE:    c.Clean.Execute,
		PreRunE: syncFlags,
	}
	cleanCmd.Flags().StringVar(&flags.ProjectFolder, "project-folder", "", "Project folder containing the TestResults directory")
	cleanCmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Report what would be deleted without deleting")
	rootCmd.AddCommand(cleanCmd)

	// Test command
	testCmd := &cobra.Command{
		Use:     "run-test-command",
		Short:   "Invoke the test runner for a single project",
		RunE:    c.Test.Execute,
		PreRunE: syncFlags,
	}
	testCmd.Flags().StringVar(&flags.ProjectPath, "project-path", "", "Path to the test project file")
	testCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Run only tests whose fully qualified name contains this string")
	testCmd.Flags().StringVarP(&flags.Configuration, "configuration", "c", "", "Build configuration passed to the test runner")
	testCmd.Flags().BoolVar(&flags.CollectCoverage, "collect-coverage", false, "Collect code coverage during the test run")
	testCmd.Flags().BoolVar(&flags.ListTests, "list-tests", false, "List test cases instead of executing them")
	rootCmd.AddCommand(testCmd)

	// Results command
	resultsCmd := &cobra.Command{
		Use:     "show-results",
		Short:   "Print the result table from a TRX file",
		RunE:    c.Results.Execute,
		PreRunE: syncFlags,
	}
	resultsCmd.Flags().StringVar(&flags.ResultsPath, "results-path", "", "Path to the TRX result file (default TestResults/DotNetTestLog.trx)")
	rootCmd.AddCommand(resultsCmd)

	// Copy command
	copyCmd := &cobra.Command{
		Use:     "copy-coverage",
		Short:   "Copy coverage artifacts out of TestResults",
		RunE:    c.Copy.Execute,
		PreRunE: syncFlags,
	}
	copyCmd.Flags().StringVar(&flags.ProjectFolder, "project-folder", "", "Project folder containing the TestResults directory")
	copyCmd.Flags().StringVar(&flags.CoverageFileName, "coverage-filename", "", "Coverage artifact filename to search for")
	rootCmd.AddCommand(copyCmd)

	// Report command
	reportCmd := &cobra.Command{
		Use:     "generate-report",
		Short:   "Generate a coverage report for a project",
		RunE:    c.Report.Execute,
		PreRunE: syncFlags,
	}
	reportCmd.Flags().StringVar(&flags.ProjectFolder, "project-folder", "", "Project folder containing the coverage artifact")
	reportCmd.Flags().StringVar(&flags.ProjectName, "project-name", "", "Report title")
	reportCmd.Flags().StringVar(&flags.Assembly, "assembly", "", "Assembly under test, used as inclusion filter")
	reportCmd.Flags().StringVar(&flags.CoverageFileName, "coverage-filename", "", "Coverage artifact filename")
	reportCmd.Flags().StringVar(&flags.ReportGeneratorPath, "report-generator-path", "", "Path to the ReportGenerator executable")
	_ = reportCmd.MarkFlagRequired("project-name")
	_ = reportCmd.MarkFlagRequired("assembly")
	rootCmd.AddCommand(reportCmd)
}

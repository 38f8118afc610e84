package config

const (
	// DefaultProjectSuffix is the filename suffix that marks a test project
	DefaultProjectSuffix = ".Test.csproj"
	// DefaultFoldersToIgnore is the comma-separated list of build output folders excluded from discovery
	DefaultFoldersToIgnore = "bin,obj"
	// DefaultDotnetPath is the test runner executable
	DefaultDotnetPath = "dotnet"
	// DefaultLogFileName is the result file the trx logger writes
	DefaultLogFileName = "DotNetTestLog.trx"
	// DefaultResultsDir is the directory the test runner writes under the project folder
	DefaultResultsDir = "TestResults"
	// DefaultCoverageFileName is the coverage artifact produced by the collector
	DefaultCoverageFileName = "coverage.opencover.xml"
	// DefaultReportDir is the directory ReportGenerator renders into
	DefaultReportDir = "CodeCoverage"
	// DefaultCoverageFormat is the collector output format passed after the run-settings separator
	DefaultCoverageFormat = "opencover"
)

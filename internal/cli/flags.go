package cli

import "dtr/internal/config"

// Flags holds command-line flags
type Flags struct {
	Filter              string
	Configuration       string
	ListTests           bool
	Interactive         bool
	ProjectNameFilter   string
	FoldersToIgnore     string
	ListTestResults     bool
	CollectCoverage     bool
	DryRun              bool
	ProjectFolder       string
	ProjectPath         string
	ProjectName         string
	Assembly            string
	ResultsPath         string
	CoverageFileName    string
	ReportGeneratorPath string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Filter:              f.Filter,
		Configuration:       f.Configuration,
		ListTests:           f.ListTests,
		Interactive:         f.Interactive,
		ProjectNameFilter:   f.ProjectNameFilter,
		FoldersToIgnore:     f.FoldersToIgnore,
		ListTestResults:     f.ListTestResults,
		CollectCoverage:     f.CollectCoverage,
		DryRun:              f.DryRun,
		ProjectFolder:       f.ProjectFolder,
		ProjectPath:         f.ProjectPath,
		ProjectName:         f.ProjectName,
		Assembly:            f.Assembly,
		ResultsPath:         f.ResultsPath,
		CoverageFileName:    f.CoverageFileName,
		ReportGeneratorPath: f.ReportGeneratorPath,
	}
}

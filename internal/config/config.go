package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Discovery settings
	ProjectSuffix   string
	FoldersToIgnore []string

	// External tool settings
	DotnetPath          string
	ReportGeneratorPath string
	Configuration       string

	// Artifact settings
	LogFileName      string
	ResultsDir       string
	CoverageFileName string
	ReportDir        string
	CoverageFormat   string

	// Command flags
	Flags Flags
}

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

// New creates a new Config with defaults, applying .env and environment
// overrides when present.
func New() *Config {
	// Optional; a missing .env is not an error
	_ = godotenv.Load()

	cfg := &Config{
		ProjectSuffix:       DefaultProjectSuffix,
		DotnetPath:          envOr("DOTNET_PATH", DefaultDotnetPath),
		ReportGeneratorPath: envOr("REPORT_GENERATOR_PATH", defaultReportGeneratorPath()),
		Configuration:       os.Getenv("TEST_CONFIGURATION"),
		LogFileName:         DefaultLogFileName,
		ResultsDir:          DefaultResultsDir,
		CoverageFileName:    DefaultCoverageFileName,
		ReportDir:           DefaultReportDir,
		CoverageFormat:      DefaultCoverageFormat,
	}
	cfg.FoldersToIgnore = splitFolders(envOr("FOLDERS_TO_IGNORE", DefaultFoldersToIgnore))
	return cfg
}

// Load creates a config and applies flag overrides
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Apply(flags)
	return cfg
}

// Apply stores the flags and lets non-empty values override the config
func (c *Config) Apply(flags Flags) {
	c.Flags = flags
	if flags.FoldersToIgnore != "" {
		c.FoldersToIgnore = splitFolders(flags.FoldersToIgnore)
	}
	if flags.Configuration != "" {
		c.Configuration = flags.Configuration
	}
	if flags.CoverageFileName != "" {
		c.CoverageFileName = flags.CoverageFileName
	}
	if flags.ReportGeneratorPath != "" {
		c.ReportGeneratorPath = flags.ReportGeneratorPath
	}
}

// GetResultsPath returns the result file path, using the flag if provided
func (c *Config) GetResultsPath() string {
	if c.Flags.ResultsPath != "" {
		return c.Flags.ResultsPath
	}
	return filepath.Join(c.ResultsDir, c.LogFileName)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// defaultReportGeneratorPath builds the per-user dotnet tools location
func defaultReportGeneratorPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "reportgenerator"
	}
	return filepath.Join(home, ".dotnet", "tools", "reportgenerator")
}

func splitFolders(list string) []string {
	var folders []string
	for _, f := range strings.Split(list, ",") {
		f = strings.TrimSpace(f)
		if f != "" {
			folders = append(folders, f)
		}
	}
	return folders
}

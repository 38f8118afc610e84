package ui

import (
	"fmt"
	"path/filepath"

	"dtr/internal/domain"

	"github.com/fatih/color"
)

// Formatter formats and displays output
type Formatter struct{}

// NewFormatter creates a new Formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// PrintProjectList prints discovered test projects
func (f *Formatter) PrintProjectList(projects []domain.Project, root string) {
	color.Green("Found %d test project(s):\n", len(projects))

	for i, project := range projects {
		relPath, err := filepath.Rel(root, project.Path)
		if err != nil {
			relPath = project.Path
		}

		if i == len(projects)-1 {
			color.Cyan("└── %s", relPath)
		} else {
			color.Cyan("├── %s", relPath)
		}
	}
}

// PrintResults prints a table of (outcome, name) pairs in document order
func (f *Formatter) PrintResults(records []domain.ResultRecord) {
	if len(records) == 0 {
		color.Yellow("No test results found")
		return
	}

	passed := 0
	failed := 0

	fmt.Println("┌──────────┬──────────────────────────────────────────────────────┐")
	fmt.Printf("│ %-8s │ %-52s │\n", "Outcome", "Test")
	fmt.Println("├──────────┼──────────────────────────────────────────────────────┤")

	for _, record := range records {
		name := record.Name
		if len(name) > 52 {
			name = name[:49] + "..."
		}

		fmt.Print("│ ")
		switch {
		case record.Passed():
			passed++
			color.Green("%-8s", record.Outcome)
		case record.Failed():
			failed++
			color.Red("%-8s", record.Outcome)
		default:
			color.Yellow("%-8s", record.Outcome)
		}
		fmt.Printf(" │ %-52s │\n", name)
	}

	fmt.Println("└──────────┴──────────────────────────────────────────────────────┘")

	fmt.Println()
	if failed == 0 {
		color.Green("✓ %d test(s), all passed", len(records))
	} else {
		color.Red("✗ %d of %d test(s) failed", failed, len(records))
	}
}

// PrintStage prints a pipeline stage banner for a project
func (f *Formatter) PrintStage(project domain.Project, stage string) {
	color.Cyan("\n[%s] %s", project.Name, stage)
}

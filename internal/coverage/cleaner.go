package coverage

import (
	"fmt"
	"os"
	"path/filepath"

	"dtr/internal/config"

	"github.com/fatih/color"
)

// Cleaner removes a project's previous test results directory
type Cleaner struct {
	config *config.Config
}

// NewCleaner creates a new Cleaner
func NewCleaner(cfg *config.Config) *Cleaner {
	return &Cleaner{config: cfg}
}

// Clean deletes <projectFolder>/TestResults recursively if it exists.
// No-op when absent, so the operation is idempotent. With dryRun the
// deletion is reported but not executed.
func (c *Cleaner) Clean(projectFolder string, dryRun bool) error {
	resultsDir := filepath.Join(projectFolder, c.config.ResultsDir)

	info, err := os.Stat(resultsDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat results dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", resultsDir)
	}

	if dryRun {
		color.Yellow("[dry-run] would remove %s", resultsDir)
		return nil
	}

	color.Yellow("Removing %s", resultsDir)
	if err := os.RemoveAll(resultsDir); err != nil {
		return fmt.Errorf("remove results dir: %w", err)
	}
	return nil
}

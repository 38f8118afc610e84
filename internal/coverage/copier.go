package coverage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dtr/internal/config"

	"github.com/fatih/color"
)

// Copier relocates coverage artifacts out of the test results tree
type Copier struct {
	config *config.Config
}

// NewCopier creates a new Copier
func NewCopier(cfg *config.Config) *Copier {
	return &Copier{config: cfg}
}

// Copy searches <projectFolder>/TestResults recursively for files whose
// name matches pattern (default: the configured coverage filename) and
// copies each to the project folder root under the same name,
// overwriting an existing copy. Zero matches is not an error. Returns
// the destination paths written.
func (c *Copier) Copy(projectFolder, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = c.config.CoverageFileName
	}
	pattern = strings.ToLower(pattern)

	resultsDir := filepath.Join(projectFolder, c.config.ResultsDir)
	if _, err := os.Stat(resultsDir); os.IsNotExist(err) {
		return nil, nil
	}

	var copied []string
	err := filepath.WalkDir(resultsDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		matched, matchErr := filepath.Match(pattern, strings.ToLower(d.Name()))
		if matchErr != nil || !matched {
			return matchErr
		}

		dest := filepath.Join(projectFolder, d.Name())
		if _, statErr := os.Stat(dest); statErr == nil {
			color.Yellow("Overwriting %s", dest)
		}
		if copyErr := copyFile(path, dest); copyErr != nil {
			return copyErr
		}
		copied = append(copied, dest)
		return nil
	})
	if err != nil {
		return copied, fmt.Errorf("copy coverage: %w", err)
	}
	return copied, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

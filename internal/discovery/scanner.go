package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dtr/internal/domain"
)

// Scanner scans a directory tree for test project files
type Scanner struct {
	suffix   string
	skipDirs map[string]bool
}

// NewScanner creates a Scanner matching the given filename suffix and
// skipping the given folder names wherever they appear as path segments
func NewScanner(suffix string, skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[strings.ToLower(dir)] = true
	}
	return &Scanner{suffix: strings.ToLower(suffix), skipDirs: skipMap}
}

// Scan finds all test project files under the given root directory
func (s *Scanner) Scan(root string) ([]domain.Project, error) {
	var projects []domain.Project

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan root does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			// Skip hidden directories (starting with .)
			if strings.HasPrefix(name, ".") && name != "." && name != ".." {
				return filepath.SkipDir
			}

			// Pruning here gives path-segment exclusion: nothing below
			// an ignored folder is ever visited
			if s.skipDirs[strings.ToLower(name)] {
				return filepath.SkipDir
			}

			return nil
		}

		if strings.HasSuffix(strings.ToLower(d.Name()), s.suffix) {
			projects = append(projects, domain.NewProject(path))
		}

		return nil
	})

	return projects, err
}

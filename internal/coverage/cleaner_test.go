package coverage

import (
	"os"
	"path/filepath"
	"testing"

	"dtr/internal/config"
)

func makeResultsDir(t *testing.T, projectFolder string) string {
	t.Helper()
	resultsDir := filepath.Join(projectFolder, "TestResults", "guid-1234")
	if err := os.MkdirAll(resultsDir, 0755); err != nil {
		t.Fatalf("failed to create results dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(resultsDir, "coverage.opencover.xml"), []byte("<xml/>"), 0644); err != nil {
		t.Fatalf("failed to create coverage file: %v", err)
	}
	return filepath.Join(projectFolder, "TestResults")
}

func TestCleaner_Clean(t *testing.T) {
	cleaner := NewCleaner(config.New())

	t.Run("removes results directory", func(t *testing.T) {
		folder := t.TempDir()
		resultsDir := makeResultsDir(t, folder)

		if err := cleaner.Clean(folder, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(resultsDir); !os.IsNotExist(err) {
			t.Error("results directory should be removed")
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		folder := t.TempDir()
		makeResultsDir(t, folder)

		if err := cleaner.Clean(folder, false); err != nil {
			t.Fatalf("first clean failed: %v", err)
		}
		if err := cleaner.Clean(folder, false); err != nil {
			t.Fatalf("second clean should be a no-op: %v", err)
		}
	})

	t.Run("no-op when absent", func(t *testing.T) {
		if err := cleaner.Clean(t.TempDir(), false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("dry run keeps directory", func(t *testing.T) {
		folder := t.TempDir()
		resultsDir := makeResultsDir(t, folder)

		if err := cleaner.Clean(folder, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(resultsDir); err != nil {
			t.Error("dry run should not delete the results directory")
		}
	})
}

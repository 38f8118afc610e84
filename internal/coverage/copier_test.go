package coverage

import (
	"os"
	"path/filepath"
	"testing"

	"dtr/internal/config"
)

func writeCoverage(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

func TestCopier_Copy(t *testing.T) {
	copier := NewCopier(config.New())

	t.Run("copies nested artifact to project root", func(t *testing.T) {
		folder := t.TempDir()
		writeCoverage(t, filepath.Join(folder, "TestResults", "guid-1", "coverage.opencover.xml"), "<nested/>")

		copied, err := copier.Copy(folder, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(copied) != 1 {
			t.Fatalf("expected 1 copy, got %d", len(copied))
		}

		data, err := os.ReadFile(filepath.Join(folder, "coverage.opencover.xml"))
		if err != nil {
			t.Fatalf("destination not written: %v", err)
		}
		if string(data) != "<nested/>" {
			t.Errorf("unexpected content: %s", data)
		}
	})

	t.Run("overwrites existing destination", func(t *testing.T) {
		folder := t.TempDir()
		writeCoverage(t, filepath.Join(folder, "coverage.opencover.xml"), "<old/>")
		writeCoverage(t, filepath.Join(folder, "TestResults", "deep", "deeper", "coverage.opencover.xml"), "<new/>")

		if _, err := copier.Copy(folder, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, _ := os.ReadFile(filepath.Join(folder, "coverage.opencover.xml"))
		if string(data) != "<new/>" {
			t.Errorf("destination should be overwritten, got %s", data)
		}
	})

	t.Run("zero matches leaves destination untouched", func(t *testing.T) {
		folder := t.TempDir()
		writeCoverage(t, filepath.Join(folder, "TestResults", "guid-1", "other.xml"), "<x/>")

		copied, err := copier.Copy(folder, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(copied) != 0 {
			t.Errorf("expected no copies, got %v", copied)
		}
		if _, err := os.Stat(filepath.Join(folder, "coverage.opencover.xml")); !os.IsNotExist(err) {
			t.Error("destination should not exist")
		}
	})

	t.Run("missing results directory is skipped", func(t *testing.T) {
		copied, err := copier.Copy(t.TempDir(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if copied != nil {
			t.Errorf("expected nil, got %v", copied)
		}
	})

	t.Run("wildcard pattern matches multiple files", func(t *testing.T) {
		folder := t.TempDir()
		writeCoverage(t, filepath.Join(folder, "TestResults", "a", "coverage.opencover.xml"), "<a/>")
		writeCoverage(t, filepath.Join(folder, "TestResults", "b", "coverage.cobertura.xml"), "<b/>")

		copied, err := copier.Copy(folder, "coverage.*.xml")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(copied) != 2 {
			t.Errorf("expected 2 copies, got %d", len(copied))
		}
	})
}

package trx

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"dtr/internal/domain"
)

const sampleTRX = `<?xml version="1.0" encoding="utf-8"?>
<TestRun id="aaaa" xmlns="http://microsoft.com/schemas/VisualStudio/TeamTest/2010">
  <Results>
    <UnitTestResult testName="Orders.Tests.CreateOrder_Succeeds" outcome="Passed" duration="00:00:00.0100000" />
    <UnitTestResult testName="Orders.Tests.CreateOrder_InvalidInput_Fails" outcome="Failed" duration="00:00:00.2000000" />
    <UnitTestResult testName="Orders.Tests.LegacyPath_Skipped" outcome="NotExecuted" />
  </Results>
</TestRun>`

func TestParser_Parse(t *testing.T) {
	parser := NewParser()

	t.Run("extracts records in document order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "DotNetTestLog.trx")
		if err := os.WriteFile(path, []byte(sampleTRX), 0644); err != nil {
			t.Fatalf("failed to write trx: %v", err)
		}

		records, err := parser.Parse(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(records) != 3 {
			t.Fatalf("expected 3 records, got %d", len(records))
		}

		expected := []domain.ResultRecord{
			{Name: "Orders.Tests.CreateOrder_Succeeds", Outcome: "Passed"},
			{Name: "Orders.Tests.CreateOrder_InvalidInput_Fails", Outcome: "Failed"},
			{Name: "Orders.Tests.LegacyPath_Skipped", Outcome: "NotExecuted"},
		}
		for i, want := range expected {
			if records[i] != want {
				t.Errorf("record %d: expected %+v, got %+v", i, want, records[i])
			}
		}

		if !records[0].Passed() || records[0].Failed() {
			t.Error("first record should be a pass")
		}
		if !records[1].Failed() {
			t.Error("second record should be a failure")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := parser.Parse(filepath.Join(t.TempDir(), "absent.trx"))
		if !errors.Is(err, domain.ErrMissingPath) {
			t.Errorf("expected ErrMissingPath, got %v", err)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.trx")
		if err := os.WriteFile(path, []byte("<TestRun><Results>"), 0644); err != nil {
			t.Fatalf("failed to write trx: %v", err)
		}

		_, err := parser.Parse(path)
		if !errors.Is(err, domain.ErrParseFailure) {
			t.Errorf("expected ErrParseFailure, got %v", err)
		}
	})

	t.Run("empty results", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.trx")
		if err := os.WriteFile(path, []byte(`<TestRun><Results></Results></TestRun>`), 0644); err != nil {
			t.Fatalf("failed to write trx: %v", err)
		}

		records, err := parser.Parse(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("expected no records, got %d", len(records))
		}
	})
}

// Package trx reads Visual Studio TRX result files, extracting one
// (name, outcome) record per executed test.
package trx

import (
	"encoding/xml"
	"fmt"
	"os"

	"dtr/internal/domain"
)

type testRun struct {
	XMLName xml.Name `xml:"TestRun"`
	Results struct {
		UnitTestResults []unitTestResult `xml:"UnitTestResult"`
	} `xml:"Results"`
}

type unitTestResult struct {
	TestName string `xml:"testName,attr"`
	Outcome  string `xml:"outcome,attr"`
}

// Parser parses TRX result files
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads the result file at path and returns its records in
// document order.
func (p *Parser) Parse(path string) ([]domain.ResultRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.MissingPath(path)
		}
		return nil, fmt.Errorf("read result file: %w", err)
	}

	var run testRun
	if err := xml.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrParseFailure, path, err)
	}

	records := make([]domain.ResultRecord, 0, len(run.Results.UnitTestResults))
	for _, r := range run.Results.UnitTestResults {
		records = append(records, domain.ResultRecord{Name: r.TestName, Outcome: r.Outcome})
	}
	return records, nil
}

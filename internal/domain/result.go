package domain

// ResultRecord is one test case's name and outcome, extracted from a
// structured result file. Read-only, display-only.
type ResultRecord struct {
	Name    string
	Outcome string
}

// Passed reports whether the record represents a passing test
func (r ResultRecord) Passed() bool {
	return r.Outcome == "Passed"
}

// Failed reports whether the record represents a failing test
func (r ResultRecord) Failed() bool {
	return r.Outcome == "Failed"
}

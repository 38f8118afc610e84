package discovery

import (
	"testing"

	"dtr/internal/domain"
)

func projectsFrom(paths ...string) []domain.Project {
	var projects []domain.Project
	for _, p := range paths {
		projects = append(projects, domain.NewProject(p))
	}
	return projects
}

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()
	projects := projectsFrom(
		"src/Orders.Test.csproj",
		"src/Payments.Test.csproj",
		"lib/OrdersApi.Test.csproj",
	)

	tests := []struct {
		name     string
		pattern  string
		expected int
	}{
		{"empty pattern returns all", "", 3},
		{"exact filename", "Orders.Test.csproj", 1},
		{"wildcard prefix", "*Api*", 1},
		{"wildcard both sides", "*Orders*", 2},
		{"substring without wildcards", "Payments", 1},
		{"case insensitive", "orders.test.csproj", 1},
		{"no match", "*Users*", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(projects, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d projects, got %d", tt.expected, len(result))
			}
		})
	}
}

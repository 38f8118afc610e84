package discovery

import (
	"path/filepath"
	"strings"

	"dtr/internal/domain"
)

// Filter filters projects by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters projects by name pattern using wildcard matching.
// Supports patterns like "*Api*" or "Orders.Test.csproj"; matching is
// case-insensitive against the filename.
func (f *Filter) FilterByName(projects []domain.Project, pattern string) []domain.Project {
	if pattern == "" {
		return projects
	}

	pattern = strings.ToLower(pattern)
	var filtered []domain.Project

	for _, project := range projects {
		name := strings.ToLower(filepath.Base(project.Path))

		matched, err := filepath.Match(pattern, name)
		if err == nil && matched {
			filtered = append(filtered, project)
			continue
		}

		if strings.ContainsAny(pattern, "*?") {
			// Fall back to matching every literal part between wildcards
			parts := strings.FieldsFunc(pattern, func(r rune) bool {
				return r == '*' || r == '?'
			})
			allMatch := len(parts) > 0
			for _, part := range parts {
				if !strings.Contains(name, part) {
					allMatch = false
					break
				}
			}
			if allMatch {
				filtered = append(filtered, project)
			}
			continue
		}

		// No wildcards: plain substring match
		if strings.Contains(name, pattern) {
			filtered = append(filtered, project)
		}
	}

	return filtered
}

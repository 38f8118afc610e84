package domain

import (
	"path/filepath"
	"strings"
)

// Project represents a discovered test project file
type Project struct {
	Path string // Full path to the .csproj file
	Name string // Project name (filename without extension)
}

// NewProject builds a Project from a csproj path
func NewProject(path string) Project {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return Project{Path: path, Name: name}
}

// Folder returns the directory containing the project file
func (p Project) Folder() string {
	return filepath.Dir(p.Path)
}

// Assembly returns the name of the assembly under test, derived by
// stripping a trailing .Test/.Tests segment from the project name.
func (p Project) Assembly() string {
	for _, suffix := range []string{".Tests", ".Test"} {
		if strings.HasSuffix(p.Name, suffix) {
			return strings.TrimSuffix(p.Name, suffix)
		}
	}
	return p.Name
}

package domain

import "testing"

func TestNewProject(t *testing.T) {
	p := NewProject("/work/src/Orders.Test.csproj")

	if p.Name != "Orders.Test" {
		t.Errorf("expected name Orders.Test, got %s", p.Name)
	}
	if p.Folder() != "/work/src" {
		t.Errorf("expected folder /work/src, got %s", p.Folder())
	}
}

func TestProject_Assembly(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/work/Orders.Test.csproj", "Orders"},
		{"/work/Orders.Tests.csproj", "Orders"},
		{"/work/Orders.csproj", "Orders"},
		{"/work/My.Lib.Test.csproj", "My.Lib"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p := NewProject(tt.path)
			if got := p.Assembly(); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

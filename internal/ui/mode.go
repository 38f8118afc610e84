package ui

import (
	"dtr/internal/config"
	"dtr/internal/domain"
)

// ModeSelector dispatches to the interactive or passthrough selector
// based on the run configuration, so commands can be wired once and
// still honor the --interactive flag parsed later.
type ModeSelector struct {
	config      *config.Config
	interactive Selector
	passthrough Selector
}

// NewModeSelector creates a ModeSelector over the given config
func NewModeSelector(cfg *config.Config) *ModeSelector {
	return &ModeSelector{
		config:      cfg,
		interactive: NewInteractiveSelector(),
		passthrough: NewPassthroughSelector(),
	}
}

// Select delegates to the selector matching the interactive flag
func (s *ModeSelector) Select(projects []domain.Project) ([]domain.Project, error) {
	if s.config.Flags.Interactive {
		return s.interactive.Select(projects)
	}
	return s.passthrough.Select(projects)
}

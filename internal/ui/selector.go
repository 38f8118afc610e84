package ui

import (
	"fmt"

	"dtr/internal/domain"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Selector reduces a candidate project set to the user's selection.
// The interactive implementation is the only human-in-the-loop step in
// the pipeline; automated runs use the passthrough.
type Selector interface {
	Select(projects []domain.Project) ([]domain.Project, error)
}

// PassthroughSelector returns the candidates unchanged
type PassthroughSelector struct{}

// NewPassthroughSelector creates a new PassthroughSelector
func NewPassthroughSelector() *PassthroughSelector {
	return &PassthroughSelector{}
}

// Select returns all candidates
func (s *PassthroughSelector) Select(projects []domain.Project) ([]domain.Project, error) {
	return projects, nil
}

// InteractiveSelector presents a multi-select TUI over the candidates
type InteractiveSelector struct{}

// NewInteractiveSelector creates a new InteractiveSelector
func NewInteractiveSelector() *InteractiveSelector {
	return &InteractiveSelector{}
}

// Select shows the candidates in a checkbox list. Space toggles an
// entry, 'a' toggles all, Enter confirms, Esc or 'q' cancels. Cancelling
// or confirming an empty selection yields an empty result set.
func (s *InteractiveSelector) Select(projects []domain.Project) ([]domain.Project, error) {
	if len(projects) == 0 {
		return nil, nil
	}

	checked := make([]bool, len(projects))
	for i := range checked {
		checked[i] = true
	}
	confirmed := false

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetBorder(true).
		SetTitle(" Select test projects (space: toggle, a: all, enter: run, q: cancel) ")
	list.SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	itemText := func(i int) string {
		mark := "[ ]"
		if checked[i] {
			mark = "[x]"
		}
		return fmt.Sprintf("%s %s", mark, projects[i].Path)
	}

	for i := range projects {
		list.AddItem(itemText(i), "", 0, nil)
	}

	refresh := func() {
		for i := range projects {
			list.SetItemText(i, itemText(i), "")
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEnter:
			confirmed = true
			app.Stop()
			return nil
		case event.Key() == tcell.KeyEscape || event.Rune() == 'q':
			app.Stop()
			return nil
		case event.Rune() == ' ':
			i := list.GetCurrentItem()
			checked[i] = !checked[i]
			refresh()
			return nil
		case event.Rune() == 'a':
			allChecked := true
			for _, c := range checked {
				if !c {
					allChecked = false
					break
				}
			}
			for i := range checked {
				checked[i] = !allChecked
			}
			refresh()
			return nil
		}
		return event
	})

	if err := app.SetRoot(list, true).Run(); err != nil {
		return nil, fmt.Errorf("selection ui: %w", err)
	}

	if !confirmed {
		return nil, nil
	}

	var selected []domain.Project
	for i, project := range projects {
		if checked[i] {
			selected = append(selected, project)
		}
	}
	return selected, nil
}

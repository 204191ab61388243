package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrSelectionAborted is returned when the user quits the selector without
// picking an entry.
var ErrSelectionAborted = errors.New("selection aborted")

type model struct {
	choices  []string
	cursor   int
	selected bool
	aborted  bool
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case "enter":
			m.selected = true
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	s := "Multiple binaries found, choose one:\n\n"
	for i, choice := range m.choices {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		s += cursor + " " + choice + "\n"
	}
	return s
}

// SelectEntrypoint presents the candidate source files and returns the one
// the user picks. Quitting without a pick yields ErrSelectionAborted.
func SelectEntrypoint(candidates []string) (string, error) {
	p := tea.NewProgram(model{choices: candidates})
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	m := final.(model)
	if m.aborted || !m.selected {
		return "", ErrSelectionAborted
	}
	return m.choices[m.cursor], nil
}

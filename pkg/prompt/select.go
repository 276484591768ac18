package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// selectModel represents the Bubble Tea model for option selection.
type selectModel struct {
	title    string
	options  []string
	filtered []string
	cursor   int
	filter   string
	selected string
	done     bool
	quitting bool
}

// initialSelectModel creates a new select model.
func initialSelectModel(title string, options []string) selectModel {
	return selectModel{
		title:    title,
		options:  options,
		filtered: options,
	}
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := keyMsg.String(); key {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
			m.selected = m.filtered[m.cursor]
			m.done = true
			return m, tea.Quit
		}
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "ctrl+n":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case "backspace":
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.applyFilter()
		}
	case "esc":
		m.filter = ""
		m.applyFilter()
	default:
		if len(key) == 1 {
			m.filter += key
			m.applyFilter()
		}
	}

	return m, nil
}

// applyFilter recomputes the filtered options from the current filter.
func (m *selectModel) applyFilter() {
	if m.filter == "" {
		m.filtered = m.options
	} else {
		filterLower := strings.ToLower(m.filter)
		m.filtered = nil
		for _, option := range m.options {
			if strings.Contains(strings.ToLower(option), filterLower) {
				m.filtered = append(m.filtered, option)
			}
		}
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

// View renders the UI.
func (m selectModel) View() string {
	if m.done || m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(fmt.Sprintf("? %s  [Use arrows to move, type to filter]\n\n", m.title))

	if m.filter != "" {
		s.WriteString(fmt.Sprintf("Filter: %s\n\n", m.filter))
	}

	for i, option := range m.filtered {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		s.WriteString(fmt.Sprintf("%s %s\n", cursor, option))
	}

	s.WriteString("\nPress Enter to select, Ctrl+C or q to quit")
	if m.filter != "" {
		s.WriteString(", Esc to clear filter")
	}

	return s.String()
}

// selectBubbleTea runs the Bubble Tea program for option selection.
func selectBubbleTea(title string, options []string) (string, error) {
	p := tea.NewProgram(initialSelectModel(title, options))

	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("failed to run selection program: %w", err)
	}

	model, ok := finalModel.(selectModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type")
	}

	if !model.done {
		return "", ErrNoSelection
	}

	return model.selected, nil
}

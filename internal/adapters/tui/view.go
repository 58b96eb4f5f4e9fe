package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen11/todoapp/internal/domain/todo"
)

var (
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")).MarginBottom(1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	doneStyle   = dimStyle.Strikethrough(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	errorStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(0, 1)
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// View renders the board.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Todo List"))
	b.WriteString("\n")

	if m.adding {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}

	if msg := m.board.Err(); msg != "" {
		b.WriteString(errorStyle.Render(msg + dimStyle.Render("  (x to dismiss)")))
		b.WriteString("\n")
	}

	switch {
	case m.board.Loading():
		b.WriteString(boxStyle.Render("Loading…"))
	case m.board.Len() == 0:
		b.WriteString(boxStyle.Render("No todos yet. Press a to add one."))
	default:
		b.WriteString(m.renderItems())
	}
	b.WriteString("\n\n")

	if m.adding {
		b.WriteString(m.help.View(inputKeys{m.keys}))
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	b.WriteString("\n")

	return b.String()
}

func (m *Model) renderItems() string {
	var b strings.Builder
	cursor := m.board.Cursor()

	for i, t := range m.board.Items() {
		pointer := "  "
		if i == cursor {
			pointer = cursorStyle.Render("> ")
		}
		b.WriteString(pointer)
		b.WriteString(renderItem(t))
		if i < m.board.Len()-1 {
			b.WriteString("\n")
		}
	}

	done := 0
	for _, t := range m.board.Items() {
		if t.Completed {
			done++
		}
	}
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d of %d done", done, m.board.Len())))

	return b.String()
}

func renderItem(t todo.Todo) string {
	check := "[ ]"
	title := t.Title
	if t.Completed {
		check = accentStyle.Render("[x]")
		title = doneStyle.Render(title)
	}

	line := check + " " + title
	if t.Description != nil && *t.Description != "" {
		line += dimStyle.Render(" · " + *t.Description)
	}
	return line
}

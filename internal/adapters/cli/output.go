package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jsamuelsen11/todoapp/internal/domain/todo"
)

const timeLayout = "2006-01-02 15:04"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// outputTodo is the --json shape, matching the API's.
type outputTodo struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toOutputList(todos []todo.Todo) []outputTodo {
	out := make([]outputTodo, 0, len(todos))
	for _, t := range todos {
		out = append(out, outputTodo(t))
	}
	return out
}

func renderTable(todos []todo.Todo) string {
	rows := make([][]string, 0, len(todos))
	for _, t := range todos {
		rows = append(rows, []string{
			strconv.FormatInt(t.ID, 10),
			checkbox(t.Completed),
			t.Title,
			deref(t.Description),
			t.CreatedAt.Local().Format(timeLayout),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "DONE", "TITLE", "DESCRIPTION", "CREATED").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}

func renderDetail(t todo.Todo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s %s\n", t.ID, checkbox(t.Completed), t.Title)
	if t.Description != nil {
		fmt.Fprintf(&b, "  %s\n", *t.Description)
	}
	fmt.Fprintf(&b, "  created %s, updated %s\n",
		t.CreatedAt.Local().Format(timeLayout),
		t.UpdatedAt.Local().Format(timeLayout),
	)
	return b.String()
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

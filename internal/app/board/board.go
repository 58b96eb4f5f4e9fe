// Package board holds the client's view of the todo list. It mirrors the
// server's last List result and changes only when the server confirms a
// mutation, so a failed request leaves it untouched and nothing has to be
// rolled back.
//
// Board is not safe for concurrent use. The terminal UI owns one and
// applies every result message to it from its update loop.
package board

import (
	"strings"

	"github.com/jsamuelsen11/todoapp/internal/domain/todo"
)

// Operation names passed to Failed.
const (
	OpLoad   = "load todos"
	OpAdd    = "add todo"
	OpToggle = "update todo"
	OpDelete = "delete todo"
)

// Board is the client's local todo state plus a cursor and at most one
// error message.
type Board struct {
	items   []todo.Todo
	cursor  int
	err     string
	loading bool
}

// New returns an empty board waiting for its first load.
func New() *Board {
	return &Board{loading: true}
}

// Loaded replaces the items with a fresh List result and clears any error.
func (b *Board) Loaded(items []todo.Todo) {
	b.items = append([]todo.Todo(nil), items...)
	b.loading = false
	b.err = ""
	b.clamp()
}

// Added prepends a created todo and moves the cursor onto it.
func (b *Board) Added(t todo.Todo) {
	b.items = append([]todo.Todo{t}, b.items...)
	b.cursor = 0
}

// Toggled replaces the item with the same ID. An unknown ID is ignored.
func (b *Board) Toggled(t todo.Todo) {
	for i := range b.items {
		if b.items[i].ID == t.ID {
			b.items[i] = t
			return
		}
	}
}

// Removed drops the item with the given ID and keeps the cursor in range.
func (b *Board) Removed(id int64) {
	for i := range b.items {
		if b.items[i].ID == id {
			b.items = append(b.items[:i], b.items[i+1:]...)
			break
		}
	}
	b.clamp()
}

// Failed records the error message for op. Items are left as they were.
func (b *Board) Failed(op string, err error) {
	b.loading = false

	msg := ""
	if err != nil {
		msg = err.Error()
	}
	if msg == "" {
		msg = "failed to " + op
	}
	b.err = msg
}

// Dismiss clears the error message.
func (b *Board) Dismiss() {
	b.err = ""
}

// Items returns a copy of the current items in display order.
func (b *Board) Items() []todo.Todo {
	return append([]todo.Todo(nil), b.items...)
}

// Len returns the number of items.
func (b *Board) Len() int {
	return len(b.items)
}

// Err returns the current error message, or "" when there is none.
func (b *Board) Err() string {
	return b.err
}

// Loading reports whether the first load is still outstanding.
func (b *Board) Loading() bool {
	return b.loading
}

// Cursor returns the index of the highlighted item.
func (b *Board) Cursor() int {
	return b.cursor
}

// Selected returns the highlighted item, or false on an empty board.
func (b *Board) Selected() (todo.Todo, bool) {
	if len(b.items) == 0 {
		return todo.Todo{}, false
	}
	return b.items[b.cursor], true
}

// MoveUp moves the cursor up one item, stopping at the top.
func (b *Board) MoveUp() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// MoveDown moves the cursor down one item, stopping at the bottom.
func (b *Board) MoveDown() {
	if b.cursor < len(b.items)-1 {
		b.cursor++
	}
}

func (b *Board) clamp() {
	switch {
	case len(b.items) == 0:
		b.cursor = 0
	case b.cursor >= len(b.items):
		b.cursor = len(b.items) - 1
	}
}

// Draft builds the create input for a title typed by the user. Blank titles
// are rejected so no request is made for them.
func Draft(title string) (todo.NewTodo, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return todo.NewTodo{}, false
	}
	return todo.NewTodo{Title: title}, true
}

// TogglePatch is the update that flips t's completed flag.
func TogglePatch(t todo.Todo) todo.Patch {
	completed := !t.Completed
	return todo.Patch{Completed: &completed}
}

package ports

import (
	"context"

	"github.com/jsamuelsen11/todoapp/internal/domain/todo"
)

// TodoClient defines the client port for the remote todo API.
// Implemented by the todoapi adapter; called by the client application
// (CLI commands and the terminal UI). Methods map 1:1 to API endpoints.
type TodoClient interface {
	// ListTodos returns every todo, most recently created first.
	ListTodos(ctx context.Context) ([]todo.Todo, error)

	// GetTodo returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, id int64) (*todo.Todo, error)

	// CreateTodo creates a new todo and returns the created entity.
	// Returns domain.ErrValidation if the API rejects the input.
	CreateTodo(ctx context.Context, in todo.NewTodo) (*todo.Todo, error)

	// UpdateTodo sends a partial update and returns the refreshed entity.
	// Returns domain.ErrNotFound if the todo does not exist.
	UpdateTodo(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, error)

	// DeleteTodo deletes a todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	DeleteTodo(ctx context.Context, id int64) error
}

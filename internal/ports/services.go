package ports

import (
	"context"

	"github.com/jsamuelsen11/todoapp/internal/domain/todo"
)

// TodoService defines the service port for todo operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type TodoService interface {
	// ListTodos returns all todos, most recently created first.
	ListTodos(ctx context.Context) ([]todo.Todo, error)

	// GetTodo returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, id int64) (*todo.Todo, error)

	// CreateTodo creates a new todo and returns the created entity
	// with server-assigned fields (ID, timestamps).
	// Returns domain.ErrValidation if the input fails validation.
	CreateTodo(ctx context.Context, in todo.NewTodo) (*todo.Todo, error)

	// UpdateTodo applies a partial update and returns the refreshed entity.
	// Returns domain.ErrValidation if a supplied field fails validation.
	// Returns domain.ErrNotFound if the todo does not exist.
	UpdateTodo(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, error)

	// DeleteTodo deletes a todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	DeleteTodo(ctx context.Context, id int64) error
}

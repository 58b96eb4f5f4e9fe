package ports

import (
	"context"

	"github.com/jsamuelsen11/todoapp/internal/domain/todo"
)

// TodoRepository is the data-access port for Todo records.
// Implemented by the persistence adapter; passed explicitly to the service.
// Input is assumed to be validated by the caller.
type TodoRepository interface {
	// List returns every todo, most recently created first.
	List(ctx context.Context) ([]todo.Todo, error)

	// Get returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	Get(ctx context.Context, id int64) (*todo.Todo, error)

	// Create inserts a new todo and returns it with the store-assigned ID
	// and timestamps.
	Create(ctx context.Context, in todo.NewTodo) (*todo.Todo, error)

	// Update applies the supplied fields and returns the refreshed record.
	// Returns domain.ErrNotFound if the todo does not exist.
	Update(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, error)

	// Delete removes a todo permanently.
	// Returns domain.ErrNotFound if the todo does not exist.
	Delete(ctx context.Context, id int64) error
}

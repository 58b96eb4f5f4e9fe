// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/todoapp/internal/domain"
	"github.com/jsamuelsen11/todoapp/internal/domain/todo"
	"github.com/jsamuelsen11/todoapp/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService on top of a TodoRepository. It
// validates input before it reaches the store and logs failures; it contains
// no persistence logic of its own.
type TodoService struct {
	repo   ports.TodoRepository
	logger *slog.Logger
}

// NewTodoService creates a TodoService. A nil logger discards output.
func NewTodoService(repo ports.TodoRepository, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		repo:   repo,
		logger: logger,
	}
}

// ListTodos returns all todos, most recently created first.
func (s *TodoService) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	s.logger.DebugContext(ctx, "listing todos")

	todos, err := s.repo.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todos",
			slog.String("operation", "ListTodos"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return todos, nil
}

// GetTodo returns a single todo by ID.
func (s *TodoService) GetTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	s.logger.DebugContext(ctx, "fetching todo", slog.Int64("id", id))

	td, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logFailure(ctx, "GetTodo", id, err)
		return nil, err
	}

	return td, nil
}

// CreateTodo validates and creates a new todo.
func (s *TodoService) CreateTodo(ctx context.Context, in todo.NewTodo) (*todo.Todo, error) {
	if err := todo.ValidateNew(in); err != nil {
		s.logger.InfoContext(ctx, "rejected todo",
			slog.String("operation", "CreateTodo"),
			slog.Any("error", err),
		)
		return nil, err
	}

	created, err := s.repo.Create(ctx, in)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create todo",
			slog.String("operation", "CreateTodo"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "created todo", slog.Int64("id", created.ID))
	return created, nil
}

// UpdateTodo validates the supplied fields and applies them. An empty patch
// returns the current record unchanged.
func (s *TodoService) UpdateTodo(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, error) {
	if err := todo.ValidatePatch(patch); err != nil {
		s.logger.InfoContext(ctx, "rejected todo update",
			slog.String("operation", "UpdateTodo"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	if patch.Empty() {
		return s.GetTodo(ctx, id)
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		s.logFailure(ctx, "UpdateTodo", id, err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "updated todo", slog.Int64("id", id))
	return updated, nil
}

// DeleteTodo deletes a todo by ID.
func (s *TodoService) DeleteTodo(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logFailure(ctx, "DeleteTodo", id, err)
		return err
	}

	s.logger.InfoContext(ctx, "deleted todo", slog.Int64("id", id))
	return nil
}

// logFailure logs missing records at Warn and everything else at Error.
func (s *TodoService) logFailure(ctx context.Context, op string, id int64, err error) {
	level := slog.LevelError
	if errors.Is(err, domain.ErrNotFound) {
		level = slog.LevelWarn
	}
	s.logger.LogAttrs(ctx, level, "todo operation failed",
		slog.String("operation", op),
		slog.Int64("id", id),
		slog.Any("error", err),
	)
}

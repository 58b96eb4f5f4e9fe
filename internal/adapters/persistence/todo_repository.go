// Package persistence implements the todo repository port on top of gorm.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/todoapp/internal/domain"
	"github.com/jsamuelsen11/todoapp/internal/domain/todo"
	"github.com/jsamuelsen11/todoapp/internal/platform/metrics"
	"github.com/jsamuelsen11/todoapp/internal/ports"
)

// Compile-time check that TodoRepository implements ports.TodoRepository.
var _ ports.TodoRepository = (*TodoRepository)(nil)

// TodoRepository stores todos in a relational table through gorm.
type TodoRepository struct {
	db      *gorm.DB
	metrics *metrics.StoreMetrics
}

// NewTodoRepository creates a repository over db. metrics may be nil.
func NewTodoRepository(db *gorm.DB, m *metrics.StoreMetrics) *TodoRepository {
	return &TodoRepository{db: db, metrics: m}
}

// Migrate creates or updates the todos table.
func (r *TodoRepository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&todoRow{}); err != nil {
		return fmt.Errorf("migrating todos table: %w", err)
	}
	return nil
}

// List returns every todo, newest first. Rows created in the same instant are
// ordered by id so the result is deterministic.
func (r *TodoRepository) List(ctx context.Context) (_ []todo.Todo, err error) {
	defer r.observe("list", time.Now(), &err)

	var rows []todoRow
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}

	todos := make([]todo.Todo, len(rows))
	for i := range rows {
		todos[i] = rows[i].toDomain()
	}
	return todos, nil
}

// Get returns one todo or a not-found error.
func (r *TodoRepository) Get(ctx context.Context, id int64) (_ *todo.Todo, err error) {
	defer r.observe("get", time.Now(), &err)

	row, err := first(r.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}

	td := row.toDomain()
	return &td, nil
}

// Create inserts a todo. The store assigns ID and both timestamps.
func (r *TodoRepository) Create(ctx context.Context, in todo.NewTodo) (_ *todo.Todo, err error) {
	defer r.observe("create", time.Now(), &err)

	row := todoRow{
		Title:       in.Title,
		Description: in.Description,
		Completed:   in.Completed,
	}
	db := r.db.WithContext(ctx)
	if err := db.Create(&row).Error; err != nil {
		return nil, fmt.Errorf("creating todo: %w", err)
	}

	// Answer with what the column holds, not the in-memory clock value.
	stored, err := first(db, row.ID)
	if err != nil {
		return nil, err
	}

	td := stored.toDomain()
	return &td, nil
}

// Update applies the supplied columns inside a transaction and returns the
// re-read row. updated_at is refreshed by gorm.
func (r *TodoRepository) Update(ctx context.Context, id int64, patch todo.Patch) (_ *todo.Todo, err error) {
	defer r.observe("update", time.Now(), &err)

	var updated todoRow
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := first(tx, id)
		if err != nil {
			return err
		}

		if cols := patchColumns(patch); len(cols) > 0 {
			if err := tx.Model(row).Updates(cols).Error; err != nil {
				return fmt.Errorf("updating todo %d: %w", id, err)
			}
		}

		row, err = first(tx, id)
		if err != nil {
			return err
		}
		updated = *row
		return nil
	})
	if err != nil {
		return nil, err
	}

	td := updated.toDomain()
	return &td, nil
}

// Delete removes a todo permanently.
func (r *TodoRepository) Delete(ctx context.Context, id int64) (err error) {
	defer r.observe("delete", time.Now(), &err)

	res := r.db.WithContext(ctx).Delete(&todoRow{}, id)
	if res.Error != nil {
		return fmt.Errorf("deleting todo %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return todo.NotFound(id)
	}
	return nil
}

func first(db *gorm.DB, id int64) (*todoRow, error) {
	var row todoRow
	if err := db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, todo.NotFound(id)
		}
		return nil, fmt.Errorf("fetching todo %d: %w", id, err)
	}
	return &row, nil
}

func (r *TodoRepository) observe(op string, start time.Time, err *error) {
	r.metrics.Observe(op, resultLabel(*err), time.Since(start))
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}

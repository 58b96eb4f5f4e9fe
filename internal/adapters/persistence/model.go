package persistence

import (
	"time"

	"github.com/jsamuelsen11/todoapp/internal/domain/todo"
)

// todoRow is the gorm model for the todos table. Deletes are hard deletes, so
// there is no DeletedAt column.
type todoRow struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"size:255;not null"`
	Description *string   `gorm:"type:text"`
	Completed   bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null;index"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (todoRow) TableName() string {
	return "todos"
}

func (r *todoRow) toDomain() todo.Todo {
	return todo.Todo{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

// patchColumns maps the supplied patch fields to column updates.
func patchColumns(p todo.Patch) map[string]any {
	cols := make(map[string]any, 3)
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.DescriptionSet {
		if p.Description == nil {
			cols["description"] = nil
		} else {
			cols["description"] = *p.Description
		}
	}
	if p.Completed != nil {
		cols["completed"] = *p.Completed
	}
	return cols
}

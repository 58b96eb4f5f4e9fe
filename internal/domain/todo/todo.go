// Package todo defines the Todo entity and the input shapes accepted when
// creating and updating one.
package todo

import (
	"time"

	"github.com/jsamuelsen11/todoapp/internal/domain"
)

// Field limits. TitleMaxLen matches the VARCHAR(255) column; DescriptionMaxLen
// matches a TEXT column.
const (
	TitleMaxLen       = 255
	DescriptionMaxLen = 65535
)

// EntityName is used in not-found messages.
const EntityName = "todo"

// Todo represents a single task.
type Todo struct {
	ID          int64
	Title       string
	Description *string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTodo is the input for creating a Todo. The store assigns ID and timestamps.
type NewTodo struct {
	Title       string
	Description *string
	Completed   bool
}

// Patch is a partial update. A nil field is left unchanged.
//
// Description is doubly optional: DescriptionSet reports whether the caller
// supplied the field at all, and a nil Description with DescriptionSet true
// clears it.
type Patch struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Completed      *bool
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Title == nil && !p.DescriptionSet && p.Completed == nil
}

// Apply returns a copy of t with the patch applied. Timestamps are left for
// the store to maintain.
func (p Patch) Apply(t Todo) Todo {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.DescriptionSet {
		t.Description = p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	return t
}

// ValidateNew checks the rules for creating a Todo.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field
// details, or nil if all rules pass.
func ValidateNew(in NewTodo) error {
	return domain.Validate(
		domain.Required("title", in.Title),
		domain.MaxLen("title", in.Title, TitleMaxLen),
		domain.Optional(in.Description, description),
	)
}

// ValidatePatch checks the rules for a partial update. Supplied fields follow
// the same rules as ValidateNew.
func ValidatePatch(p Patch) error {
	return domain.Validate(
		domain.Optional(p.Title, title),
		domain.Optional(p.Title, func(v string) domain.Validator {
			return domain.MaxLen("title", v, TitleMaxLen)
		}),
		domain.Optional(p.Description, description),
	)
}

func title(v string) domain.Validator {
	return domain.Required("title", v)
}

func description(v string) domain.Validator {
	return domain.MaxLen("description", v, DescriptionMaxLen)
}

// NotFound builds the error returned when no Todo has the given id.
func NotFound(id int64) error {
	return &domain.NotFoundError{Entity: EntityName, ID: id}
}

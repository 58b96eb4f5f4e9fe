package todoapi

import (
	"time"

	"github.com/jsamuelsen11/todoapp/internal/domain/todo"
)

// todoJSON is the API's representation of a todo.
type todoJSON struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type createRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Completed   bool    `json:"completed"`
}

func (t todoJSON) toDomain() todo.Todo {
	return todo.Todo{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toDomainList(in []todoJSON) []todo.Todo {
	out := make([]todo.Todo, 0, len(in))
	for _, t := range in {
		out = append(out, t.toDomain())
	}
	return out
}

func toCreateRequest(in todo.NewTodo) createRequest {
	return createRequest{
		Title:       in.Title,
		Description: in.Description,
		Completed:   in.Completed,
	}
}

// toPatchBody sends only supplied fields. A cleared description is sent as
// an explicit null.
func toPatchBody(p todo.Patch) map[string]any {
	body := make(map[string]any, 3)
	if p.Title != nil {
		body["title"] = *p.Title
	}
	if p.DescriptionSet {
		if p.Description == nil {
			body["description"] = nil
		} else {
			body["description"] = *p.Description
		}
	}
	if p.Completed != nil {
		body["completed"] = *p.Completed
	}
	return body
}

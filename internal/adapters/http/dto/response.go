// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import "github.com/jsamuelsen11/todoapp/internal/domain/todo"

// TimeFormat renders timestamps in UTC with millisecond precision.
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

// TodoResponse is the wire shape of a todo.
type TodoResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToTodoResponse converts a domain Todo to its wire shape.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.UTC().Format(TimeFormat),
		UpdatedAt:   t.UpdatedAt.UTC().Format(TimeFormat),
	}
}

// ToTodoListResponse converts todos to a JSON array, never null.
func ToTodoListResponse(todos []todo.Todo) []TodoResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return items
}

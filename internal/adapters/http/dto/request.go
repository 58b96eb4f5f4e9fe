package dto

import (
	"bytes"
	"encoding/json"

	"github.com/jsamuelsen11/todoapp/internal/domain/todo"
)

// CreateTodoRequest is the POST /todos body. Only title is required.
type CreateTodoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// Validate applies the domain rules for a new todo.
func (r *CreateTodoRequest) Validate() error {
	return todo.ValidateNew(r.ToNewTodo())
}

// ToNewTodo converts the request into the domain creation input.
func (r *CreateTodoRequest) ToNewTodo() todo.NewTodo {
	n := todo.NewTodo{
		Title:       r.Title,
		Description: r.Description,
	}
	if r.Completed != nil {
		n.Completed = *r.Completed
	}
	return n
}

// UpdateTodoRequest is the PATCH /todos/{id} body. Every field is optional;
// description additionally distinguishes an explicit null (clear it) from
// an absent key (leave it alone).
type UpdateTodoRequest struct {
	Title       *string        `json:"title"`
	Description NullableString `json:"description"`
	Completed   *bool          `json:"completed"`
}

// Validate applies the domain rules for the supplied fields.
func (r *UpdateTodoRequest) Validate() error {
	return todo.ValidatePatch(r.ToPatch())
}

// ToPatch converts the request into the domain partial update.
func (r *UpdateTodoRequest) ToPatch() todo.Patch {
	return todo.Patch{
		Title:          r.Title,
		Description:    r.Description.Value,
		DescriptionSet: r.Description.Set,
		Completed:      r.Completed,
	}
}

// NullableString records whether a JSON key was present at all, in addition
// to its string-or-null value.
type NullableString struct {
	Value *string
	Set   bool
}

// UnmarshalJSON is only invoked when the key is present, null included.
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

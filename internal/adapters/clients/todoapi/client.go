// Package todoapi is the outbound adapter for the todo HTTP API. It
// translates between the API's JSON and problem+json representations and
// domain types.
package todoapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todoapp/internal/domain/todo"
	"github.com/jsamuelsen11/todoapp/internal/platform/httpclient"
	"github.com/jsamuelsen11/todoapp/internal/ports"
)

// ServiceName identifies the API in traces, metrics and health results.
const ServiceName = "todo-api"

var (
	_ ports.TodoClient    = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

// Client implements ports.TodoClient over HTTP. Failures come back as
// *APIError for error responses and *UnreachableError when no response was
// obtained; both unwrap to domain sentinels.
type Client struct {
	http *httpclient.Client
	req  *Requester
}

// NewClient creates a Client that sends requests through client.
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{
		http: client,
		req:  NewRequester(client, logger),
	}
}

// ListTodos fetches GET /todos.
func (c *Client) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	var body []todoJSON
	if err := c.req.Do(ctx, http.MethodGet, "/todos", http.StatusOK, nil, &body); err != nil {
		return nil, err
	}
	return toDomainList(body), nil
}

// GetTodo fetches GET /todos/{id}.
func (c *Client) GetTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	var body todoJSON
	if err := c.req.Do(ctx, http.MethodGet, todoPath(id), http.StatusOK, nil, &body); err != nil {
		return nil, err
	}
	t := body.toDomain()
	return &t, nil
}

// CreateTodo sends POST /todos.
func (c *Client) CreateTodo(ctx context.Context, in todo.NewTodo) (*todo.Todo, error) {
	var body todoJSON
	if err := c.req.Do(ctx, http.MethodPost, "/todos", http.StatusCreated, toCreateRequest(in), &body); err != nil {
		return nil, err
	}
	t := body.toDomain()
	return &t, nil
}

// UpdateTodo sends PATCH /todos/{id} with the supplied fields only.
func (c *Client) UpdateTodo(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, error) {
	var body todoJSON
	if err := c.req.Do(ctx, http.MethodPatch, todoPath(id), http.StatusOK, toPatchBody(patch), &body); err != nil {
		return nil, err
	}
	t := body.toDomain()
	return &t, nil
}

// DeleteTodo sends DELETE /todos/{id}.
func (c *Client) DeleteTodo(ctx context.Context, id int64) error {
	return c.req.Do(ctx, http.MethodDelete, todoPath(id), http.StatusNoContent, nil, nil)
}

// Name returns the identifier used in health results.
func (c *Client) Name() string {
	return ServiceName
}

// HealthCheck pings GET /health/live. An open breaker fails fast without a
// network call.
func (c *Client) HealthCheck(ctx context.Context) error {
	if err := c.req.Do(ctx, http.MethodGet, "/health/live", http.StatusOK, nil, nil); err != nil {
		return fmt.Errorf("%s: %w", ServiceName, err)
	}
	return nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.http.BaseURL()
}

func todoPath(id int64) string {
	return fmt.Sprintf("/todos/%d", id)
}

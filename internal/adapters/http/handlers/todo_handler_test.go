package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todoapp/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todoapp/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todoapp/internal/domain/todo"
	"github.com/jsamuelsen11/todoapp/mocks"
)

func newTodoHandler(t *testing.T) (*handlers.TodoHandler, *mocks.MockTodoService) {
	t.Helper()
	svc := mocks.NewMockTodoService(t)
	return handlers.NewTodoHandler(svc), svc
}

// --- ListTodos ---

func TestListTodos_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	second := validTodo()
	second.ID = 2
	svc.EXPECT().ListTodos(mock.Anything).Return([]todo.Todo{second, validTodo()}, nil)

	rec := httptest.NewRecorder()
	h.ListTodos(rec, httptest.NewRequest(http.MethodGet, "/todos", http.NoBody))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[[]dto.TodoResponse](t, rec)
	if len(resp) != 2 {
		t.Fatalf("len = %d, want 2", len(resp))
	}
	if resp[0].ID != 2 || resp[1].ID != 1 {
		t.Errorf("order = [%d %d], want [2 1]", resp[0].ID, resp[1].ID)
	}
}

func TestListTodos_EmptyIsArray(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().ListTodos(mock.Anything).Return([]todo.Todo{}, nil)

	rec := httptest.NewRecorder()
	h.ListTodos(rec, httptest.NewRequest(http.MethodGet, "/todos", http.NoBody))

	requireStatus(t, rec, http.StatusOK)
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("body = %s, want []", body)
	}
}

func TestListTodos_StoreFailure(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().ListTodos(mock.Anything).Return(nil, errors.New("database is locked"))

	rec := httptest.NewRecorder()
	h.ListTodos(rec, httptest.NewRequest(http.MethodGet, "/todos", http.NoBody))

	requireStatus(t, rec, http.StatusInternalServerError)
	if strings.Contains(rec.Body.String(), "locked") {
		t.Errorf("body leaks internal error: %s", rec.Body.String())
	}
}

// --- CreateTodo ---

func TestCreateTodo_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	created := validTodo()
	svc.EXPECT().CreateTodo(mock.Anything, mock.MatchedBy(func(in todo.NewTodo) bool {
		return in.Title == "Buy milk" && !in.Completed && in.Description != nil
	})).Return(&created, nil)

	rec := httptest.NewRecorder()
	body := jsonBody(t, map[string]any{"title": "Buy milk", "description": "2 litres, semi-skimmed"})
	h.CreateTodo(rec, httptest.NewRequest(http.MethodPost, "/todos", body))

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.TodoResponse](t, rec)
	if resp.ID != 1 || resp.Title != "Buy milk" || resp.Completed {
		t.Errorf("response = %+v, want created todo", resp)
	}
	if resp.CreatedAt != "2026-02-12T15:04:05.000Z" {
		t.Errorf("createdAt = %q, want %q", resp.CreatedAt, "2026-02-12T15:04:05.000Z")
	}
}

func TestCreateTodo_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{name: "missing title", body: `{"description":"x"}`, wantField: "body.title"},
		{name: "empty title", body: `{"title":""}`, wantField: "body.title"},
		{name: "wrong type", body: `{"title":"ok","completed":"yes"}`, wantField: "body.completed"},
		{name: "malformed", body: `{"title":`, wantField: "body"},
		{name: "empty body", body: ``, wantField: "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _ := newTodoHandler(t)

			rec := httptest.NewRecorder()
			h.CreateTodo(rec, httptest.NewRequest(http.MethodPost, "/todos", rawBody(tt.body)))

			requireStatus(t, rec, http.StatusBadRequest)
			resp := decodeJSON[dto.ErrorResponse](t, rec)
			if len(resp.Errors) == 0 || resp.Errors[0].Location != tt.wantField {
				t.Errorf("errors = %+v, want location %q", resp.Errors, tt.wantField)
			}
		})
	}
}

func TestCreateTodo_BodyTooLarge(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	big := `{"title":"` + strings.Repeat("a", 2<<20) + `"}`
	rec := httptest.NewRecorder()
	h.CreateTodo(rec, httptest.NewRequest(http.MethodPost, "/todos", rawBody(big)))

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- GetTodo ---

func TestGetTodo_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	found := validTodo()
	svc.EXPECT().GetTodo(mock.Anything, int64(1)).Return(&found, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/todos/1", http.NoBody), map[string]string{"id": "1"})
	h.GetTodo(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TodoResponse](t, rec)
	if resp.Description == nil || *resp.Description != "2 litres, semi-skimmed" {
		t.Errorf("description = %v, want %q", resp.Description, "2 litres, semi-skimmed")
	}
}

func TestGetTodo_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().GetTodo(mock.Anything, int64(99)).Return(nil, todo.NotFound(99))

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/todos/99", http.NoBody), map[string]string{"id": "99"})
	h.GetTodo(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Detail != "todo with id 99 not found" {
		t.Errorf("detail = %q, want %q", resp.Detail, "todo with id 99 not found")
	}
}

func TestGetTodo_InvalidID(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/todos/abc", http.NoBody), map[string]string{"id": "abc"})
	h.GetTodo(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "path.id" {
		t.Errorf("errors = %+v, want one entry for path.id", resp.Errors)
	}
}

func TestUpdateTodo_EmptyBody(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPatch, "/todos/1", rawBody("")), map[string]string{"id": "1"})
	h.UpdateTodo(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body" {
		t.Errorf("errors = %+v, want one entry for body", resp.Errors)
	}
}

// --- UpdateTodo ---

func TestUpdateTodo_Toggle(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	updated := validTodo()
	updated.Completed = true
	svc.EXPECT().UpdateTodo(mock.Anything, int64(1), mock.MatchedBy(func(p todo.Patch) bool {
		return p.Completed != nil && *p.Completed && p.Title == nil && !p.DescriptionSet
	})).Return(&updated, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPatch, "/todos/1", rawBody(`{"completed":true}`)),
		map[string]string{"id": "1"},
	)
	h.UpdateTodo(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.TodoResponse](t, rec); !resp.Completed {
		t.Error("completed = false, want true")
	}
}

func TestUpdateTodo_ClearDescription(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	cleared := validTodo()
	cleared.Description = nil
	svc.EXPECT().UpdateTodo(mock.Anything, int64(1), mock.MatchedBy(func(p todo.Patch) bool {
		return p.DescriptionSet && p.Description == nil
	})).Return(&cleared, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPatch, "/todos/1", rawBody(`{"description":null}`)),
		map[string]string{"id": "1"},
	)
	h.UpdateTodo(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestUpdateTodo_UnknownFieldsOnly(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	current := validTodo()
	svc.EXPECT().UpdateTodo(mock.Anything, int64(1), todo.Patch{}).Return(&current, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPatch, "/todos/1", rawBody(`{"priority":"high"}`)),
		map[string]string{"id": "1"},
	)
	h.UpdateTodo(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestUpdateTodo_BlankTitle(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPatch, "/todos/1", rawBody(`{"title":"  "}`)),
		map[string]string{"id": "1"},
	)
	h.UpdateTodo(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestUpdateTodo_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().UpdateTodo(mock.Anything, int64(5), mock.Anything).Return(nil, todo.NotFound(5))

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPatch, "/todos/5", rawBody(`{"completed":false}`)),
		map[string]string{"id": "5"},
	)
	h.UpdateTodo(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- DeleteTodo ---

func TestDeleteTodo_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().DeleteTodo(mock.Anything, int64(1)).Return(nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/todos/1", http.NoBody), map[string]string{"id": "1"})
	h.DeleteTodo(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}

func TestDeleteTodo_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().DeleteTodo(mock.Anything, int64(1)).Return(todo.NotFound(1))

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/todos/1", http.NoBody), map[string]string{"id": "1"})
	h.DeleteTodo(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

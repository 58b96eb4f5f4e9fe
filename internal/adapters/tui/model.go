// Package tui is the interactive terminal client. It loads the todo list on
// start and turns each key press into at most one API call, applying the
// result to a board.Board once the server answers.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/todoapp/internal/app/board"
	"github.com/jsamuelsen11/todoapp/internal/domain/todo"
	"github.com/jsamuelsen11/todoapp/internal/ports"
)

// DefaultRequestTimeout bounds each API call made from the UI.
const DefaultRequestTimeout = 10 * time.Second

// Result messages. Each carries the outcome of one API call.
type (
	loadedMsg  struct{ items []todo.Todo }
	addedMsg   struct{ item todo.Todo }
	toggledMsg struct{ item todo.Todo }
	removedMsg struct{ id int64 }
	failedMsg  struct {
		op  string
		err error
	}
)

// Model is the bubbletea model for the todo board.
type Model struct {
	client  ports.TodoClient
	board   *board.Board
	input   textinput.Model
	help    help.Model
	keys    keyMap
	adding  bool
	ctx     context.Context
	timeout time.Duration
}

// Option customizes a Model.
type Option func(*Model)

// WithRequestTimeout bounds each API call. Non-positive values are ignored.
func WithRequestTimeout(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// WithContext makes every API call end when ctx does. Run passes the
// program's context.
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		if ctx != nil {
			m.ctx = ctx
		}
	}
}

// New creates a Model backed by client.
func New(client ports.TodoClient, opts ...Option) *Model {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = todo.TitleMaxLen
	ti.Prompt = "> "
	ti.PromptStyle = accentStyle
	ti.Cursor.Style = accentStyle

	m := &Model{
		client:  client,
		board:   board.New(),
		input:   ti,
		help:    help.New(),
		keys:    defaultKeyMap(),
		ctx:     context.Background(),
		timeout: DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Board exposes the model's state for inspection.
func (m *Model) Board() *board.Board {
	return m.board
}

// Init loads the list.
func (m *Model) Init() tea.Cmd {
	return m.load()
}

// Update applies result messages to the board and maps keys to commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case loadedMsg:
		m.board.Loaded(msg.items)
		return m, nil
	case addedMsg:
		m.board.Added(msg.item)
		return m, nil
	case toggledMsg:
		m.board.Toggled(msg.item)
		return m, nil
	case removedMsg:
		m.board.Removed(msg.id)
		return m, nil
	case failedMsg:
		m.board.Failed(msg.op, msg.err)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.adding {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	if m.adding {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.board.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.board.MoveDown()
	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.input.Reset()
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.board.Selected(); ok {
			return m, m.toggle(t)
		}
	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.board.Selected(); ok {
			return m, m.remove(t.ID)
		}
	case key.Matches(msg, m.keys.Reload):
		return m, m.load()
	case key.Matches(msg, m.keys.Dismiss):
		m.board.Dismiss()
	}
	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeInput()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		in, ok := board.Draft(m.input.Value())
		if !ok {
			return m, nil
		}
		m.closeInput()
		return m, m.add(in)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.adding = false
	m.input.Blur()
	m.input.Reset()
}

// call runs fn with a bounded context and converts its outcome to a message.
func (m *Model) call(op string, fn func(context.Context) (tea.Msg, error)) tea.Cmd {
	parent, timeout := m.ctx, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()

		msg, err := fn(ctx)
		if err != nil {
			return failedMsg{op: op, err: err}
		}
		return msg
	}
}

func (m *Model) load() tea.Cmd {
	client := m.client
	return m.call(board.OpLoad, func(ctx context.Context) (tea.Msg, error) {
		items, err := client.ListTodos(ctx)
		if err != nil {
			return nil, err
		}
		return loadedMsg{items: items}, nil
	})
}

func (m *Model) add(in todo.NewTodo) tea.Cmd {
	client := m.client
	return m.call(board.OpAdd, func(ctx context.Context) (tea.Msg, error) {
		created, err := client.CreateTodo(ctx, in)
		if err != nil {
			return nil, err
		}
		return addedMsg{item: *created}, nil
	})
}

func (m *Model) toggle(t todo.Todo) tea.Cmd {
	client := m.client
	patch := board.TogglePatch(t)
	return m.call(board.OpToggle, func(ctx context.Context) (tea.Msg, error) {
		updated, err := client.UpdateTodo(ctx, t.ID, patch)
		if err != nil {
			return nil, err
		}
		return toggledMsg{item: *updated}, nil
	})
}

func (m *Model) remove(id int64) tea.Cmd {
	client := m.client
	return m.call(board.OpDelete, func(ctx context.Context) (tea.Msg, error) {
		if err := client.DeleteTodo(ctx, id); err != nil {
			return nil, err
		}
		return removedMsg{id: id}, nil
	})
}

// Run starts the UI on the terminal and blocks until the user quits or ctx
// is canceled.
func Run(ctx context.Context, client ports.TodoClient, opts ...Option) error {
	opts = append([]Option{WithContext(ctx)}, opts...)
	p := tea.NewProgram(New(client, opts...), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

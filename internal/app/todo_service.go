// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService. Each method opens exactly one
// repository transaction, so a request either commits all of its writes or
// none of them.
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

// ListTodos returns every todo ordered by ID.
func (s *TodoService) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	var todos []todo.Todo
	err := s.repo.Transact(ctx, func(tx ports.TodoTx) error {
		var err error
		todos, err = tx.List(ctx)
		return err
	})
	if err != nil {
		s.logFailure(ctx, "failed to list todos", "ListTodos", err)
		return nil, err
	}

	if todos == nil {
		todos = []todo.Todo{}
	}
	return todos, nil
}

// GetTodo returns a single todo by ID.
func (s *TodoService) GetTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	var found *todo.Todo
	err := s.repo.Transact(ctx, func(tx ports.TodoTx) error {
		var err error
		found, err = tx.Get(ctx, id)
		return err
	})
	if err != nil {
		s.logFailure(ctx, "failed to fetch todo", "GetTodo", err, slog.Int64("todo_id", id))
		return nil, err
	}

	return found, nil
}

// CreateTodo validates and persists a new todo, returning it with its
// storage-assigned ID. Any ID on t is ignored.
func (s *TodoService) CreateTodo(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	created := *t
	created.ID = 0
	err := s.repo.Transact(ctx, func(tx ports.TodoTx) error {
		return tx.Create(ctx, &created)
	})
	if err != nil {
		s.logFailure(ctx, "failed to create todo", "CreateTodo", err)
		return nil, err
	}

	logging.FromContextOr(ctx, s.logger).InfoContext(ctx, "todo created", slog.Int64("todo_id", created.ID))
	return &created, nil
}

// UpdateTodo loads the todo, applies the patch, and saves it in one
// transaction. Fields absent from the patch keep their stored values.
func (s *TodoService) UpdateTodo(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, error) {
	var updated *todo.Todo
	err := s.repo.Transact(ctx, func(tx ports.TodoTx) error {
		current, err := tx.Get(ctx, id)
		if err != nil {
			return err
		}

		if patch.IsEmpty() {
			updated = current
			return nil
		}

		patch.Apply(current)
		if err := tx.Save(ctx, current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "failed to update todo", "UpdateTodo", err, slog.Int64("todo_id", id))
		return nil, err
	}

	return updated, nil
}

// DeleteTodo permanently removes a todo.
func (s *TodoService) DeleteTodo(ctx context.Context, id int64) error {
	err := s.repo.Transact(ctx, func(tx ports.TodoTx) error {
		if _, err := tx.Get(ctx, id); err != nil {
			return err
		}
		return tx.Delete(ctx, id)
	})
	if err != nil {
		s.logFailure(ctx, "failed to delete todo", "DeleteTodo", err, slog.Int64("todo_id", id))
		return err
	}

	logging.FromContextOr(ctx, s.logger).InfoContext(ctx, "todo deleted", slog.Int64("todo_id", id))
	return nil
}

// logFailure logs a failed operation. Missing records are expected client
// outcomes and log at info; everything else logs at error.
func (s *TodoService) logFailure(ctx context.Context, msg, operation string, err error, attrs ...slog.Attr) {
	level := slog.LevelError
	if errors.Is(err, domain.ErrNotFound) {
		level = slog.LevelInfo
	}

	attrs = append(attrs,
		slog.String("operation", "TodoService."+operation),
		slog.Any("error", err),
	)
	logging.FromContextOr(ctx, s.logger).LogAttrs(ctx, level, msg, attrs...)
}

package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TodoRepository is the storage port for todos. Implemented by the storage
// adapter; called by the application layer.
type TodoRepository interface {
	// Transact runs fn inside a single database transaction. The transaction
	// is committed when fn returns nil and rolled back when fn returns an
	// error or panics. Errors returned by fn are passed through unchanged;
	// failures to begin or commit are returned as *domain.StorageError.
	Transact(ctx context.Context, fn func(tx TodoTx) error) error
}

// TodoTx exposes the todo operations available inside a transaction.
// Unexpected database failures are returned as *domain.StorageError.
type TodoTx interface {
	// List returns all todos ordered by ID.
	List(ctx context.Context) ([]todo.Todo, error)

	// Get returns the todo with the given ID.
	// Returns domain.ErrNotFound if no row matches.
	Get(ctx context.Context, id int64) (*todo.Todo, error)

	// Create inserts t and sets t.ID to the storage-assigned identifier.
	Create(ctx context.Context, t *todo.Todo) error

	// Save writes every field of an existing todo.
	Save(ctx context.Context, t *todo.Todo) error

	// Delete removes the todo with the given ID.
	// Returns domain.ErrNotFound if no row matches.
	Delete(ctx context.Context, id int64) error
}

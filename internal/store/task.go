package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/mlefebvre/tasktrack-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store.
	// All fields including ID and timestamps must be set by the caller
	// (typically via domain.NewTask).
	// Returns validation errors from the domain Task if data is invalid.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// ListByUserID retrieves all tasks owned by the given user in insertion
	// order (oldest first). Returns an empty slice when the user has no tasks;
	// ordering for presentation is applied downstream.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)

	// Update persists changes to a task's title, description and status.
	// The owner and creation timestamp are never modified.
	// Returns ErrTaskNotFound if the task does not exist.
	// Returns validation errors from the domain Task if data is invalid.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist; deleting a task
	// twice surfaces ErrTaskNotFound on the second call.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUserID removes every task owned by the given user.
	// A user with no tasks is not an error. Used during account deletion.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) TaskStore
}

package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"
	"github.com/mlefebvre/tasktrack-api/internal/domain"
	"github.com/mlefebvre/tasktrack-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
// Without overrides it behaves as a thread-safe in-memory store that
// preserves insertion order.
type MockTaskStore struct {
	// Custom behavior functions
	CreateFn         func(ctx context.Context, task *domain.Task) error
	GetByIDFn        func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListByUserIDFn   func(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
	UpdateFn         func(ctx context.Context, task *domain.Task) error
	DeleteFn         func(ctx context.Context, id uuid.UUID) error
	DeleteByUserIDFn func(ctx context.Context, userID uuid.UUID) error

	mu    sync.Mutex
	tasks []*domain.Task

	// Call counters for verification
	CreateCalls int
	UpdateCalls int
	DeleteCalls int
}

// Ensure MockTaskStore implements store.TaskStore
var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates an empty in-memory task store.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{}
}

// Create implements store.TaskStore.Create
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	if err := task.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *task
	m.tasks = append(m.tasks, &copied)
	return nil
}

// GetByID implements store.TaskStore.GetByID
func (m *MockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.tasks {
		if t.ID == id {
			copied := *t
			return &copied, nil
		}
	}
	return nil, store.ErrTaskNotFound
}

// ListByUserID implements store.TaskStore.ListByUserID
func (m *MockTaskStore) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	result := []*domain.Task{}
	for _, t := range m.tasks {
		if t.UserID == userID {
			copied := *t
			result = append(result, &copied)
		}
	}
	return result, nil
}

// Update implements store.TaskStore.Update
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	m.mu.Lock()
	m.UpdateCalls++
	m.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}

	if err := task.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.tasks {
		if t.ID == task.ID {
			updated := *t
			updated.Title = task.Title
			updated.Description = task.Description
			updated.Status = task.Status
			updated.UpdatedAt = task.UpdatedAt
			m.tasks[i] = &updated
			return nil
		}
	}
	return store.ErrTaskNotFound
}

// Delete implements store.TaskStore.Delete
func (m *MockTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.DeleteCalls++
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.tasks {
		if t.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return store.ErrTaskNotFound
}

// DeleteByUserID implements store.TaskStore.DeleteByUserID
func (m *MockTaskStore) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if m.DeleteByUserIDFn != nil {
		return m.DeleteByUserIDFn(ctx, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.tasks[:0]
	for _, t := range m.tasks {
		if t.UserID != userID {
			kept = append(kept, t)
		}
	}
	m.tasks = kept
	return nil
}

// WithTx implements store.TaskStore.WithTx; transactions are a no-op here.
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/mlefebvre/tasktrack-api/internal/store"
)

// MockUserService implements service.UserService for testing.
// Without an override it deletes from the backing stores directly.
// The interface assertion lives at the use sites; importing the service
// package here would create an import cycle with its tests.
type MockUserService struct {
	DeleteAccountFn func(ctx context.Context, userID uuid.UUID) error

	UserStore *MockUserStore
	TaskStore *MockTaskStore

	// Call counters for verification
	DeleteAccountCalls int
}

// NewMockUserService creates a MockUserService over the given stores.
func NewMockUserService(userStore *MockUserStore, taskStore *MockTaskStore) *MockUserService {
	return &MockUserService{
		UserStore: userStore,
		TaskStore: taskStore,
	}
}

// DeleteAccount implements service.UserService.DeleteAccount
func (m *MockUserService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	m.DeleteAccountCalls++

	if m.DeleteAccountFn != nil {
		return m.DeleteAccountFn(ctx, userID)
	}

	if m.UserStore == nil {
		return store.ErrUserNotFound
	}
	if m.TaskStore != nil {
		if err := m.TaskStore.DeleteByUserID(ctx, userID); err != nil {
			return err
		}
	}
	return m.UserStore.Delete(ctx, userID)
}

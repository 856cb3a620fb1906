package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mlefebvre/tasktrack-api/internal/domain"
	"github.com/mlefebvre/tasktrack-api/internal/platform/logger"
	"github.com/mlefebvre/tasktrack-api/internal/store"
)

// UserService provides account-level operations.
type UserService interface {
	// DeleteAccount permanently removes the user and all of their tasks in a
	// single transaction. Returns store.ErrUserNotFound if the user does not
	// exist.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

// userServiceImpl implements the UserService interface.
type userServiceImpl struct {
	userStore store.UserStore
	taskStore store.TaskStore
	logger    *slog.Logger

	// runTx executes a function inside a database transaction. Injectable so
	// tests can run the function without a live database.
	runTx func(ctx context.Context, fn store.TxFn) error
}

// Ensure userServiceImpl implements UserService interface
var _ UserService = (*userServiceImpl)(nil)

// NewUserService creates a new UserService backed by the given database and
// stores. It returns an error if any required dependency is nil.
func NewUserService(
	db *sql.DB,
	userStore store.UserStore,
	taskStore store.TaskStore,
	logger *slog.Logger,
) (UserService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if userStore == nil {
		return nil, domain.NewValidationError("userStore", "cannot be nil", domain.ErrValidation)
	}
	if taskStore == nil {
		return nil, domain.NewValidationError("taskStore", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		userStore: userStore,
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "user_service")),
		runTx: func(ctx context.Context, fn store.TxFn) error {
			return store.RunInTransaction(ctx, db, fn)
		},
	}, nil
}

// DeleteAccount implements UserService.DeleteAccount
// Tasks are deleted before the user so a failure partway through rolls back
// to a fully intact account.
func (s *userServiceImpl) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.taskStore.WithTx(tx).DeleteByUserID(ctx, userID); err != nil {
			return err
		}
		return s.userStore.WithTx(tx).Delete(ctx, userID)
	})
	if err != nil {
		log.Error("failed to delete account",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return err
	}

	log.Info("account deleted", slog.String("user_id", userID.String()))
	return nil
}

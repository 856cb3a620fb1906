package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mlefebvre/tasktrack-api/internal/domain"
	"github.com/mlefebvre/tasktrack-api/internal/platform/logger"
	"github.com/mlefebvre/tasktrack-api/internal/store"
)

// TaskService provides task-related operations scoped to an owner.
// Every operation independently verifies that the acting user owns the task;
// ownership is never trusted to the caller.
type TaskService interface {
	// CreateTask validates the title, inserts a new incomplete task for the
	// owner and returns it. Returns domain.ErrTaskTitleEmpty if the title is
	// empty; nothing is persisted on failure.
	CreateTask(ctx context.Context, ownerID uuid.UUID, title, description string) (*domain.Task, error)

	// GetTask retrieves a single task.
	// Returns store.ErrTaskNotFound if the task does not exist and
	// ErrTaskNotOwned if it belongs to a different user.
	GetTask(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error)

	// UpdateTask applies a partial update to a task's title and/or
	// description. Nil pointers leave the corresponding field unchanged.
	// Returns store.ErrTaskNotFound, ErrTaskNotOwned, or
	// domain.ErrTaskTitleEmpty for a supplied empty title.
	UpdateTask(ctx context.Context, ownerID, taskID uuid.UUID, title, description *string) (*domain.Task, error)

	// ToggleTaskStatus flips a task between complete and incomplete.
	// There are exactly two statuses, so this is a pure state flip rather
	// than a general status-set operation.
	// Returns store.ErrTaskNotFound or ErrTaskNotOwned.
	ToggleTaskStatus(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error)

	// DeleteTask permanently removes a task.
	// Returns store.ErrTaskNotFound or ErrTaskNotOwned.
	DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error

	// ListTasks returns all tasks owned by ownerID, unfiltered and unsorted.
	// Filtering and sorting are presentation concerns built from this raw list.
	ListTasks(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error)
}

// taskServiceImpl implements the TaskService interface.
type taskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// Ensure taskServiceImpl implements TaskService interface
var _ TaskService = (*taskServiceImpl)(nil)

// NewTaskService creates a new TaskService.
// It returns an error if the task store dependency is nil.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, domain.NewValidationError("taskStore", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_service")),
	}, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	ownerID uuid.UUID,
	title, description string,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(ownerID, title, description)
	if err != nil {
		log.Debug("task creation rejected by validation",
			slog.String("error", err.Error()),
			slog.String("owner_id", ownerID.String()))
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		log.Error("failed to persist new task",
			slog.String("error", err.Error()),
			slog.String("owner_id", ownerID.String()))
		return nil, err
	}

	log.Debug("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("owner_id", ownerID.String()))
	return task, nil
}

// GetTask implements TaskService.GetTask
func (s *taskServiceImpl) GetTask(
	ctx context.Context,
	ownerID, taskID uuid.UUID,
) (*domain.Task, error) {
	return s.loadOwnedTask(ctx, ownerID, taskID)
}

// UpdateTask implements TaskService.UpdateTask
// Only the supplied fields are applied; the owner and creation timestamp
// never change.
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	ownerID, taskID uuid.UUID,
	title, description *string,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.loadOwnedTask(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	if err := task.UpdateDetails(title, description); err != nil {
		log.Debug("task update rejected by validation",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()))
		return nil, err
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		log.Error("failed to persist task update",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()))
		return nil, err
	}

	log.Debug("task updated",
		slog.String("task_id", taskID.String()),
		slog.String("owner_id", ownerID.String()))
	return task, nil
}

// ToggleTaskStatus implements TaskService.ToggleTaskStatus
func (s *taskServiceImpl) ToggleTaskStatus(
	ctx context.Context,
	ownerID, taskID uuid.UUID,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.loadOwnedTask(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	task.ToggleStatus()

	if err := s.taskStore.Update(ctx, task); err != nil {
		log.Error("failed to persist status toggle",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()))
		return nil, err
	}

	log.Debug("task status toggled",
		slog.String("task_id", taskID.String()),
		slog.String("status", string(task.Status)))
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Ownership is checked before the hard delete so a foreign task surfaces
	// ErrTaskNotOwned rather than silently vanishing.
	if _, err := s.loadOwnedTask(ctx, ownerID, taskID); err != nil {
		return err
	}

	if err := s.taskStore.Delete(ctx, taskID); err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()))
		return err
	}

	log.Debug("task deleted",
		slog.String("task_id", taskID.String()),
		slog.String("owner_id", ownerID.String()))
	return nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, err := s.taskStore.ListByUserID(ctx, ownerID)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.String("owner_id", ownerID.String()))
		return nil, err
	}

	return tasks, nil
}

// loadOwnedTask fetches a task and verifies it belongs to ownerID.
// Returns store.ErrTaskNotFound for a missing task and ErrTaskNotOwned
// when the task exists but belongs to someone else.
func (s *taskServiceImpl) loadOwnedTask(
	ctx context.Context,
	ownerID, taskID uuid.UUID,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if task.UserID != ownerID {
		log.Warn("ownership check failed",
			slog.String("task_id", taskID.String()),
			slog.String("owner_id", task.UserID.String()),
			slog.String("caller_id", ownerID.String()))
		return nil, ErrTaskNotOwned
	}

	return task, nil
}

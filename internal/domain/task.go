package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents a task's binary completion state.
type TaskStatus string

// Valid task status values.
const (
	// TaskStatusIncomplete is the initial state of every task.
	TaskStatusIncomplete TaskStatus = "incomplete"

	// TaskStatusComplete marks a task the owner has finished.
	TaskStatusComplete TaskStatus = "complete"
)

// Task-specific validation errors
var (
	// ErrTaskIDEmpty is returned when a task ID is empty or nil.
	ErrTaskIDEmpty = errors.New("task ID cannot be empty")

	// ErrTaskUserIDEmpty is returned when a task's user ID is empty or nil.
	ErrTaskUserIDEmpty = errors.New("task user ID cannot be empty")

	// ErrTaskTitleEmpty is returned when a task's title is empty.
	ErrTaskTitleEmpty = errors.New("task title cannot be empty")
)

// IsValid reports whether the status is one of the known values.
func (s TaskStatus) IsValid() bool {
	return s == TaskStatusIncomplete || s == TaskStatusComplete
}

// Toggled returns the opposite status. There are exactly two statuses,
// so this is a pure flip rather than a general status transition.
func (s TaskStatus) Toggled() TaskStatus {
	if s == TaskStatusComplete {
		return TaskStatusIncomplete
	}
	return TaskStatusComplete
}

// Task represents a single to-do item owned by a user.
// The owner and creation timestamp are fixed at creation and never change.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a new Task owned by the given user.
// It generates a new UUID for the task ID, sets the status to incomplete,
// and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewTask(userID uuid.UUID, title, description string) (*Task, error) {
	task := &Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      TaskStatusIncomplete,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrTaskIDEmpty
	}

	if t.UserID == uuid.Nil {
		return ErrTaskUserIDEmpty
	}

	if t.Title == "" {
		return ErrTaskTitleEmpty
	}

	if !t.Status.IsValid() {
		return ErrInvalidTaskStatus
	}

	return nil
}

// UpdateDetails applies a partial update to the task's title and description.
// A nil pointer leaves the corresponding field unchanged. Returns an error
// without modifying the task if a supplied title is empty.
func (t *Task) UpdateDetails(title, description *string) error {
	if title != nil && *title == "" {
		return ErrTaskTitleEmpty
	}

	if title != nil {
		t.Title = *title
	}
	if description != nil {
		t.Description = *description
	}

	t.UpdatedAt = time.Now().UTC()
	return nil
}

// ToggleStatus flips the task between complete and incomplete and
// updates the UpdatedAt timestamp.
func (t *Task) ToggleStatus() {
	t.Status = t.Status.Toggled()
	t.UpdatedAt = time.Now().UTC()
}

package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewTask(t *testing.T) {
	userID := uuid.New()

	task, err := NewTask(userID, "Buy groceries", "milk, eggs")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if task.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, task.UserID)
	}

	if task.Title != "Buy groceries" {
		t.Errorf("Expected title %q, got %q", "Buy groceries", task.Title)
	}

	if task.Status != TaskStatusIncomplete {
		t.Errorf("Expected status %s, got %s", TaskStatusIncomplete, task.Status)
	}

	if task.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Description is optional
	task, err = NewTask(userID, "No description", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.Description != "" {
		t.Errorf("Expected empty description, got %q", task.Description)
	}

	// Title is required
	_, err = NewTask(userID, "", "details")
	if err != ErrTaskTitleEmpty {
		t.Errorf("Expected error %v, got %v", ErrTaskTitleEmpty, err)
	}

	// Owner is required
	_, err = NewTask(uuid.Nil, "Buy groceries", "")
	if err != ErrTaskUserIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrTaskUserIDEmpty, err)
	}
}

func TestTaskValidate(t *testing.T) {
	validTask := Task{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Title:  "Buy groceries",
		Status: TaskStatusIncomplete,
	}

	if err := validTask.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalidTask := validTask
	invalidTask.ID = uuid.Nil
	if err := invalidTask.Validate(); err != ErrTaskIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrTaskIDEmpty, err)
	}

	invalidTask = validTask
	invalidTask.UserID = uuid.Nil
	if err := invalidTask.Validate(); err != ErrTaskUserIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrTaskUserIDEmpty, err)
	}

	invalidTask = validTask
	invalidTask.Title = ""
	if err := invalidTask.Validate(); err != ErrTaskTitleEmpty {
		t.Errorf("Expected error %v, got %v", ErrTaskTitleEmpty, err)
	}

	invalidTask = validTask
	invalidTask.Status = TaskStatus("archived")
	if err := invalidTask.Validate(); err != ErrInvalidTaskStatus {
		t.Errorf("Expected error %v, got %v", ErrInvalidTaskStatus, err)
	}
}

func TestTaskUpdateDetails(t *testing.T) {
	task, err := NewTask(uuid.New(), "Original title", "original description")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	newTitle := "Updated title"
	if err := task.UpdateDetails(&newTitle, nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.Title != newTitle {
		t.Errorf("Expected title %q, got %q", newTitle, task.Title)
	}
	if task.Description != "original description" {
		t.Errorf("Expected description unchanged, got %q", task.Description)
	}

	newDescription := ""
	if err := task.UpdateDetails(nil, &newDescription); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.Description != "" {
		t.Errorf("Expected description cleared, got %q", task.Description)
	}

	// An empty title patch must be rejected without mutating the task
	emptyTitle := ""
	if err := task.UpdateDetails(&emptyTitle, nil); err != ErrTaskTitleEmpty {
		t.Errorf("Expected error %v, got %v", ErrTaskTitleEmpty, err)
	}
	if task.Title != newTitle {
		t.Errorf("Expected title unchanged after failed update, got %q", task.Title)
	}
}

func TestTaskToggleStatus(t *testing.T) {
	task, err := NewTask(uuid.New(), "Toggle me", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	task.ToggleStatus()
	if task.Status != TaskStatusComplete {
		t.Errorf("Expected status %s, got %s", TaskStatusComplete, task.Status)
	}

	// Toggling twice returns the task to its original status
	task.ToggleStatus()
	if task.Status != TaskStatusIncomplete {
		t.Errorf("Expected status %s, got %s", TaskStatusIncomplete, task.Status)
	}
}

func TestTaskStatusToggled(t *testing.T) {
	if TaskStatusIncomplete.Toggled() != TaskStatusComplete {
		t.Error("Expected incomplete to toggle to complete")
	}
	if TaskStatusComplete.Toggled() != TaskStatusIncomplete {
		t.Error("Expected complete to toggle to incomplete")
	}
}

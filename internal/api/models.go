package api

import (
	"time"

	"github.com/google/uuid"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// Token is the JWT bearer token used for API authorization
	Token string `json:"token"`
}

// UserResponse defines the response for the current-user endpoint.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// CreateTaskRequest defines the payload for creating a task.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"max=2000"`
}

// UpdateTaskRequest defines the payload for partially updating a task.
// Absent fields leave the corresponding value unchanged. Status accepts the
// two task statuses; setting it to a new value toggles the task.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"       validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Status      *string `json:"status,omitempty"      validate:"omitempty,oneof=incomplete complete"`
}

// TaskResponse represents a single task in API responses.
type TaskResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskListResponse wraps a filtered, sorted task view together with counts
// over the user's full task list.
type TaskListResponse struct {
	Tasks  []TaskResponse `json:"tasks"`
	Counts TaskCounts     `json:"counts"`
}

// TaskCounts summarizes the user's full task list by status, independent of
// the active filter.
type TaskCounts struct {
	Total      int `json:"total"`
	Incomplete int `json:"incomplete"`
	Complete   int `json:"complete"`
}

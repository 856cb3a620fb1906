package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsNotFoundError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"generic not found", ErrNotFound, true},
		{"user not found", ErrUserNotFound, true},
		{"task not found", ErrTaskNotFound, true},
		{"wrapped task not found", fmt.Errorf("lookup: %w", ErrTaskNotFound), true},
		{"duplicate", ErrDuplicate, false},
		{"unrelated", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsNotFoundError(tc.err); got != tc.want {
				t.Errorf("IsNotFoundError(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"generic duplicate", ErrDuplicate, true},
		{"email exists", ErrEmailExists, true},
		{"wrapped email exists", fmt.Errorf("create: %w", ErrEmailExists), true},
		{"not found", ErrNotFound, false},
		{"nil", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsDuplicateError(tc.err); got != tc.want {
				t.Errorf("IsDuplicateError(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestStoreError(t *testing.T) {
	inner := errors.New("connection refused")
	err := NewStoreError("task", "create", "insert failed", inner)

	if !errors.Is(err, inner) {
		t.Error("Expected StoreError to unwrap to the inner error")
	}

	want := "create operation on task failed: insert failed: connection refused"
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}

	bare := NewStoreError("user", "delete", "no rows", nil)
	want = "delete operation on user failed: no rows"
	if bare.Error() != want {
		t.Errorf("Expected %q, got %q", want, bare.Error())
	}
}

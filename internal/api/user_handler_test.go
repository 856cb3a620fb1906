package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/mlefebvre/tasktrack-api/internal/api/shared"
	"github.com/mlefebvre/tasktrack-api/internal/domain"
	"github.com/mlefebvre/tasktrack-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCurrentUser(t *testing.T) {
	userStore := mocks.NewMockUserStore()
	user, err := domain.NewUser("Jordan", "jordan@example.com", "correct horse battery")
	require.NoError(t, err)
	user.HashedPassword = "hashed:correct horse battery"
	require.NoError(t, userStore.Create(context.Background(), user))

	handler := NewUserHandler(userStore, mocks.NewMockUserService(userStore, mocks.NewMockTaskStore()), nil)

	t.Run("returns the authenticated user's profile", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
		ctx := context.WithValue(req.Context(), shared.UserIDContextKey, user.ID)
		w := httptest.NewRecorder()
		handler.GetCurrentUser(w, req.WithContext(ctx))

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()

		var resp UserResponse
		require.NoError(t, json.Unmarshal([]byte(body), &resp))
		assert.Equal(t, user.ID, resp.ID)
		assert.Equal(t, "Jordan", resp.Name)
		assert.Equal(t, "jordan@example.com", resp.Email)

		// Password material never appears in the payload
		assert.NotContains(t, body, "hashed:")
	})

	t.Run("missing auth context returns 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
		w := httptest.NewRecorder()
		handler.GetCurrentUser(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("deleted user returns 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
		ctx := context.WithValue(req.Context(), shared.UserIDContextKey, uuid.New())
		w := httptest.NewRecorder()
		handler.GetCurrentUser(w, req.WithContext(ctx))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteCurrentUser(t *testing.T) {
	newHandler := func(t *testing.T) (*UserHandler, *domain.User, *mocks.MockUserService) {
		t.Helper()

		userStore := mocks.NewMockUserStore()
		user, err := domain.NewUser("Jordan", "jordan@example.com", "correct horse battery")
		require.NoError(t, err)
		user.HashedPassword = "hashed:correct horse battery"
		require.NoError(t, userStore.Create(context.Background(), user))

		userService := mocks.NewMockUserService(userStore, mocks.NewMockTaskStore())
		return NewUserHandler(userStore, userService, nil), user, userService
	}

	t.Run("deletes the account and returns 204", func(t *testing.T) {
		handler, user, userService := newHandler(t)

		req := httptest.NewRequest(http.MethodDelete, "/api/user", nil)
		ctx := context.WithValue(req.Context(), shared.UserIDContextKey, user.ID)
		w := httptest.NewRecorder()
		handler.DeleteCurrentUser(w, req.WithContext(ctx))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, 1, userService.DeleteAccountCalls)
		assert.Equal(t, 0, userService.UserStore.Count())
	})

	t.Run("missing auth context returns 401 without deleting", func(t *testing.T) {
		handler, _, userService := newHandler(t)

		req := httptest.NewRequest(http.MethodDelete, "/api/user", nil)
		w := httptest.NewRecorder()
		handler.DeleteCurrentUser(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, 0, userService.DeleteAccountCalls)
	})
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/mlefebvre/tasktrack-api/internal/domain"
	"github.com/mlefebvre/tasktrack-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthHandler(userStore *mocks.MockUserStore, verifierOK bool) *AuthHandler {
	return NewAuthHandler(
		userStore,
		&mocks.MockJWTService{Token: "test-token"},
		&mocks.MockPasswordHasher{},
		&mocks.MockPasswordVerifier{ShouldSucceed: verifierOK},
	)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestRegister(t *testing.T) {
	t.Run("success returns 201 with token", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		handler := newAuthHandler(userStore, true)

		w := postJSON(t, handler.Register, "/api/auth/register", RegisterRequest{
			Name:     "Jordan",
			Email:    "jordan@example.com",
			Password: "correct horse battery",
		})

		require.Equal(t, http.StatusCreated, w.Code)

		var resp AuthResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "test-token", resp.Token)
		assert.NotEqual(t, uuid.Nil, resp.UserID)
		assert.Equal(t, 1, userStore.Count())

		// The stored user carries the hash, never the plaintext
		stored, err := userStore.GetByEmail(context.Background(), "jordan@example.com")
		require.NoError(t, err)
		assert.Equal(t, "hashed:correct horse battery", stored.HashedPassword)
		assert.Empty(t, stored.Password)
	})

	t.Run("duplicate email returns 409", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		handler := newAuthHandler(userStore, true)

		first := postJSON(t, handler.Register, "/api/auth/register", RegisterRequest{
			Name:     "Jordan",
			Email:    "jordan@example.com",
			Password: "correct horse battery",
		})
		require.Equal(t, http.StatusCreated, first.Code)

		second := postJSON(t, handler.Register, "/api/auth/register", RegisterRequest{
			Name:     "Impostor",
			Email:    "jordan@example.com",
			Password: "another password",
		})
		assert.Equal(t, http.StatusConflict, second.Code)
		assert.Equal(t, 1, userStore.Count())
	})

	t.Run("invalid payloads return 400", func(t *testing.T) {
		tests := []struct {
			name string
			req  RegisterRequest
		}{
			{"missing name", RegisterRequest{Email: "a@example.com", Password: "long enough pw"}},
			{"bad email", RegisterRequest{Name: "A", Email: "not-an-email", Password: "long enough pw"}},
			{"short password", RegisterRequest{Name: "A", Email: "a@example.com", Password: "short"}},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				userStore := mocks.NewMockUserStore()
				handler := newAuthHandler(userStore, true)

				w := postJSON(t, handler.Register, "/api/auth/register", tc.req)
				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Equal(t, 0, userStore.Count())
			})
		}
	})

	t.Run("whitespace-only name returns 400", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		handler := newAuthHandler(userStore, true)

		// Passes the request validator's min=1 tag but trims to empty.
		w := postJSON(t, handler.Register, "/api/auth/register", RegisterRequest{
			Name:     "   ",
			Email:    "jordan@example.com",
			Password: "correct horse battery",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, userStore.Count())
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		handler := newAuthHandler(mocks.NewMockUserStore(), true)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString("{not json"))
		w := httptest.NewRecorder()
		handler.Register(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogin(t *testing.T) {
	registeredStore := func(t *testing.T) *mocks.MockUserStore {
		t.Helper()
		userStore := mocks.NewMockUserStore()
		user, err := domain.NewUser("Jordan", "jordan@example.com", "correct horse battery")
		require.NoError(t, err)
		user.HashedPassword = "hashed:correct horse battery"
		require.NoError(t, userStore.Create(context.Background(), user))
		return userStore
	}

	t.Run("success returns 200 with token", func(t *testing.T) {
		handler := newAuthHandler(registeredStore(t), true)

		w := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
			Email:    "jordan@example.com",
			Password: "correct horse battery",
		})

		require.Equal(t, http.StatusOK, w.Code)

		var resp AuthResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "test-token", resp.Token)
	})

	t.Run("mixed-case email matches its registration", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		handler := newAuthHandler(userStore, true)

		registered := postJSON(t, handler.Register, "/api/auth/register", RegisterRequest{
			Name:     "Jordan",
			Email:    "Jordan@Example.com",
			Password: "correct horse battery",
		})
		require.Equal(t, http.StatusCreated, registered.Code)

		// Logging in with the exact string used at registration must work even
		// though the account is stored under the lowercased address.
		w := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
			Email:    "Jordan@Example.com",
			Password: "correct horse battery",
		})
		assert.Equal(t, http.StatusOK, w.Code)

		lower := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
			Email:    "jordan@example.com",
			Password: "correct horse battery",
		})
		assert.Equal(t, http.StatusOK, lower.Code)
	})

	t.Run("wrong password returns 401", func(t *testing.T) {
		handler := newAuthHandler(registeredStore(t), false)

		w := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
			Email:    "jordan@example.com",
			Password: "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown email returns the same 401 as a wrong password", func(t *testing.T) {
		handler := newAuthHandler(registeredStore(t), false)

		wrongPassword := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
			Email:    "jordan@example.com",
			Password: "wrong",
		})
		unknownEmail := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever",
		})

		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	})
}

func TestLogout(t *testing.T) {
	handler := newAuthHandler(mocks.NewMockUserStore(), true)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	w := httptest.NewRecorder()
	handler.Logout(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

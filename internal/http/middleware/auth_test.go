package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSessionProvider struct {
	mock.Mock
}

func (m *MockSessionProvider) UserByToken(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func TestAuth_ValidBearerToken(t *testing.T) {
	t.Parallel()

	sessions := new(MockSessionProvider)
	requester := &models.User{ID: "user1", Role: models.RoleApplicant}

	sessions.On("UserByToken", mock.Anything, "token123").Return(requester, nil)

	var got *models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = UserFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/documents", nil)
	req.Header.Set("Authorization", "Bearer token123")
	rec := httptest.NewRecorder()

	Auth(slog.Default(), sessions)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, requester, got)
}

func TestAuth_QueryToken(t *testing.T) {
	t.Parallel()

	sessions := new(MockSessionProvider)
	requester := &models.User{ID: "user1"}

	sessions.On("UserByToken", mock.Anything, "token123").Return(requester, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/documents?token=token123", nil)
	rec := httptest.NewRecorder()

	Auth(slog.Default(), sessions)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	t.Parallel()

	sessions := new(MockSessionProvider)

	sessions.On("UserByToken", mock.Anything, "").Return(nil, models.ErrSessionNotFound)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/api/documents", nil)
	rec := httptest.NewRecorder()

	Auth(slog.Default(), sessions)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAdminOnly_RejectsApplicant(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	ctx := context.WithValue(req.Context(), models.UserContextKey, &models.User{ID: "user1", Role: models.RoleApplicant})
	rec := httptest.NewRecorder()

	AdminOnly(slog.Default())(next).ServeHTTP(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminOnly_AllowsAdmin(t *testing.T) {
	t.Parallel()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	ctx := context.WithValue(req.Context(), models.UserContextKey, &models.User{ID: "admin1", Role: models.RoleAdmin})
	rec := httptest.NewRecorder()

	AdminOnly(slog.Default())(next).ServeHTTP(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestAdminOnly_RejectsMissingUser(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	rec := httptest.NewRecorder()

	AdminOnly(slog.Default())(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

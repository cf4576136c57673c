package authservice

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserAdder struct {
	mock.Mock
}

func (m *MockUserAdder) AddUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockUserProvider struct {
	mock.Mock
}

func (m *MockUserProvider) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type MockSessionStorer struct {
	mock.Mock
}

func (m *MockSessionStorer) SaveSession(ctx context.Context, token string, userJSON string) error {
	args := m.Called(ctx, token, userJSON)
	return args.Error(0)
}

func (m *MockSessionStorer) DeleteSession(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionStorer) GetUserByToken(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func newTestService() (*AuthService, *MockUserAdder, *MockUserProvider, *MockSessionStorer) {
	adder := new(MockUserAdder)
	provider := new(MockUserProvider)
	sessions := new(MockSessionStorer)

	return New(slog.Default(), adder, provider, sessions), adder, provider, sessions
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	service, adder, _, _ := newTestService()

	adder.On("AddUser", mock.Anything, mock.MatchedBy(func(user models.User) bool {
		return user.Email == "applicant@example.com" &&
			user.Role == models.RoleApplicant &&
			user.ApplicationStatus == models.ApplicationPending &&
			len(user.PassHash) > 0
	})).Return(nil)

	user, err := service.Register(context.Background(), "applicant@example.com", "password1", "Awa", "Ouedraogo")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, user.ApplicationStatus)
	assert.NoError(t, bcrypt.CompareHashAndPassword(user.PassHash, []byte("password1")))
	adder.AssertExpectations(t)
}

func TestRegister_InvalidData(t *testing.T) {
	t.Parallel()

	service, _, _, _ := newTestService()

	cases := []struct {
		name      string
		email     string
		password  string
		firstName string
		lastName  string
	}{
		{"bad email", "not-an-email", "password1", "Awa", "Ouedraogo"},
		{"short password", "a@b.com", "pw1", "Awa", "Ouedraogo"},
		{"password without digit", "a@b.com", "passwords", "Awa", "Ouedraogo"},
		{"empty first name", "a@b.com", "password1", "", "Ouedraogo"},
		{"empty last name", "a@b.com", "password1", "Awa", ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			user, err := service.Register(context.Background(), tc.email, tc.password, tc.firstName, tc.lastName)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, models.ErrInvalidParams)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	service, adder, _, _ := newTestService()

	adder.On("AddUser", mock.Anything, mock.Anything).Return(models.ErrUserExists)

	user, err := service.Register(context.Background(), "applicant@example.com", "password1", "Awa", "Ouedraogo")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, models.ErrUserExists)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	service, _, provider, sessions := newTestService()

	passHash, err := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	stored := &models.User{
		ID:       "user1",
		Email:    "applicant@example.com",
		PassHash: passHash,
		Role:     models.RoleApplicant,
	}

	provider.On("UserByEmail", mock.Anything, "applicant@example.com").Return(stored, nil)
	sessions.On("SaveSession", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	token, user, err := service.Login(context.Background(), "applicant@example.com", "password1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "user1", user.ID)
	sessions.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	service, _, provider, _ := newTestService()

	passHash, err := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	provider.On("UserByEmail", mock.Anything, "applicant@example.com").
		Return(&models.User{Email: "applicant@example.com", PassHash: passHash}, nil)

	token, user, err := service.Login(context.Background(), "applicant@example.com", "wrongpass1")
	assert.Empty(t, token)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailMapsToInvalidCredentials(t *testing.T) {
	t.Parallel()

	service, _, provider, _ := newTestService()

	provider.On("UserByEmail", mock.Anything, "ghost@example.com").
		Return((*models.User)(nil), models.ErrUserNotFound)

	token, user, err := service.Login(context.Background(), "ghost@example.com", "password1")
	assert.Empty(t, token)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestLogout(t *testing.T) {
	t.Parallel()

	service, _, _, sessions := newTestService()

	sessions.On("DeleteSession", mock.Anything, "token123").Return(nil)

	err := service.Logout(context.Background(), "token123")
	assert.NoError(t, err)
	sessions.AssertExpectations(t)
}

func TestUserByToken_EmptyToken(t *testing.T) {
	t.Parallel()

	service, _, _, _ := newTestService()

	user, err := service.UserByToken(context.Background(), "")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
}

func TestUserByToken_Success(t *testing.T) {
	t.Parallel()

	service, _, _, sessions := newTestService()

	stored := models.User{ID: "user1", Email: "applicant@example.com", Role: models.RoleApplicant}
	userJSON, err := json.Marshal(stored)
	require.NoError(t, err)

	sessions.On("GetUserByToken", mock.Anything, "token123").Return(string(userJSON), nil)

	user, err := service.UserByToken(context.Background(), "token123")
	require.NoError(t, err)
	assert.Equal(t, "user1", user.ID)
	assert.Equal(t, models.RoleApplicant, user.Role)
}

func TestUserByToken_SessionExpired(t *testing.T) {
	t.Parallel()

	service, _, _, sessions := newTestService()

	sessions.On("GetUserByToken", mock.Anything, "expired").Return("", models.ErrSessionNotFound)

	user, err := service.UserByToken(context.Background(), "expired")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
}

func TestUserByToken_StorageError(t *testing.T) {
	t.Parallel()

	service, _, _, sessions := newTestService()

	sessions.On("GetUserByToken", mock.Anything, "token123").Return("", errors.New("redis down"))

	user, err := service.UserByToken(context.Background(), "token123")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, models.ErrInternal)
}

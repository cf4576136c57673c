package userservice

import (
	"context"
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

func (m *MockUserProvider) UserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserProvider) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func newTestService() (*UserService, *MockUserAdder, *MockUserProvider) {
	adder := new(MockUserAdder)
	provider := new(MockUserProvider)

	return New(slog.Default(), adder, provider), adder, provider
}

func TestAddUser_UniqueConstraint(t *testing.T) {
	t.Parallel()

	service, adder, _ := newTestService()

	user := models.User{ID: "user1", Email: "applicant@example.com"}

	adder.On("AddUser", mock.Anything, user).
		Return(&models.UniqueConstraintError{Constraint: "users_email_key", Err: models.ErrUNIQUEConstraintFailed})

	err := service.AddUser(context.Background(), user)
	assert.ErrorIs(t, err, models.ErrUserExists)
}

func TestAddUser_OtherError(t *testing.T) {
	t.Parallel()

	service, adder, _ := newTestService()

	user := models.User{ID: "user1"}

	adder.On("AddUser", mock.Anything, user).Return(errors.New("db down"))

	err := service.AddUser(context.Background(), user)
	assert.ErrorIs(t, err, models.ErrInternal)
}

func TestAddUser_Success(t *testing.T) {
	t.Parallel()

	service, adder, _ := newTestService()

	user := models.User{ID: "user1"}

	adder.On("AddUser", mock.Anything, user).Return(nil)

	err := service.AddUser(context.Background(), user)
	assert.NoError(t, err)
}

func TestUserByID_NotFound(t *testing.T) {
	t.Parallel()

	service, _, provider := newTestService()

	provider.On("UserByID", mock.Anything, "ghost").Return((*models.User)(nil), models.ErrUserNotFound)

	user, err := service.UserByID(context.Background(), "ghost")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestUserByEmail_Success(t *testing.T) {
	t.Parallel()

	service, _, provider := newTestService()

	stored := &models.User{ID: "user1", Email: "applicant@example.com"}

	provider.On("UserByEmail", mock.Anything, "applicant@example.com").Return(stored, nil)

	user, err := service.UserByEmail(context.Background(), "applicant@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user1", user.ID)
}

func TestEnsureAdmin_AlreadyExists(t *testing.T) {
	t.Parallel()

	service, adder, provider := newTestService()

	provider.On("UserByEmail", mock.Anything, "admin@inscription.bf").
		Return(&models.User{ID: "admin1", Role: models.RoleAdmin}, nil)

	err := service.EnsureAdmin(context.Background(), "admin@inscription.bf", "adminpass1")
	assert.NoError(t, err)
	adder.AssertNotCalled(t, "AddUser", mock.Anything, mock.Anything)
}

func TestEnsureAdmin_Provisions(t *testing.T) {
	t.Parallel()

	service, adder, provider := newTestService()

	provider.On("UserByEmail", mock.Anything, "admin@inscription.bf").
		Return((*models.User)(nil), models.ErrUserNotFound)
	adder.On("AddUser", mock.Anything, mock.MatchedBy(func(user models.User) bool {
		return user.Email == "admin@inscription.bf" &&
			user.Role == models.RoleAdmin &&
			user.ApplicationStatus == models.ApplicationActive &&
			bcrypt.CompareHashAndPassword(user.PassHash, []byte("adminpass1")) == nil
	})).Return(nil)

	err := service.EnsureAdmin(context.Background(), "admin@inscription.bf", "adminpass1")
	assert.NoError(t, err)
	adder.AssertExpectations(t)
}

package userservice

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
	uuid "github.com/satori/go.uuid"
	"golang.org/x/crypto/bcrypt"
)

const pkg = "userService/"

type UserService struct {
	log          *slog.Logger
	userAdder    UserAdder
	userProvider UserProvider
}

func New(
	log *slog.Logger,
	userAdder UserAdder,
	userProvider UserProvider) *UserService {
	return &UserService{
		log:          log,
		userAdder:    userAdder,
		userProvider: userProvider,
	}
}

func (u *UserService) AddUser(ctx context.Context, user models.User) error {
	op := pkg + "AddUser"

	log := u.log.With(slog.String("op", op))

	log.Debug("attempting to add user")

	err := u.userAdder.AddUser(ctx, user)
	if err != nil {
		var uce *models.UniqueConstraintError
		if errors.As(err, &uce) {
			log.Warn("user already exists", slog.String("constraint", uce.Constraint))
			return models.ErrUserExists
		}
		log.Error("failed to add user", slog.String("error", err.Error()))
		return models.ErrInternal
	}

	log.Debug("user added successfully")

	return nil
}

func (u *UserService) UserByID(ctx context.Context, id string) (*models.User, error) {
	op := pkg + "UserByID"

	log := u.log.With(slog.String("op", op))

	log.Debug("attempting to get user by id")

	user, err := u.userProvider.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			log.Warn("failed to get user by id", slog.String("error", models.ErrUserNotFound.Error()))
			return nil, models.ErrUserNotFound
		}
		log.Error("failed to get user by id", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	log.Debug("user found successfully")

	return user, nil
}

func (u *UserService) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	op := pkg + "UserByEmail"

	log := u.log.With(slog.String("op", op))

	log.Debug("attempting to get user by email")

	user, err := u.userProvider.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			log.Warn("failed to get user by email", slog.String("error", models.ErrUserNotFound.Error()))
			return nil, models.ErrUserNotFound
		}
		log.Error("failed to get user by email", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	log.Debug("user found successfully")

	return user, nil
}

// EnsureAdmin provisions the administrative account on startup when it does
// not exist yet. Admin accounts carry the ACTIVE marker instead of an
// applicant status.
func (u *UserService) EnsureAdmin(ctx context.Context, email string, password string) error {
	op := pkg + "EnsureAdmin"

	log := u.log.With(slog.String("op", op))

	_, err := u.userProvider.UserByEmail(ctx, email)
	if err == nil {
		log.Debug("admin user already exists")
		return nil
	}

	if !errors.Is(err, models.ErrUserNotFound) {
		log.Error("failed to check admin user", slog.String("error", err.Error()))
		return models.ErrInternal
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", slog.String("error", err.Error()))
		return models.ErrInternal
	}

	now := time.Now()

	admin := models.User{
		ID:                uuid.NewV4().String(),
		Email:             email,
		FirstName:         "Admin",
		LastName:          "Admin",
		PassHash:          passHash,
		Role:              models.RoleAdmin,
		ApplicationStatus: models.ApplicationActive,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := u.AddUser(ctx, admin); err != nil {
		if errors.Is(err, models.ErrUserExists) {
			return nil
		}
		return err
	}

	log.Info("admin user provisioned", slog.String("email", email))

	return nil
}

package authservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
	"github.com/RichyP48/Inscription-en-ligne-bf/internal/validator"
	uuid "github.com/satori/go.uuid"
	"golang.org/x/crypto/bcrypt"
)

const pkg = "authService/"

type AuthService struct {
	log           *slog.Logger
	userAdder     UserAdder
	userProvider  UserProvider
	sessionStorer SessionStorer
}

func New(
	log *slog.Logger,
	userAdder UserAdder,
	userProvider UserProvider,
	sessionStorer SessionStorer,
) *AuthService {
	return &AuthService{
		log:           log,
		userAdder:     userAdder,
		userProvider:  userProvider,
		sessionStorer: sessionStorer,
	}
}

// Register creates an applicant account. Every new registration starts in
// the PENDING application status.
func (a *AuthService) Register(ctx context.Context, email string, password string, firstName string, lastName string) (*models.User, error) {
	op := pkg + "Register"

	log := a.log.With(slog.String("op", op))

	log.Debug("attempting to register user")

	if !validator.IsValidEmail(email) || !validator.IsValidPassword(password) ||
		!validator.IsValidName(firstName) || !validator.IsValidName(lastName) {
		log.Warn("invalid registration data")
		return nil, models.ErrInvalidParams
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	now := time.Now()

	user := models.User{
		ID:                uuid.NewV4().String(),
		Email:             email,
		FirstName:         firstName,
		LastName:          lastName,
		PassHash:          passHash,
		Role:              models.RoleApplicant,
		ApplicationStatus: models.ApplicationPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = a.userAdder.AddUser(ctx, user)
	if err != nil {
		if errors.Is(err, models.ErrUserExists) {
			log.Warn("user already exists", slog.String("email", user.Email))
			return nil, models.ErrUserExists
		}

		log.Error("failed to add user", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	log.Debug("user registered successfully")

	return &user, nil
}

func (a *AuthService) Login(ctx context.Context, email string, password string) (string, *models.User, error) {
	op := pkg + "Login"

	log := a.log.With(slog.String("op", op))

	log.Debug("attempting to login user")

	user, err := a.userProvider.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			log.Info("user not found", slog.String("error", models.ErrUserNotFound.Error()))
			return "", nil, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
		}

		log.Error("failed to get user", slog.String("error", err.Error()))
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PassHash, []byte(password)); err != nil {
		log.Info("invalid credentials", slog.String("error", err.Error()))
		return "", nil, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}

	token := uuid.NewV4().String()

	userJSON, err := json.Marshal(user)
	if err != nil {
		log.Error("failed to marshal user", slog.String("error", err.Error()))
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	err = a.sessionStorer.SaveSession(ctx, token, string(userJSON))
	if err != nil {
		log.Error("failed to save session", slog.String("error", err.Error()))
		return "", nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("user logged in successfully")

	return token, user, nil
}

func (a *AuthService) Logout(ctx context.Context, token string) error {
	op := pkg + "Logout"

	log := a.log.With(slog.String("op", op))

	if err := a.sessionStorer.DeleteSession(ctx, token); err != nil {
		log.Error("failed to delete session", slog.String("error", err.Error()))
		return models.ErrInternal
	}

	log.Debug("session deleted successfully")

	return nil
}

func (a *AuthService) UserByToken(ctx context.Context, token string) (*models.User, error) {
	op := pkg + "UserByToken"

	log := a.log.With(slog.String("op", op))

	if token == "" {
		return nil, models.ErrSessionNotFound
	}

	userJSON, err := a.sessionStorer.GetUserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, models.ErrSessionNotFound) {
			log.Warn("session not found")
			return nil, models.ErrSessionNotFound
		}
		log.Error("failed to get session", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		log.Error("failed to unmarshal user", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	return &user, nil
}

package user

import (
	"context"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
)

const pkg = "userHandler/"

type AuthService interface {
	Register(ctx context.Context, email string, password string, firstName string, lastName string) (*models.User, error)
}

package middleware

import (
	"context"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
)

const pkg = "middleware/"

type SessionProvider interface {
	UserByToken(ctx context.Context, token string) (*models.User, error)
}

package profile

import (
	"context"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
)

const pkg = "profileHandler/"

type ProfileService interface {
	PersonalInfo(ctx context.Context, userID string) (*models.PersonalInfo, error)
	SavePersonalInfo(ctx context.Context, owner *models.User, info models.PersonalInfo) (*models.PersonalInfo, error)
	ContactInfo(ctx context.Context, userID string) (*models.ContactInfo, error)
	SaveContactInfo(ctx context.Context, owner *models.User, info models.ContactInfo) (*models.ContactInfo, error)
}

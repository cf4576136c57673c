package profileservice

import (
	"context"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
)

type ProfileRepository interface {
	PersonalInfoByUser(ctx context.Context, userID string) (*models.PersonalInfo, error)
	SavePersonalInfo(ctx context.Context, info *models.PersonalInfo) (*models.PersonalInfo, error)
	ContactInfoByUser(ctx context.Context, userID string) (*models.ContactInfo, error)
	SaveContactInfo(ctx context.Context, info *models.ContactInfo) (*models.ContactInfo, error)
}

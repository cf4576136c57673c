package academicservice

import (
	"context"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
)

type AcademicRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]*models.AcademicRecord, error)
	Insert(ctx context.Context, rec *models.AcademicRecord) error
	Update(ctx context.Context, rec *models.AcademicRecord) error
	Delete(ctx context.Context, id string, ownerID string) error
}

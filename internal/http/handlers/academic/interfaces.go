package academic

import (
	"context"
	"time"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
)

const pkg = "academicHandler/"

type AcademicService interface {
	ListRecords(ctx context.Context, ownerID string) ([]*models.AcademicRecord, error)
	AddRecord(ctx context.Context, owner *models.User, institution string, specialization string, start time.Time, end *time.Time) (*models.AcademicRecord, error)
	UpdateRecord(ctx context.Context, owner *models.User, recordID string, institution string, specialization string, start time.Time, end *time.Time) (*models.AcademicRecord, error)
	DeleteRecord(ctx context.Context, owner *models.User, recordID string) error
}

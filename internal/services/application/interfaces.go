package applicationservice

import (
	"context"
	"time"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
)

type ApplicantRepository interface {
	UserByID(ctx context.Context, id string) (*models.User, error)
	UpdateApplicationStatus(ctx context.Context, userID string, newStatus models.ApplicationStatus) (*models.User, bool, error)
	ListApplicants(ctx context.Context, limit int, offset int) ([]*models.User, error)
	CountApplicants(ctx context.Context) (int64, error)
	CountApplicantsByStatus(ctx context.Context, status models.ApplicationStatus) (int64, error)
	CountApplicantsByStatusUpdatedAfter(ctx context.Context, status models.ApplicationStatus, after time.Time) (int64, error)
}

type Notifier interface {
	SendApplicationStatusUpdate(ctx context.Context, email string, status models.ApplicationStatus) error
}

type ApplicationStats struct {
	Total          int64
	Pending        int64
	Approved       int64
	Rejected       int64
	ApprovalRate30 string
}

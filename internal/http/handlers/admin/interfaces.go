package admin

import (
	"context"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
	applicationservice "github.com/RichyP48/Inscription-en-ligne-bf/internal/services/application"
)

const pkg = "adminHandler/"

type DocumentStatusUpdater interface {
	UpdateStatus(ctx context.Context, docID string, newStatus models.DocumentStatus, notes string) (*models.Document, error)
}

type DocumentLister interface {
	ListDocuments(ctx context.Context, ownerID string) ([]*models.Document, error)
}

type AcademicLister interface {
	ListRecords(ctx context.Context, ownerID string) ([]*models.AcademicRecord, error)
}

type UserProvider interface {
	UserByID(ctx context.Context, id string) (*models.User, error)
}

type ApplicationService interface {
	SetStatus(ctx context.Context, userID string, newStatus models.ApplicationStatus) (*models.User, error)
	ListApplications(ctx context.Context, limit int, offset int) ([]*models.User, error)
	Stats(ctx context.Context) (*applicationservice.ApplicationStats, error)
}

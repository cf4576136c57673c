package server

import (
	"context"
	"io"
	"time"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
	applicationservice "github.com/RichyP48/Inscription-en-ligne-bf/internal/services/application"
)

type AuthService interface {
	Register(ctx context.Context, email string, password string, firstName string, lastName string) (*models.User, error)
	Login(ctx context.Context, email string, password string) (string, *models.User, error)
	Logout(ctx context.Context, token string) error
	UserByToken(ctx context.Context, token string) (*models.User, error)
}

type DocumentService interface {
	UploadDocument(ctx context.Context, owner *models.User, docType models.DocumentType, originalFilename string, contentType string, size int64, content io.Reader) (*models.Document, error)
	ListDocuments(ctx context.Context, ownerID string) ([]*models.Document, error)
	DocumentByID(ctx context.Context, docID string, owner *models.User) (*models.Document, error)
	DocumentContent(ctx context.Context, docID string, owner *models.User) (*models.Document, io.ReadCloser, error)
	DeleteDocument(ctx context.Context, docID string, owner *models.User) error
	UpdateStatus(ctx context.Context, docID string, newStatus models.DocumentStatus, notes string) (*models.Document, error)
}

type AcademicService interface {
	ListRecords(ctx context.Context, ownerID string) ([]*models.AcademicRecord, error)
	AddRecord(ctx context.Context, owner *models.User, institution string, specialization string, start time.Time, end *time.Time) (*models.AcademicRecord, error)
	UpdateRecord(ctx context.Context, owner *models.User, recordID string, institution string, specialization string, start time.Time, end *time.Time) (*models.AcademicRecord, error)
	DeleteRecord(ctx context.Context, owner *models.User, recordID string) error
}

type ProfileService interface {
	PersonalInfo(ctx context.Context, userID string) (*models.PersonalInfo, error)
	SavePersonalInfo(ctx context.Context, owner *models.User, info models.PersonalInfo) (*models.PersonalInfo, error)
	ContactInfo(ctx context.Context, userID string) (*models.ContactInfo, error)
	SaveContactInfo(ctx context.Context, owner *models.User, info models.ContactInfo) (*models.ContactInfo, error)
}

type ApplicationService interface {
	GetStatus(ctx context.Context, userID string) (models.ApplicationStatus, error)
	SetStatus(ctx context.Context, userID string, newStatus models.ApplicationStatus) (*models.User, error)
	ListApplications(ctx context.Context, limit int, offset int) ([]*models.User, error)
	Stats(ctx context.Context) (*applicationservice.ApplicationStats, error)
}

type UserService interface {
	UserByID(ctx context.Context, id string) (*models.User, error)
}

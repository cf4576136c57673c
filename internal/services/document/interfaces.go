package documentservice

import (
	"context"
	"io"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
)

type DocumentRepository interface {
	CreateDocument(ctx context.Context, doc *models.Document) error
	DocumentByID(ctx context.Context, id string) (*models.Document, error)
	DocumentByIDAndOwner(ctx context.Context, id string, ownerID string) (*models.Document, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Document, error)
	ExistsByOwnerAndType(ctx context.Context, ownerID string, docType models.DocumentType) (bool, error)
	UpdateStatus(ctx context.Context, id string, newStatus models.DocumentStatus, notes string) (*models.Document, bool, error)
	Delete(ctx context.Context, id string) error
}

type FileStorage interface {
	Store(ownerID string, originalName string, content io.Reader) (string, error)
	Load(key string) (io.ReadCloser, error)
	Delete(key string) error
}

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}) error
	Del(ctx context.Context, keys ...string) error
}

type UserProvider interface {
	UserByID(ctx context.Context, id string) (*models.User, error)
}

type Notifier interface {
	SendDocumentStatusUpdate(ctx context.Context, email string, doc *models.Document) error
}

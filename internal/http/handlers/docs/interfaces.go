package docs

import (
	"context"
	"io"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
)

const pkg = "docsHandler/"

type DocumentUploader interface {
	UploadDocument(ctx context.Context, owner *models.User, docType models.DocumentType, originalFilename string, contentType string, size int64, content io.Reader) (*models.Document, error)
}

type DocumentProvider interface {
	ListDocuments(ctx context.Context, ownerID string) ([]*models.Document, error)
	DocumentByID(ctx context.Context, docID string, owner *models.User) (*models.Document, error)
	DocumentContent(ctx context.Context, docID string, owner *models.User) (*models.Document, io.ReadCloser, error)
}

type DocumentDeleter interface {
	DeleteDocument(ctx context.Context, docID string, owner *models.User) error
}

package dto

import (
	"time"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
)

type DocumentResponse struct {
	ID               string     `json:"id"`
	DocumentType     string     `json:"document_type"`
	OriginalFilename string     `json:"original_filename"`
	FileSize         int64      `json:"file_size"`
	ContentType      string     `json:"content_type"`
	Status           string     `json:"status"`
	ValidationNotes  *string    `json:"validation_notes,omitempty"`
	UploadedAt       time.Time  `json:"uploaded_at"`
	ValidatedAt      *time.Time `json:"validated_at,omitempty"`
}

func DocumentResponseFrom(doc *models.Document) DocumentResponse {
	return DocumentResponse{
		ID:               doc.ID,
		DocumentType:     string(doc.DocumentType),
		OriginalFilename: doc.OriginalFilename,
		FileSize:         doc.FileSize,
		ContentType:      doc.ContentType,
		Status:           string(doc.Status),
		ValidationNotes:  doc.ValidationNotes,
		UploadedAt:       doc.UploadedAt,
		ValidatedAt:      doc.ValidatedAt,
	}
}

type DocumentStatusUpdateRequest struct {
	NewStatus       string `json:"new_status"`
	ValidationNotes string `json:"validation_notes"`
}

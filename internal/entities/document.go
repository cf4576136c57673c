package entities

import (
	"database/sql"
	"time"
)

type Document struct {
	ID               string         `db:"id"`
	OwnerID          string         `db:"owner_id"`
	DocumentType     string         `db:"document_type"`
	OriginalFilename string         `db:"original_filename"`
	StoredKey        string         `db:"stored_key"`
	FileSize         int64          `db:"file_size"`
	ContentType      string         `db:"content_type"`
	Status           string         `db:"status"`
	ValidationNotes  sql.NullString `db:"validation_notes"`
	UploadedAt       time.Time      `db:"uploaded_at"`
	ValidatedAt      sql.NullTime   `db:"validated_at"`
}

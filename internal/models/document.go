package models

import "time"

type DocumentStatus string

const (
	// DocumentMissing is virtual: no row exists for the type yet.
	DocumentMissing           DocumentStatus = "MISSING"
	DocumentUploaded          DocumentStatus = "UPLOADED"
	DocumentValidationPending DocumentStatus = "VALIDATION_PENDING"
	DocumentValidationFailed  DocumentStatus = "VALIDATION_FAILED"
	DocumentValidated         DocumentStatus = "VALIDATED"
	DocumentRejected          DocumentStatus = "REJECTED"
)

func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentUploaded, DocumentValidationPending, DocumentValidationFailed,
		DocumentValidated, DocumentRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether an admin status update from s to target is
// allowed. Same-status updates are always allowed and treated as no-ops by
// the registry. Decisions (VALIDATED, REJECTED) can only be reached through
// the review pipeline; every other target is open, so an admin re-opens a
// decided document by moving it back to VALIDATION_PENDING. UPLOADED is
// never a target: a fresh upload supersedes the old row instead of mutating
// it.
func (s DocumentStatus) CanTransitionTo(target DocumentStatus) bool {
	if s == target {
		return true
	}

	switch target {
	case DocumentUploaded:
		return false
	case DocumentValidated, DocumentRejected:
		return s == DocumentUploaded || s == DocumentValidationPending || s == DocumentValidationFailed
	}

	return true
}

// RequiresNotes reports whether a status update targeting s must carry
// non-empty validation notes.
func (s DocumentStatus) RequiresNotes() bool {
	return s == DocumentRejected || s == DocumentValidationFailed
}

// IsTerminal reports whether s is a final admin decision. Only decisions
// stamp validated_at; VALIDATION_FAILED is retryable and does not.
func (s DocumentStatus) IsTerminal() bool {
	return s == DocumentValidated || s == DocumentRejected
}

type Document struct {
	ID               string         `json:"id"`
	OwnerID          string         `json:"owner_id"`
	DocumentType     DocumentType   `json:"document_type"`
	OriginalFilename string         `json:"original_filename"`
	StoredKey        string         `json:"-"`
	FileSize         int64          `json:"file_size"`
	ContentType      string         `json:"content_type"`
	Status           DocumentStatus `json:"status"`
	ValidationNotes  *string        `json:"validation_notes,omitempty"`
	UploadedAt       time.Time      `json:"uploaded_at"`
	ValidatedAt      *time.Time     `json:"validated_at,omitempty"`
}

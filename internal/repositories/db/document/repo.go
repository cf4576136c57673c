package documentrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/entities"
	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const pkg = "documentRepo/"

const documentColumns = `
			d.id AS id,
			d.owner_id AS owner_id,
			d.document_type AS document_type,
			d.original_filename AS original_filename,
			d.stored_key AS stored_key,
			d.file_size AS file_size,
			d.content_type AS content_type,
			d.status AS status,
			d.validation_notes AS validation_notes,
			d.uploaded_at AS uploaded_at,
			d.validated_at AS validated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

// CreateDocument inserts document metadata. The partial unique index on
// (owner_id, document_type) for non-repeatable types is the real duplicate
// guard; a violation surfaces as UniqueConstraintError.
func (r *repository) CreateDocument(ctx context.Context, doc *models.Document) error {
	op := pkg + "CreateDocument"

	var notes any
	if doc.ValidationNotes != nil {
		notes = *doc.ValidationNotes
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO documents (id, owner_id, document_type, original_filename, stored_key, file_size, content_type, status, validation_notes, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		doc.ID, doc.OwnerID, doc.DocumentType, doc.OriginalFilename, doc.StoredKey,
		doc.FileSize, doc.ContentType, doc.Status, notes, doc.UploadedAt)
	if err != nil {
		if pgErr, ok := err.(*pq.Error); ok {
			if pgErr.Code == "23505" {
				return &models.UniqueConstraintError{
					Constraint: pgErr.Constraint,
					Err:        models.ErrUNIQUEConstraintFailed,
				}
			}
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DocumentByIDAndOwner returns ErrDocumentNotFound both for an unknown id
// and for a document owned by somebody else, so callers cannot probe for
// existence.
func (r *repository) DocumentByIDAndOwner(ctx context.Context, id string, ownerID string) (*models.Document, error) {
	op := pkg + "DocumentByIDAndOwner"

	rawDoc := entities.Document{}

	err := r.db.GetContext(ctx, &rawDoc,
		`SELECT `+documentColumns+`
		FROM documents d
		WHERE d.id = $1 AND d.owner_id = $2`,
		id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return mapDocument(rawDoc), nil
}

func (r *repository) DocumentByID(ctx context.Context, id string) (*models.Document, error) {
	op := pkg + "DocumentByID"

	rawDoc := entities.Document{}

	err := r.db.GetContext(ctx, &rawDoc,
		`SELECT `+documentColumns+`
		FROM documents d
		WHERE d.id = $1`,
		id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return mapDocument(rawDoc), nil
}

func (r *repository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Document, error) {
	op := pkg + "ListByOwner"

	rawDocs := make([]entities.Document, 0)

	err := r.db.SelectContext(ctx, &rawDocs,
		`SELECT `+documentColumns+`
		FROM documents d
		WHERE d.owner_id = $1
		ORDER BY d.uploaded_at DESC`,
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	docs := make([]*models.Document, 0, len(rawDocs))
	for _, rawDoc := range rawDocs {
		docs = append(docs, mapDocument(rawDoc))
	}

	return docs, nil
}

func (r *repository) ExistsByOwnerAndType(ctx context.Context, ownerID string, docType models.DocumentType) (bool, error) {
	op := pkg + "ExistsByOwnerAndType"

	var exists bool

	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM documents d WHERE d.owner_id = $1 AND d.document_type = $2)`,
		ownerID, docType)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

// UpdateStatus applies the document status machine inside a single
// transaction with the row locked, so concurrent admin actions are
// serialized per document. A same-status update commits nothing and returns
// the row untouched with changed=false, so the caller can skip cache
// invalidation and notifications.
func (r *repository) UpdateStatus(ctx context.Context, id string, newStatus models.DocumentStatus, notes string) (*models.Document, bool, error) {
	op := pkg + "UpdateStatus"

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	rawDoc := entities.Document{}

	err = tx.GetContext(ctx, &rawDoc,
		`SELECT `+documentColumns+`
		FROM documents d
		WHERE d.id = $1
		FOR UPDATE`,
		id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
		}
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	current := models.DocumentStatus(rawDoc.Status)

	if current == newStatus {
		return mapDocument(rawDoc), false, nil
	}

	if !current.CanTransitionTo(newStatus) {
		return nil, false, fmt.Errorf("%s: %w", op, models.ErrInvalidStatusTransition)
	}

	var newNotes sql.NullString
	if notes != "" {
		newNotes = sql.NullString{String: notes, Valid: true}
	}

	var validatedAt sql.NullTime
	if newStatus.IsTerminal() {
		validatedAt = sql.NullTime{Time: time.Now(), Valid: true}
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE documents SET status = $1, validation_notes = $2, validated_at = $3 WHERE id = $4`,
		newStatus, newNotes, validatedAt, id)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	rawDoc.Status = string(newStatus)
	rawDoc.ValidationNotes = newNotes
	rawDoc.ValidatedAt = validatedAt

	return mapDocument(rawDoc), true, nil
}

// Delete removes the metadata row. ErrDocumentNotFound when nothing was
// deleted, which makes a racing double-delete deterministic for the caller.
func (r *repository) Delete(ctx context.Context, id string) error {
	op := pkg + "Delete"

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM documents WHERE id = $1`,
		id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if affected == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
	}

	return nil
}

func mapDocument(rawDoc entities.Document) *models.Document {
	doc := &models.Document{
		ID:               rawDoc.ID,
		OwnerID:          rawDoc.OwnerID,
		DocumentType:     models.DocumentType(rawDoc.DocumentType),
		OriginalFilename: rawDoc.OriginalFilename,
		StoredKey:        rawDoc.StoredKey,
		FileSize:         rawDoc.FileSize,
		ContentType:      rawDoc.ContentType,
		Status:           models.DocumentStatus(rawDoc.Status),
		UploadedAt:       rawDoc.UploadedAt,
	}

	if rawDoc.ValidationNotes.Valid {
		notes := rawDoc.ValidationNotes.String
		doc.ValidationNotes = &notes
	}

	if rawDoc.ValidatedAt.Valid {
		validatedAt := rawDoc.ValidatedAt.Time
		doc.ValidatedAt = &validatedAt
	}

	return doc
}

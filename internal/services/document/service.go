package documentservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
	uuid "github.com/satori/go.uuid"
)

const pkg = "documentService/"

// DocumentService is the registry for applicant documents: it owns the
// metadata rows and their status machine, and delegates byte persistence to
// the file storage. Stored keys never leave this service.
type DocumentService struct {
	log         *slog.Logger
	docRepo     DocumentRepository
	cache       Cache
	fileStorage FileStorage
	users       UserProvider
	notifier    Notifier
}

func New(
	log *slog.Logger,
	docRepo DocumentRepository,
	cache Cache,
	fileStorage FileStorage,
	users UserProvider,
	notifier Notifier,
) *DocumentService {
	return &DocumentService{
		log:         log,
		docRepo:     docRepo,
		cache:       cache,
		fileStorage: fileStorage,
		users:       users,
		notifier:    notifier,
	}
}

func (ds *DocumentService) UploadDocument(ctx context.Context, owner *models.User, docType models.DocumentType, originalFilename string, contentType string, size int64, content io.Reader) (*models.Document, error) {
	op := pkg + "UploadDocument"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to upload document",
		slog.String("owner_id", owner.ID),
		slog.String("document_type", string(docType)))

	spec, ok := models.DocumentTypeSpecFor(docType)
	if !ok {
		log.Warn("unknown document type", slog.String("document_type", string(docType)))
		return nil, models.ErrUnknownDocumentType
	}

	if size <= 0 {
		log.Warn("empty file rejected")
		return nil, models.ErrFileValidationFailed
	}

	if !spec.IsContentTypeAllowed(contentType) {
		log.Warn("content type not allowed",
			slog.String("content_type", contentType),
			slog.String("document_type", string(docType)))
		return nil, models.ErrFileValidationFailed
	}

	if size > spec.MaxSizeBytes {
		log.Warn("file size exceeds type limit",
			slog.Int64("size", size),
			slog.Int64("max", spec.MaxSizeBytes))
		return nil, models.ErrFileValidationFailed
	}

	// Fast-path check for a friendlier error. The partial unique index on
	// (owner_id, document_type) is the actual guard against a concurrent
	// duplicate upload.
	if !spec.Repeatable {
		exists, err := ds.docRepo.ExistsByOwnerAndType(ctx, owner.ID, docType)
		if err != nil {
			log.Error("failed to check existing document", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
		}
		if exists {
			log.Warn("non-repeatable document type already uploaded")
			return nil, models.ErrDocumentTypeConflict
		}
	}

	storedKey, err := ds.fileStorage.Store(owner.ID, originalFilename, content)
	if err != nil {
		if errors.Is(err, models.ErrInvalidFileName) {
			log.Warn("rejected unsafe file name", slog.String("error", err.Error()))
			return nil, models.ErrFileValidationFailed
		}
		log.Error("failed to store file", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrFileStorage)
	}

	doc := &models.Document{
		ID:               uuid.NewV4().String(),
		OwnerID:          owner.ID,
		DocumentType:     docType,
		OriginalFilename: originalFilename,
		StoredKey:        storedKey,
		FileSize:         size,
		ContentType:      contentType,
		Status:           models.DocumentUploaded,
		UploadedAt:       time.Now(),
	}

	if err := ds.docRepo.CreateDocument(ctx, doc); err != nil {
		_ = ds.fileStorage.Delete(storedKey)

		var uce *models.UniqueConstraintError
		if errors.As(err, &uce) {
			log.Warn("concurrent duplicate upload lost the race", slog.String("constraint", uce.Constraint))
			return nil, models.ErrDocumentTypeConflict
		}

		log.Error("failed to save document metadata", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if err := ds.cache.Del(ctx, docsCacheKey(owner.ID)); err != nil {
		log.Error("failed to invalidate owner cache", slog.String("error", err.Error()))
	}

	log.Debug("document uploaded successfully",
		slog.String("doc_id", doc.ID),
		slog.String("owner_id", doc.OwnerID))

	return doc, nil
}

func (ds *DocumentService) ListDocuments(ctx context.Context, ownerID string) ([]*models.Document, error) {
	op := pkg + "ListDocuments"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to list documents", slog.String("owner_id", ownerID))

	cacheKey := docsCacheKey(ownerID)

	docsJSON, err := ds.cache.Get(ctx, cacheKey)
	if err == nil && docsJSON != "" {
		docs, err := jsonToDocs(docsJSON)
		if err == nil {
			log.Debug("documents listed from cache", slog.Int("count", len(docs)))
			return docs, nil
		}
		log.Error("failed to parse cached docs", slog.String("error", err.Error()))
	}

	docs, err := ds.docRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		log.Error("failed to list documents", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	docsJSON, err = docsToJSON(docs)
	if err != nil {
		log.Error("failed to convert docs to json", slog.String("error", err.Error()))
	} else if err := ds.cache.Set(ctx, cacheKey, docsJSON); err != nil {
		log.Error("failed to set docs in cache", slog.String("error", err.Error()))
	}

	log.Debug("documents listed successfully", slog.Int("count", len(docs)))

	return docs, nil
}

func (ds *DocumentService) DocumentByID(ctx context.Context, docID string, owner *models.User) (*models.Document, error) {
	op := pkg + "DocumentByID"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to get document by id", slog.String("doc_id", docID), slog.String("owner_id", owner.ID))

	doc, err := ds.docRepo.DocumentByIDAndOwner(ctx, docID, owner.ID)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document not found", slog.String("doc_id", docID))
			return nil, models.ErrDocumentNotFound
		}
		log.Error("failed to get document by id", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return doc, nil
}

// DocumentContent returns metadata plus an open reader over the stored
// bytes. The caller owns closing the reader.
func (ds *DocumentService) DocumentContent(ctx context.Context, docID string, owner *models.User) (*models.Document, io.ReadCloser, error) {
	op := pkg + "DocumentContent"

	log := ds.log.With(slog.String("op", op))

	doc, err := ds.DocumentByID(ctx, docID, owner)
	if err != nil {
		return nil, nil, err
	}

	file, err := ds.fileStorage.Load(doc.StoredKey)
	if err != nil {
		if errors.Is(err, models.ErrFileNotFound) {
			log.Warn("stored file missing for document", slog.String("doc_id", docID))
			return nil, nil, models.ErrDocumentNotFound
		}
		log.Error("failed to load file from storage", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("%s: %w", op, models.ErrFileStorage)
	}

	log.Debug("document with content found successfully", slog.String("doc_id", docID))

	return doc, file, nil
}

// DeleteDocument removes bytes first, then metadata. Missing bytes are
// treated as success because absence matches intent; any other storage
// failure keeps the metadata row so no live row ever points at nothing
// silently.
func (ds *DocumentService) DeleteDocument(ctx context.Context, docID string, owner *models.User) error {
	op := pkg + "DeleteDocument"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to delete document", slog.String("doc_id", docID), slog.String("owner_id", owner.ID))

	doc, err := ds.DocumentByID(ctx, docID, owner)
	if err != nil {
		return err
	}

	if err := ds.fileStorage.Delete(doc.StoredKey); err != nil {
		if errors.Is(err, models.ErrFileNotFound) {
			log.Warn("stored file already absent, deleting metadata anyway", slog.String("doc_id", docID))
		} else {
			log.Error("failed to delete document content", slog.String("error", err.Error()))
			return fmt.Errorf("%s: %w", op, models.ErrFileStorage)
		}
	}

	if err := ds.docRepo.Delete(ctx, docID); err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document metadata already deleted", slog.String("doc_id", docID))
			return models.ErrDocumentNotFound
		}
		log.Error("failed to delete document meta", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if err := ds.cache.Del(ctx, docsCacheKey(owner.ID)); err != nil {
		log.Error("failed to invalidate owner cache", slog.String("error", err.Error()))
	}

	log.Debug("document with content deleted successfully", slog.String("doc_id", docID))

	return nil
}

// UpdateStatus is the admin entry of the document status machine. Transition
// legality is re-checked inside the repository transaction; here only the
// notes rule is enforced: REJECTED and VALIDATION_FAILED require notes, and
// any other target clears stored notes unless new ones are supplied.
func (ds *DocumentService) UpdateStatus(ctx context.Context, docID string, newStatus models.DocumentStatus, notes string) (*models.Document, error) {
	op := pkg + "UpdateStatus"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to update document status",
		slog.String("doc_id", docID),
		slog.String("new_status", string(newStatus)))

	if !newStatus.IsValid() {
		log.Warn("invalid target status", slog.String("new_status", string(newStatus)))
		return nil, models.ErrInvalidParams
	}

	if newStatus.RequiresNotes() && notes == "" {
		log.Warn("target status requires validation notes", slog.String("new_status", string(newStatus)))
		return nil, models.ErrValidationNotesRequired
	}

	doc, changed, err := ds.docRepo.UpdateStatus(ctx, docID, newStatus, notes)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrDocumentNotFound):
			log.Warn("document not found", slog.String("doc_id", docID))
			return nil, models.ErrDocumentNotFound
		case errors.Is(err, models.ErrInvalidStatusTransition):
			log.Warn("invalid status transition", slog.String("new_status", string(newStatus)))
			return nil, models.ErrInvalidStatusTransition
		default:
			log.Error("failed to update document status", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
		}
	}

	// A same-status update committed nothing: the cached listing is still
	// accurate and the owner must not be notified again.
	if !changed {
		log.Debug("same-status update, nothing to do", slog.String("doc_id", doc.ID))
		return doc, nil
	}

	if err := ds.cache.Del(ctx, docsCacheKey(doc.OwnerID)); err != nil {
		log.Error("failed to invalidate owner cache", slog.String("error", err.Error()))
	}

	ds.notifyStatusUpdate(doc)

	log.Debug("document status updated successfully",
		slog.String("doc_id", doc.ID),
		slog.String("status", string(doc.Status)))

	return doc, nil
}

// notifyStatusUpdate dispatches the notification fire-and-forget: a delivery
// failure never rolls back the status change.
func (ds *DocumentService) notifyStatusUpdate(doc *models.Document) {
	op := pkg + "notifyStatusUpdate"

	log := ds.log.With(slog.String("op", op))

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		owner, err := ds.users.UserByID(ctx, doc.OwnerID)
		if err != nil {
			log.Error("failed to resolve document owner for notification", slog.String("error", err.Error()))
			return
		}

		if err := ds.notifier.SendDocumentStatusUpdate(ctx, owner.Email, doc); err != nil {
			log.Error("failed to send status notification", slog.String("error", err.Error()))
		}
	}()
}

func docsCacheKey(ownerID string) string {
	return fmt.Sprintf("docs:%s", ownerID)
}

func docsToJSON(docs []*models.Document) (string, error) {
	res, err := json.Marshal(docs)
	if err != nil {
		return "", err
	}

	return string(res), nil
}

func jsonToDocs(s string) ([]*models.Document, error) {
	if len(s) == 0 {
		return nil, errors.New("empty json string")
	}

	var docs []*models.Document

	if err := json.Unmarshal([]byte(s), &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

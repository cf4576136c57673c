package academicservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
	uuid "github.com/satori/go.uuid"
)

const pkg = "academicService/"

// AcademicService manages an applicant's academic history. The overlap rule
// itself lives in models.ValidateAcademicPeriod; the repository re-runs it
// inside the write transaction, so the checks here are a fast path for
// better error reporting, not the enforcement.
type AcademicService struct {
	log          *slog.Logger
	academicRepo AcademicRepository
}

func New(log *slog.Logger, academicRepo AcademicRepository) *AcademicService {
	return &AcademicService{
		log:          log,
		academicRepo: academicRepo,
	}
}

func (as *AcademicService) ListRecords(ctx context.Context, ownerID string) ([]*models.AcademicRecord, error) {
	op := pkg + "ListRecords"

	log := as.log.With(slog.String("op", op))

	log.Debug("attempting to list academic records", slog.String("owner_id", ownerID))

	recs, err := as.academicRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		log.Error("failed to list academic records", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return recs, nil
}

func (as *AcademicService) AddRecord(ctx context.Context, owner *models.User, institution string, specialization string, start time.Time, end *time.Time) (*models.AcademicRecord, error) {
	op := pkg + "AddRecord"

	log := as.log.With(slog.String("op", op))

	log.Debug("attempting to add academic record", slog.String("owner_id", owner.ID))

	if institution == "" || specialization == "" || start.IsZero() {
		log.Warn("missing required academic record fields")
		return nil, models.ErrInvalidParams
	}

	if end != nil && end.Before(start) {
		log.Warn("end date before start date")
		return nil, models.ErrInvalidDateRange
	}

	now := time.Now()

	rec := &models.AcademicRecord{
		ID:              uuid.NewV4().String(),
		OwnerID:         owner.ID,
		InstitutionName: institution,
		Specialization:  specialization,
		StartDate:       start,
		EndDate:         end,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := as.academicRepo.Insert(ctx, rec); err != nil {
		var overlap *models.OverlapError
		switch {
		case errors.As(err, &overlap):
			log.Warn("academic period overlap",
				slog.String("conflicting_id", overlap.ConflictingID))
			return nil, overlap
		case errors.Is(err, models.ErrInvalidDateRange):
			return nil, models.ErrInvalidDateRange
		default:
			log.Error("failed to insert academic record", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
		}
	}

	log.Debug("academic record added successfully", slog.String("record_id", rec.ID))

	return rec, nil
}

func (as *AcademicService) UpdateRecord(ctx context.Context, owner *models.User, recordID string, institution string, specialization string, start time.Time, end *time.Time) (*models.AcademicRecord, error) {
	op := pkg + "UpdateRecord"

	log := as.log.With(slog.String("op", op))

	log.Debug("attempting to update academic record",
		slog.String("owner_id", owner.ID),
		slog.String("record_id", recordID))

	if institution == "" || specialization == "" || start.IsZero() {
		log.Warn("missing required academic record fields")
		return nil, models.ErrInvalidParams
	}

	if end != nil && end.Before(start) {
		log.Warn("end date before start date")
		return nil, models.ErrInvalidDateRange
	}

	rec := &models.AcademicRecord{
		ID:              recordID,
		OwnerID:         owner.ID,
		InstitutionName: institution,
		Specialization:  specialization,
		StartDate:       start,
		EndDate:         end,
		UpdatedAt:       time.Now(),
	}

	if err := as.academicRepo.Update(ctx, rec); err != nil {
		var overlap *models.OverlapError
		switch {
		case errors.Is(err, models.ErrAcademicRecordNotFound):
			log.Warn("academic record not found", slog.String("record_id", recordID))
			return nil, models.ErrAcademicRecordNotFound
		case errors.As(err, &overlap):
			log.Warn("academic period overlap",
				slog.String("conflicting_id", overlap.ConflictingID))
			return nil, overlap
		case errors.Is(err, models.ErrInvalidDateRange):
			return nil, models.ErrInvalidDateRange
		default:
			log.Error("failed to update academic record", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
		}
	}

	log.Debug("academic record updated successfully", slog.String("record_id", recordID))

	return rec, nil
}

func (as *AcademicService) DeleteRecord(ctx context.Context, owner *models.User, recordID string) error {
	op := pkg + "DeleteRecord"

	log := as.log.With(slog.String("op", op))

	log.Debug("attempting to delete academic record",
		slog.String("owner_id", owner.ID),
		slog.String("record_id", recordID))

	if err := as.academicRepo.Delete(ctx, recordID, owner.ID); err != nil {
		if errors.Is(err, models.ErrAcademicRecordNotFound) {
			log.Warn("academic record not found", slog.String("record_id", recordID))
			return models.ErrAcademicRecordNotFound
		}
		log.Error("failed to delete academic record", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("academic record deleted successfully", slog.String("record_id", recordID))

	return nil
}

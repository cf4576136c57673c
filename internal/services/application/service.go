package applicationservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
)

const pkg = "applicationService/"

// ApplicationService owns the applicant-level status. There are no
// transition restrictions: an admin may reverse any decision. Every change
// stamps updated_at, and the 30-day statistics lean on that timestamp
// rather than on a transition log.
type ApplicationService struct {
	log        *slog.Logger
	applicants ApplicantRepository
	notifier   Notifier
}

func New(log *slog.Logger, applicants ApplicantRepository, notifier Notifier) *ApplicationService {
	return &ApplicationService{
		log:        log,
		applicants: applicants,
		notifier:   notifier,
	}
}

func (s *ApplicationService) GetStatus(ctx context.Context, userID string) (models.ApplicationStatus, error) {
	op := pkg + "GetStatus"

	log := s.log.With(slog.String("op", op))

	user, err := s.applicants.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			log.Warn("user not found", slog.String("user_id", userID))
			return "", models.ErrUserNotFound
		}
		log.Error("failed to get user", slog.String("error", err.Error()))
		return "", fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return user.ApplicationStatus, nil
}

// SetStatus moves an applicant to newStatus. Same-status updates return the
// unchanged user without touching updated_at and without notifying the
// applicant.
func (s *ApplicationService) SetStatus(ctx context.Context, userID string, newStatus models.ApplicationStatus) (*models.User, error) {
	op := pkg + "SetStatus"

	log := s.log.With(slog.String("op", op))

	log.Debug("attempting to set application status",
		slog.String("user_id", userID),
		slog.String("new_status", string(newStatus)))

	if !newStatus.IsValid() {
		log.Warn("invalid application status", slog.String("new_status", string(newStatus)))
		return nil, models.ErrInvalidParams
	}

	user, changed, err := s.applicants.UpdateApplicationStatus(ctx, userID, newStatus)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			log.Warn("user not found", slog.String("user_id", userID))
			return nil, models.ErrUserNotFound
		}
		log.Error("failed to update application status", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if !changed {
		log.Debug("same-status update, nothing to do", slog.String("user_id", userID))
		return user, nil
	}

	s.notifyStatusUpdate(user)

	log.Debug("application status set successfully",
		slog.String("user_id", userID),
		slog.String("status", string(user.ApplicationStatus)))

	return user, nil
}

func (s *ApplicationService) ListApplications(ctx context.Context, limit int, offset int) ([]*models.User, error) {
	op := pkg + "ListApplications"

	log := s.log.With(slog.String("op", op))

	users, err := s.applicants.ListApplicants(ctx, limit, offset)
	if err != nil {
		log.Error("failed to list applicants", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return users, nil
}

// Stats aggregates the simple dashboard counters plus the share of
// applications approved among those processed in the last 30 days.
func (s *ApplicationService) Stats(ctx context.Context) (*ApplicationStats, error) {
	op := pkg + "Stats"

	log := s.log.With(slog.String("op", op))

	total, err := s.applicants.CountApplicants(ctx)
	if err != nil {
		log.Error("failed to count applicants", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	counts := make(map[models.ApplicationStatus]int64, 3)
	for _, status := range []models.ApplicationStatus{
		models.ApplicationPending,
		models.ApplicationApproved,
		models.ApplicationRejected,
	} {
		count, err := s.applicants.CountApplicantsByStatus(ctx, status)
		if err != nil {
			log.Error("failed to count applicants by status",
				slog.String("status", string(status)),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
		}
		counts[status] = count
	}

	rate, err := s.approvalRateSince(ctx, time.Now().AddDate(0, 0, -30))
	if err != nil {
		log.Error("failed to compute approval rate", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return &ApplicationStats{
		Total:          total,
		Pending:        counts[models.ApplicationPending],
		Approved:       counts[models.ApplicationApproved],
		Rejected:       counts[models.ApplicationRejected],
		ApprovalRate30: rate,
	}, nil
}

func (s *ApplicationService) approvalRateSince(ctx context.Context, since time.Time) (string, error) {
	var processed, approved int64

	for _, status := range []models.ApplicationStatus{
		models.ApplicationPending,
		models.ApplicationApproved,
		models.ApplicationRejected,
	} {
		count, err := s.applicants.CountApplicantsByStatusUpdatedAfter(ctx, status, since)
		if err != nil {
			return "", err
		}
		processed += count
		if status == models.ApplicationApproved {
			approved = count
		}
	}

	if processed == 0 {
		return "0.0", nil
	}

	return fmt.Sprintf("%.2f", float64(approved)/float64(processed)*100.0), nil
}

func (s *ApplicationService) notifyStatusUpdate(user *models.User) {
	op := pkg + "notifyStatusUpdate"

	log := s.log.With(slog.String("op", op))

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.notifier.SendApplicationStatusUpdate(ctx, user.Email, user.ApplicationStatus); err != nil {
			log.Error("failed to send status notification", slog.String("error", err.Error()))
		}
	}()
}

package profileservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
	"github.com/RichyP48/Inscription-en-ligne-bf/internal/validator"
)

const pkg = "profileService/"

// ProfileService manages the applicant's personal and contact information.
// Both resources are saved with upsert semantics: the first PUT creates the
// row, every later one replaces it.
type ProfileService struct {
	log         *slog.Logger
	profileRepo ProfileRepository
}

func New(log *slog.Logger, profileRepo ProfileRepository) *ProfileService {
	return &ProfileService{
		log:         log,
		profileRepo: profileRepo,
	}
}

func (ps *ProfileService) PersonalInfo(ctx context.Context, userID string) (*models.PersonalInfo, error) {
	op := pkg + "PersonalInfo"

	log := ps.log.With(slog.String("op", op))

	info, err := ps.profileRepo.PersonalInfoByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrPersonalInfoNotFound) {
			return nil, models.ErrPersonalInfoNotFound
		}
		log.Error("failed to get personal info", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return info, nil
}

func (ps *ProfileService) SavePersonalInfo(ctx context.Context, owner *models.User, info models.PersonalInfo) (*models.PersonalInfo, error) {
	op := pkg + "SavePersonalInfo"

	log := ps.log.With(slog.String("op", op))

	log.Debug("attempting to save personal info", slog.String("owner_id", owner.ID))

	now := time.Now()

	if err := info.Validate(now); err != nil {
		log.Warn("personal info rejected", slog.String("error", err.Error()))
		return nil, err
	}

	info.UserID = owner.ID
	info.CreatedAt = now
	info.UpdatedAt = now

	saved, err := ps.profileRepo.SavePersonalInfo(ctx, &info)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrUserNotFound
		}
		log.Error("failed to save personal info", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("personal info saved", slog.String("owner_id", owner.ID))

	return saved, nil
}

func (ps *ProfileService) ContactInfo(ctx context.Context, userID string) (*models.ContactInfo, error) {
	op := pkg + "ContactInfo"

	log := ps.log.With(slog.String("op", op))

	info, err := ps.profileRepo.ContactInfoByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrContactInfoNotFound) {
			return nil, models.ErrContactInfoNotFound
		}
		log.Error("failed to get contact info", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return info, nil
}

func (ps *ProfileService) SaveContactInfo(ctx context.Context, owner *models.User, info models.ContactInfo) (*models.ContactInfo, error) {
	op := pkg + "SaveContactInfo"

	log := ps.log.With(slog.String("op", op))

	log.Debug("attempting to save contact info", slog.String("owner_id", owner.ID))

	if err := validateContactInfo(&info); err != nil {
		log.Warn("contact info rejected", slog.String("error", err.Error()))
		return nil, err
	}

	now := time.Now()

	info.UserID = owner.ID
	info.CreatedAt = now
	info.UpdatedAt = now

	saved, err := ps.profileRepo.SaveContactInfo(ctx, &info)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrUserNotFound
		}
		log.Error("failed to save contact info", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("contact info saved", slog.String("owner_id", owner.ID))

	return saved, nil
}

func validateContactInfo(info *models.ContactInfo) error {
	if !validator.IsValidPhoneNumber(info.PhoneNumber) {
		return models.ErrInvalidPhoneNumber
	}

	addr := info.Address
	if addr.Street == "" || addr.City == "" || addr.PostalCode == "" || addr.Country == "" {
		return models.ErrInvalidParams
	}

	ec := info.EmergencyContact
	if ec.Name == "" || ec.Relationship == "" {
		return models.ErrInvalidParams
	}
	if !validator.IsValidPhoneNumber(ec.PhoneNumber) {
		return models.ErrInvalidPhoneNumber
	}

	return nil
}

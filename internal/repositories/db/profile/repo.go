package profilerepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/entities"
	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const pkg = "profileRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

const personalColumns = `user_id, last_name, first_names, gender, date_of_birth,
	nationality, id_document_type, created_at, updated_at`

func (r *repository) PersonalInfoByUser(ctx context.Context, userID string) (*models.PersonalInfo, error) {
	op := pkg + "PersonalInfoByUser"

	raw := entities.PersonalInfo{}

	err := r.db.GetContext(ctx, &raw,
		`SELECT `+personalColumns+` FROM personal_info WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrPersonalInfoNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return mapPersonalInfo(raw), nil
}

// SavePersonalInfo inserts the row on first save and overwrites it on every
// later one; created_at survives the overwrite.
func (r *repository) SavePersonalInfo(ctx context.Context, info *models.PersonalInfo) (*models.PersonalInfo, error) {
	op := pkg + "SavePersonalInfo"

	raw := entities.PersonalInfo{}

	err := r.db.GetContext(ctx, &raw,
		`INSERT INTO personal_info(user_id, last_name, first_names, gender, date_of_birth,
			nationality, id_document_type, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE SET
			last_name = EXCLUDED.last_name,
			first_names = EXCLUDED.first_names,
			gender = EXCLUDED.gender,
			date_of_birth = EXCLUDED.date_of_birth,
			nationality = EXCLUDED.nationality,
			id_document_type = EXCLUDED.id_document_type,
			updated_at = EXCLUDED.updated_at
		RETURNING `+personalColumns,
		info.UserID, info.LastName, info.FirstNames, info.Gender, info.DateOfBirth,
		info.Nationality, info.IDDocumentType, info.CreatedAt, info.UpdatedAt)
	if err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23503" {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return mapPersonalInfo(raw), nil
}

const contactColumns = `user_id, phone_number, email_verified,
	address_street, address_street2, address_city, address_postal_code, address_country,
	address_latitude, address_longitude,
	emergency_name, emergency_relationship, emergency_phone,
	created_at, updated_at`

func (r *repository) ContactInfoByUser(ctx context.Context, userID string) (*models.ContactInfo, error) {
	op := pkg + "ContactInfoByUser"

	raw := entities.ContactInfo{}

	err := r.db.GetContext(ctx, &raw,
		`SELECT `+contactColumns+` FROM contact_info WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrContactInfoNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return mapContactInfo(raw), nil
}

// SaveContactInfo upserts everything the applicant controls. email_verified
// starts false and survives later saves untouched: the verification flow is
// the only writer of that column.
func (r *repository) SaveContactInfo(ctx context.Context, info *models.ContactInfo) (*models.ContactInfo, error) {
	op := pkg + "SaveContactInfo"

	raw := entities.ContactInfo{}

	err := r.db.GetContext(ctx, &raw,
		`INSERT INTO contact_info(user_id, phone_number, email_verified,
			address_street, address_street2, address_city, address_postal_code, address_country,
			address_latitude, address_longitude,
			emergency_name, emergency_relationship, emergency_phone,
			created_at, updated_at)
		VALUES($1, $2, FALSE, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (user_id) DO UPDATE SET
			phone_number = EXCLUDED.phone_number,
			address_street = EXCLUDED.address_street,
			address_street2 = EXCLUDED.address_street2,
			address_city = EXCLUDED.address_city,
			address_postal_code = EXCLUDED.address_postal_code,
			address_country = EXCLUDED.address_country,
			address_latitude = EXCLUDED.address_latitude,
			address_longitude = EXCLUDED.address_longitude,
			emergency_name = EXCLUDED.emergency_name,
			emergency_relationship = EXCLUDED.emergency_relationship,
			emergency_phone = EXCLUDED.emergency_phone,
			updated_at = EXCLUDED.updated_at
		RETURNING `+contactColumns,
		info.UserID, info.PhoneNumber,
		info.Address.Street, nullString(info.Address.Street2), info.Address.City,
		info.Address.PostalCode, info.Address.Country,
		nullFloat(info.Address.Latitude), nullFloat(info.Address.Longitude),
		info.EmergencyContact.Name, info.EmergencyContact.Relationship, info.EmergencyContact.PhoneNumber,
		info.CreatedAt, info.UpdatedAt)
	if err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23503" {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return mapContactInfo(raw), nil
}

func mapPersonalInfo(raw entities.PersonalInfo) *models.PersonalInfo {
	return &models.PersonalInfo{
		UserID:         raw.UserID,
		LastName:       raw.LastName,
		FirstNames:     raw.FirstNames,
		Gender:         models.Gender(raw.Gender),
		DateOfBirth:    raw.DateOfBirth,
		Nationality:    raw.Nationality,
		IDDocumentType: models.IDDocumentType(raw.IDDocumentType),
		CreatedAt:      raw.CreatedAt,
		UpdatedAt:      raw.UpdatedAt,
	}
}

func mapContactInfo(raw entities.ContactInfo) *models.ContactInfo {
	info := &models.ContactInfo{
		UserID:        raw.UserID,
		PhoneNumber:   raw.PhoneNumber,
		EmailVerified: raw.EmailVerified,
		Address: models.Address{
			Street:     raw.AddressStreet,
			City:       raw.AddressCity,
			PostalCode: raw.AddressPostalCode,
			Country:    raw.AddressCountry,
		},
		EmergencyContact: models.EmergencyContact{
			Name:         raw.EmergencyName,
			Relationship: raw.EmergencyRelationship,
			PhoneNumber:  raw.EmergencyPhone,
		},
		CreatedAt: raw.CreatedAt,
		UpdatedAt: raw.UpdatedAt,
	}
	if raw.AddressStreet2.Valid {
		s := raw.AddressStreet2.String
		info.Address.Street2 = &s
	}
	if raw.AddressLatitude.Valid {
		v := raw.AddressLatitude.Float64
		info.Address.Latitude = &v
	}
	if raw.AddressLongitude.Valid {
		v := raw.AddressLongitude.Float64
		info.Address.Longitude = &v
	}
	return info
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

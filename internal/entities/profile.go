package entities

import (
	"database/sql"
	"time"
)

type PersonalInfo struct {
	UserID         string    `db:"user_id"`
	LastName       string    `db:"last_name"`
	FirstNames     string    `db:"first_names"`
	Gender         string    `db:"gender"`
	DateOfBirth    time.Time `db:"date_of_birth"`
	Nationality    string    `db:"nationality"`
	IDDocumentType string    `db:"id_document_type"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type ContactInfo struct {
	UserID                string          `db:"user_id"`
	PhoneNumber           string          `db:"phone_number"`
	EmailVerified         bool            `db:"email_verified"`
	AddressStreet         string          `db:"address_street"`
	AddressStreet2        sql.NullString  `db:"address_street2"`
	AddressCity           string          `db:"address_city"`
	AddressPostalCode     string          `db:"address_postal_code"`
	AddressCountry        string          `db:"address_country"`
	AddressLatitude       sql.NullFloat64 `db:"address_latitude"`
	AddressLongitude      sql.NullFloat64 `db:"address_longitude"`
	EmergencyName         string          `db:"emergency_name"`
	EmergencyRelationship string          `db:"emergency_relationship"`
	EmergencyPhone        string          `db:"emergency_phone"`
	CreatedAt             time.Time       `db:"created_at"`
	UpdatedAt             time.Time       `db:"updated_at"`
}

package models

import "time"

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type IDDocumentType string

const (
	IDDocNationalCard IDDocumentType = "NATIONAL_ID_CARD"
	IDDocPassport     IDDocumentType = "PASSPORT"
)

func (t IDDocumentType) IsValid() bool {
	switch t {
	case IDDocNationalCard, IDDocPassport:
		return true
	}
	return false
}

// MinApplicantAge is the minimum age, in full years, an applicant must have
// reached by the day they submit their personal information.
const MinApplicantAge = 16

const (
	maxLastNameLen    = 100
	maxFirstNamesLen  = 150
	maxNationalityLen = 100
)

type PersonalInfo struct {
	UserID         string         `json:"user_id"`
	LastName       string         `json:"last_name"`
	FirstNames     string         `json:"first_names"`
	Gender         Gender         `json:"gender"`
	DateOfBirth    time.Time      `json:"date_of_birth"`
	Nationality    string         `json:"nationality"`
	IDDocumentType IDDocumentType `json:"id_document_type"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// AgeAt returns the number of full years between the date of birth and the
// given moment.
func (p *PersonalInfo) AgeAt(at time.Time) int {
	age := at.Year() - p.DateOfBirth.Year()
	birthday := time.Date(at.Year(), p.DateOfBirth.Month(), p.DateOfBirth.Day(), 0, 0, 0, 0, at.Location())
	if at.Before(birthday) {
		age--
	}
	return age
}

// Validate checks the field constraints that do not depend on stored state.
func (p *PersonalInfo) Validate(now time.Time) error {
	if p.LastName == "" || len(p.LastName) > maxLastNameLen {
		return ErrInvalidParams
	}
	if p.FirstNames == "" || len(p.FirstNames) > maxFirstNamesLen {
		return ErrInvalidParams
	}
	if !p.Gender.IsValid() {
		return ErrInvalidParams
	}
	if p.Nationality == "" || len(p.Nationality) > maxNationalityLen {
		return ErrInvalidParams
	}
	if !p.IDDocumentType.IsValid() {
		return ErrInvalidParams
	}
	if p.DateOfBirth.IsZero() || p.DateOfBirth.After(now) {
		return ErrInvalidParams
	}
	if p.AgeAt(now) < MinApplicantAge {
		return ErrApplicantTooYoung
	}
	return nil
}

type Address struct {
	Street     string   `json:"street"`
	Street2    *string  `json:"street2,omitempty"`
	City       string   `json:"city"`
	PostalCode string   `json:"postal_code"`
	Country    string   `json:"country"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	PhoneNumber  string `json:"phone_number"`
}

// ContactInfo holds the applicant's reachability data. EmailVerified is
// maintained by the verification flow and never taken from client input.
type ContactInfo struct {
	UserID           string           `json:"user_id"`
	PhoneNumber      string           `json:"phone_number"`
	EmailVerified    bool             `json:"email_verified"`
	Address          Address          `json:"address"`
	EmergencyContact EmergencyContact `json:"emergency_contact"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

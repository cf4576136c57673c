package dto

import (
	"time"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
)

type PersonalInfoRequest struct {
	LastName       string    `json:"last_name"`
	FirstNames     string    `json:"first_names"`
	Gender         string    `json:"gender"`
	DateOfBirth    civilDate `json:"date_of_birth"`
	Nationality    string    `json:"nationality"`
	IDDocumentType string    `json:"id_document_type"`
}

func (r PersonalInfoRequest) ToModel() models.PersonalInfo {
	return models.PersonalInfo{
		LastName:       r.LastName,
		FirstNames:     r.FirstNames,
		Gender:         models.Gender(r.Gender),
		DateOfBirth:    time.Time(r.DateOfBirth),
		Nationality:    r.Nationality,
		IDDocumentType: models.IDDocumentType(r.IDDocumentType),
	}
}

type PersonalInfoResponse struct {
	LastName       string    `json:"last_name"`
	FirstNames     string    `json:"first_names"`
	Gender         string    `json:"gender"`
	DateOfBirth    civilDate `json:"date_of_birth"`
	Nationality    string    `json:"nationality"`
	IDDocumentType string    `json:"id_document_type"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func PersonalInfoResponseFrom(info *models.PersonalInfo) PersonalInfoResponse {
	return PersonalInfoResponse{
		LastName:       info.LastName,
		FirstNames:     info.FirstNames,
		Gender:         string(info.Gender),
		DateOfBirth:    civilDate(info.DateOfBirth),
		Nationality:    info.Nationality,
		IDDocumentType: string(info.IDDocumentType),
		UpdatedAt:      info.UpdatedAt,
	}
}

type AddressPayload struct {
	Street     string   `json:"street"`
	Street2    *string  `json:"street2,omitempty"`
	City       string   `json:"city"`
	PostalCode string   `json:"postal_code"`
	Country    string   `json:"country"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

type EmergencyContactPayload struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	PhoneNumber  string `json:"phone_number"`
}

// ContactInfoRequest deliberately has no email_verified field: verification
// state is owned by the server.
type ContactInfoRequest struct {
	PhoneNumber      string                  `json:"phone_number"`
	Address          AddressPayload          `json:"address"`
	EmergencyContact EmergencyContactPayload `json:"emergency_contact"`
}

func (r ContactInfoRequest) ToModel() models.ContactInfo {
	return models.ContactInfo{
		PhoneNumber: r.PhoneNumber,
		Address: models.Address{
			Street:     r.Address.Street,
			Street2:    r.Address.Street2,
			City:       r.Address.City,
			PostalCode: r.Address.PostalCode,
			Country:    r.Address.Country,
			Latitude:   r.Address.Latitude,
			Longitude:  r.Address.Longitude,
		},
		EmergencyContact: models.EmergencyContact{
			Name:         r.EmergencyContact.Name,
			Relationship: r.EmergencyContact.Relationship,
			PhoneNumber:  r.EmergencyContact.PhoneNumber,
		},
	}
}

type ContactInfoResponse struct {
	PhoneNumber      string                  `json:"phone_number"`
	EmailVerified    bool                    `json:"email_verified"`
	Address          AddressPayload          `json:"address"`
	EmergencyContact EmergencyContactPayload `json:"emergency_contact"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

func ContactInfoResponseFrom(info *models.ContactInfo) ContactInfoResponse {
	return ContactInfoResponse{
		PhoneNumber:   info.PhoneNumber,
		EmailVerified: info.EmailVerified,
		Address: AddressPayload{
			Street:     info.Address.Street,
			Street2:    info.Address.Street2,
			City:       info.Address.City,
			PostalCode: info.Address.PostalCode,
			Country:    info.Address.Country,
			Latitude:   info.Address.Latitude,
			Longitude:  info.Address.Longitude,
		},
		EmergencyContact: EmergencyContactPayload{
			Name:         info.EmergencyContact.Name,
			Relationship: info.EmergencyContact.Relationship,
			PhoneNumber:  info.EmergencyContact.PhoneNumber,
		},
		UpdatedAt: info.UpdatedAt,
	}
}

package models

import (
	"errors"
	"fmt"
)

var (
	ErrNoRows                 = errors.New("no rows")
	ErrUNIQUEConstraintFailed = errors.New("unique constraint failed")
	ErrInternal               = errors.New("internal server error")
	ErrMethodNotAllowed       = errors.New("method not allowed")
	ErrForbidden              = errors.New("access denied")
	ErrInvalidParams          = errors.New("invalid params")
	ErrUserNotFound           = errors.New("user not found")
	ErrUserExists             = errors.New("user already exists")
	ErrSessionNotFound        = errors.New("session not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")

	ErrDocumentNotFound        = errors.New("document not found")
	ErrDocumentTypeConflict    = errors.New("document of this type already exists")
	ErrUnknownDocumentType     = errors.New("unknown document type")
	ErrFileValidationFailed    = errors.New("file validation failed")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrValidationNotesRequired = errors.New("validation notes required")

	ErrFileNotFound    = errors.New("file not found")
	ErrInvalidFileName = errors.New("invalid file name")
	ErrFileStorage     = errors.New("file storage failure")

	ErrAcademicRecordNotFound = errors.New("academic record not found")
	ErrInvalidDateRange       = errors.New("end date cannot be before start date")

	ErrPersonalInfoNotFound = errors.New("personal info not found")
	ErrContactInfoNotFound  = errors.New("contact info not found")
	ErrApplicantTooYoung    = errors.New("applicant does not meet the minimum age")
	ErrInvalidPhoneNumber   = errors.New("invalid phone number")
)

type UniqueConstraintError struct {
	Constraint string
	Err        error
}

func (e *UniqueConstraintError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Constraint)
}

func (e *UniqueConstraintError) Unwrap() error {
	return e.Err
}

// OverlapError reports which existing academic record conflicts with a
// candidate period, so the caller can point the applicant at it.
type OverlapError struct {
	ConflictingID string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("academic periods overlap with record %s", e.ConflictingID)
}

package models

import "time"

type Role string

const (
	RoleApplicant Role = "ROLE_APPLICANT"
	RoleAdmin     Role = "ROLE_ADMIN"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationApproved ApplicationStatus = "APPROVED"
	ApplicationRejected ApplicationStatus = "REJECTED"
	// ApplicationActive marks administrative accounts that are not applicants.
	ApplicationActive ApplicationStatus = "ACTIVE"
)

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected, ApplicationActive:
		return true
	}
	return false
}

type User struct {
	ID                string            `json:"id"`
	Email             string            `json:"email"`
	FirstName         string            `json:"first_name"`
	LastName          string            `json:"last_name"`
	PassHash          []byte            `json:"-"`
	Role              Role              `json:"role"`
	ApplicationStatus ApplicationStatus `json:"application_status"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type UserContextKeyType string

const UserContextKey UserContextKeyType = "user"

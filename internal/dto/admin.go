package dto

import (
	"time"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
)

type UserSummaryResponse struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	ApplicationStatus string    `json:"application_status"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func UserSummaryResponseFrom(user *models.User) UserSummaryResponse {
	return UserSummaryResponse{
		ID:                user.ID,
		Email:             user.Email,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		ApplicationStatus: string(user.ApplicationStatus),
		UpdatedAt:         user.UpdatedAt,
	}
}

type ApplicationDetailResponse struct {
	Applicant       UserSummaryResponse      `json:"applicant"`
	Documents       []DocumentResponse       `json:"documents"`
	AcademicHistory []AcademicRecordResponse `json:"academic_history"`
}

type ApplicationStatusUpdateRequest struct {
	NewStatus string `json:"new_status"`
}

type ApplicationStatsResponse struct {
	TotalApplications    int64  `json:"total_applications"`
	PendingApplications  int64  `json:"pending_applications"`
	ApprovedApplications int64  `json:"approved_applications"`
	RejectedApplications int64  `json:"rejected_applications"`
	ApprovalRate30Days   string `json:"approval_rate_30_days"`
}

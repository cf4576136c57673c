package admin

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/dto"
	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
	utils "github.com/RichyP48/Inscription-en-ligne-bf/internal/utils/http_errors"
)

func UpdateDocumentStatus(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, docID string, dsu DocumentStatusUpdater) {
	op := pkg + "UpdateDocumentStatus"

	log = log.With(slog.String("op", op))

	var req dto.DocumentStatusUpdateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode status update", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	doc, err := dsu.UpdateStatus(ctx, docID, models.DocumentStatus(req.NewStatus), req.ValidationNotes)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrDocumentNotFound):
			utils.WriteJSONError(w, http.StatusNotFound, models.ErrDocumentNotFound.Error())
		case errors.Is(err, models.ErrInvalidStatusTransition):
			utils.WriteJSONError(w, http.StatusConflict, models.ErrInvalidStatusTransition.Error())
		case errors.Is(err, models.ErrValidationNotesRequired):
			utils.WriteJSONError(w, http.StatusBadRequest, models.ErrValidationNotesRequired.Error())
		case errors.Is(err, models.ErrInvalidParams):
			utils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		default:
			log.Error("failed to update document status", slog.String("error", err.Error()))
			utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.DocumentResponseFrom(doc)); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func UpdateApplicationStatus(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, userID string, apps ApplicationService) {
	op := pkg + "UpdateApplicationStatus"

	log = log.With(slog.String("op", op))

	var req dto.ApplicationStatusUpdateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode status update", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	user, err := apps.SetStatus(ctx, userID, models.ApplicationStatus(req.NewStatus))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUserNotFound):
			utils.WriteJSONError(w, http.StatusNotFound, models.ErrUserNotFound.Error())
		case errors.Is(err, models.ErrInvalidParams):
			utils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		default:
			log.Error("failed to update application status", slog.String("error", err.Error()))
			utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.UserSummaryResponseFrom(user)); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func Stats(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, apps ApplicationService) {
	op := pkg + "Stats"

	log = log.With(slog.String("op", op))

	stats, err := apps.Stats(ctx)
	if err != nil {
		log.Error("failed to compute stats", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := dto.ApplicationStatsResponse{
		TotalApplications:    stats.Total,
		PendingApplications:  stats.Pending,
		ApprovedApplications: stats.Approved,
		RejectedApplications: stats.Rejected,
		ApprovalRate30Days:   stats.ApprovalRate30,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

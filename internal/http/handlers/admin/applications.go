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
	parselimit "github.com/RichyP48/Inscription-en-ligne-bf/internal/utils/parseLimit"
)

func ListApplications(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, apps ApplicationService) {
	op := pkg + "ListApplications"

	log = log.With(slog.String("op", op))

	limit := parselimit.Parse(r.URL.Query().Get("limit"), 0)
	offset := parselimit.Parse(r.URL.Query().Get("offset"), 0)

	if limit < 0 || offset < 0 {
		utils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}

	users, err := apps.ListApplications(ctx, limit, offset)
	if err != nil {
		log.Error("failed to list applications", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := make([]dto.UserSummaryResponse, 0, len(users))
	for _, user := range users {
		response = append(response, dto.UserSummaryResponseFrom(user))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func GetApplication(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, userID string, users UserProvider, dl DocumentLister, al AcademicLister) {
	op := pkg + "GetApplication"

	log = log.With(slog.String("op", op))

	user, err := users.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			utils.WriteJSONError(w, http.StatusNotFound, models.ErrUserNotFound.Error())
			return
		}
		log.Error("failed to get user", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	docsList, err := dl.ListDocuments(ctx, userID)
	if err != nil {
		log.Error("failed to list documents", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	recs, err := al.ListRecords(ctx, userID)
	if err != nil {
		log.Error("failed to list academic records", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := dto.ApplicationDetailResponse{
		Applicant:       dto.UserSummaryResponseFrom(user),
		Documents:       make([]dto.DocumentResponse, 0, len(docsList)),
		AcademicHistory: make([]dto.AcademicRecordResponse, 0, len(recs)),
	}

	for _, doc := range docsList {
		response.Documents = append(response.Documents, dto.DocumentResponseFrom(doc))
	}
	for _, rec := range recs {
		response.AcademicHistory = append(response.AcademicHistory, dto.AcademicRecordResponseFrom(rec))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

package academic

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/dto"
	"github.com/RichyP48/Inscription-en-ligne-bf/internal/http/middleware"
	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
	utils "github.com/RichyP48/Inscription-en-ligne-bf/internal/utils/http_errors"
)

func Get(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, as AcademicService) {
	op := pkg + "Get"

	log = log.With(slog.String("op", op))

	requester := middleware.UserFromContext(ctx)
	if requester == nil {
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrForbidden.Error())
		return
	}

	recs, err := as.ListRecords(ctx, requester.ID)
	if err != nil {
		log.Error("failed to list academic records", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := make([]dto.AcademicRecordResponse, 0, len(recs))
	for _, rec := range recs {
		response = append(response, dto.AcademicRecordResponseFrom(rec))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func Add(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, as AcademicService) {
	op := pkg + "Add"

	log = log.With(slog.String("op", op))

	requester := middleware.UserFromContext(ctx)
	if requester == nil {
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrForbidden.Error())
		return
	}

	var req dto.AcademicRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode academic record", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	rec, err := as.AddRecord(ctx, requester, req.InstitutionName, req.Specialization, req.Start(), req.End())
	if err != nil {
		writeAcademicError(log, w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(dto.AcademicRecordResponseFrom(rec)); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func Update(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, recordID string, as AcademicService) {
	op := pkg + "Update"

	log = log.With(slog.String("op", op))

	requester := middleware.UserFromContext(ctx)
	if requester == nil {
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrForbidden.Error())
		return
	}

	var req dto.AcademicRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode academic record", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	rec, err := as.UpdateRecord(ctx, requester, recordID, req.InstitutionName, req.Specialization, req.Start(), req.End())
	if err != nil {
		writeAcademicError(log, w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.AcademicRecordResponseFrom(rec)); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func Delete(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, recordID string, as AcademicService) {
	op := pkg + "Delete"

	log = log.With(slog.String("op", op))

	requester := middleware.UserFromContext(ctx)
	if requester == nil {
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrForbidden.Error())
		return
	}

	if err := as.DeleteRecord(ctx, requester, recordID); err != nil {
		if errors.Is(err, models.ErrAcademicRecordNotFound) {
			utils.WriteJSONError(w, http.StatusNotFound, models.ErrAcademicRecordNotFound.Error())
			return
		}
		log.Error("failed to delete academic record", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeAcademicError(log *slog.Logger, w http.ResponseWriter, err error) {
	var overlap *models.OverlapError

	switch {
	case errors.Is(err, models.ErrInvalidParams):
		utils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
	case errors.Is(err, models.ErrInvalidDateRange):
		utils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidDateRange.Error())
	case errors.As(err, &overlap):
		utils.WriteJSONError(w, http.StatusConflict, overlap.Error())
	case errors.Is(err, models.ErrAcademicRecordNotFound):
		utils.WriteJSONError(w, http.StatusNotFound, models.ErrAcademicRecordNotFound.Error())
	default:
		log.Error("academic record operation failed", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
	}
}

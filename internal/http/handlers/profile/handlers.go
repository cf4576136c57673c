package profile

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

func GetPersonalInfo(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, ps ProfileService) {
	op := pkg + "GetPersonalInfo"

	log = log.With(slog.String("op", op))

	requester := middleware.UserFromContext(ctx)
	if requester == nil {
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrForbidden.Error())
		return
	}

	info, err := ps.PersonalInfo(ctx, requester.ID)
	if err != nil {
		if errors.Is(err, models.ErrPersonalInfoNotFound) {
			utils.WriteJSONError(w, http.StatusNotFound, models.ErrPersonalInfoNotFound.Error())
			return
		}
		log.Error("failed to get personal info", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.PersonalInfoResponseFrom(info)); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func PutPersonalInfo(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, ps ProfileService) {
	op := pkg + "PutPersonalInfo"

	log = log.With(slog.String("op", op))

	requester := middleware.UserFromContext(ctx)
	if requester == nil {
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrForbidden.Error())
		return
	}

	var req dto.PersonalInfoRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode personal info", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	info, err := ps.SavePersonalInfo(ctx, requester, req.ToModel())
	if err != nil {
		writeProfileError(log, w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.PersonalInfoResponseFrom(info)); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func GetContactInfo(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, ps ProfileService) {
	op := pkg + "GetContactInfo"

	log = log.With(slog.String("op", op))

	requester := middleware.UserFromContext(ctx)
	if requester == nil {
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrForbidden.Error())
		return
	}

	info, err := ps.ContactInfo(ctx, requester.ID)
	if err != nil {
		if errors.Is(err, models.ErrContactInfoNotFound) {
			utils.WriteJSONError(w, http.StatusNotFound, models.ErrContactInfoNotFound.Error())
			return
		}
		log.Error("failed to get contact info", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.ContactInfoResponseFrom(info)); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func PutContactInfo(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, ps ProfileService) {
	op := pkg + "PutContactInfo"

	log = log.With(slog.String("op", op))

	requester := middleware.UserFromContext(ctx)
	if requester == nil {
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrForbidden.Error())
		return
	}

	var req dto.ContactInfoRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode contact info", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	info, err := ps.SaveContactInfo(ctx, requester, req.ToModel())
	if err != nil {
		writeProfileError(log, w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.ContactInfoResponseFrom(info)); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func writeProfileError(log *slog.Logger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidParams):
		utils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
	case errors.Is(err, models.ErrApplicantTooYoung):
		utils.WriteJSONError(w, http.StatusBadRequest, models.ErrApplicantTooYoung.Error())
	case errors.Is(err, models.ErrInvalidPhoneNumber):
		utils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidPhoneNumber.Error())
	case errors.Is(err, models.ErrUserNotFound):
		utils.WriteJSONError(w, http.StatusNotFound, models.ErrUserNotFound.Error())
	default:
		log.Error("profile operation failed", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
	}
}

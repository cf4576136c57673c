package user

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

func Add(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, auth AuthService) {
	op := pkg + "Add"

	log = log.With(slog.String("op", op))

	var req dto.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode register request", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	user, err := auth.Register(ctx, req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidParams):
			utils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		case errors.Is(err, models.ErrUserExists):
			utils.WriteJSONError(w, http.StatusConflict, models.ErrUserExists.Error())
		default:
			log.Error("failed to register user", slog.String("error", err.Error()))
			utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(dto.UserSummaryResponseFrom(user)); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

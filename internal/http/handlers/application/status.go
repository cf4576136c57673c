package application

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/http/middleware"
	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
	utils "github.com/RichyP48/Inscription-en-ligne-bf/internal/utils/http_errors"
)

const pkg = "applicationHandler/"

type StatusProvider interface {
	GetStatus(ctx context.Context, userID string) (models.ApplicationStatus, error)
}

// GetStatus reports the caller's own application status.
func GetStatus(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, sp StatusProvider) {
	op := pkg + "GetStatus"

	log = log.With(slog.String("op", op))

	requester := middleware.UserFromContext(ctx)
	if requester == nil {
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrSessionNotFound.Error())
		return
	}

	status, err := sp.GetStatus(ctx, requester.ID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			utils.WriteJSONError(w, http.StatusNotFound, models.ErrUserNotFound.Error())
			return
		}
		log.Error("failed to get application status", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"application_status": string(status)}); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

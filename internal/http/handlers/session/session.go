package session

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

const pkg = "sessionHandler/"

type AuthService interface {
	Login(ctx context.Context, email string, password string) (string, *models.User, error)
	Logout(ctx context.Context, token string) error
}

func Add(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, auth AuthService) {
	op := pkg + "Add"

	log = log.With(slog.String("op", op))

	var req dto.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode login request", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	token, user, err := auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
			return
		}
		log.Error("failed to login", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := dto.AuthResponse{
		Token: token,
		Email: user.Email,
		Role:  string(user.Role),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func Delete(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, token string, auth AuthService) {
	op := pkg + "Delete"

	log = log.With(slog.String("op", op))

	if err := auth.Logout(ctx, token); err != nil {
		log.Error("failed to logout", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

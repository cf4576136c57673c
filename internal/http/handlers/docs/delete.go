package docs

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/http/middleware"
	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
	utils "github.com/RichyP48/Inscription-en-ligne-bf/internal/utils/http_errors"
)

func Delete(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, docID string, dd DocumentDeleter) {
	op := pkg + "Delete"

	log = log.With(slog.String("op", op))

	requester := middleware.UserFromContext(ctx)
	if requester == nil {
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrForbidden.Error())
		return
	}

	if err := dd.DeleteDocument(ctx, docID, requester); err != nil {
		switch {
		case errors.Is(err, models.ErrDocumentNotFound):
			utils.WriteJSONError(w, http.StatusNotFound, models.ErrDocumentNotFound.Error())
		case errors.Is(err, models.ErrFileStorage):
			log.Error("failed to delete document content", slog.String("error", err.Error()))
			utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrFileStorage.Error())
		default:
			log.Error("failed to delete document", slog.String("error", err.Error()))
			utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

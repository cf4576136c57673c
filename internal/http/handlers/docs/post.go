package docs

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

const maxUploadMemory = 10 << 20

func Upload(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, du DocumentUploader) {
	op := pkg + "Upload"

	log = log.With(slog.String("op", op))

	requester := middleware.UserFromContext(ctx)
	if requester == nil {
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrForbidden.Error())
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Warn("failed to parse multipart form", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	docType := models.DocumentType(r.FormValue("document_type"))
	if docType == "" {
		utils.WriteJSONError(w, http.StatusBadRequest, "document_type is required")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")

	doc, err := du.UploadDocument(ctx, requester, docType, header.Filename, contentType, header.Size, file)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUnknownDocumentType):
			utils.WriteJSONError(w, http.StatusBadRequest, models.ErrUnknownDocumentType.Error())
		case errors.Is(err, models.ErrFileValidationFailed):
			utils.WriteJSONError(w, http.StatusBadRequest, models.ErrFileValidationFailed.Error())
		case errors.Is(err, models.ErrDocumentTypeConflict):
			utils.WriteJSONError(w, http.StatusConflict, models.ErrDocumentTypeConflict.Error())
		default:
			log.Error("failed to upload document", slog.String("error", err.Error()))
			utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(dto.DocumentResponseFrom(doc)); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

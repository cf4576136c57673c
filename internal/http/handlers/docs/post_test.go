package docs

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/dto"
	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDocumentUploader struct {
	mock.Mock
}

func (m *MockDocumentUploader) UploadDocument(ctx context.Context, owner *models.User, docType models.DocumentType, originalFilename string, contentType string, size int64, content io.Reader) (*models.Document, error) {
	args := m.Called(ctx, owner, docType, originalFilename, contentType, size, content)
	doc, _ := args.Get(0).(*models.Document)
	return doc, args.Error(1)
}

func uploadRequest(t *testing.T, docType string, fileName string, contentType string, data []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	require.NoError(t, writer.WriteField("document_type", docType))

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/documents", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func authedCtx(user *models.User) context.Context {
	return context.WithValue(context.Background(), models.UserContextKey, user)
}

func TestUpload_Success(t *testing.T) {
	t.Parallel()

	uploader := new(MockDocumentUploader)
	requester := &models.User{ID: "user1", Role: models.RoleApplicant}

	uploader.On("UploadDocument", mock.Anything, requester, models.DocTypeDiplomaBac,
		"diploma.pdf", "application/pdf", mock.Anything, mock.Anything).
		Return(&models.Document{
			ID:           "doc1",
			OwnerID:      "user1",
			DocumentType: models.DocTypeDiplomaBac,
			Status:       models.DocumentUploaded,
		}, nil)

	req := uploadRequest(t, "DIPLOMA_BAC", "diploma.pdf", "application/pdf", []byte("%PDF-1.4 data"))
	rec := httptest.NewRecorder()

	Upload(authedCtx(requester), slog.Default(), rec, req, uploader)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.DocumentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "doc1", resp.ID)
	assert.Equal(t, string(models.DocumentUploaded), resp.Status)
}

func TestUpload_Unauthenticated(t *testing.T) {
	t.Parallel()

	uploader := new(MockDocumentUploader)

	req := uploadRequest(t, "DIPLOMA_BAC", "diploma.pdf", "application/pdf", []byte("data"))
	rec := httptest.NewRecorder()

	Upload(context.Background(), slog.Default(), rec, req, uploader)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uploader.AssertNotCalled(t, "UploadDocument")
}

func TestUpload_MissingDocumentType(t *testing.T) {
	t.Parallel()

	uploader := new(MockDocumentUploader)
	requester := &models.User{ID: "user1"}

	req := uploadRequest(t, "", "diploma.pdf", "application/pdf", []byte("data"))
	rec := httptest.NewRecorder()

	Upload(authedCtx(requester), slog.Default(), rec, req, uploader)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpload_Conflict(t *testing.T) {
	t.Parallel()

	uploader := new(MockDocumentUploader)
	requester := &models.User{ID: "user1"}

	uploader.On("UploadDocument", mock.Anything, requester, models.DocTypeIDPhoto,
		"photo.png", "image/png", mock.Anything, mock.Anything).
		Return(nil, models.ErrDocumentTypeConflict)

	req := uploadRequest(t, "ID_PHOTO", "photo.png", "image/png", []byte("png"))
	rec := httptest.NewRecorder()

	Upload(authedCtx(requester), slog.Default(), rec, req, uploader)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpload_ValidationFailure(t *testing.T) {
	t.Parallel()

	uploader := new(MockDocumentUploader)
	requester := &models.User{ID: "user1"}

	uploader.On("UploadDocument", mock.Anything, requester, models.DocTypeIDPhoto,
		"photo.bmp", "image/bmp", mock.Anything, mock.Anything).
		Return(nil, models.ErrFileValidationFailed)

	req := uploadRequest(t, "ID_PHOTO", "photo.bmp", "image/bmp", []byte("bmp"))
	rec := httptest.NewRecorder()

	Upload(authedCtx(requester), slog.Default(), rec, req, uploader)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpload_UnknownType(t *testing.T) {
	t.Parallel()

	uploader := new(MockDocumentUploader)
	requester := &models.User{ID: "user1"}

	uploader.On("UploadDocument", mock.Anything, requester, models.DocumentType("PASSPORT"),
		"passport.pdf", "application/pdf", mock.Anything, mock.Anything).
		Return(nil, models.ErrUnknownDocumentType)

	req := uploadRequest(t, "PASSPORT", "passport.pdf", "application/pdf", []byte("pdf"))
	rec := httptest.NewRecorder()

	Upload(authedCtx(requester), slog.Default(), rec, req, uploader)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

package upload_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"skillscenter/internal/api/upload"
	apperror "skillscenter/internal/errors"
	"skillscenter/internal/pkg/logger"
)

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Upload(filename, contentType string, data []byte) (string, error) {
	args := m.Called(filename, contentType, data)
	return args.String(0), args.Error(1)
}

func multipartRequest(t *testing.T, field, filename, contentType string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func newHandler(svc *MockUploadService, maxBytes int64) *upload.Handler {
	return upload.NewHandler(svc, logger.New(io.Discard, "debug"), maxBytes)
}

func TestUploadHandler_Success(t *testing.T) {
	svc := new(MockUploadService)
	data := []byte("fake-png-bytes")
	svc.On("Upload", "photo.png", "image/png", data).Return("/uploads/image-1-2.jpg", nil)

	rec := httptest.NewRecorder()
	newHandler(svc, 1<<20).UploadHandler(rec, multipartRequest(t, upload.FieldName, "photo.png", "image/png", data))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"File uploaded","filePath":"/uploads/image-1-2.jpg"}`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestUploadHandler_NoFile(t *testing.T) {
	svc := new(MockUploadService)

	rec := httptest.NewRecorder()
	newHandler(svc, 1<<20).UploadHandler(rec, multipartRequest(t, "other", "photo.png", "image/png", []byte("x")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No file uploaded")
	svc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadHandler_TooLarge(t *testing.T) {
	svc := new(MockUploadService)

	rec := httptest.NewRecorder()
	newHandler(svc, 16).UploadHandler(rec, multipartRequest(t, upload.FieldName, "big.jpg", "image/jpeg", bytes.Repeat([]byte("a"), 64)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "File too large")
}

func TestUploadHandler_RejectedByService(t *testing.T) {
	svc := new(MockUploadService)
	svc.On("Upload", "doc.pdf", "application/pdf", mock.Anything).Return("", apperror.NewValidationError("Images only!"))

	rec := httptest.NewRecorder()
	newHandler(svc, 1<<20).UploadHandler(rec, multipartRequest(t, upload.FieldName, "doc.pdf", "application/pdf", []byte("%PDF")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Images only!")
}

package uploadservice_test

import (
	"bytes"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperror "skillscenter/internal/errors"
	"skillscenter/internal/pkg/logger"
	"skillscenter/internal/service/uploadservice"
)

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(data []byte) (string, error) {
	args := m.Called(data)
	return args.String(0), args.Error(1)
}

func newTestLogger() logger.Logger {
	return logger.New(io.Discard, "debug")
}

func samplePNG(t *testing.T) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, imaging.New(40, 20, color.White)))
	return buf.Bytes()
}

func TestAccepts(t *testing.T) {
	tests := []struct {
		filename, mime string
		want           bool
	}{
		{"photo.jpg", "image/jpeg", true},
		{"photo.JPEG", "image/jpeg", true},
		{"logo.png", "image/png", true},
		{"doc.pdf", "application/pdf", false},
		{"fake.png", "application/pdf", false},
		{"photo.gif", "image/png", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, uploadservice.Accepts(tt.filename, tt.mime), tt.filename)
	}
}

func TestUpload_Success(t *testing.T) {
	files := new(MockFileStore)
	svc := uploadservice.NewService(files, newTestLogger())
	files.On("Save", mock.Anything).Return("/uploads/image-1-2.jpg", nil)

	url, err := svc.Upload("banner.png", "image/png", samplePNG(t))

	require.NoError(t, err)
	assert.Equal(t, "/uploads/image-1-2.jpg", url)
	files.AssertExpectations(t)
}

func TestUpload_RejectsNonImages(t *testing.T) {
	files := new(MockFileStore)
	svc := uploadservice.NewService(files, newTestLogger())

	_, err := svc.Upload("report.pdf", "application/pdf", []byte("%PDF"))
	status, _, msg := apperror.MapToHTTPStatus(err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Images only!", msg)

	// extensão válida, conteúdo inválido: falha de processamento
	_, err = svc.Upload("fake.jpg", "image/jpeg", []byte("not an image"))
	status, _, _ = apperror.MapToHTTPStatus(err)
	assert.Equal(t, http.StatusInternalServerError, status)

	files.AssertNotCalled(t, "Save", mock.Anything)
}

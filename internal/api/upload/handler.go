package upload

import (
	"errors"
	"io"
	"net/http"

	apperror "skillscenter/internal/errors"
	"skillscenter/internal/pkg/logger"
	"skillscenter/internal/pkg/respond"
)

// FieldName é o campo multipart que carrega a imagem.
const FieldName = "image"

type UploadService interface {
	Upload(filename, contentType string, data []byte) (string, error)
}

// Response é o corpo de sucesso do upload.
type Response struct {
	Message  string `json:"message" example:"File uploaded"`
	FilePath string `json:"filePath" example:"/uploads/image-1700000000000-123456789.jpg"`
}

type Handler struct {
	Service  UploadService
	Logger   logger.Logger
	maxBytes int64
}

func NewHandler(svc UploadService, log logger.Logger, maxBytes int64) *Handler {
	return &Handler{Service: svc, Logger: log, maxBytes: maxBytes}
}

// UploadHandler lida com POST /api/upload.
// @Summary Envia uma imagem
// @Description Aceita jpg/jpeg/png; a imagem é reduzida para no máximo 1920px de largura e gravada como JPEG.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Imagem (jpg, jpeg ou png)"
// @Success 200 {object} Response
// @Failure 400 {object} domain.ErrorResponse "Images only! / No file uploaded"
// @Failure 413 {object} domain.ErrorResponse "File too large"
// @Failure 500 {object} domain.ErrorResponse "Server error"
// @Security CookieAuth
// @Router /upload [post]
func (h *Handler) UploadHandler(w http.ResponseWriter, r *http.Request) {
	// folga para os cabeçalhos do multipart
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+(1<<20))

	file, header, err := r.FormFile(FieldName)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(w, r, h.Logger, apperror.NewDomainError("File too large", http.StatusRequestEntityTooLarge))
			return
		}
		respond.Error(w, r, h.Logger, apperror.NewValidationError("No file uploaded"))
		return
	}
	defer file.Close()

	if header.Size > h.maxBytes {
		respond.Error(w, r, h.Logger, apperror.NewDomainError("File too large", http.StatusRequestEntityTooLarge))
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil {
		respond.Error(w, r, h.Logger, apperror.NewInternalError("Falha ao ler upload.", err))
		return
	}
	if int64(len(data)) > h.maxBytes {
		respond.Error(w, r, h.Logger, apperror.NewDomainError("File too large", http.StatusRequestEntityTooLarge))
		return
	}

	url, err := h.Service.Upload(header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	respond.JSON(w, http.StatusOK, Response{Message: "File uploaded", FilePath: url})
}

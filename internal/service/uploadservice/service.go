package uploadservice

import (
	"path/filepath"
	"strings"

	apperror "skillscenter/internal/errors"
	"skillscenter/internal/pkg/imaging"
	"skillscenter/internal/pkg/logger"
)

var allowedExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

var allowedMIMEs = map[string]bool{"image/jpg": true, "image/jpeg": true, "image/png": true}

// FileStore grava a imagem processada e devolve o URL público.
type FileStore interface {
	Save(data []byte) (string, error)
}

// Service recebe uploads de imagem, normaliza para JPEG e grava em disco.
type Service struct {
	files  FileStore
	logger logger.Logger
}

func NewService(files FileStore, logger logger.Logger) *Service {
	return &Service{files: files, logger: logger}
}

// Upload valida extensão e MIME declarados, transforma a imagem e a grava.
func (s *Service) Upload(filename, contentType string, data []byte) (string, error) {
	if !Accepts(filename, contentType) {
		s.logger.Info("Upload recusado: tipo de arquivo.", map[string]interface{}{"filename": filename, "mime": contentType})
		return "", apperror.NewValidationError("Images only!")
	}

	img, err := imaging.Transform(data)
	if err != nil {
		return "", apperror.NewInternalError("Falha ao processar imagem.", err)
	}

	url, err := s.files.Save(img.Data)
	if err != nil {
		return "", apperror.NewInternalError("Falha ao gravar imagem.", err)
	}

	s.logger.Info("Imagem enviada.", map[string]interface{}{"url": url, "width": img.Width, "height": img.Height})
	return url, nil
}

// Accepts exige que a extensão e o MIME declarado sejam ambos de imagem jpg/jpeg/png.
func Accepts(filename, contentType string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	mime := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	return allowedExtensions[ext] && allowedMIMEs[mime]
}

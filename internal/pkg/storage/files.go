package storage

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"skillscenter/internal/pkg/logger"
)

// PublicPrefix é o prefixo de URL sob o qual o diretório de uploads é servido.
const PublicPrefix = "/uploads/"

// Files guarda imagens no diretório de uploads e as remove pelo URL público.
type Files struct {
	dir string
	log logger.Logger
	now func() time.Time
}

func NewFiles(dir string, log logger.Logger) *Files {
	return &Files{dir: dir, log: log, now: time.Now}
}

// StagingDir é o subdiretório oculto onde os uploads são escritos antes do rename.
const StagingDir = ".staging"

// Dir é o diretório servido em /uploads.
func (f *Files) Dir() string { return f.dir }

// Save grava data em um arquivo temporário e o renomeia para image-<ms>-<rand>.jpg.
// Devolve o URL público (/uploads/<nome>).
func (f *Files) Save(data []byte) (string, error) {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}
	// Escrita parcial fica em um subdiretório oculto (mesmo filesystem, rename atômico).
	stagingDir := filepath.Join(f.dir, StagingDir)
	if err := os.MkdirAll(stagingDir, 0o700); err != nil {
		return "", fmt.Errorf("create staging dir: %w", err)
	}

	name, err := f.newName()
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(stagingDir, "upload-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, filepath.Join(f.dir, name)); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("rename upload: %w", err)
	}

	f.log.Debug("Imagem gravada.", map[string]interface{}{"file": name, "bytes": len(data)})
	return PublicPrefix + name, nil
}

func (f *Files) newName() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000_000))
	if err != nil {
		return "", fmt.Errorf("random file suffix: %w", err)
	}
	return fmt.Sprintf("image-%d-%d.jpg", f.now().UnixMilli(), n.Int64()), nil
}

// Remove apaga o arquivo referenciado por um URL /uploads/<nome>.
// URLs externos e caminhos fora do diretório são ignorados; arquivo inexistente só gera warning.
func (f *Files) Remove(url string) {
	if !strings.HasPrefix(url, PublicPrefix) {
		return
	}
	name := strings.TrimPrefix(url, PublicPrefix)
	if name == "" || name != filepath.Base(name) || name == ".." {
		f.log.Warn("Caminho de upload recusado.", map[string]interface{}{"url": url})
		return
	}

	err := os.Remove(filepath.Join(f.dir, name))
	switch {
	case err == nil:
		f.log.Info("Imagem antiga removida.", map[string]interface{}{"file": name})
	case errors.Is(err, os.ErrNotExist):
		f.log.Warn("Imagem a remover não existe.", map[string]interface{}{"file": name})
	default:
		f.log.Error("Falha ao remover imagem "+name, err)
	}
}

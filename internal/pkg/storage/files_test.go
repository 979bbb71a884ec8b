package storage

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillscenter/internal/pkg/logger"
)

func newTestFiles(t *testing.T) (*Files, string) {
	dir := filepath.Join(t.TempDir(), "uploads")
	return NewFiles(dir, logger.New(io.Discard, "debug")), dir
}

func TestSave_CreatesDirAndNamesFile(t *testing.T) {
	f, dir := newTestFiles(t)
	f.now = func() time.Time { return time.UnixMilli(1700000000123) }

	url, err := f.Save([]byte("jpeg-bytes"))
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^/uploads/image-1700000000123-\d+\.jpg$`), url)

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, PublicPrefix)))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))

	// só a imagem final fica visível; o staging oculto termina vazio
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var visible []string
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), ".") {
			visible = append(visible, e.Name())
		}
	}
	assert.Equal(t, []string{strings.TrimPrefix(url, PublicPrefix)}, visible)

	staged, err := os.ReadDir(filepath.Join(dir, StagingDir))
	require.NoError(t, err)
	assert.Empty(t, staged)
}

func TestRemove(t *testing.T) {
	f, dir := newTestFiles(t)
	url, err := f.Save([]byte("x"))
	require.NoError(t, err)

	f.Remove(url)
	_, err = os.Stat(filepath.Join(dir, strings.TrimPrefix(url, PublicPrefix)))
	assert.True(t, os.IsNotExist(err))

	// segunda remoção não entra em pânico
	f.Remove(url)
}

func TestRemove_RefusesTraversalAndExternal(t *testing.T) {
	f, dir := newTestFiles(t)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	outside := filepath.Join(filepath.Dir(dir), "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))

	f.Remove("/uploads/../secret.txt")
	f.Remove("https://cdn.example.com/secret.txt")

	_, err := os.Stat(outside)
	assert.NoError(t, err)
}

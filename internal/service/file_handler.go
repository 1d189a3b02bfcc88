package service

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"pdf-text-extractor/internal/domain"

	"github.com/google/uuid"
)

// TempFileHandler stages uploads under a directory using generated names,
// so concurrent uploads sharing a filename never touch the same path.
type TempFileHandler struct {
	dir    string
	logger domain.Logger
}

// NewTempFileHandler creates a file handler staging into dir (os.TempDir() when empty)
func NewTempFileHandler(dir string, logger domain.Logger) *TempFileHandler {
	if dir == "" {
		dir = os.TempDir()
	}
	return &TempFileHandler{
		dir:    dir,
		logger: logger,
	}
}

// Dir returns the staging directory
func (h *TempFileHandler) Dir() string {
	return h.dir
}

// SaveUpload copies file to a new staged artifact. On failure nothing is left behind.
func (h *TempFileHandler) SaveUpload(file io.Reader, filename string) (*domain.FileInfo, error) {
	id := uuid.NewString()
	path := filepath.Join(h.dir, id+stagedExtension(filename))

	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}

	n, copyErr := io.Copy(out, file)
	closeErr := out.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(path)
		if copyErr != nil {
			return nil, fmt.Errorf("failed to save upload: %w", copyErr)
		}
		return nil, fmt.Errorf("failed to save upload: %w", closeErr)
	}

	h.logger.Debug("Staged upload", "filename", filename, "path", path, "size", n)

	return &domain.FileInfo{
		ID:       id,
		Filename: filename,
		Size:     n,
		Path:     path,
	}, nil
}

// CleanupTemporary removes a staged artifact. A missing file is not an error.
func (h *TempFileHandler) CleanupTemporary(info *domain.FileInfo) error {
	if info == nil || info.Path == "" {
		return nil
	}
	if err := os.Remove(info.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove temporary file: %w", err)
	}
	return nil
}

// stagedExtension keeps a short alphanumeric extension from the client name.
func stagedExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) < 2 || len(ext) > 8 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}

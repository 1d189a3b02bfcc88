package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pdf-text-extractor/internal/domain"
	"pdf-text-extractor/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTempFileHandler_SaveAndCleanup(t *testing.T) {
	dir := t.TempDir()
	h := NewTempFileHandler(dir, NewMockLogger())

	info, err := h.SaveUpload(strings.NewReader("%PDF-1.4 body"), "Quarterly Report.PDF")
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(info.Path))
	assert.Equal(t, info.ID+".pdf", filepath.Base(info.Path))
	assert.Equal(t, "Quarterly Report.PDF", info.Filename)
	assert.Equal(t, int64(len("%PDF-1.4 body")), info.Size)

	data, err := os.ReadFile(info.Path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 body", string(data))

	require.NoError(t, h.CleanupTemporary(info))
	assert.Empty(t, testutil.DirEntries(t, dir))

	// Second cleanup of the same artifact is a no-op.
	assert.NoError(t, h.CleanupTemporary(info))
	assert.NoError(t, h.CleanupTemporary(nil))
}

func TestTempFileHandler_SameFilenameGetsDistinctPaths(t *testing.T) {
	h := NewTempFileHandler(t.TempDir(), NewMockLogger())

	a, err := h.SaveUpload(strings.NewReader("a"), "doc.pdf")
	require.NoError(t, err)
	b, err := h.SaveUpload(strings.NewReader("b"), "doc.pdf")
	require.NoError(t, err)

	assert.NotEqual(t, a.Path, b.Path)
	require.NoError(t, h.CleanupTemporary(a))

	data, err := os.ReadFile(b.Path)
	require.NoError(t, err)
	assert.Equal(t, "b", string(data))
}

func TestTempFileHandler_PathTraversalNameStaysInDir(t *testing.T) {
	dir := t.TempDir()
	h := NewTempFileHandler(dir, NewMockLogger())

	info, err := h.SaveUpload(strings.NewReader("x"), "../../etc/passwd")
	require.NoError(t, err)
	defer h.CleanupTemporary(info)

	assert.Equal(t, dir, filepath.Dir(info.Path))
}

func TestTempFileHandler_MissingDir(t *testing.T) {
	h := NewTempFileHandler(filepath.Join(t.TempDir(), "gone"), NewMockLogger())

	_, err := h.SaveUpload(strings.NewReader("x"), "a.pdf")

	assert.Error(t, err)
}

func TestTempFileHandler_DefaultDir(t *testing.T) {
	h := NewTempFileHandler("", NewMockLogger())
	assert.Equal(t, os.TempDir(), h.Dir())
}

func TestStagedExtension(t *testing.T) {
	tests := map[string]string{
		"a.pdf":          ".pdf",
		"A.PDF":          ".pdf",
		"noext":          "",
		"weird.p d f":    "",
		"archive.tar.7z": ".7z",
		"x.verylongext":  "",
	}
	for in, want := range tests {
		assert.Equal(t, want, stagedExtension(in), in)
	}
}

var _ domain.FileHandler = (*TempFileHandler)(nil)

package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_UploadDownload(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/files/")
	require.NoError(t, err)

	stored, err := s.Upload(ctx, strings.NewReader("pdf-bytes"), "payslips/2025/e-1.pdf", "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "payslips/2025/e-1.pdf", stored)
	assert.Equal(t, "http://localhost:8080/files/payslips/2025/e-1.pdf", s.GetURL(stored))

	rc, err := s.Download(ctx, stored)
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(body))

	exists, err := s.Exists(ctx, stored)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLocalStorage_TraversalStaysInsideRoot(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir(), "/files")
	require.NoError(t, err)

	stored, err := s.Upload(ctx, strings.NewReader("x"), "../../etc/evil.pdf", "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "etc/evil.pdf", stored)
}

func TestLocalStorage_DownloadMissing(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "/files")
	require.NoError(t, err)

	_, err = s.Download(context.Background(), "nope.pdf")
	assert.ErrorIs(t, err, ErrFileNotFound)

	assert.NoError(t, s.Delete(context.Background(), "nope.pdf"))
}

func TestLocalStorage_EmptyPath(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "/files")
	require.NoError(t, err)

	_, err = s.Upload(context.Background(), strings.NewReader("x"), "", "application/pdf")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

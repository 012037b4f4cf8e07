package file

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/storage"
)

type FileService interface {
	// Archive stores a generated document under folder/YYYY/MM and returns
	// it with Path and URL set
	Archive(ctx context.Context, folder string, doc document.Document) (document.Document, error)

	Open(ctx context.Context, path string) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, path string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
	clock   clock.Clock
}

func NewFileService(storage storage.FileStorage, clk clock.Clock) FileService {
	return &fileServiceImpl{
		storage: storage,
		clock:   clk,
	}
}

func (s *fileServiceImpl) Archive(ctx context.Context, folder string, doc document.Document) (document.Document, error) {
	if doc.Name == "" {
		return doc, fmt.Errorf("archive document: name is required")
	}

	t := s.clock.Now()
	p := path.Join(folder, t.Format("2006"), t.Format("01"), doc.Name)

	stored, err := s.storage.Upload(ctx, bytes.NewReader(doc.Body), p, doc.ContentType)
	if err != nil {
		return doc, fmt.Errorf("failed to archive %s: %w", doc.Name, err)
	}

	doc.Path = stored
	doc.URL = s.storage.GetURL(stored)
	return doc, nil
}

func (s *fileServiceImpl) Open(ctx context.Context, p string) (io.ReadCloser, error) {
	return s.storage.Download(ctx, p)
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, p string) error {
	if err := s.storage.Delete(ctx, p); err != nil {
		return fmt.Errorf("failed to delete %s: %w", p, err)
	}
	return nil
}

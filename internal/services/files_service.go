package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/lunahq/accounts-api/internal/httperr"
	"github.com/lunahq/accounts-api/internal/models"
	"github.com/lunahq/accounts-api/internal/repository"
)

// FilesService stores uploaded files on local disk under a UUID name and
// keeps a metadata row per file.
type FilesService struct {
	files     repository.FileStore
	uploadDir string
}

func NewFilesService(files repository.FileStore, uploadDir string) *FilesService {
	return &FilesService{files: files, uploadDir: uploadDir}
}

func (s *FilesService) Upload(ctx context.Context, header *multipart.FileHeader) (*models.File, error) {
	src, err := header.Open()
	if err != nil {
		return nil, httperr.BadRequest(err.Error())
	}
	defer src.Close()

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(header.Filename))
	dst, err := os.Create(filepath.Join(s.uploadDir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	record := &models.File{ID: uuid.New(), Path: name}
	if err := s.files.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *FilesService) FindByID(ctx context.Context, id uuid.UUID) (*models.File, error) {
	return s.files.FindByID(ctx, id)
}

// Resolve maps a stored path to an absolute path on disk, rejecting
// anything that escapes the upload directory.
func (s *FilesService) Resolve(path string) (string, error) {
	clean := filepath.Clean("/" + path)
	full := filepath.Join(s.uploadDir, clean)
	if _, err := os.Stat(full); err != nil {
		return "", repository.ErrNotFound
	}
	return full, nil
}

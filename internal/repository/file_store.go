package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lunahq/accounts-api/internal/models"
)

// FileStore persists upload metadata; file bytes live on disk.
type FileStore interface {
	Create(ctx context.Context, file *models.File) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.File, error)
}

type gormFileStore struct {
	db *gorm.DB
}

func NewFileStore(db *gorm.DB) FileStore {
	return &gormFileStore{db: db}
}

func (s *gormFileStore) Create(ctx context.Context, file *models.File) error {
	return s.db.WithContext(ctx).Create(file).Error
}

func (s *gormFileStore) FindByID(ctx context.Context, id uuid.UUID) (*models.File, error) {
	var file models.File
	err := s.db.WithContext(ctx).First(&file, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &file, nil
}

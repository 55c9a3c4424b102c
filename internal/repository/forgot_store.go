package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lunahq/accounts-api/internal/models"
)

// ForgotStore persists single-use password-reset tokens.
type ForgotStore interface {
	Create(ctx context.Context, forgot *models.Forgot) error
	FindOne(ctx context.Context, conds map[string]any) (*models.Forgot, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type gormForgotStore struct {
	db *gorm.DB
}

func NewForgotStore(db *gorm.DB) ForgotStore {
	return &gormForgotStore{db: db}
}

func (s *gormForgotStore) Create(ctx context.Context, forgot *models.Forgot) error {
	return s.db.WithContext(ctx).Create(forgot).Error
}

func (s *gormForgotStore) FindOne(ctx context.Context, conds map[string]any) (*models.Forgot, error) {
	var forgot models.Forgot
	err := s.db.WithContext(ctx).Preload("User").Where(conds).First(&forgot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &forgot, nil
}

func (s *gormForgotStore) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(&models.Forgot{}, "id = ?", id).Error
}

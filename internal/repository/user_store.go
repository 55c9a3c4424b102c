package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lunahq/accounts-api/internal/models"
)

// UserStore persists user records. Predicates are column → value maps,
// e.g. {"email": "a@x.com"} or {"social_id": id, "provider": "google"}.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindOne(ctx context.Context, conds map[string]any) (*models.User, error)
	FindAndCount(ctx context.Context, skip, take int) ([]models.User, int64, error)
	Save(ctx context.Context, user *models.User) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type gormUserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) UserStore {
	return &gormUserStore{db: db}
}

func (s *gormUserStore) Create(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *gormUserStore) FindOne(ctx context.Context, conds map[string]any) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Preload("Photo").Where(conds).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormUserStore) FindAndCount(ctx context.Context, skip, take int) ([]models.User, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := s.db.WithContext(ctx).
		Preload("Photo").
		Order("created_at ASC").
		Offset(skip).
		Limit(take).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *gormUserStore) Save(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Save(user).Error
}

func (s *gormUserStore) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id).Error
}

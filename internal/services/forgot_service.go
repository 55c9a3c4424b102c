package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/lunahq/accounts-api/internal/models"
	"github.com/lunahq/accounts-api/internal/repository"
)

// ForgotService manages single-use password-reset tokens.
type ForgotService struct {
	forgots repository.ForgotStore
}

func NewForgotService(forgots repository.ForgotStore) *ForgotService {
	return &ForgotService{forgots: forgots}
}

func (s *ForgotService) Create(ctx context.Context, hash string, userID uuid.UUID) (*models.Forgot, error) {
	forgot := &models.Forgot{
		ID:     uuid.New(),
		Hash:   hash,
		UserID: userID,
	}
	if err := s.forgots.Create(ctx, forgot); err != nil {
		return nil, err
	}
	return forgot, nil
}

func (s *ForgotService) FindOne(ctx context.Context, conds map[string]any) (*models.Forgot, error) {
	return s.forgots.FindOne(ctx, conds)
}

func (s *ForgotService) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return s.forgots.SoftDelete(ctx, id)
}

package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lunahq/accounts-api/internal/httperr"
	"github.com/lunahq/accounts-api/internal/models"
	"github.com/lunahq/accounts-api/internal/repository"
)

// UsersService is the CRUD layer over the user store. Passwords enter as
// plaintext and are bcrypt-hashed here, never in a model hook.
type UsersService struct {
	users repository.UserStore
}

func NewUsersService(users repository.UserStore) *UsersService {
	return &UsersService{users: users}
}

// UserPatch is a partial update; nil fields are left untouched. A
// non-empty Password replaces the stored hash.
type UserPatch struct {
	Email     *string
	Password  string
	FirstName *string
	LastName  *string
	Role      *string
	Status    *string
	Hash      *string
	ClearHash bool
	PhotoID   *uuid.UUID
}

func (s *UsersService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.Password != "" {
		hashed, err := HashPassword(user.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hashed
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UsersService) FindAll(ctx context.Context, skip, take int) ([]models.User, int64, error) {
	users, total, err := s.users.FindAndCount(ctx, skip, take)
	if err != nil {
		return nil, 0, httperr.BadRequest(err.Error())
	}
	return users, total, nil
}

func (s *UsersService) FindOne(ctx context.Context, conds map[string]any) (*models.User, error) {
	return s.users.FindOne(ctx, conds)
}

func (s *UsersService) Update(ctx context.Context, id uuid.UUID, patch UserPatch) (*models.User, error) {
	user, err := s.users.FindOne(ctx, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}

	if patch.Email != nil {
		user.Email = patch.Email
	}
	if patch.Password != "" {
		hashed, err := HashPassword(patch.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hashed
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.Status != nil {
		user.Status = *patch.Status
	}
	if patch.ClearHash {
		user.Hash = nil
	} else if patch.Hash != nil {
		user.Hash = patch.Hash
	}
	if patch.PhotoID != nil {
		user.PhotoID = patch.PhotoID
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UsersService) Save(ctx context.Context, user *models.User) error {
	return s.users.Save(ctx, user)
}

func (s *UsersService) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return s.users.SoftDelete(ctx, id)
}

// HashPassword bcrypt-hashes a plaintext password with the default cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

package handlers

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lunahq/accounts-api/internal/models"
	"github.com/lunahq/accounts-api/internal/repository"
	"github.com/lunahq/accounts-api/internal/social"
)

type memUserStore struct {
	users map[uuid.UUID]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[uuid.UUID]*models.User)}
}

func (m *memUserStore) Create(_ context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Email != nil {
		for _, existing := range m.users {
			if existing.Email != nil && *existing.Email == *user.Email {
				return fmt.Errorf("duplicate key value violates unique constraint")
			}
		}
	}
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *memUserStore) FindOne(_ context.Context, conds map[string]any) (*models.User, error) {
	for _, user := range m.users {
		if memMatch(user, conds) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func memMatch(u *models.User, conds map[string]any) bool {
	for col, want := range conds {
		switch col {
		case "id":
			if u.ID != want.(uuid.UUID) {
				return false
			}
		case "email":
			if u.Email == nil || *u.Email != want.(string) {
				return false
			}
		case "hash":
			if u.Hash == nil || *u.Hash != want.(string) {
				return false
			}
		case "social_id":
			if u.SocialID == nil || *u.SocialID != want.(string) {
				return false
			}
		case "provider":
			if u.Provider != want.(string) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func (m *memUserStore) FindAndCount(_ context.Context, skip, take int) ([]models.User, int64, error) {
	all := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		all = append(all, *u)
	}
	total := int64(len(all))
	if skip >= len(all) {
		return nil, total, nil
	}
	end := skip + take
	if end > len(all) {
		end = len(all)
	}
	return all[skip:end], total, nil
}

func (m *memUserStore) Save(_ context.Context, user *models.User) error {
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *memUserStore) SoftDelete(_ context.Context, id uuid.UUID) error {
	delete(m.users, id)
	return nil
}

type memForgotStore struct {
	forgots map[uuid.UUID]*models.Forgot
}

func newMemForgotStore() *memForgotStore {
	return &memForgotStore{forgots: make(map[uuid.UUID]*models.Forgot)}
}

func (m *memForgotStore) Create(_ context.Context, forgot *models.Forgot) error {
	if forgot.ID == uuid.Nil {
		forgot.ID = uuid.New()
	}
	clone := *forgot
	m.forgots[forgot.ID] = &clone
	return nil
}

func (m *memForgotStore) FindOne(_ context.Context, conds map[string]any) (*models.Forgot, error) {
	hash, ok := conds["hash"].(string)
	if !ok {
		return nil, repository.ErrNotFound
	}
	for _, f := range m.forgots {
		if f.Hash == hash {
			clone := *f
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memForgotStore) SoftDelete(_ context.Context, id uuid.UUID) error {
	delete(m.forgots, id)
	return nil
}

type memFileStore struct {
	files map[uuid.UUID]*models.File
}

func newMemFileStore() *memFileStore {
	return &memFileStore{files: make(map[uuid.UUID]*models.File)}
}

func (m *memFileStore) Create(_ context.Context, file *models.File) error {
	clone := *file
	m.files[file.ID] = &clone
	return nil
}

func (m *memFileStore) FindByID(_ context.Context, id uuid.UUID) (*models.File, error) {
	f, ok := m.files[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *f
	return &clone, nil
}

type memMailer struct {
	hashes []string
}

func (m *memMailer) Send(_ context.Context, _, _ string, data map[string]string) error {
	m.hashes = append(m.hashes, data["hash"])
	return nil
}

// stubVerifier answers every exchange with a fixed identity or error.
type stubVerifier struct {
	provider string
	identity *social.Identity
	err      error
}

func (s *stubVerifier) Provider() string { return s.provider }

func (s *stubVerifier) Exchange(context.Context, string, string) (*social.Identity, error) {
	if s.err != nil {
		return nil, s.err
	}
	clone := *s.identity
	return &clone, nil
}

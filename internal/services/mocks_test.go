package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lunahq/accounts-api/internal/models"
	"github.com/lunahq/accounts-api/internal/repository"
)

type mockUserStore struct {
	users     map[uuid.UUID]*models.User
	createErr error
	saveErr   error
	findErr   error
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[uuid.UUID]*models.User)}
}

func (m *mockUserStore) Create(_ context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
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

func (m *mockUserStore) FindOne(_ context.Context, conds map[string]any) (*models.User, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, user := range m.users {
		if matchUser(user, conds) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func matchUser(u *models.User, conds map[string]any) bool {
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

func (m *mockUserStore) FindAndCount(_ context.Context, skip, take int) ([]models.User, int64, error) {
	if m.findErr != nil {
		return nil, 0, m.findErr
	}
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

func (m *mockUserStore) Save(_ context.Context, user *models.User) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *mockUserStore) SoftDelete(_ context.Context, id uuid.UUID) error {
	delete(m.users, id)
	return nil
}

type mockForgotStore struct {
	forgots map[uuid.UUID]*models.Forgot
}

func newMockForgotStore() *mockForgotStore {
	return &mockForgotStore{forgots: make(map[uuid.UUID]*models.Forgot)}
}

func (m *mockForgotStore) Create(_ context.Context, forgot *models.Forgot) error {
	if forgot.ID == uuid.Nil {
		forgot.ID = uuid.New()
	}
	clone := *forgot
	m.forgots[forgot.ID] = &clone
	return nil
}

func (m *mockForgotStore) FindOne(_ context.Context, conds map[string]any) (*models.Forgot, error) {
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

func (m *mockForgotStore) SoftDelete(_ context.Context, id uuid.UUID) error {
	delete(m.forgots, id)
	return nil
}

type sentMail struct {
	Template string
	To       string
	Data     map[string]string
}

type mockMailer struct {
	sent []sentMail
	err  error
}

func (m *mockMailer) Send(_ context.Context, template, to string, data map[string]string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{Template: template, To: to, Data: data})
	return nil
}

type mockFileStore struct {
	files map[uuid.UUID]*models.File
}

func newMockFileStore() *mockFileStore {
	return &mockFileStore{files: make(map[uuid.UUID]*models.File)}
}

func (m *mockFileStore) Create(_ context.Context, file *models.File) error {
	clone := *file
	m.files[file.ID] = &clone
	return nil
}

func (m *mockFileStore) FindByID(_ context.Context, id uuid.UUID) (*models.File, error) {
	f, ok := m.files[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *f
	return &clone, nil
}

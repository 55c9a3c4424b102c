package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lunahq/accounts-api/internal/config"
	"github.com/lunahq/accounts-api/internal/dto"
	"github.com/lunahq/accounts-api/internal/httperr"
	"github.com/lunahq/accounts-api/internal/mail"
	"github.com/lunahq/accounts-api/internal/models"
	"github.com/lunahq/accounts-api/internal/repository"
	"github.com/lunahq/accounts-api/internal/social"
)

// AuthService orchestrates login (password and social), registration,
// email confirmation, password recovery, and profile lifecycle.
type AuthService struct {
	cfg       *config.Config
	users     *UsersService
	forgot    *ForgotService
	mailer    mail.Mailer
	verifiers map[string]social.Verifier
}

func NewAuthService(cfg *config.Config, users *UsersService, forgot *ForgotService, mailer mail.Mailer, verifiers ...social.Verifier) *AuthService {
	byProvider := make(map[string]social.Verifier, len(verifiers))
	for _, v := range verifiers {
		byProvider[v.Provider()] = v
	}
	return &AuthService{
		cfg:       cfg,
		users:     users,
		forgot:    forgot,
		mailer:    mailer,
		verifiers: byProvider,
	}
}

// Verifier returns the identity verifier registered for a provider.
func (s *AuthService) Verifier(provider string) (social.Verifier, bool) {
	v, ok := s.verifiers[provider]
	return v, ok
}

// ValidateLogin authenticates an email/password user. Admin endpoints
// require role=admin; everything else requires role=user. A role outside
// the required scope is reported as absence, not as forbidden.
func (s *AuthService) ValidateLogin(ctx context.Context, email, password string, adminOnly bool) (*dto.LoginResponse, error) {
	user, err := s.users.FindOne(ctx, map[string]any{"email": normalizeEmail(email)})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, httperr.NotFound(map[string]string{"email": "notFound"})
		}
		return nil, err
	}

	requiredRole := models.RoleUser
	if adminOnly {
		requiredRole = models.RoleAdmin
	}
	if user.Role != requiredRole {
		return nil, httperr.NotFound(map[string]string{"email": "notFound"})
	}

	if user.Provider != models.ProviderEmail {
		return nil, httperr.Unprocessable(map[string]string{
			"email": "needLoginViaProvider:" + user.Provider,
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, httperr.Unprocessable(map[string]string{"password": "incorrectPassword"})
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *user}, nil
}

// ValidateSocialLogin logs a user in from a verified provider identity.
// Lookup order: (socialId, provider), then email, then create. Matching
// by email implicitly links the account to the social login.
func (s *AuthService) ValidateSocialLogin(ctx context.Context, provider string, identity *social.Identity) (*dto.LoginResponse, error) {
	socialEmail := normalizeEmail(identity.Email)

	var userByEmail *models.User
	if socialEmail != "" {
		found, err := s.users.FindOne(ctx, map[string]any{"email": socialEmail})
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		userByEmail = found
	}

	user, err := s.users.FindOne(ctx, map[string]any{
		"social_id": identity.ID,
		"provider":  provider,
	})
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	switch {
	case user != nil:
		if socialEmail != "" && userByEmail == nil {
			user.Email = &socialEmail
		}
		if err := s.users.Save(ctx, user); err != nil {
			return nil, err
		}
	case userByEmail != nil:
		user = userByEmail
	default:
		created := &models.User{
			ID:        uuid.New(),
			FirstName: identity.FirstName,
			LastName:  identity.LastName,
			SocialID:  &identity.ID,
			Provider:  provider,
			Role:      models.RoleUser,
			Status:    models.StatusActive,
		}
		if socialEmail != "" {
			created.Email = &socialEmail
		}
		if _, err := s.users.Create(ctx, created); err != nil {
			return nil, err
		}
		// Re-fetch to return the fully hydrated record.
		user, err = s.users.FindOne(ctx, map[string]any{"id": created.ID})
		if err != nil {
			return nil, err
		}
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *user}, nil
}

// Register creates an unconfirmed email/password account and dispatches
// the confirmation mail carrying the opaque hash.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) error {
	hash, err := generateOpaqueHash()
	if err != nil {
		return err
	}

	email := normalizeEmail(req.Email)
	user := &models.User{
		ID:        uuid.New(),
		Email:     &email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      models.RoleUser,
		Status:    models.StatusInactive,
		Provider:  models.ProviderEmail,
		Hash:      &hash,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		return httperr.BadRequest(err.Error())
	}

	if err := s.mailer.Send(ctx, mail.TemplateSignUp, email, map[string]string{"hash": hash}); err != nil {
		return httperr.BadRequest(err.Error())
	}
	return nil
}

// ConfirmEmail activates the account matching a confirmation hash. The
// hash is cleared, so a repeat call reports absence.
func (s *AuthService) ConfirmEmail(ctx context.Context, hash string) error {
	user, err := s.users.FindOne(ctx, map[string]any{"hash": hash})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return httperr.NotFound(nil)
		}
		return err
	}

	user.Hash = nil
	user.Status = models.StatusActive
	return s.users.Save(ctx, user)
}

// ForgotPassword creates a reset token for the account and mails it.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	user, err := s.users.FindOne(ctx, map[string]any{"email": email})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return httperr.NotFound(map[string]string{"email": "emailNotExists"})
		}
		return err
	}

	hash, err := generateOpaqueHash()
	if err != nil {
		return err
	}
	if _, err := s.forgot.Create(ctx, hash, user.ID); err != nil {
		return err
	}

	return s.mailer.Send(ctx, mail.TemplateForgotPassword, email, map[string]string{"hash": hash})
}

// ResetPassword redeems a reset token: the owner's password is replaced
// and the token soft-deleted, enforcing single use.
func (s *AuthService) ResetPassword(ctx context.Context, hash, password string) error {
	forgot, err := s.forgot.FindOne(ctx, map[string]any{"hash": hash})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return httperr.NotFound(map[string]string{"hash": "notFound"})
		}
		return err
	}

	if _, err := s.users.Update(ctx, forgot.UserID, UserPatch{Password: password}); err != nil {
		return err
	}
	return s.forgot.SoftDelete(ctx, forgot.ID)
}

// Me returns the authenticated user's hydrated record.
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.users.FindOne(ctx, map[string]any{"id": userID})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, httperr.NotFound(nil)
		}
		return nil, err
	}
	return user, nil
}

// Update patches the caller's profile. Changing the password requires
// the current one.
func (s *AuthService) Update(ctx context.Context, userID uuid.UUID, req dto.UpdateMeRequest) (*models.User, error) {
	if req.Password != "" {
		if req.OldPassword == "" {
			return nil, httperr.BadRequest("missingOldPassword")
		}
		current, err := s.users.FindOne(ctx, map[string]any{"id": userID})
		if err != nil {
			return nil, err
		}
		if err := bcrypt.CompareHashAndPassword([]byte(current.Password), []byte(req.OldPassword)); err != nil {
			return nil, httperr.BadRequest("incorrectOldPassword")
		}
	}

	if _, err := s.users.Update(ctx, userID, UserPatch{
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		PhotoID:   req.PhotoID,
	}); err != nil {
		return nil, err
	}

	return s.users.FindOne(ctx, map[string]any{"id": userID})
}

// SoftDelete retires the caller's account; the row is retained.
func (s *AuthService) SoftDelete(ctx context.Context, userID uuid.UUID) error {
	return s.users.SoftDelete(ctx, userID)
}

func (s *AuthService) signToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":   user.ID.String(),
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		slog.Error("failed to sign session token", "error", err)
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// generateOpaqueHash returns the hex SHA-256 of 32 random bytes, used for
// email confirmation and password-reset tokens.
func generateOpaqueHash() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	sum := sha256.Sum256(raw)
	return fmt.Sprintf("%x", sum), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

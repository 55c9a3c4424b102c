package database

import (
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lunahq/accounts-api/internal/config"
	"github.com/lunahq/accounts-api/internal/models"
	"github.com/lunahq/accounts-api/internal/services"
)

// Seed creates a default admin and a default user when no account with
// the respective role exists yet.
func Seed(db *gorm.DB, cfg *config.Config) error {
	if err := seedRole(db, models.RoleAdmin, cfg.SeedAdminEmail, cfg.SeedAdminPassword, "Super", "Admin"); err != nil {
		return err
	}
	return seedRole(db, models.RoleUser, "john.doe@example.com", "secret", "John", "Doe")
}

func seedRole(db *gorm.DB, role, email, password, firstName, lastName string) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		ID:        uuid.New(),
		Email:     &email,
		Password:  hash,
		FirstName: firstName,
		LastName:  lastName,
		Role:      role,
		Status:    models.StatusActive,
		Provider:  models.ProviderEmail,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	slog.Info("seeded default account", "role", role, "email", email)
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Forgot is a single-use password-reset token. It has no expiry; single
// use is enforced by soft-deleting the row after a successful reset.
type Forgot struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Hash      string         `gorm:"size:64;not null;index" json:"-"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

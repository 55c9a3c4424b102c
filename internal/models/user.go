package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles are fixed reference data; users carry the role name directly.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Auth providers. Email/password accounts carry a bcrypt hash; social
// accounts authenticate through the provider-scoped SocialID instead.
const (
	ProviderEmail    = "email"
	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"
	ProviderApple    = "apple"
)

type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     *string        `gorm:"size:255;uniqueIndex" json:"email"`
	Password  string         `gorm:"size:255" json:"-"`
	FirstName string         `gorm:"size:100" json:"firstName"`
	LastName  string         `gorm:"size:100" json:"lastName"`
	Role      string         `gorm:"size:20;default:'user'" json:"role"`
	Status    string         `gorm:"size:20;default:'INACTIVE'" json:"status"`
	Provider  string         `gorm:"size:50;default:'email'" json:"provider"`
	SocialID  *string        `gorm:"size:255;index" json:"-"`
	// Hash is the pending email-confirmation token; cleared on confirmation.
	Hash      *string        `gorm:"size:64;index" json:"-"`
	PhotoID   *uuid.UUID     `gorm:"type:uuid" json:"-"`
	Photo     *File          `gorm:"foreignKey:PhotoID" json:"photo,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

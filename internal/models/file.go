package models

import (
	"time"

	"github.com/google/uuid"
)

// File is an uploaded file stored on local disk; Path is relative to the
// configured upload directory.
type File struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Path      string    `gorm:"size:255;not null" json:"path"`
	CreatedAt time.Time `json:"created_at"`
}

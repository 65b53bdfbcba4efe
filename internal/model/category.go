package model

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products on the storefront. Products reference it by Name.
type Category struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"size:100;uniqueIndex;not null"`
	Slug         string    `gorm:"uniqueIndex;not null"`
	Description  *string   `gorm:"size:500"`
	Image        *string
	DisplayOrder int  `gorm:"not null;default:0"`
	IsActive     bool `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// Admin is a back-office user. Email is stored lowercased.
type Admin struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Name         string    `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

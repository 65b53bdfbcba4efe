package dto

import (
	"time"

	"github.com/google/uuid"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name         string  `json:"name"         validate:"max=100"`
	Slug         string  `json:"slug"`
	Description  *string `json:"description"  validate:"omitempty,max=500"`
	Image        *string `json:"image"`
	DisplayOrder *int    `json:"displayOrder"`
	IsActive     *bool   `json:"isActive"`
}

type UpdateCategoryRequest struct {
	Name         *string `json:"name"         validate:"omitempty,max=100"`
	Slug         *string `json:"slug"`
	Description  *string `json:"description"  validate:"omitempty,max=500"`
	Image        *string `json:"image"`
	DisplayOrder *int    `json:"displayOrder"`
	IsActive     *bool   `json:"isActive"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CategoryResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  *string   `json:"description,omitempty"`
	Image        *string   `json:"image,omitempty"`
	DisplayOrder int       `json:"displayOrder"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

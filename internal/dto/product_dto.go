package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices and quantities go over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

// PriceSlabInput is one size option as submitted by the admin UI. Any slab
// id the client echoes back is ignored.
type PriceSlabInput struct {
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"     validate:"max=20"`
	Price    decimal.Decimal `json:"price"`
}

type SEOInput struct {
	Title       string   `json:"title"       validate:"max=200"`
	Description string   `json:"description" validate:"max=300"`
	Keywords    []string `json:"keywords"`
}

type CreateProductRequest struct {
	Name             string           `json:"name"             validate:"required,max=200"`
	Slug             string           `json:"slug"             validate:"required"`
	Category         string           `json:"category"         validate:"required"`
	Description      string           `json:"description"      validate:"required"`
	ShortDescription *string          `json:"shortDescription" validate:"omitempty,max=300"`
	Image            string           `json:"image"`
	Images           []string         `json:"images"`
	PricingType      string           `json:"pricingType"      validate:"required,oneof=WEIGHT UNIT"`
	Prices           []PriceSlabInput `json:"prices"           validate:"required,min=1,dive"`
	Origin           *string          `json:"origin"`
	Aroma            *string          `json:"aroma"`
	Texture          *string          `json:"texture"`
	UsageTips        *string          `json:"usageTips"`
	SEO              *SEOInput        `json:"seo"`
	Featured         *bool            `json:"featured"`
	IsActive         *bool            `json:"isActive"`
}

// UpdateProductRequest is a partial update: nil fields are left untouched.
// A non-nil Prices replaces the whole slab list.
type UpdateProductRequest struct {
	Name             *string          `json:"name"             validate:"omitempty,max=200"`
	Slug             *string          `json:"slug"`
	Category         *string          `json:"category"`
	Description      *string          `json:"description"`
	ShortDescription *string          `json:"shortDescription" validate:"omitempty,max=300"`
	Image            *string          `json:"image"`
	Images           []string         `json:"images"`
	PricingType      *string          `json:"pricingType"      validate:"omitempty,oneof=WEIGHT UNIT"`
	Prices           []PriceSlabInput `json:"prices"           validate:"omitempty,dive"`
	Origin           *string          `json:"origin"`
	Aroma            *string          `json:"aroma"`
	Texture          *string          `json:"texture"`
	UsageTips        *string          `json:"usageTips"`
	SEO              *SEOInput        `json:"seo"`
	Featured         *bool            `json:"featured"`
	IsActive         *bool            `json:"isActive"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProductFilter struct {
	Category        string `form:"category"`
	Sort            string `form:"sort"`
	Featured        bool   `form:"featured"`
	IncludeInactive bool   `form:"includeInactive"`
	Page            int    `form:"page,default=1"`
	Limit           int    `form:"limit,default=20"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PriceSlabResponse struct {
	ID         string          `json:"id"`
	Quantity   decimal.Decimal `json:"quantity"`
	Unit       string          `json:"unit"`
	Price      decimal.Decimal `json:"price"`
	UnitLabel  string          `json:"unitLabel"`
	PriceLabel string          `json:"priceLabel"`
}

type SEOResponse struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

type ProductResponse struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Slug             string              `json:"slug"`
	Category         string              `json:"category"`
	Description      string              `json:"description"`
	ShortDescription *string             `json:"shortDescription,omitempty"`
	Image            string              `json:"image"`
	Images           []string            `json:"images"`
	PricingType      string              `json:"pricingType"`
	Prices           []PriceSlabResponse `json:"prices"`
	MinPrice         decimal.Decimal     `json:"minPrice"`
	MaxPrice         decimal.Decimal     `json:"maxPrice"`
	PriceLabel       string              `json:"priceLabel"`
	Origin           *string             `json:"origin,omitempty"`
	Aroma            *string             `json:"aroma,omitempty"`
	Texture          *string             `json:"texture,omitempty"`
	UsageTips        *string             `json:"usageTips,omitempty"`
	SEO              SEOResponse         `json:"seo"`
	Featured         bool                `json:"featured"`
	IsActive         bool                `json:"isActive"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

type ProductListResponse struct {
	Data  []ProductResponse
	Total int64
	Page  int
	Limit int
}
